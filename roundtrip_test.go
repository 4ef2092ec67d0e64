package unibinary

import (
	"bytes"
	"crypto/rand"
	"io"
	randv2 "math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomBytes(tb testing.TB, n int) []byte {
	tb.Helper()

	raw := make([]byte, n)
	_, err := rand.Read(raw)
	require.NoError(tb, err)
	return raw
}

// roundTrip pushes raw through an Encoder and a Decoder.
func roundTrip(t *testing.T, raw []byte, opts ...EncoderOption) []byte {
	t.Helper()

	encoded := new(bytes.Buffer)
	enc, err := NewEncoder(encoded, opts...)
	require.NoError(t, err)
	_, err = io.Copy(enc, bytes.NewReader(raw))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	dec := NewDecoder(bytes.NewReader(encoded.Bytes()))
	decoded := new(bytes.Buffer)
	n, err := io.Copy(decoded, dec)
	require.NoError(t, err)
	require.Equal(t, int64(len(raw)), n)
	require.Equal(t, enc.Sum64(), dec.Sum64())

	return decoded.Bytes()
}

func TestEncodeDecodeRoundTrip1MB(t *testing.T) {
	raw := randomBytes(t, 1024*1024)
	require.Equal(t, raw, roundTrip(t, raw))
}

func TestEncodeDecodeRoundTripSeeded(t *testing.T) {
	raw := make([]byte, 256*1024)
	_, err := randv2.NewChaCha8([32]byte(bytes.Repeat([]byte{0xBA, 0xAD, 0xF0, 0x0D}, 8))).Read(raw)
	require.NoError(t, err)

	cases := []struct {
		name string
		opts []EncoderOption
	}{
		{"default", nil},
		{"binary", []EncoderOption{WithEncoding(BinaryEncoding)}},
		{"modulo runs", []EncoderOption{WithEncoding(NewEncoding(ModuloRunChunking()))}},
		{"wrapped", []EncoderOption{WithLineLength(76)}},
		{"utf-16le", []EncoderOption{WithOutputEncoding(UTF16LE)}},
		{"utf-16be wrapped", []EncoderOption{WithOutputEncoding(UTF16BE), WithLineLength(1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, raw, roundTrip(t, raw, tc.opts...))
		})
	}
}

func TestRoundTripEveryByte(t *testing.T) {
	for b := range 256 {
		for n := 1; n <= 6; n++ {
			raw := bytes.Repeat([]byte{byte(b)}, n)
			decoded, err := Decode(nil, Encode(nil, raw))
			require.NoError(t, err)
			require.Equal(t, raw, decoded, "byte %#x repeated %d times", b, n)
		}
	}

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	decoded, err := DecodeString(EncodeToString(all))
	require.NoError(t, err)
	require.Equal(t, all, decoded)
}

func TestRoundTripText(t *testing.T) {
	cases := []string{
		"",
		"a",
		"ab",
		"abc",
		"The quick brown fox jumps over the lazy dog.",
		"Lorem ipsum dolor sit amet,\r\nconsectetur adipiscing elit.\n",
		"naïve café, Øresund, 日本語",
		strings.Repeat("-", 10000),
	}

	for _, text := range cases {
		encoded := EncodeToString([]byte(text))
		decoded, err := DecodeString(encoded)
		require.NoError(t, err)
		require.Equal(t, text, string(decoded))
	}
}

func TestRoundTripRuns(t *testing.T) {
	var raw []byte
	for _, n := range []int{1, 2, 3, 4, 5, 100, MaxRun - 1, MaxRun, MaxRun + 1, 2 * (MaxRun + 1), 20000} {
		raw = append(raw, bytes.Repeat([]byte{byte(n)}, n)...)
		raw = append(raw, 'x', 0xFE)
	}

	for _, enc := range []*Encoding{StdEncoding, BinaryEncoding, NewEncoding(ModuloRunChunking())} {
		symbols := enc.Encode(nil, raw)
		require.LessOrEqual(t, len(symbols), MaxEncodedLen(len(raw), 0))

		decoded, err := Decode(nil, symbols)
		require.NoError(t, err)
		require.Equal(t, raw, decoded)
	}
}
