package unibinary

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestDecoder(t *testing.T) {
	cases := []struct {
		name     string
		encoded  []byte
		opts     []DecoderOption
		expected string
	}{
		{"empty", nil, nil, ""},
		{"utf-8", []byte("\u9485"), nil, "ZE"},
		{"utf-8 bom", []byte("\xef\xbb\xbf\u9485"), nil, "ZE"},
		{"utf-8 wrapped", []byte("\u9662\n\u0463\r\n"), nil, "abc"},
		{"utf-16le bom", []byte("\xff\xfe\x85\x94"), nil, "ZE"},
		{"utf-16be bom", []byte("\xfe\xff\x94\x85"), nil, "ZE"},
		{"forced utf-16le", []byte("\x85\x94\x62\x96\x63\x04"), []DecoderOption{WithInputEncoding(UTF16LE)}, "ZEabc"},
		{"forced utf-16be", []byte("\x94\x85\x00\x0a"), []DecoderOption{WithInputEncoding(UTF16BE)}, "ZE"},
		{"forced utf-16be with bom", []byte("\xfe\xff\x94\x85"), []DecoderOption{WithInputEncoding(UTF16BE)}, "ZE"},
		{"forced utf-8 with bom", []byte("\xef\xbb\xbf\u9485"), []DecoderOption{WithInputEncoding(UTF8)}, "ZE"},
		{"small buffer", []byte(EncodeToString([]byte(strings.Repeat("\x80\x81\x82 text", 100)))), []DecoderOption{WithBufferSize(1)}, strings.Repeat("\x80\x81\x82 text", 100)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dec := NewDecoder(bytes.NewReader(tc.encoded), tc.opts...)
			decoded := new(bytes.Buffer)
			n, err := io.Copy(decoded, dec)
			require.NoError(t, err)
			require.Equal(t, int64(len(tc.expected)), n)
			require.Equal(t, tc.expected, decoded.String())
			require.Equal(t, xxhash.Sum64String(tc.expected), dec.Sum64())
		})
	}
}

func TestDecoderRead(t *testing.T) {
	raw := randomBytes(t, 64*1024)
	encoded := EncodeToString(raw)

	// Exercise Read directly with one byte at a time from the source
	dec := NewDecoder(iotest.OneByteReader(strings.NewReader(encoded)), WithBufferSize(16))
	decoded, err := io.ReadAll(iotest.HalfReader(dec))
	require.NoError(t, err)
	require.Equal(t, raw, decoded)

	n, err := dec.Read(make([]byte, 10))
	require.Equal(t, 0, n)
	require.ErrorIs(t, err, io.EOF)
}

func TestDecoderMaxInputSize(t *testing.T) {
	// Three U12a symbols, three UTF-8 bytes each
	encoded := EncodeToString([]byte("ABCDEF"))
	require.Len(t, encoded, 9)

	dec := NewDecoder(strings.NewReader(encoded), WithMaxInputSize(9))
	decoded, err := io.ReadAll(dec)
	require.NoError(t, err)
	require.Equal(t, "ABCDEF", string(decoded))

	dec = NewDecoder(strings.NewReader(encoded), WithMaxInputSize(8))
	_, err = io.ReadAll(dec)
	require.ErrorIs(t, err, ErrInputTooLarge)

	dec = NewDecoder(strings.NewReader(encoded), WithMaxInputSize(4), WithBufferSize(1))
	_, err = io.Copy(io.Discard, dec)
	require.ErrorIs(t, err, ErrInputTooLarge)

	// A larger initial buffer does not lift the limit, in either order
	long := EncodeToString([]byte(strings.Repeat("0123456789", 9)))
	for _, opts := range [][]DecoderOption{
		{WithBufferSize(1024), WithMaxInputSize(4)},
		{WithMaxInputSize(4), WithBufferSize(1024)},
	} {
		dec = NewDecoder(strings.NewReader(long), opts...)
		decoded, err = io.ReadAll(dec)
		require.ErrorIs(t, err, ErrInputTooLarge)
		require.Empty(t, decoded)
	}

	dec = NewDecoder(strings.NewReader(encoded), WithBufferSize(64), WithMaxInputSize(9))
	decoded, err = io.ReadAll(dec)
	require.NoError(t, err)
	require.Equal(t, "ABCDEF", string(decoded))
}

func TestDecoderNonPositiveBufferSize(t *testing.T) {
	encoded := EncodeToString([]byte("\x00\x01\x02 text"))

	for _, size := range []int{-1, 0} {
		var dec *Decoder
		require.NotPanics(t, func() {
			dec = NewDecoder(strings.NewReader(encoded), WithBufferSize(size))
		})
		decoded, err := io.ReadAll(dec)
		require.NoError(t, err)
		require.Equal(t, "\x00\x01\x02 text", string(decoded))
	}
}

func TestDecoderErrors(t *testing.T) {
	cases := []struct {
		name     string
		encoded  string
		expected error
	}{
		{"foreign pair", "AB", ErrUnrecognizedSymbolPair},
		{"U12 then U8", string([]rune{u12(1), u8(1)}), ErrUnrecognizedSymbolPair},
		{"lone U12", string([]rune{u12(1)}), ErrTruncatedStream},
		{"U12a then U12", string([]rune{pair("ab"), u12(1)}), ErrTruncatedStream},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dec := NewDecoder(strings.NewReader(tc.encoded))
			n, err := io.Copy(io.Discard, dec)
			require.ErrorIs(t, err, tc.expected)
			require.Equal(t, int64(0), n)

			// The error sticks
			_, err = dec.Read(make([]byte, 1))
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestDecoderReadError(t *testing.T) {
	dec := NewDecoder(iotest.ErrReader(iotest.ErrTimeout))
	_, err := io.ReadAll(dec)
	require.ErrorIs(t, err, iotest.ErrTimeout)
}

func BenchmarkDecoder(b *testing.B) {
	raw := randomBytes(b, 1024*1024)
	encoded := []byte(EncodeToString(raw))

	b.SetBytes(int64(len(raw)))
	b.ResetTimer()
	for b.Loop() {
		dec := NewDecoder(bytes.NewReader(encoded))
		_, err := io.Copy(io.Discard, dec)
		require.NoError(b, err)
	}
}
