package unibinary

import (
	"io"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decoder reads encoded text from an [io.Reader] and serves the decoded
// bytes. The whole input is read and decoded on the first Read.
type Decoder struct {
	r  io.Reader
	rb readBuffer

	text      TextEncoding
	forceText bool

	hash    *xxhash.Digest
	out     []byte
	off     int
	decoded bool
	err     error
}

// DecoderOption configures a [Decoder] created by [NewDecoder].
type DecoderOption func(d *Decoder)

// NewDecoder returns a [Decoder] reading from r. Without
// [WithInputEncoding] the text is UTF-8 unless it starts with a UTF-16
// byte order mark.
func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{r: r, hash: xxhash.New()}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// WithBufferSize sets the initial size of the input buffer. Sizes of 0
// or less keep the default, and the buffer never exceeds the maximum
// input size.
func WithBufferSize(size int) DecoderOption {
	return func(d *Decoder) {
		if size <= 0 {
			d.rb.buf = nil
			return
		}
		d.rb.buf = make([]byte, size)
	}
}

// WithMaxInputSize limits the encoded text, in its UTF-8 form, to size
// bytes. Larger inputs fail with [ErrInputTooLarge].
func WithMaxInputSize(size int) DecoderOption {
	return func(d *Decoder) {
		d.rb.max = size
	}
}

// WithInputEncoding forces the text encoding instead of detecting it.
// A matching byte order mark is still skipped.
func WithInputEncoding(t TextEncoding) DecoderOption {
	return func(d *Decoder) {
		d.text = t
		d.forceText = true
	}
}

// Read reads decoded bytes into p.
func (d *Decoder) Read(p []byte) (int, error) {
	if err := d.decode(); err != nil {
		return 0, err
	}

	if d.off >= len(d.out) {
		return 0, io.EOF
	}

	n := copy(p, d.out[d.off:])
	d.off += n
	return n, nil
}

// WriteTo writes the remaining decoded bytes to w.
func (d *Decoder) WriteTo(w io.Writer) (int64, error) {
	if err := d.decode(); err != nil {
		return 0, err
	}

	n, err := w.Write(d.out[d.off:])
	d.off += n
	return int64(n), err
}

// Sum64 returns the xxHash64 of the decoded bytes. It is only
// meaningful after the first Read.
func (d *Decoder) Sum64() uint64 {
	return d.hash.Sum64()
}

func (d *Decoder) decode() error {
	if d.decoded {
		return d.err
	}
	d.decoded = true

	text, err := d.rb.readAll(transform.NewReader(d.r, d.textDecoder()))
	if err != nil {
		d.err = err
		return err
	}

	symbols := appendSymbols(make([]rune, 0, len(text)/2), text)
	if d.out, err = Decode(d.out[:0], symbols); err != nil {
		d.err = err
		return err
	}

	_, _ = d.hash.Write(d.out)
	return nil
}

func (d *Decoder) textDecoder() transform.Transformer {
	if !d.forceText {
		return unicode.BOMOverride(unicode.UTF8.NewDecoder())
	}

	switch d.text {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	default:
		return unicode.UTF8BOM.NewDecoder()
	}
}
