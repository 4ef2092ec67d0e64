package unibinary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoder buffers everything written to it and, on Close, writes the
// encoded text to the underlying writer in a single pass.
type Encoder struct {
	w          io.Writer
	enc        *Encoding
	text       TextEncoding
	lineLength int

	hash    *xxhash.Digest
	buf     []byte
	symbols int

	writeMu  sync.Mutex
	hashErrs errgroup.Group
}

// EncoderOption configures an [Encoder] in [NewEncoder] and
// [Encoder.Reset].
type EncoderOption func(e *Encoder)

// WithEncoding selects the packing strategies, [StdEncoding] by default.
func WithEncoding(enc *Encoding) EncoderOption {
	return func(e *Encoder) {
		e.enc = enc
	}
}

// WithLineLength breaks the output with "\n" after every n symbols.
// 0, the default, writes a single line.
func WithLineLength(n int) EncoderOption {
	return func(e *Encoder) {
		e.lineLength = n
	}
}

// WithOutputEncoding selects how symbols are serialized, UTF-8 by default.
// UTF-16 output starts with a byte order mark.
func WithOutputEncoding(t TextEncoding) EncoderOption {
	return func(e *Encoder) {
		e.text = t
	}
}

// NewEncoder returns a new [Encoder].
// Writes to the returned writer are encoded and written to w on Close.
//
// It is the caller's responsibility to call Close on the [Encoder] when done.
func NewEncoder(w io.Writer, opts ...EncoderOption) (e *Encoder, err error) {
	e = new(Encoder)
	e.hash = xxhash.New()

	if err := e.Reset(w, opts...); err != nil {
		return nil, err
	}

	return
}

// Reset discards the [Encoder] e's state and makes it equivalent to the
// result of its original state from [NewEncoder], but writing to w instead.
// This permits reusing a [Encoder] rather than allocating a new one.
func (e *Encoder) Reset(w io.Writer, opts ...EncoderOption) error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	e.enc = StdEncoding
	e.text = UTF8
	e.lineLength = 0
	for _, opt := range opts {
		opt(e)
	}

	if e.lineLength < 0 {
		return fmt.Errorf("[unibinary] negative line length %d", e.lineLength)
	}
	if e.enc == nil {
		return errors.New("[unibinary] encoding is nil")
	}
	if e.text < UTF8 || e.text > UTF16BE {
		return fmt.Errorf("[unibinary] unknown text encoding %d", e.text)
	}

	e.w = w
	e.hash.Reset()
	e.buf = e.buf[:0]
	e.symbols = 0
	e.hashErrs = errgroup.Group{}

	return nil
}

// Write buffers p. Nothing reaches the underlying [io.Writer] until the
// [Encoder] is closed.
func (e *Encoder) Write(p []byte) (n int, err error) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return 0, errWriterNil
	}

	e.hashErrs.Go(func() error {
		_, err := e.hash.Write(p)
		return err
	})
	defer func() {
		// Other errors take priority
		if hashErr := e.hashErrs.Wait(); err == nil {
			err = hashErr
		}
	}()

	e.buf = append(e.buf, p...)

	return len(p), nil
}

// Close encodes the buffered input and writes it as text.
// It is an error to call Write after calling Close.
func (e *Encoder) Close() (err error) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return errWriterNil
	}
	defer func() { e.w = nil }()

	symbols := 0
	defer func() {
		if err == nil {
			e.symbols = symbols
		}
	}()

	out, closer := textWriter(e.w, e.text)
	if closer != nil {
		defer func() {
			// The first error wins
			if closeErr := closer.Close(); err == nil {
				err = closeErr
			}
		}()
	}
	bw := bufio.NewWriter(out)

	column := 0
	for group := range e.enc.EncodeGroups(e.buf) {
		for _, r := range group {
			if _, err := bw.WriteRune(r); err != nil {
				return err
			}
			symbols++

			if column++; e.lineLength > 0 && column == e.lineLength {
				if err := bw.WriteByte('\n'); err != nil {
					return err
				}
				column = 0
			}
		}
	}

	return bw.Flush()
}

// Sum64 returns the xxHash64 of every byte written since the last Reset.
func (e *Encoder) Sum64() uint64 {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	return e.hash.Sum64()
}

// Symbols returns the number of code points written by the last
// successful Close, not counting line breaks.
func (e *Encoder) Symbols() int {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	return e.symbols
}

// textWriter returns a writer accepting UTF-8 that serializes to w in the
// requested form. The closer, when not nil, must be closed to flush it.
func textWriter(w io.Writer, t TextEncoding) (io.Writer, io.Closer) {
	var tw *transform.Writer

	switch t {
	case UTF16LE:
		tw = transform.NewWriter(w, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder())
	case UTF16BE:
		tw = transform.NewWriter(w, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder())
	default:
		return w, nil
	}

	return tw, tw
}
