package unibinary

import (
	"fmt"
	"io"
)

const (
	defaultReadBufSize  = 32 * 1024
	defaultMaxInputSize = 1 << 30
)

// readBuffer accumulates a whole input, growing geometrically up to max
// bytes.
type readBuffer struct {
	buf []byte
	end int
	max int
}

func (rb *readBuffer) init() {
	if rb.max <= 0 {
		rb.max = defaultMaxInputSize
	}
	if len(rb.buf) == 0 {
		rb.buf = make([]byte, min(defaultReadBufSize, rb.max))
	}
	if len(rb.buf) > rb.max {
		rb.buf = rb.buf[:rb.max]
	}
}

func (rb *readBuffer) window() []byte {
	return rb.buf[:rb.end]
}

// grow doubles the buffer, capped at max. It reports false when the
// buffer is already at the limit.
func (rb *readBuffer) grow() bool {
	newLen := min(len(rb.buf)*2, rb.max)
	if newLen <= len(rb.buf) {
		return false
	}

	nb := make([]byte, newLen)
	copy(nb, rb.window())
	rb.buf = nb
	return true
}

// readAll reads r until io.EOF. The returned slice aliases the buffer.
func (rb *readBuffer) readAll(r io.Reader) ([]byte, error) {
	rb.init()
	rb.end = 0

	for {
		if rb.end == len(rb.buf) && !rb.grow() {
			// At the limit, the input has to end here
			var probe [1]byte
			n, err := io.ReadFull(r, probe[:])
			if n > 0 {
				return nil, fmt.Errorf("[unibinary] encoded input exceeded %d bytes: %w", rb.max, ErrInputTooLarge)
			}
			if err == io.EOF {
				return rb.window(), nil
			}
			return nil, err
		}

		n, err := r.Read(rb.buf[rb.end:])
		if n > 0 {
			rb.end += n
		}
		if err == io.EOF {
			return rb.window(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}
