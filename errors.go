package unibinary

import "errors"

var (
	// ErrRangeViolation is returned when a packing primitive receives a
	// value outside the domain it accepts.
	ErrRangeViolation = errors.New("value out of range")

	// ErrUnrecognizedSymbolPair is returned when two code points do not
	// form a (U12, U12), (U8, U12) or (U8, U8) pair.
	ErrUnrecognizedSymbolPair = errors.New("unrecognized symbol pair")

	// ErrTruncatedStream is returned when the final lone code point is
	// not a U8 symbol.
	ErrTruncatedStream = errors.New("truncated symbol stream")

	// ErrInputTooLarge is returned by [Decoder] when the encoded input
	// exceeds the configured maximum.
	ErrInputTooLarge = errors.New("encoded input too large")

	errWriterNil = errors.New("writer is nil")
)
