package unibinary

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

// decodeStep decodes the group starting at src[i] into buf, which must
// hold at least MaxRun bytes. It returns the decoded bytes (a prefix of
// buf) and the number of symbols consumed.
func decodeStep(src []rune, i int, buf []byte) ([]byte, int, error) {
	c1 := Classify(src[i])

	// A U12a symbol is always a complete group on its own
	if c1.Kind == KindU12a {
		buf[0], buf[1] = unpackASCIIPair(c1.Region, c1.Value)
		return buf[:2], 1, nil
	}

	if i+1 < len(src) {
		c2 := Classify(src[i+1])

		switch {
		case c1.Kind == KindU12 && c2.Kind == KindU12:
			buf[0], buf[1], buf[2] = joinTriple(c1.Value, c2.Value)
			return buf[:3], 2, nil
		case c1.Kind == KindU8 && c2.Kind == KindU12:
			run := buf[:c2.Value]
			for j := range run {
				run[j] = byte(c1.Value)
			}
			return run, 2, nil
		case c1.Kind == KindU8 && c2.Kind == KindU8:
			buf[0], buf[1] = byte(c1.Value), byte(c2.Value)
			return buf[:2], 2, nil
		}

		return nil, 0, fmt.Errorf(
			"[unibinary] symbols %U (%s) and %U (%s) at index %d: %w",
			src[i], c1.Kind, src[i+1], c2.Kind, i, ErrUnrecognizedSymbolPair,
		)
	}

	if c1.Kind == KindU8 {
		buf[0] = byte(c1.Value)
		return buf[:1], 1, nil
	}

	return nil, 0, fmt.Errorf("[unibinary] final symbol %U (%s) at index %d: %w", src[i], c1.Kind, i, ErrTruncatedStream)
}

// DecodeGroups returns a single-pass iterator over the byte groups
// encoded by src. A group is 1, 2 or 3 bytes, or the expansion of a run.
// The slice is reused and only valid until the next iteration.
//
// On malformed input the iterator yields a nil group with the error once
// and stops.
func DecodeGroups(src []rune) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		buf := make([]byte, MaxRun)
		for i := 0; i < len(src); {
			group, consumed, err := decodeStep(src, i, buf)
			if err != nil {
				yield(nil, err)
				return
			}
			i += consumed
			if !yield(group, nil) {
				return
			}
		}
	}
}

// Decode appends the bytes encoded by src to dst. On error it returns
// dst extended with every group decoded before the failure.
func Decode(dst []byte, src []rune) ([]byte, error) {
	buf := make([]byte, MaxRun)
	for i := 0; i < len(src); {
		group, consumed, err := decodeStep(src, i, buf)
		if err != nil {
			return dst, err
		}
		dst = append(dst, group...)
		i += consumed
	}
	return dst, nil
}

// DecodeString decodes encoded text. Line breaks inserted by a wrapping
// encoder are ignored.
func DecodeString(s string) ([]byte, error) {
	symbols := make([]rune, 0, len(s)/2)
	for _, r := range s {
		if !isLineBreak(r) {
			symbols = append(symbols, r)
		}
	}
	return Decode(make([]byte, 0, len(symbols)*2), symbols)
}

// DecodeAll decodes UTF-8 encoded text held in src and appends the result
// to dst. Line breaks are ignored. Invalid UTF-8 decodes as U+FFFD and is
// reported as a malformed symbol.
func DecodeAll(dst, src []byte) ([]byte, error) {
	symbols := appendSymbols(make([]rune, 0, len(src)/2), src)
	return Decode(dst, symbols)
}

// appendSymbols appends the code points of UTF-8 text to dst, dropping
// line breaks.
func appendSymbols(dst []rune, text []byte) []rune {
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		text = text[size:]
		if !isLineBreak(r) {
			dst = append(dst, r)
		}
	}
	return dst
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}
