package unibinary

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// runLength counts how many bytes starting at i equal buf[i].
func runLength(buf []byte, i int) int {
	c := buf[i]
	n := 1
	for i+n < len(buf) && buf[i+n] == c {
		n++
	}
	return n
}

// step encodes the group starting at src[i] into g and returns the number
// of symbols written and the number of bytes consumed.
func (e *Encoding) step(src []byte, i int, g *[2]rune) (symbols, consumed int) {
	r := runLength(src, i)
	if e.moduloRuns {
		r %= MaxRun + 1
	} else {
		r = min(r, MaxRun)
	}

	// Three repeated bytes already fit in two symbols
	if r > 3 {
		g[0] = byteSymbol(src[i])
		g[1] = twelveBitSymbol(r)
		return 2, r
	}

	remaining := len(src) - i

	if e.asciiPairs && remaining >= 2 && src[i] <= maxASCII && src[i+1] <= maxASCII {
		region, value := packASCIIPair(src[i], src[i+1])
		g[0] = pairSymbol(region, value)
		return 1, 2
	}

	if remaining >= 3 {
		v1, v2 := splitTriple(src[i], src[i+1], src[i+2])
		g[0] = twelveBitSymbol(v1)
		g[1] = twelveBitSymbol(v2)
		return 2, 3
	}

	g[0] = byteSymbol(src[i])
	return 1, 1
}

// EncodeGroups returns a single-pass iterator over the symbol groups of
// src. Each group holds one or two code points; the slice is reused and
// only valid until the next iteration.
func (e *Encoding) EncodeGroups(src []byte) iter.Seq[[]rune] {
	return func(yield func([]rune) bool) {
		var g [2]rune
		for i := 0; i < len(src); {
			n, consumed := e.step(src, i, &g)
			i += consumed
			if !yield(g[:n]) {
				return
			}
		}
	}
}

// Encode appends the encoding of src to dst and returns the extended
// slice.
func (e *Encoding) Encode(dst []rune, src []byte) []rune {
	var g [2]rune
	for i := 0; i < len(src); {
		n, consumed := e.step(src, i, &g)
		dst = append(dst, g[:n]...)
		i += consumed
	}
	return dst
}

// EncodeToString returns the encoding of src as a UTF-8 string.
func (e *Encoding) EncodeToString(src []byte) string {
	var sb strings.Builder
	sb.Grow(MaxEncodedLen(len(src), 0) * utf8.UTFMax)

	var g [2]rune
	for i := 0; i < len(src); {
		n, consumed := e.step(src, i, &g)
		for _, r := range g[:n] {
			sb.WriteRune(r)
		}
		i += consumed
	}
	return sb.String()
}

// EncodeGroups iterates the groups of src using [StdEncoding].
func EncodeGroups(src []byte) iter.Seq[[]rune] {
	return StdEncoding.EncodeGroups(src)
}

// Encode appends the [StdEncoding] encoding of src to dst.
func Encode(dst []rune, src []byte) []rune {
	return StdEncoding.Encode(dst, src)
}

// EncodeToString returns the [StdEncoding] encoding of src.
func EncodeToString(src []byte) string {
	return StdEncoding.EncodeToString(src)
}
