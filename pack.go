package unibinary

import "fmt"

const (
	maxByte   = 0xFF
	maxTwelve = 0xFFF
	maxASCII  = 0x7F

	// MaxRun is the longest run a single (U8, U12) pair can describe.
	MaxRun = maxTwelve
)

// SplitTriple packs three bytes into two 12-bit values.
//
//	(0x12, 0x34, 0x56) -> (0x123, 0x456)
func SplitTriple(a, b, c int) (v1, v2 int, err error) {
	if !inRange(a, maxByte) || !inRange(b, maxByte) || !inRange(c, maxByte) {
		return 0, 0, fmt.Errorf("[unibinary] split bytes (%#x, %#x, %#x): %w", a, b, c, ErrRangeViolation)
	}

	v1, v2 = splitTriple(byte(a), byte(b), byte(c))
	return v1, v2, nil
}

// JoinTriple is the inverse of [SplitTriple].
//
//	(0x123, 0x456) -> (0x12, 0x34, 0x56)
func JoinTriple(v1, v2 int) (a, b, c byte, err error) {
	if !inRange(v1, maxTwelve) || !inRange(v2, maxTwelve) {
		return 0, 0, 0, fmt.Errorf("[unibinary] join 12-bit values (%#x, %#x): %w", v1, v2, ErrRangeViolation)
	}

	a, b, c = joinTriple(v1, v2)
	return a, b, c, nil
}

// PackASCIIPair packs two 7-bit values into a U12a region and a 12-bit
// value. Each operand that is 64 or above selects its region bit and
// has 64 subtracted before packing.
func PackASCIIPair(a1, a2 int) (region, value int, err error) {
	if !inRange(a1, maxASCII) || !inRange(a2, maxASCII) {
		return 0, 0, fmt.Errorf("[unibinary] pack ascii pair (%#x, %#x): %w", a1, a2, ErrRangeViolation)
	}

	region, value = packASCIIPair(byte(a1), byte(a2))
	return region, value, nil
}

// UnpackASCIIPair is the inverse of [PackASCIIPair].
func UnpackASCIIPair(region, value int) (a1, a2 byte, err error) {
	if !inRange(region, len(U12a)-1) || !inRange(value, maxTwelve) {
		return 0, 0, fmt.Errorf("[unibinary] unpack ascii pair region %d value %#x: %w", region, value, ErrRangeViolation)
	}

	a1, a2 = unpackASCIIPair(region, value)
	return a1, a2, nil
}

// ByteSymbol returns the U8 code point for a byte value.
func ByteSymbol(v int) (rune, error) {
	if !inRange(v, maxByte) {
		return 0, fmt.Errorf("[unibinary] byte symbol %#x: %w", v, ErrRangeViolation)
	}
	return byteSymbol(byte(v)), nil
}

// TwelveBitSymbol returns the U12 code point for a 12-bit value.
func TwelveBitSymbol(v int) (rune, error) {
	if !inRange(v, maxTwelve) {
		return 0, fmt.Errorf("[unibinary] 12-bit symbol %#x: %w", v, ErrRangeViolation)
	}
	return twelveBitSymbol(v), nil
}

// RepeatSymbols returns the (U8, U12) pair that decodes to n copies of b.
func RepeatSymbols(b, n int) ([2]rune, error) {
	if !inRange(b, maxByte) || !inRange(n, MaxRun) {
		return [2]rune{}, fmt.Errorf("[unibinary] repeat byte %#x %d times: %w", b, n, ErrRangeViolation)
	}
	return [2]rune{byteSymbol(byte(b)), twelveBitSymbol(n)}, nil
}

func inRange(v, hi int) bool {
	return v >= 0 && v <= hi
}

func splitTriple(a, b, c byte) (v1, v2 int) {
	v1 = int(a)<<4 | int(b)>>4
	v2 = int(b&0xF)<<8 | int(c)
	return v1, v2
}

func joinTriple(v1, v2 int) (a, b, c byte) {
	a = byte(v1 >> 4)
	b = byte((v1&0xF)<<4 | v2>>8)
	c = byte(v2 & 0xFF)
	return a, b, c
}

func packASCIIPair(a1, a2 byte) (region, value int) {
	if a1 >= 64 {
		a1 -= 64
		region |= 2
	}
	if a2 >= 64 {
		a2 -= 64
		region |= 1
	}
	return region, int(a1)<<6 | int(a2)
}

func unpackASCIIPair(region, value int) (a1, a2 byte) {
	a1 = byte(value >> 6 & 0x3F)
	a2 = byte(value & 0x3F)
	if region&2 != 0 {
		a1 += 64
	}
	if region&1 != 0 {
		a2 += 64
	}
	return a1, a2
}
