package unibinary

// Range is a contiguous block of reserved code points.
type Range struct {
	Base rune
	Len  rune
}

// Contains reports whether r lies in the range.
func (rg Range) Contains(r rune) bool {
	return r >= rg.Base && r < rg.Base+rg.Len
}

// The Symbol Space. Values are never modified after package load.
var (
	// U8 holds one literal byte value (Cyrillic).
	U8 = Range{Base: 0x0400, Len: 0x100}

	// U12 holds one 12-bit value (CJK Unified Ideographs).
	U12 = Range{Base: 0x4E00, Len: 0x1000}

	// U12a holds a packed ASCII pair, one sub-range per region
	// (CJK Unified Ideographs). Region bit 1 is the first byte's 64 bit,
	// region bit 0 the second byte's.
	U12a = [4]Range{
		{Base: 0x5E00, Len: 0x1000}, // lo, lo
		{Base: 0x6E00, Len: 0x1000}, // lo, hi
		{Base: 0x7E00, Len: 0x1000}, // hi, lo
		{Base: 0x8E00, Len: 0x1000}, // hi, hi
	}
)

// Classify maps a code point to the range it belongs to and its offset
// within that range.
func Classify(r rune) Class {
	switch {
	case U8.Contains(r):
		return Class{Kind: KindU8, Value: int(r - U8.Base)}
	case U12.Contains(r):
		return Class{Kind: KindU12, Value: int(r - U12.Base)}
	}

	for region, rg := range U12a {
		if rg.Contains(r) {
			return Class{Kind: KindU12a, Region: region, Value: int(r - rg.Base)}
		}
	}

	return Class{Kind: KindUnrecognized}
}

// byteSymbol and twelveBitSymbol assume v is already in range.
func byteSymbol(v byte) rune {
	return U8.Base + rune(v)
}

func twelveBitSymbol(v int) rune {
	return U12.Base + rune(v)
}

func pairSymbol(region, value int) rune {
	return U12a[region].Base + rune(value)
}
