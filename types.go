package unibinary

// Kind is the range a code point was classified into by [Classify].
type Kind int

const (
	KindUnrecognized Kind = 0 // outside every reserved range
	KindU8           Kind = 1 // one literal byte, or a run's byte value
	KindU12          Kind = 2 // one 12-bit value, or a run's length
	KindU12a         Kind = 3 // a packed pair of 7-bit ASCII values
)

func (k Kind) String() string {
	switch k {
	case KindU8:
		return "U8"
	case KindU12:
		return "U12"
	case KindU12a:
		return "U12a"
	default:
		return "unrecognized"
	}
}

// Class is the result of classifying a single code point.
//
// Value is the offset of the code point from the start of its range.
// Region is only meaningful for KindU12a and selects which operands of
// the packed pair had their high bit (64) set.
type Class struct {
	Kind   Kind
	Region int
	Value  int
}

// TextEncoding selects how code points are serialized by [Encoder] and
// parsed by [Decoder].
type TextEncoding int

const (
	UTF8    TextEncoding = 0 // default
	UTF16LE TextEncoding = 1 // written with a byte order mark
	UTF16BE TextEncoding = 2 // written with a byte order mark
)

func (t TextEncoding) String() string {
	switch t {
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}
