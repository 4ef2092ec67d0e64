package unibinary

// MaxEncodedLen returns the maximum number of code points produced when
// encoding length bytes, including the line breaks written every
// lineLength symbols (0 disables wrapping).
func MaxEncodedLen(length, lineLength int) int {
	if length <= 0 {
		return 0
	}

	ret := (2*length+2)/3 + // three bytes to two symbols, plus a two byte literal tail
		1 // rounding

	if lineLength > 0 {
		return ret + ret/lineLength
	}
	return ret
}
