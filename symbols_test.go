package unibinary

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		r        rune
		expected Class
	}{
		{0x03FF, Class{Kind: KindUnrecognized}},
		{0x0400, Class{Kind: KindU8, Value: 0}},
		{0x04FF, Class{Kind: KindU8, Value: 0xFF}},
		{0x0500, Class{Kind: KindUnrecognized}},
		{0x4DFF, Class{Kind: KindUnrecognized}},
		{0x4E00, Class{Kind: KindU12, Value: 0}},
		{0x5DFF, Class{Kind: KindU12, Value: 0xFFF}},
		{0x5E00, Class{Kind: KindU12a, Region: 0, Value: 0}},
		{0x6DFF, Class{Kind: KindU12a, Region: 0, Value: 0xFFF}},
		{0x6E00, Class{Kind: KindU12a, Region: 1, Value: 0}},
		{0x7E00, Class{Kind: KindU12a, Region: 2, Value: 0}},
		{0x8E00, Class{Kind: KindU12a, Region: 3, Value: 0}},
		{0x9DFF, Class{Kind: KindU12a, Region: 3, Value: 0xFFF}},
		{0x9E00, Class{Kind: KindUnrecognized}},
		{'\n', Class{Kind: KindUnrecognized}},
		{unicode.ReplacementChar, Class{Kind: KindUnrecognized}},
	}

	for _, tc := range cases {
		t.Run(string(tc.r), func(t *testing.T) {
			require.Equal(t, tc.expected, Classify(tc.r))
		})
	}
}

func TestRangesDisjoint(t *testing.T) {
	ranges := append([]Range{U8, U12}, U12a[:]...)

	counts := make(map[Kind]int)
	for r := rune(0); r <= unicode.MaxRune; r++ {
		members := 0
		for _, rg := range ranges {
			if rg.Contains(r) {
				members++
			}
		}
		if members > 1 {
			t.Fatalf("%U belongs to %d ranges", r, members)
		}
		counts[Classify(r).Kind]++
	}

	require.Equal(t, 0x100, counts[KindU8])
	require.Equal(t, 0x1000, counts[KindU12])
	require.Equal(t, 4*0x1000, counts[KindU12a])
}
