package pokerhand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateFive_Categories(t *testing.T) {
	testCases := []struct {
		name      string
		codes     []string
		category  int
		tiebreaks []int
	}{
		{"royal flush", []string{"As", "Ks", "Qs", "Js", "Ts"}, Category_RoyalFlush, []int{14}},
		{"straight flush (wheel)", []string{"2h", "3h", "4h", "5h", "Ah"}, Category_StraightFlush, []int{5}},
		{"straight flush", []string{"5d", "6d", "7d", "8d", "9d"}, Category_StraightFlush, []int{9}},
		{"four of a kind", []string{"Ah", "Ad", "Ac", "As", "2h"}, Category_FourOfAKind, []int{14, 2}},
		{"full house", []string{"7h", "7d", "7c", "3s", "3h"}, Category_FullHouse, []int{7, 3}},
		{"flush", []string{"2h", "5h", "9h", "Jh", "Kh"}, Category_Flush, []int{13, 11, 9, 5, 2}},
		{"straight", []string{"2h", "3d", "4c", "5s", "6h"}, Category_Straight, []int{6}},
		{"straight (wheel)", []string{"2h", "3d", "4c", "5s", "Ah"}, Category_Straight, []int{5}},
		{"straight (broadway)", []string{"Th", "Jd", "Qc", "Ks", "Ah"}, Category_Straight, []int{14}},
		{"three of a kind", []string{"9h", "9d", "9c", "Ks", "2h"}, Category_ThreeOfAKind, []int{9, 13, 2}},
		{"two pair", []string{"Qh", "Qd", "4c", "4s", "9h"}, Category_TwoPair, []int{12, 4, 9}},
		{"one pair", []string{"8h", "8d", "Ac", "Js", "3h"}, Category_OnePair, []int{8, 14, 11, 3}},
		{"high card", []string{"2h", "7d", "9c", "Js", "Ah"}, Category_HighCard, []int{14, 11, 9, 7, 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value := EvaluateFiveCodes(tc.codes)
			assert.Equal(t, tc.category, value.Category)
			assert.Equal(t, tc.tiebreaks, value.Tiebreaks)
		})
	}
}

func TestEvaluateFive_PermutationInvariant(t *testing.T) {
	codes := []string{"7h", "7d", "Kc", "Ks", "2h"}
	expected := EvaluateFiveCodes(codes)

	for _, perm := range permutations(codes) {
		assert.Equal(t, expected, EvaluateFiveCodes(perm))
	}
}

func TestEvaluateFive_DegradedInput(t *testing.T) {
	degraded := HandValue{Category: Category_HighCard, Tiebreaks: []int{0}}

	assert.Equal(t, degraded, EvaluateFiveCodes(nil))
	assert.Equal(t, degraded, EvaluateFiveCodes([]string{"Ah", "Kd", "Qc", "Js"}))
	assert.Equal(t, degraded, EvaluateFiveCodes([]string{"Ah", "Kd", "Qc", "Js", "xx"}))
	assert.Equal(t, degraded, EvaluateFive(make([]Card, 6)))
}

func TestCompare_Ordering(t *testing.T) {
	flush := EvaluateFiveCodes([]string{"2h", "5h", "9h", "Jh", "Kh"})
	straight := EvaluateFiveCodes([]string{"2h", "3d", "4c", "5s", "6h"})

	assert.Equal(t, 1, Compare(flush, straight))
	assert.Equal(t, -1, Compare(straight, flush))
	assert.Equal(t, 0, Compare(flush, flush))

	// same category, tiebreaks decide
	lowPair := EvaluateFiveCodes([]string{"8h", "8d", "Ac", "Js", "3h"})
	highPair := EvaluateFiveCodes([]string{"9h", "9d", "Ac", "Js", "3h"})
	assert.Equal(t, -1, Compare(lowPair, highPair))

	// missing tiebreak elements are treated as zero
	a := HandValue{Category: Category_Straight, Tiebreaks: []int{9}}
	b := HandValue{Category: Category_Straight, Tiebreaks: []int{9, 0}}
	assert.Equal(t, 0, Compare(a, b))
}

func TestCompare_TotalPreorder(t *testing.T) {
	// weakest to strongest; pairwise order must be transitive and consistent
	ladder := []HandValue{
		EvaluateFiveCodes([]string{"2h", "7d", "9c", "Js", "Ah"}),
		EvaluateFiveCodes([]string{"8h", "8d", "Ac", "Js", "3h"}),
		EvaluateFiveCodes([]string{"Qh", "Qd", "4c", "4s", "9h"}),
		EvaluateFiveCodes([]string{"9h", "9d", "9c", "Ks", "2h"}),
		EvaluateFiveCodes([]string{"2h", "3d", "4c", "5s", "6h"}),
		EvaluateFiveCodes([]string{"2h", "5h", "9h", "Jh", "Kh"}),
		EvaluateFiveCodes([]string{"7h", "7d", "7c", "3s", "3h"}),
		EvaluateFiveCodes([]string{"Ah", "Ad", "Ac", "As", "2h"}),
		EvaluateFiveCodes([]string{"5d", "6d", "7d", "8d", "9d"}),
		EvaluateFiveCodes([]string{"As", "Ks", "Qs", "Js", "Ts"}),
	}

	for i := range ladder {
		assert.Equal(t, 0, Compare(ladder[i], ladder[i]))
		for j := i + 1; j < len(ladder); j++ {
			assert.Equal(t, -1, Compare(ladder[i], ladder[j]), "i=%d j=%d", i, j)
			assert.Equal(t, 1, Compare(ladder[j], ladder[i]), "i=%d j=%d", i, j)
		}
	}
}

func permutations(items []string) [][]string {
	if len(items) <= 1 {
		return [][]string{append([]string{}, items...)}
	}

	out := make([][]string, 0)
	for i := range items {
		rest := make([]string, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, perm := range permutations(rest) {
			out = append(out, append([]string{items[i]}, perm...))
		}
	}
	return out
}
