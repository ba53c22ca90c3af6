package pokerhand

import "sort"

// Hand categories, weakest to strongest. Comparison is by category first, then
// by the tie-break sequence.
const (
	Category_HighCard      = 0
	Category_OnePair       = 1
	Category_TwoPair       = 2
	Category_ThreeOfAKind  = 3
	Category_Straight      = 4
	Category_Flush         = 5
	Category_FullHouse     = 6
	Category_FourOfAKind   = 7
	Category_StraightFlush = 8
	Category_RoyalFlush    = 9
)

var categoryNames = map[int]string{
	Category_RoyalFlush:    "Royal Flush",
	Category_StraightFlush: "Straight Flush",
	Category_FourOfAKind:   "Four of a Kind",
	Category_FullHouse:     "Full House",
	Category_Flush:         "Flush",
	Category_Straight:      "Straight",
	Category_ThreeOfAKind:  "Three of a Kind",
	Category_TwoPair:       "Two Pair",
	Category_OnePair:       "One Pair",
	Category_HighCard:      "High Card",
}

// CategoryName returns the display label for a hand category.
func CategoryName(category int) string {
	return categoryNames[category]
}

// HandValue is the result of evaluating exactly five cards.
type HandValue struct {
	Category  int   `json:"category"`
	Tiebreaks []int `json:"tiebreaks"`
}

// Name returns the display label for the hand's category.
func (hv HandValue) Name() string {
	return CategoryName(hv.Category)
}

// degradedValue is returned for malformed or incomplete input. It is a defined
// lowest-value result, not an error.
func degradedValue() HandValue {
	return HandValue{Category: Category_HighCard, Tiebreaks: []int{0}}
}

// straightTop returns the top rank of the straight formed by the given five
// ranks, if any. The wheel A-2-3-4-5 counts as a straight topped by 5.
func straightTop(ranks []int) (int, bool) {
	uniq := make([]int, 0, len(ranks))
	seen := make(map[int]bool)
	for _, r := range ranks {
		if !seen[r] {
			seen[r] = true
			uniq = append(uniq, r)
		}
	}
	if len(uniq) != 5 {
		return 0, false
	}
	sort.Ints(uniq)

	if uniq[0] == 2 && uniq[1] == 3 && uniq[2] == 4 && uniq[3] == 5 && uniq[4] == Rank_Ace {
		return 5, true
	}
	if uniq[4]-uniq[0] == 4 {
		return uniq[4], true
	}
	return 0, false
}

// rankGroup is a run of equal ranks within a five-card hand.
type rankGroup struct {
	rank  int
	count int
}

// groupRanks buckets ranks by multiplicity, ordered by count then rank, both
// descending. The first group therefore names the dominant pattern.
func groupRanks(ranks []int) []rankGroup {
	counts := make(map[int]int)
	for _, r := range ranks {
		counts[r]++
	}
	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})
	return groups
}

// EvaluateFive classifies exactly five cards into one of the ten categories.
// Anything other than five cards yields the degraded high-card-zero result.
func EvaluateFive(cards []Card) HandValue {
	if len(cards) != 5 {
		return degradedValue()
	}

	ranks := make([]int, len(cards))
	isFlush := true
	for i, card := range cards {
		ranks[i] = card.Rank
		if card.Suit != cards[0].Suit {
			isFlush = false
		}
	}

	ranksDesc := make([]int, len(ranks))
	copy(ranksDesc, ranks)
	sort.Sort(sort.Reverse(sort.IntSlice(ranksDesc)))

	top, isStraight := straightTop(ranks)
	groups := groupRanks(ranks)

	switch {
	case isFlush && isStraight && top == Rank_Ace:
		return HandValue{Category: Category_RoyalFlush, Tiebreaks: []int{Rank_Ace}}
	case isFlush && isStraight:
		return HandValue{Category: Category_StraightFlush, Tiebreaks: []int{top}}
	case groups[0].count == 4:
		return HandValue{Category: Category_FourOfAKind, Tiebreaks: []int{groups[0].rank, groups[1].rank}}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandValue{Category: Category_FullHouse, Tiebreaks: []int{groups[0].rank, groups[1].rank}}
	case isFlush:
		return HandValue{Category: Category_Flush, Tiebreaks: ranksDesc}
	case isStraight:
		return HandValue{Category: Category_Straight, Tiebreaks: []int{top}}
	case groups[0].count == 3:
		return HandValue{Category: Category_ThreeOfAKind, Tiebreaks: []int{groups[0].rank, groups[1].rank, groups[2].rank}}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandValue{Category: Category_TwoPair, Tiebreaks: []int{groups[0].rank, groups[1].rank, groups[2].rank}}
	case groups[0].count == 2:
		return HandValue{Category: Category_OnePair, Tiebreaks: []int{groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank}}
	default:
		return HandValue{Category: Category_HighCard, Tiebreaks: ranksDesc}
	}
}

// EvaluateFiveCodes parses the given card codes and evaluates them, degrading
// on malformed input instead of failing.
func EvaluateFiveCodes(codes []string) HandValue {
	return EvaluateFive(ParseCards(codes))
}

// Compare orders two hand values: -1 when a is weaker, 1 when stronger, 0 on a
// tie. Categories decide first; tie-break sequences are compared element by
// element with missing elements treated as 0.
func Compare(a, b HandValue) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return -1
		}
		return 1
	}

	n := len(a.Tiebreaks)
	if len(b.Tiebreaks) > n {
		n = len(b.Tiebreaks)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(a.Tiebreaks) {
			av = a.Tiebreaks[i]
		}
		if i < len(b.Tiebreaks) {
			bv = b.Tiebreaks[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
