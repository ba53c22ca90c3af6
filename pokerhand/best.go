package pokerhand

// BestHand is the strongest five-card selection from a player's card pool.
type BestHand struct {
	Value HandValue
	Cards []Card
}

// Name returns the display label of the best hand's category.
func (bh *BestHand) Name() string {
	return bh.Value.Name()
}

// BestFromPool enumerates every five-card combination of the viewer's hole
// cards plus the community cards and returns the strongest hand. Malformed
// codes are dropped first; fewer than five parseable cards yields nil.
// Ties keep the first combination encountered.
func BestFromPool(holeCards, communityCards []string) *BestHand {
	codes := make([]string, 0, len(holeCards)+len(communityCards))
	codes = append(codes, holeCards...)
	codes = append(codes, communityCards...)

	pool := ParseCards(codes)
	if len(pool) < 5 {
		return nil
	}

	var best *BestHand
	for _, combo := range chooseFive(pool) {
		value := EvaluateFive(combo)
		if best == nil || Compare(value, best.Value) > 0 {
			best = &BestHand{Value: value, Cards: combo}
		}
	}
	return best
}

// chooseFive yields all C(n,5) five-card combinations, in index order.
func chooseFive(cards []Card) [][]Card {
	out := make([][]Card, 0)
	n := len(cards)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						out = append(out, []Card{cards[a], cards[b], cards[c], cards[d], cards[e]})
					}
				}
			}
		}
	}
	return out
}
