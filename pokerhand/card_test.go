package pokerhand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCard_FullDeck(t *testing.T) {
	suits := []Suit{Suit_Hearts, Suit_Diamonds, Suit_Clubs, Suit_Spades}

	seen := make(map[Card]bool)
	for rank := 2; rank <= Rank_Ace; rank++ {
		for _, suit := range suits {
			code := RankToken(rank) + string(suit)
			card, ok := ParseCard(code)

			assert.True(t, ok, code)
			assert.Equal(t, rank, card.Rank, code)
			assert.Equal(t, suit, card.Suit, code)
			assert.False(t, seen[card], "duplicate card for %s", code)
			seen[card] = true
		}
	}
	assert.Len(t, seen, 52)
}

func TestParseCard_CaseAndWhitespace(t *testing.T) {
	expected := Card{Rank: Rank_Ace, Suit: Suit_Hearts}
	for _, code := range []string{"Ah", "AH", "ah", " aH "} {
		card, ok := ParseCard(code)
		assert.True(t, ok, code)
		assert.Equal(t, expected, card, code)
	}

	// numeric rank tokens are accepted too
	card, ok := ParseCard("10s")
	assert.True(t, ok)
	assert.Equal(t, Card{Rank: 10, Suit: Suit_Spades}, card)
}

func TestParseCard_Malformed(t *testing.T) {
	malformed := []string{"", "h", "A", "Ax", "1h", "0d", "15c", "??", "A♥", "hA"}
	for _, code := range malformed {
		_, ok := ParseCard(code)
		assert.False(t, ok, code)
	}
}

func TestCard_RoundTrip(t *testing.T) {
	suits := []Suit{Suit_Hearts, Suit_Diamonds, Suit_Clubs, Suit_Spades}
	for rank := 2; rank <= Rank_Ace; rank++ {
		for _, suit := range suits {
			card := Card{Rank: rank, Suit: suit}
			parsed, ok := ParseCard(card.String())
			assert.True(t, ok)
			assert.Equal(t, card, parsed)
		}
	}
}

func TestParseCards_DropsMalformed(t *testing.T) {
	cards := ParseCards([]string{"Ah", "xx", "Kd", ""})
	assert.Len(t, cards, 2)
	assert.Equal(t, Card{Rank: Rank_Ace, Suit: Suit_Hearts}, cards[0])
	assert.Equal(t, Card{Rank: Rank_King, Suit: Suit_Diamonds}, cards[1])
}

func TestFormatCardCode(t *testing.T) {
	assert.Equal(t, "A♥", FormatCardCode("Ah"))
	assert.Equal(t, "T♠", FormatCardCode("ts"))
	assert.Equal(t, "garbage", FormatCardCode("garbage"))
}
