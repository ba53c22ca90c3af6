package pokerhand

import (
	"strconv"
	"strings"
)

// Suit of a playing card, encoded as the single lower-case letter used on the wire.
type Suit string

const (
	Suit_Hearts   Suit = "h"
	Suit_Diamonds Suit = "d"
	Suit_Clubs    Suit = "c"
	Suit_Spades   Suit = "s"
)

// Ranks run 2..14 with ace always parsed high; the wheel straight is handled
// during evaluation.
const (
	Rank_Ten   = 10
	Rank_Jack  = 11
	Rank_Queen = 12
	Rank_King  = 13
	Rank_Ace   = 14
)

var suitSymbols = map[Suit]string{
	Suit_Hearts:   "♥",
	Suit_Diamonds: "♦",
	Suit_Clubs:    "♣",
	Suit_Spades:   "♠",
}

// Card is an immutable rank/suit pair. Two cards are equal iff both fields match.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// ParseCard parses a textual card code such as "Ah", "TD" or "10s".
// The last character is the suit letter, everything before it the rank token.
// Returns false on any malformed input instead of failing.
func ParseCard(code string) (Card, bool) {
	c := strings.ToLower(strings.TrimSpace(code))
	if len(c) < 2 {
		return Card{}, false
	}

	suit := Suit(c[len(c)-1:])
	if _, ok := suitSymbols[suit]; !ok {
		return Card{}, false
	}

	rank := 0
	switch strings.ToUpper(c[:len(c)-1]) {
	case "A":
		rank = Rank_Ace
	case "K":
		rank = Rank_King
	case "Q":
		rank = Rank_Queen
	case "J":
		rank = Rank_Jack
	case "T":
		rank = Rank_Ten
	default:
		n, err := strconv.Atoi(c[:len(c)-1])
		if err != nil {
			return Card{}, false
		}
		rank = n
	}

	if rank < 2 || rank > Rank_Ace {
		return Card{}, false
	}

	return Card{Rank: rank, Suit: suit}, true
}

// ParseCards parses a batch of card codes, silently dropping malformed entries.
func ParseCards(codes []string) []Card {
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		if card, ok := ParseCard(code); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// RankToken returns the display token for a rank (A, K, Q, J, T, 9..2).
func RankToken(rank int) string {
	switch rank {
	case Rank_Ace:
		return "A"
	case Rank_King:
		return "K"
	case Rank_Queen:
		return "Q"
	case Rank_Jack:
		return "J"
	case Rank_Ten:
		return "T"
	default:
		return strconv.Itoa(rank)
	}
}

// String returns the canonical wire code, e.g. "Ah".
func (c Card) String() string {
	return RankToken(c.Rank) + string(c.Suit)
}

// Display returns the card with its suit rendered as a symbol, e.g. "A♥".
func (c Card) Display() string {
	return RankToken(c.Rank) + suitSymbols[c.Suit]
}

// FormatCardCode renders a raw wire code for display without requiring it to
// be well formed; malformed codes are returned unchanged.
func FormatCardCode(code string) string {
	card, ok := ParseCard(code)
	if !ok {
		return code
	}
	return card.Display()
}
