// Package evaluator classifies and compares three-card hands (two hole cards
// plus one shared table card) and estimates win equity by Monte Carlo
// simulation.
package evaluator

import (
	"tripoker/internal/deck"
)

// Category enumerates three-card hand categories ordered from weakest to
// strongest. A higher category always beats a lower one regardless of the
// ranks inside it.
type Category uint8

const (
	HighCard Category = iota
	Pair
	Flush
	Straight
	ThreeOfAKind
	StraightFlush
)

// String returns a human-readable category description
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// straightHigh reports whether three rank values form a consecutive run and
// returns the run's high rank. The A-2-3 wheel counts as a straight with high
// card 3. Duplicated ranks never form a straight.
func straightHigh(ranks [3]deck.Rank) (deck.Rank, bool) {
	r := ranks
	sort3(&r)
	if r[0]+1 == r[1] && r[1]+1 == r[2] {
		return r[2], true
	}
	if r[0] == deck.Two && r[1] == deck.Three && r[2] == deck.Ace {
		return deck.Three, true
	}
	return 0, false
}

// Categorize classifies the three-card hand formed by two hole cards and the
// shared table card. The priority chain is checked in strict order so the
// total ordering of categories stays auditable.
func Categorize(hole [2]deck.Card, table deck.Card) Category {
	cards := [3]deck.Card{hole[0], hole[1], table}

	flush := cards[0].Suit == cards[1].Suit && cards[1].Suit == cards[2].Suit
	ranks := [3]deck.Rank{cards[0].Rank, cards[1].Rank, cards[2].Rank}
	_, straight := straightHigh(ranks)

	trips := ranks[0] == ranks[1] && ranks[1] == ranks[2]
	pair := ranks[0] == ranks[1] || ranks[0] == ranks[2] || ranks[1] == ranks[2]

	switch {
	case straight && flush:
		return StraightFlush
	case trips:
		return ThreeOfAKind
	case straight:
		return Straight
	case flush:
		return Flush
	case pair:
		return Pair
	default:
		return HighCard
	}
}

func sort3(r *[3]deck.Rank) {
	if r[0] > r[1] {
		r[0], r[1] = r[1], r[0]
	}
	if r[1] > r[2] {
		r[1], r[2] = r[2], r[1]
	}
	if r[0] > r[1] {
		r[0], r[1] = r[1], r[0]
	}
}
