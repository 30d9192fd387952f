package evaluator

import (
	"testing"

	"tripoker/internal/deck"
)

func hand(t *testing.T, s string) ([2]deck.Card, deck.Card) {
	t.Helper()
	cards, err := deck.ParseCards(s)
	if err != nil {
		t.Fatalf("ParseCards(%q): %v", s, err)
	}
	if len(cards) != 3 {
		t.Fatalf("ParseCards(%q) returned %d cards, want 3", s, len(cards))
	}
	return [2]deck.Card{cards[0], cards[1]}, cards[2]
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		cards string
		want  Category
	}{
		{"AH KH QH", StraightFlush},
		{"3H 2H AH", StraightFlush}, // wheel, same suit
		{"QH QD QS", ThreeOfAKind},
		{"2H 2D 2S", ThreeOfAKind},
		{"9H TD JS", Straight},
		{"AH 2D 3S", Straight}, // wheel
		{"QH KD AS", Straight},
		{"2H 9H KH", Flush},
		{"4C 7C JC", Flush},
		{"2H 2D 9S", Pair},
		{"KH 9D KS", Pair},
		{"AH AD 2C", Pair},
		{"2H 9D KS", HighCard},
		{"7C 2D JH", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			hole, table := hand(t, tt.cards)
			got := Categorize(hole, table)
			if got != tt.want {
				t.Errorf("Categorize(%s) = %v, want %v", tt.cards, got, tt.want)
			}
		})
	}
}

func TestCategorizeHoleOrderInvariant(t *testing.T) {
	hands := []string{
		"AH KH QH", "3H 2H AH", "QH QD QS", "9H TD JS",
		"2H 9H KH", "2H 2D 9S", "2H 9D KS",
	}

	for _, s := range hands {
		hole, table := hand(t, s)
		forward := Categorize(hole, table)
		swapped := Categorize([2]deck.Card{hole[1], hole[0]}, table)
		if forward != swapped {
			t.Errorf("Categorize(%s) order-sensitive: %v vs %v", s, forward, swapped)
		}
	}
}

func TestCategorizeKingAceTwoNotStraight(t *testing.T) {
	// Ace plays high or as the low end of A-2-3; it never wraps K-A-2.
	hole, table := hand(t, "KH AD 2S")
	if got := Categorize(hole, table); got != HighCard {
		t.Errorf("Categorize(KH AD 2S) = %v, want HighCard", got)
	}
}

func TestCategoryOrdering(t *testing.T) {
	ordered := []Category{HighCard, Pair, Flush, Straight, ThreeOfAKind, StraightFlush}
	for i := 1; i < len(ordered); i++ {
		if !(ordered[i-1] < ordered[i]) {
			t.Errorf("category %v should rank below %v", ordered[i-1], ordered[i])
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{HighCard, "High Card"},
		{Pair, "Pair"},
		{Flush, "Flush"},
		{Straight, "Straight"},
		{ThreeOfAKind, "Three of a Kind"},
		{StraightFlush, "Straight Flush"},
	}
	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.category, got, tt.want)
		}
	}
}
