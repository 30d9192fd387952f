package evaluator

import (
	"tripoker/internal/deck"
)

// Compare scores my hand against an opponent's hand over the same table card.
// Returns 1.0 if mine wins, 0.0 if the opponent's wins, 0.5 for an exact tie.
// Categories decide first; equal categories fall through to rank tie-breaks.
func Compare(myHole [2]deck.Card, table deck.Card, oppHole [2]deck.Card) float64 {
	mine := Categorize(myHole, table)
	theirs := Categorize(oppHole, table)

	if mine > theirs {
		return 1.0
	}
	if theirs > mine {
		return 0.0
	}

	my := tiebreak(myHole, table, mine)
	opp := tiebreak(oppHole, table, mine)
	for i := range my {
		if my[i] > opp[i] {
			return 1.0
		}
		if my[i] < opp[i] {
			return 0.0
		}
	}
	return 0.5
}

// tiebreak builds the descending comparison sequence for a hand. For wheel
// straights (and wheel straight flushes) the sequence is remapped to [3 2 1]
// so the Ace ranks below the 3 for ordering purposes only.
func tiebreak(hole [2]deck.Card, table deck.Card, cat Category) [3]deck.Rank {
	r := [3]deck.Rank{hole[0].Rank, hole[1].Rank, table.Rank}
	sort3(&r)
	desc := [3]deck.Rank{r[2], r[1], r[0]}

	if cat == Straight || cat == StraightFlush {
		if desc == [3]deck.Rank{deck.Ace, deck.Three, deck.Two} {
			return [3]deck.Rank{3, 2, 1}
		}
	}
	return desc
}
