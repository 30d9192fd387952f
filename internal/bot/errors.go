package bot

import (
	"errors"

	"tripoker/internal/deck"
	"tripoker/internal/evaluator"
)

// Fault kinds recognized at the decision boundary. Every fault maps to FOLD;
// the kind only drives logging and tests.
const (
	FaultParse     = "parse"
	FaultShortDeck = "short-deck"
	FaultInternal  = "internal"
)

// FaultKind classifies an error from the decision path
func FaultKind(err error) string {
	switch {
	case errors.Is(err, deck.ErrBadToken),
		errors.Is(err, deck.ErrBadRank),
		errors.Is(err, deck.ErrBadSuit):
		return FaultParse
	case errors.Is(err, evaluator.ErrShortDeck):
		return FaultShortDeck
	default:
		return FaultInternal
	}
}
