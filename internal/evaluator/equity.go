package evaluator

import (
	"errors"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"tripoker/internal/deck"
)

// ErrShortDeck reports that too few cards remain to sample an opponent hand.
var ErrShortDeck = errors.New("not enough cards left to sample opponent hand")

// parallelThreshold is the sample count above which estimation fans out to
// worker goroutines. Below it the goroutine overhead outweighs the gain.
const parallelThreshold = 4000

// CardSet represents a set of cards using a bitset for fast exclusion checks.
// Each card maps to bit (rank-2)*4 + suit.
type CardSet uint64

func cardIndex(card deck.Card) int {
	return int(card.Rank-deck.Two)*4 + int(card.Suit)
}

// Add adds a card to the set
func (cs *CardSet) Add(card deck.Card) {
	*cs |= 1 << cardIndex(card)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card deck.Card) bool {
	return cs&(1<<cardIndex(card)) != 0
}

// Range samples hypothetical opponent hole cards from the unseen pool.
type Range interface {
	Sample(pool []deck.Card, rng *rand.Rand) ([2]deck.Card, bool)
}

// RandomRange draws any two distinct cards uniformly. The estimator models
// opponent holdings as range-unaware; behavioral bias is captured separately
// through action statistics.
type RandomRange struct{}

// Sample picks two distinct cards without building a full permutation
func (RandomRange) Sample(pool []deck.Card, rng *rand.Rand) ([2]deck.Card, bool) {
	if len(pool) < 2 {
		return [2]deck.Card{}, false
	}
	idx1 := rng.Intn(len(pool))
	idx2 := rng.Intn(len(pool) - 1)
	if idx2 >= idx1 {
		idx2++
	}
	return [2]deck.Card{pool[idx1], pool[idx2]}, true
}

// EstimateEquity estimates the probability of winning against a sampled
// opponent holding, ties counted as half. The result is in [0, 1]. Large
// sample counts fan out to parallel workers; the RNG is always injected so
// callers control reproducibility.
func EstimateEquity(hole [2]deck.Card, table deck.Card, opponent Range, samples int, rng *rand.Rand) (float64, error) {
	if samples <= 0 {
		return 0, errors.New("sample count must be positive")
	}
	pool := unseenCards(hole, table)
	if samples >= parallelThreshold {
		return estimateParallel(hole, table, pool, opponent, samples, rng)
	}
	return estimate(hole, table, pool, opponent, samples, rng)
}

// unseenCards returns the full deck minus the known hole and table cards
func unseenCards(hole [2]deck.Card, table deck.Card) []deck.Card {
	var used CardSet
	used.Add(hole[0])
	used.Add(hole[1])
	used.Add(table)

	pool := make([]deck.Card, 0, 49)
	for suit := deck.Hearts; suit <= deck.Clubs; suit++ {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			card := deck.Card{Rank: rank, Suit: suit}
			if !used.Contains(card) {
				pool = append(pool, card)
			}
		}
	}
	return pool
}

func estimate(hole [2]deck.Card, table deck.Card, pool []deck.Card, opponent Range, samples int, rng *rand.Rand) (float64, error) {
	score := 0.0
	for i := 0; i < samples; i++ {
		oppHole, ok := opponent.Sample(pool, rng)
		if !ok {
			return 0, ErrShortDeck
		}
		score += Compare(hole, table, oppHole)
	}
	return score / float64(samples), nil
}

func estimateParallel(hole [2]deck.Card, table deck.Card, pool []deck.Card, opponent Range, samples int, rng *rand.Rand) (float64, error) {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}

	perWorker := samples / workers
	remainder := samples % workers

	scores := make([]float64, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		workerSamples := perWorker
		if w < remainder {
			workerSamples++
		}

		// Independent per-worker RNG derived from the caller's, so results
		// stay reproducible for a given seed.
		workerRng := rand.New(rand.NewSource(rng.Int63()))
		w := w
		g.Go(func() error {
			score := 0.0
			for i := 0; i < workerSamples; i++ {
				oppHole, ok := opponent.Sample(pool, workerRng)
				if !ok {
					return ErrShortDeck
				}
				score += Compare(hole, table, oppHole)
			}
			scores[w] = score
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0.0
	for _, s := range scores {
		total += s
	}
	return total / float64(samples), nil
}
