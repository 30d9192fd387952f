// Package bot implements the expected-value decision rule on top of the
// Monte Carlo equity estimator.
package bot

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"tripoker/internal/deck"
	"tripoker/internal/evaluator"
	"tripoker/internal/protocol"
	"tripoker/internal/strategy"
)

// Estimator computes win equity for a hand. Injected so tests can pin equity
// without running simulations.
type Estimator func(hole [2]deck.Card, table deck.Card, samples int, rng *rand.Rand) (float64, error)

// Decision carries the chosen action together with the scalars that produced
// it, for logging and simulation reports.
type Decision struct {
	Action   protocol.Action
	Equity   float64
	FoldFreq float64
	EVFold   float64
	EVCall   float64
	EVRaise  float64
}

// Engine turns a decision request into one of FOLD, CALL, RAISE. It holds no
// state across calls beyond its RNG.
type Engine struct {
	logger   *log.Logger
	clock    quartz.Clock
	strategy *strategy.Strategy
	rng      *rand.Rand
	estimate Estimator

	// The RNG is not safe for concurrent use; the serve path may issue
	// decisions from multiple connections.
	mu sync.Mutex
}

// Option configures an Engine
type Option func(*Engine)

// WithStrategy overrides the default strategy parameters
func WithStrategy(s *strategy.Strategy) Option {
	return func(e *Engine) { e.strategy = s }
}

// WithClock injects a clock for tests
func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithEstimator injects an equity estimator for tests
func WithEstimator(est Estimator) Option {
	return func(e *Engine) { e.estimate = est }
}

// NewEngine creates a decision engine with an explicit RNG
func NewEngine(logger *log.Logger, rng *rand.Rand, opts ...Option) *Engine {
	e := &Engine{
		logger:   logger.WithPrefix("engine"),
		clock:    quartz.NewReal(),
		strategy: strategy.Default(),
		rng:      rng,
		estimate: randomOpponentEstimator,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func randomOpponentEstimator(hole [2]deck.Card, table deck.Card, samples int, rng *rand.Rand) (float64, error) {
	return evaluator.EstimateEquity(hole, table, evaluator.RandomRange{}, samples, rng)
}

// Decide runs the decision rule and absorbs every fault into FOLD. It always
// returns a legal action; the caller never sees an error.
func (e *Engine) Decide(state protocol.State) (action protocol.Action) {
	start := e.clock.Now()

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("decision panic, folding", "panic", r)
			action = protocol.ActionFold
		}
	}()

	d, err := e.Evaluate(state)
	if err != nil {
		e.logger.Warn("decision fault, folding", "kind", FaultKind(err), "err", err)
		return protocol.ActionFold
	}

	e.logger.Debug("decision",
		"action", d.Action,
		"equity", d.Equity,
		"fold_freq", d.FoldFreq,
		"ev_call", d.EVCall,
		"ev_raise", d.EVRaise,
		"total_rounds", state.TotalRounds,
		"elapsed", e.clock.Since(start))

	return d.Action
}

// Evaluate runs the decision rule and surfaces faults to the caller. Used
// directly by the simulator, which wants the intermediate scalars.
func (e *Engine) Evaluate(state protocol.State) (Decision, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(state.YourHole) == 0 || state.TableCard == "" {
		return Decision{Action: protocol.ActionFold}, nil
	}

	hole, table, err := parseRound(state)
	if err != nil {
		return Decision{}, err
	}

	equity, err := e.estimate(hole, table, e.strategy.Trials, e.rng)
	if err != nil {
		return Decision{}, err
	}

	d := Decision{Equity: equity}

	// Trash filter: below the cutoff nothing else matters.
	if equity < e.strategy.TrashEquity {
		d.Action = protocol.ActionFold
		return d, nil
	}

	s := e.strategy
	d.FoldFreq = state.OpponentStats.FoldFrequency(
		s.FoldFreqPrior, s.FoldFreqMin, s.FoldFreqMax, s.MinObserved)

	// An opponent fold wins the bet outright; otherwise the hand goes to
	// showdown at the estimated equity.
	d.EVFold = s.FoldEV
	callShowdown := equity*s.CallScale - (1-equity)*s.CallScale
	d.EVCall = d.FoldFreq*s.CallScale + (1-d.FoldFreq)*callShowdown
	raiseShowdown := equity*s.RaiseScale - (1-equity)*s.RaiseScale
	d.EVRaise = d.FoldFreq*s.RaiseScale + (1-d.FoldFreq)*raiseShowdown

	switch {
	case d.EVRaise > d.EVCall+s.RaiseMargin && d.EVRaise > d.EVFold:
		d.Action = protocol.ActionRaise
	case d.EVCall > d.EVFold+s.CallMargin:
		d.Action = protocol.ActionCall
	default:
		d.Action = protocol.ActionFold
	}
	return d, nil
}

func parseRound(state protocol.State) ([2]deck.Card, deck.Card, error) {
	if len(state.YourHole) != 2 {
		return [2]deck.Card{}, deck.Card{}, fmt.Errorf("expected 2 hole cards, got %d", len(state.YourHole))
	}

	var hole [2]deck.Card
	for i, token := range state.YourHole {
		card, err := deck.ParseCard(token)
		if err != nil {
			return [2]deck.Card{}, deck.Card{}, fmt.Errorf("hole card %d: %w", i, err)
		}
		hole[i] = card
	}

	table, err := deck.ParseCard(state.TableCard)
	if err != nil {
		return [2]deck.Card{}, deck.Card{}, fmt.Errorf("table card: %w", err)
	}
	return hole, table, nil
}
