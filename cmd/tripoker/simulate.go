package main

import (
	"tripoker/cmd/tripoker/shared"
	"tripoker/internal/bot"
	"tripoker/internal/deck"
	"tripoker/internal/protocol"
	"tripoker/internal/statistics"
	"tripoker/internal/strategy"
)

// SimulateCmd deals random rounds through the decision engine and reports the
// resulting action distribution and equity spread.
type SimulateCmd struct {
	Rounds   int    `default:"1000" help:"Number of rounds to simulate"`
	Strategy string `help:"Path to a strategy HCL file" type:"path"`
	Seed     *int64 `help:"Deterministic RNG seed (optional)"`
	Debug    bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	strat, err := strategy.Load(c.Strategy)
	if err != nil {
		return err
	}

	rng := newRNG(c.Seed)
	engine := bot.NewEngine(logger, rng, bot.WithStrategy(strat))
	d := deck.New(rng)

	var tally statistics.ActionCounts
	var equity statistics.Summary
	faults := 0

	for i := 0; i < c.Rounds; i++ {
		d.Shuffle()
		cards := d.Deal(3)

		state := protocol.State{
			YourHole:    []string{cards[0].String(), cards[1].String()},
			TableCard:   cards[2].String(),
			TotalRounds: protocol.DefaultTotalRounds,
		}

		decision, err := engine.Evaluate(state)
		if err != nil {
			// Faults fold, same as the production path.
			faults++
			tally.Fold++
			continue
		}

		switch decision.Action {
		case protocol.ActionFold:
			tally.Fold++
		case protocol.ActionCall:
			tally.Call++
		case protocol.ActionRaise:
			tally.Raise++
		}
		equity.Add(decision.Equity)
	}

	lo, hi := equity.ConfidenceInterval95()
	logger.Info("simulation complete",
		"rounds", c.Rounds,
		"fold", tally.Fold,
		"call", tally.Call,
		"raise", tally.Raise,
		"faults", faults,
		"mean_equity", equity.Mean(),
		"equity_ci95_low", lo,
		"equity_ci95_high", hi)

	return nil
}
