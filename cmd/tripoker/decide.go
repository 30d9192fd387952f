package main

import (
	"io"
	"math/rand"
	"os"
	"time"

	"tripoker/cmd/tripoker/shared"
	"tripoker/internal/bot"
	"tripoker/internal/protocol"
	"tripoker/internal/randutil"
	"tripoker/internal/strategy"
)

// DecideCmd reads one JSON request from stdin and writes one JSON response to
// stdout. It never exits with an error for malformed input; the answer is
// always a legal action.
type DecideCmd struct {
	Strategy string `help:"Path to a strategy HCL file" type:"path"`
	Seed     *int64 `help:"Deterministic RNG seed (optional)"`
	Debug    bool   `help:"Enable debug logging"`
}

func (c *DecideCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	strat, err := strategy.Load(c.Strategy)
	if err != nil {
		return err
	}

	engine := bot.NewEngine(logger, newRNG(c.Seed), bot.WithStrategy(strat))

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Warn("failed to read stdin", "err", err)
		raw = nil
	}

	action := engine.Decide(protocol.ParseState(raw))

	_, err = os.Stdout.Write(protocol.MarshalDecision(action))
	return err
}

// newRNG builds the process RNG: seeded for reproducibility when requested,
// fresh entropy otherwise.
func newRNG(seed *int64) *rand.Rand {
	if seed != nil {
		return randutil.New(*seed)
	}
	return randutil.New(time.Now().UnixNano())
}
