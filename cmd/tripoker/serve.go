package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"tripoker/cmd/tripoker/shared"
	"tripoker/internal/bot"
	"tripoker/internal/server"
	"tripoker/internal/strategy"
)

// ServeCmd runs the decision engine as an HTTP/WebSocket service. Each
// request or message is one stateless decision.
type ServeCmd struct {
	Addr     string `help:"Listen address (defaults to $TRIPOKER_ADDR or :8080)"`
	Strategy string `help:"Path to a strategy HCL file" type:"path"`
	Seed     *int64 `help:"Deterministic RNG seed (optional)"`
	Debug    bool   `help:"Enable debug logging"`
}

func (c *ServeCmd) Run() error {
	// Optional .env for local development; missing files are fine.
	_ = godotenv.Load()

	logger := shared.SetupLogger(c.Debug)

	addr := c.Addr
	if addr == "" {
		addr = os.Getenv("TRIPOKER_ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	strat, err := strategy.Load(c.Strategy)
	if err != nil {
		return err
	}

	engine := bot.NewEngine(logger, newRNG(c.Seed), bot.WithStrategy(strat))
	srv := server.New(logger, engine)

	logger.Info("starting decision server",
		"addr", addr,
		"trials", strat.Trials)

	return http.ListenAndServe(addr, srv.Router())
}
