package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Decide   DecideCmd        `cmd:"" default:"1" help:"Read a decision request from stdin and write the action to stdout"`
	Odds     OddsCmd          `cmd:"" help:"Estimate win equity for a hole/table combination"`
	Simulate SimulateCmd      `cmd:"" help:"Deal random rounds through the decision engine"`
	Serve    ServeCmd         `cmd:"" help:"Run the decision engine as an HTTP/WebSocket service"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tripoker"),
		kong.Description("Decision bot for two-hole-card, one-table-card poker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
