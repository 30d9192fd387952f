package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tripoker/internal/deck"
	"tripoker/internal/evaluator"
)

// OddsCmd estimates equity for a known hole/table combination and prints a
// styled breakdown.
type OddsCmd struct {
	Hole       string `arg:"" help:"Two hole cards (e.g., 'AH KD')"`
	Table      string `arg:"" help:"Shared table card (e.g., 'QS')"`
	Iterations int    `short:"i" default:"100000" help:"Number of Monte Carlo iterations"`
	Seed       *int64 `help:"Random seed for reproducible results"`
}

var (
	oddsLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	oddsHandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	oddsValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

func (c *OddsCmd) Run() error {
	rng := newRNG(c.Seed)

	holeCards, err := deck.ParseCards(c.Hole)
	if err != nil {
		return fmt.Errorf("parsing hole cards: %w", err)
	}
	if len(holeCards) != 2 {
		return fmt.Errorf("hole must contain exactly 2 cards, got %d", len(holeCards))
	}

	table, err := deck.ParseCard(c.Table)
	if err != nil {
		return fmt.Errorf("parsing table card: %w", err)
	}

	hole := [2]deck.Card{holeCards[0], holeCards[1]}
	category := evaluator.Categorize(hole, table)

	start := time.Now()
	equity, err := evaluator.EstimateEquity(hole, table, evaluator.RandomRange{}, c.Iterations, rng)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	fmt.Fprintf(os.Stdout, "%s  %s %s\n",
		oddsLabelStyle.Render("hand"),
		oddsHandStyle.Render(hole[0].String()+" "+hole[1].String()),
		oddsHandStyle.Render("["+table.String()+"]"))
	fmt.Fprintf(os.Stdout, "%s  %s\n",
		oddsLabelStyle.Render("made"),
		oddsValueStyle.Render(category.String()))
	fmt.Fprintf(os.Stdout, "%s  %s\n",
		oddsLabelStyle.Render("equity"),
		oddsValueStyle.Render(fmt.Sprintf("%.1f%%", equity*100)))
	fmt.Fprintf(os.Stdout, "\n%d iterations in %v\n", c.Iterations, duration.Truncate(time.Millisecond))

	return nil
}
