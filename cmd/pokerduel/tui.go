package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardsharp/pokerduel/internal/config"
	"github.com/cardsharp/pokerduel/internal/duel"
	"github.com/cardsharp/pokerduel/internal/tui"
)

// TuiCmd evaluates an input file and opens the interactive results browser.
type TuiCmd struct {
	Input   string `arg:"" optional:"" help:"Input file of duel lines (overrides config)"`
	Workers int    `help:"Parallel evaluation workers (overrides config)"`
}

func (cmd *TuiCmd) Run(g *Globals) error {
	logger := newLogger(g.Debug)

	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	if cmd.Input != "" {
		cfg.Input = cmd.Input
	}
	if cmd.Workers > 0 {
		cfg.Workers = cmd.Workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	in, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = in.Close() }()

	runner := duel.NewRunner(logger, cfg.Workers)
	results, tally, err := runner.Run(context.Background(), in)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(results, tally), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
