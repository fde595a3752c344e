package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cardsharp/pokerduel/internal/config"
	"github.com/cardsharp/pokerduel/internal/duel"
	"github.com/cardsharp/pokerduel/internal/report"
)

// EvalCmd evaluates every duel line of an input file, prints a breakdown per
// duel, and writes the final tally to both the console and the output file.
type EvalCmd struct {
	Input   string `arg:"" optional:"" help:"Input file of duel lines (overrides config)"`
	Output  string `short:"o" help:"Tally output file (overrides config)"`
	Workers int    `help:"Parallel evaluation workers (overrides config)"`
	NoColor bool   `help:"Disable styled output"`
}

func (cmd *EvalCmd) Run(g *Globals) error {
	logger := newLogger(g.Debug)

	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	if cmd.Input != "" {
		cfg.Input = cmd.Input
	}
	if cmd.Output != "" {
		cfg.Output = cmd.Output
	}
	if cmd.Workers > 0 {
		cfg.Workers = cmd.Workers
	}
	if cmd.NoColor {
		cfg.NoColor = true
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

	styles := report.DefaultStyles()
	if cfg.NoColor {
		styles = report.PlainStyles()
	}

	w := report.NewWriter(os.Stdout, styles)
	for _, res := range results {
		if err := w.WriteResult(res); err != nil {
			return err
		}
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	// The tally goes to both the console and the output file.
	tallyWriter := report.NewWriter(io.MultiWriter(os.Stdout, out), report.PlainStyles())
	if err := tallyWriter.WriteTally(tally); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
