package duel

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Runner evaluates every duel line of an input source. Lines are independent,
// so they are fanned out across workers; results come back in input order.
type Runner struct {
	logger  *log.Logger
	workers int
}

// NewRunner creates a runner. A worker count below one means a single worker.
func NewRunner(logger *log.Logger, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		logger:  logger.WithPrefix("duel"),
		workers: workers,
	}
}

// Run reads src line by line and evaluates each duel. Blank lines are
// skipped. Malformed lines do not abort the run; they come back as results
// with Err set and are counted in the tally. The returned error is only
// non-nil when reading the source itself fails or the context is cancelled.
func (r *Runner) Run(ctx context.Context, src io.Reader) ([]Result, Tally, error) {
	type numbered struct {
		num  int
		text string
	}

	var lines []numbered
	scanner := bufio.NewScanner(src)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, numbered{num: n, text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, Tally{}, fmt.Errorf("read input: %w", err)
	}

	results := make([]Result, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range lines {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			res, err := EvaluateLine(lines[i].text)
			res.Line = lines[i].num
			res.Err = err
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Tally{}, err
	}

	var tally Tally
	for _, res := range results {
		if res.Err != nil {
			r.logger.Warn("Skipping malformed line", "line", res.Line, "error", res.Err)
		}
		tally.Add(res)
	}

	r.logger.Debug("Run complete",
		"duels", tally.Duels,
		"playerWins", tally.PlayerWins,
		"opponentWins", tally.OpponentWins,
		"draws", tally.Draws,
		"errors", tally.Errors)

	return results, tally, nil
}
