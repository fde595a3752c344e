// Package report renders duel results as human-readable text: one breakdown
// line per duel and a final tally.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cardsharp/pokerduel/internal/duel"
	"github.com/cardsharp/pokerduel/poker"
)

// Styles holds the lipgloss styles used for the breakdown output.
type Styles struct {
	Category lipgloss.Style
	Win      lipgloss.Style
	Loss     lipgloss.Style
	Draw     lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	return Styles{
		Category: lipgloss.NewStyle().Bold(true),
		Win:      lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		Loss:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
		Draw:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true),
	}
}

// PlainStyles returns unstyled output, for piped or --no-color runs.
func PlainStyles() Styles {
	return Styles{
		Category: lipgloss.NewStyle(),
		Win:      lipgloss.NewStyle(),
		Loss:     lipgloss.NewStyle(),
		Draw:     lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle(),
	}
}

// Writer renders results to an output sink.
type Writer struct {
	out    io.Writer
	styles Styles
}

// NewWriter creates a report writer.
func NewWriter(out io.Writer, styles Styles) *Writer {
	return &Writer{out: out, styles: styles}
}

// WriteResult writes the breakdown line for one duel: both hands with their
// category and deciding/kicker values, then the verdict.
func (w *Writer) WriteResult(res duel.Result) error {
	if res.Err != nil {
		_, err := fmt.Fprintf(w.out, "line %d: %s\n", res.Line, w.styles.Error.Render(res.Err.Error()))
		return err
	}

	verdict := res.Outcome.String()
	switch res.Outcome {
	case duel.OutcomePlayer:
		verdict = w.styles.Win.Render(verdict)
	case duel.OutcomeOpponent:
		verdict = w.styles.Loss.Render(verdict)
	default:
		verdict = w.styles.Draw.Render(verdict)
	}

	_, err := fmt.Fprintf(w.out, "line %d: %s | %s -> %s\n",
		res.Line,
		w.formatPlay(res.Player, res.PlayerPlay),
		w.formatPlay(res.Opponent, res.OpponentPlay),
		verdict)
	return err
}

// WriteTally writes the final count line.
func (w *Writer) WriteTally(tally duel.Tally) error {
	_, err := fmt.Fprintf(w.out, "Player won %d times!\n", tally.PlayerWins)
	return err
}

// formatPlay renders one hand as its cards, category, and rank values, e.g.
// "5H 5C 6S 7S KD  Pair (5 5) K 7 6".
func (w *Writer) formatPlay(hand poker.Hand, play poker.ClassifiedHand) string {
	var sb strings.Builder
	sb.WriteString(hand.String())
	sb.WriteString("  ")
	sb.WriteString(w.styles.Category.Render(play.Category.String()))

	if len(play.Deciding) > 0 {
		sb.WriteString(" (")
		sb.WriteString(rankTokens(play.Deciding))
		sb.WriteString(")")
	}
	if len(play.Kickers) > 0 {
		sb.WriteString(" ")
		sb.WriteString(rankTokens(play.Kickers))
	}

	return sb.String()
}

func rankTokens(ranks []poker.Rank) string {
	tokens := make([]string, len(ranks))
	for i, r := range ranks {
		tokens[i] = r.String()
	}
	return strings.Join(tokens, " ")
}
