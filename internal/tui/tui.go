// Package tui is an interactive browser for duel results: one line per duel
// in a scrollable viewport, with the running tally in the footer.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardsharp/pokerduel/internal/duel"
)

// Model is the Bubble Tea model for browsing duel results.
type Model struct {
	results []duel.Result
	tally   duel.Tally

	viewport viewport.Model

	width       int
	height      int
	initialized bool
	quitting    bool
}

// New creates a browser over evaluated results.
func New(results []duel.Result, tally duel.Tally) Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	return Model{
		results:  results,
		tally:    tally,
		viewport: vp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Header and footer take one line each.
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 1)
		if !m.initialized {
			m.viewport.SetContent(m.renderResults())
			m.initialized = true
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := HeaderStyle.Render(fmt.Sprintf(" pokerduel — %d duels ", m.tally.Duels))
	footer := FooterStyle.Render(fmt.Sprintf(
		" player %d · opponent %d · draws %d · errors %d — ↑/↓ scroll, q quit",
		m.tally.PlayerWins, m.tally.OpponentWins, m.tally.Draws, m.tally.Errors))

	return header + "\n" + m.viewport.View() + "\n" + footer
}

// renderResults formats every duel as one line.
func (m Model) renderResults() string {
	var sb strings.Builder
	for _, res := range m.results {
		sb.WriteString(renderResult(res))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderResult(res duel.Result) string {
	if res.Err != nil {
		return fmt.Sprintf("%4d  %s", res.Line, ErrorStyle.Render(res.Err.Error()))
	}

	var verdict string
	switch res.Outcome {
	case duel.OutcomePlayer:
		verdict = WinStyle.Render("player")
	case duel.OutcomeOpponent:
		verdict = LossStyle.Render("opponent")
	default:
		verdict = DrawStyle.Render("draw")
	}

	return fmt.Sprintf("%4d  %s  %-15s | %s  %-15s  %s",
		res.Line,
		res.Player, res.PlayerPlay.Category,
		res.Opponent, res.OpponentPlay.Category,
		verdict)
}
