// Package duel evaluates lines of paired five-card poker hands and keeps a
// running tally of the outcomes.
package duel

import (
	"fmt"
	"strings"

	"github.com/cardsharp/pokerduel/poker"
)

// Outcome is the verdict of a single duel.
type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomePlayer
	OutcomeOpponent
)

// String returns a human-readable verdict.
func (o Outcome) String() string {
	switch o {
	case OutcomePlayer:
		return "player wins"
	case OutcomeOpponent:
		return "opponent wins"
	default:
		return "draw"
	}
}

// Result is the evaluation of one input line: both hands, their
// classifications, and the verdict.
type Result struct {
	Line         int
	Player       poker.Hand
	Opponent     poker.Hand
	PlayerPlay   poker.ClassifiedHand
	OpponentPlay poker.ClassifiedHand
	Outcome      Outcome

	// Err is set when the line could not be parsed; the other fields are
	// zero in that case.
	Err error
}

// Tally is the running count of duel outcomes.
type Tally struct {
	Duels        int
	PlayerWins   int
	OpponentWins int
	Draws        int
	Errors       int
}

// Add counts a result into the tally.
func (t *Tally) Add(res Result) {
	t.Duels++
	switch {
	case res.Err != nil:
		t.Errors++
	case res.Outcome == OutcomePlayer:
		t.PlayerWins++
	case res.Outcome == OutcomeOpponent:
		t.OpponentWins++
	default:
		t.Draws++
	}
}

// EvaluateLine parses a duel line of ten whitespace-separated two-character
// card tokens (first five the player's hand, last five the opponent's) and
// compares the two hands.
func EvaluateLine(line string) (Result, error) {
	fields := strings.Fields(line)
	if len(fields) != 2*poker.HandSize {
		return Result{}, fmt.Errorf("%w: got %d cards, want %d", poker.ErrInvalidHand, len(fields), 2*poker.HandSize)
	}

	player, err := poker.ParseHand(fields[:poker.HandSize])
	if err != nil {
		return Result{}, fmt.Errorf("player hand: %w", err)
	}

	opponent, err := poker.ParseHand(fields[poker.HandSize:])
	if err != nil {
		return Result{}, fmt.Errorf("opponent hand: %w", err)
	}

	res := Result{
		Player:       player,
		Opponent:     opponent,
		PlayerPlay:   poker.Classify(player),
		OpponentPlay: poker.Classify(opponent),
	}

	switch poker.Compare(res.PlayerPlay, res.OpponentPlay) {
	case poker.Greater:
		res.Outcome = OutcomePlayer
	case poker.Less:
		res.Outcome = OutcomeOpponent
	default:
		res.Outcome = OutcomeDraw
	}

	return res, nil
}
