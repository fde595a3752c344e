package poker

import (
	"errors"
	"fmt"
	"strings"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// ErrInvalidHand is returned when a hand does not contain exactly five cards.
var ErrInvalidHand = errors.New("invalid hand")

// Hand is exactly five cards. Hands are value types and never mutated after
// construction.
type Hand [HandSize]Card

// ParseHand parses five two-character card tokens into a hand.
func ParseHand(tokens []string) (Hand, error) {
	if len(tokens) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHand, len(tokens), HandSize)
	}

	var hand Hand
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return Hand{}, fmt.Errorf("%w: %w", ErrInvalidHand, err)
		}
		hand[i] = card
	}

	return hand, nil
}

// MustParseHand parses a whitespace-separated hand string and panics on
// error (for tests).
func MustParseHand(s string) Hand {
	hand, err := ParseHand(strings.Fields(s))
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand %q: %v", s, err))
	}
	return hand
}

// String returns the hand as space-separated card tokens (e.g. "5H 5C 6S 7S KD").
func (h Hand) String() string {
	tokens := make([]string, HandSize)
	for i, card := range h {
		tokens[i] = card.String()
	}
	return strings.Join(tokens, " ")
}
