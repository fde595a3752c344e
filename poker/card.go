// Package poker classifies five-card poker hands and provides a total order
// over them. Hands are classified into the ten standard categories from High
// Card up to Royal Flush; ties are broken by the rank values that define the
// category, then by kickers.
package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRank is returned when a rank character is not one of
	// 2-9, T, J, Q, K, A.
	ErrInvalidRank = errors.New("invalid rank")

	// ErrInvalidSuit is returned when a suit character is not one of
	// S, H, D, C.
	ErrInvalidSuit = errors.New("invalid suit")
)

// Rank is the ordinal value of a card face: 0 (Two) through 12 (Ace).
// Aces are always high.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct card ranks.
const NumRanks = 13

// rankTokens is the fixed bidirectional rank table, indexed by ordinal.
var rankTokens = [NumRanks]byte{'2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K', 'A'}

// ParseRank maps a rank character to its ordinal.
func ParseRank(c byte) (Rank, error) {
	for ord, tok := range rankTokens {
		if tok == c {
			return Rank(ord), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, string(c))
}

// Token returns the character for a rank. Ranks only ever come from ParseRank
// or the constants above, so an out-of-range value is a programming error and
// panics rather than returning a bogus token.
func (r Rank) Token() byte {
	if r > Ace {
		panic(fmt.Sprintf("poker: rank ordinal out of range: %d", r))
	}
	return rankTokens[r]
}

// String returns the single-character representation of the rank.
func (r Rank) String() string {
	return string(r.Token())
}

// Suit represents a card suit. Suits only matter for equality (flush
// detection); there is no ordering between them.
type Suit byte

const (
	Spades   Suit = 'S'
	Hearts   Suit = 'H'
	Diamonds Suit = 'D'
	Clubs    Suit = 'C'
)

// ParseSuit maps a suit character to a Suit. Lowercase is accepted.
func ParseSuit(c byte) (Suit, error) {
	switch c {
	case 'S', 's':
		return Spades, nil
	case 'H', 'h':
		return Hearts, nil
	case 'D', 'd':
		return Diamonds, nil
	case 'C', 'c':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, string(c))
	}
}

// String returns the single-character representation of the suit.
func (s Suit) String() string {
	return string(byte(s))
}

// Card is an immutable playing card: a rank and a suit.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// ParseCard parses a two-character card token such as "KD" or "Th".
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("invalid card token %q: must be 2 characters", token)
	}

	rank, err := ParseRank(token[0])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", token, err)
	}

	suit, err := ParseSuit(token[1])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", token, err)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// String returns the two-character representation of the card (e.g. "KD").
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
