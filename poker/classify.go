package poker

import "fmt"

// Category enumerates the ten standard poker hand classes, ordered from
// weakest to strongest. The ordinal value is the primary comparison axis.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// ClassifiedHand is the canonical ranked representation of a five-card hand:
// its category, the descending rank values that decide the category, and the
// descending leftover ranks used as kickers. Both slices are owned by the
// ClassifiedHand and never mutated after construction.
type ClassifiedHand struct {
	Category Category
	Deciding []Rank
	Kickers  []Rank
}

// pairUnits returns the combinatorial pair count contributed by a group of n
// cards of the same rank: C(n, 2).
func pairUnits(n int) int {
	switch n {
	case 0, 1:
		return 0
	case 2:
		return 1
	case 3:
		return 3
	case 4:
		return 6
	default:
		panic(fmt.Sprintf("poker: impossible rank group size %d", n))
	}
}

// categoryFromPairUnits maps a hand's total pair units to its group-based
// category. Any unmapped sum means the grouping logic is broken.
func categoryFromPairUnits(units int) Category {
	switch units {
	case 0:
		return HighCard
	case 1:
		return Pair
	case 2:
		return TwoPair
	case 3:
		return ThreeOfAKind
	case 4: // triple + pair
		return FullHouse
	case 6:
		return FourOfAKind
	default:
		panic(fmt.Sprintf("poker: unmapped pair unit count %d", units))
	}
}

// Classify computes the canonical ranked representation of a hand. It is a
// pure function: the same five cards always produce the same result, and the
// input is never modified. It cannot fail on a parsed hand; internal
// inconsistencies panic.
func Classify(hand Hand) ClassifiedHand {
	counts := CountRanks(hand)

	total, units := 0, 0
	for _, n := range counts {
		total += n
		units += pairUnits(n)
	}
	if total != HandSize {
		panic(fmt.Sprintf("poker: rank counts sum to %d, want %d", total, HandSize))
	}

	play := ClassifiedHand{
		Category: categoryFromPairUnits(units),
		Deciding: groupedRanks(counts),
		Kickers:  singletonRanks(counts),
	}

	straight := IsStraight(hand)
	if straight && play.Category < Straight {
		play = ClassifiedHand{Category: Straight, Deciding: allRanks(counts)}
	}

	flush := IsFlush(hand)
	if flush && play.Category < Flush {
		play = ClassifiedHand{Category: Flush, Deciding: allRanks(counts)}
	}

	if straight && flush {
		play = ClassifiedHand{Category: StraightFlush, Deciding: allRanks(counts)}
		if IsRoyal(hand) {
			// The category alone decides a royal flush; two of them
			// compare as a draw.
			play = ClassifiedHand{Category: RoyalFlush}
		}
	}

	return play
}

// groupedRanks returns the ranks belonging to groups of two or more cards,
// repeated per multiplicity, in descending order.
func groupedRanks(counts RankCounts) []Rank {
	return collectRanks(counts, func(n int) bool { return n > 1 })
}

// singletonRanks returns the ranks appearing exactly once, in descending order.
func singletonRanks(counts RankCounts) []Rank {
	return collectRanks(counts, func(n int) bool { return n == 1 })
}

// allRanks returns all five ranks in descending order.
func allRanks(counts RankCounts) []Rank {
	return collectRanks(counts, func(n int) bool { return n > 0 })
}

func collectRanks(counts RankCounts, keep func(int) bool) []Rank {
	var ranks []Rank
	for ord := NumRanks - 1; ord >= 0; ord-- {
		if !keep(counts[ord]) {
			continue
		}
		for i := 0; i < counts[ord]; i++ {
			ranks = append(ranks, Rank(ord))
		}
	}
	return ranks
}
