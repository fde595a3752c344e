package poker

// RankCounts maps each rank ordinal to the number of cards at that rank
// within a hand. The counts of a five-card hand always sum to five.
type RankCounts [NumRanks]int

// CountRanks tallies how many cards of each rank the hand contains.
func CountRanks(hand Hand) RankCounts {
	var counts RankCounts
	for _, card := range hand {
		counts[card.Rank]++
	}
	return counts
}

// IsStraight reports whether the hand's five rank ordinals are consecutive.
// Aces are strictly high (ordinal 12), so the wheel A-2-3-4-5 does not count
// as a straight.
func IsStraight(hand Hand) bool {
	counts := CountRanks(hand)

	low := -1
	for ord, n := range counts {
		if n > 0 {
			low = ord
			break
		}
	}

	if low+HandSize > NumRanks {
		return false
	}
	for ord := low; ord < low+HandSize; ord++ {
		if counts[ord] != 1 {
			return false
		}
	}
	return true
}

// IsFlush reports whether all five cards share the same suit.
func IsFlush(hand Hand) bool {
	for _, card := range hand[1:] {
		if card.Suit != hand[0].Suit {
			return false
		}
	}
	return true
}

// IsRoyal reports whether the hand is exactly T, J, Q, K, A (any suits).
func IsRoyal(hand Hand) bool {
	counts := CountRanks(hand)
	for ord := Ten; ord <= Ace; ord++ {
		if counts[ord] != 1 {
			return false
		}
	}
	return true
}
