package poker

// Ordering is the result of comparing two classified hands.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns a human-readable name for the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// Compare imposes a total order over classified hands: category first, then
// deciding values, then kickers. Equal is a legitimate outcome (a true tie)
// and must be reported as a draw. Compare never mutates its inputs, and
// Compare(a, b) == -Compare(b, a) always holds.
func Compare(a, b ClassifiedHand) Ordering {
	switch {
	case a.Category > b.Category:
		return Greater
	case a.Category < b.Category:
		return Less
	}

	if o := compareValues(a.Deciding, b.Deciding); o != Equal {
		return o
	}
	return compareValues(a.Kickers, b.Kickers)
}

// compareValues compares two descending-sorted rank sequences
// lexicographically. If one sequence is a strict prefix of the other, the
// longer one wins. In practice the lengths are equal whenever categories
// match; the rule exists so that exhausted sequences (a royal flush's empty
// deciding values) compare as equal rather than being undefined.
func compareValues(a, b []Rank) Ordering {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] > b[i]:
			return Greater
		case a[i] < b[i]:
			return Less
		}
	}

	switch {
	case len(a) > len(b):
		return Greater
	case len(a) < len(b):
		return Less
	default:
		return Equal
	}
}
