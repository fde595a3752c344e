package poker

import "testing"

func classifyString(t *testing.T, s string) ClassifiedHand {
	t.Helper()
	return Classify(MustParseHand(s))
}

func TestCompareScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		player   string
		opponent string
		want     Ordering
	}{
		{
			name:     "pair of eights beats pair of fives",
			player:   "5H 5C 6S 7S KD",
			opponent: "2C 3S 8S 8D TD",
			want:     Less,
		},
		{
			name:     "royal flush beats straight flush",
			player:   "2H 3H 4H 5H 6H",
			opponent: "TC JC QC KC AC",
			want:     Less,
		},
		{
			name:     "identical royal flushes draw",
			player:   "AH KH QH JH TH",
			opponent: "AC KC QC JC TC",
			want:     Equal,
		},
		{
			name:     "higher two pair wins on deciding values",
			player:   "2D 2C 3D 3C 4H",
			opponent: "4D 4C 5D 5C 6H",
			want:     Less,
		},
		{
			name:     "equal pair decided by kickers",
			player:   "8H 8C 2S 3S AD",
			opponent: "8S 8D 2C 3C KD",
			want:     Greater,
		},
		{
			name:     "identical high cards draw",
			player:   "2C 5D 9S JC KH",
			opponent: "2S 5H 9D JD KS",
			want:     Equal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := classifyString(t, tc.player)
			b := classifyString(t, tc.opponent)

			if got := Compare(a, b); got != tc.want {
				t.Errorf("Compare = %v, want %v", got, tc.want)
			}
			// Antisymmetry: swapping arguments must flip the result.
			if got := Compare(b, a); got != -tc.want {
				t.Errorf("Compare swapped = %v, want %v", got, -tc.want)
			}
		})
	}
}

func TestCompareCategoryMonotonicity(t *testing.T) {
	t.Parallel()
	// One hand per category, each with deliberately weak side cards, ordered
	// weakest to strongest. Every hand must beat every hand of a lower
	// category regardless of kickers.
	ladder := []string{
		"2C 5D 9S JC KH", // high card, king high
		"2H 2D 4S 5C 7H", // pair of twos
		"2S 2C 3D 3C 7D", // two pair, threes and twos
		"2H 2D 2S 4C 5H", // three twos
		"2H 3D 4S 5C 6H", // six-high straight
		"2H 4H 5H 7H 8H", // eight-high flush
		"2H 2D 2S 3C 3H", // twos full of threes
		"2H 2D 2S 2C 3H", // four twos
		"2S 3S 4S 5S 6S", // six-high straight flush
		"TH JH QH KH AH", // royal flush
	}

	plays := make([]ClassifiedHand, len(ladder))
	for i, s := range ladder {
		plays[i] = classifyString(t, s)
		if plays[i].Category != Category(i) {
			t.Fatalf("%s: category = %s, want %s", s, plays[i].Category, Category(i))
		}
	}

	for i := range plays {
		for j := range plays {
			got := Compare(plays[i], plays[j])
			switch {
			case i < j && got != Less:
				t.Errorf("%s vs %s = %v, want Less", ladder[i], ladder[j], got)
			case i > j && got != Greater:
				t.Errorf("%s vs %s = %v, want Greater", ladder[i], ladder[j], got)
			case i == j && got != Equal:
				t.Errorf("%s vs itself = %v, want Equal", ladder[i], got)
			}
		}
	}
}

func TestComparePrefixRule(t *testing.T) {
	t.Parallel()
	// When one value sequence is a strict prefix of the other, the longer
	// sequence wins.
	long := ClassifiedHand{Category: Pair, Deciding: []Rank{Eight, Eight}, Kickers: []Rank{King, Seven}}
	short := ClassifiedHand{Category: Pair, Deciding: []Rank{Eight, Eight}, Kickers: []Rank{King}}

	if got := Compare(long, short); got != Greater {
		t.Errorf("longer kicker sequence should win, got %v", got)
	}
	if got := Compare(short, long); got != Less {
		t.Errorf("shorter kicker sequence should lose, got %v", got)
	}
}

func TestCompareDoesNotMutate(t *testing.T) {
	t.Parallel()
	a := classifyString(t, "8H 8C 2S 3S AD")
	b := classifyString(t, "8S 8D 2C 3C KD")

	aDeciding := append([]Rank(nil), a.Deciding...)
	aKickers := append([]Rank(nil), a.Kickers...)

	_ = Compare(a, b)
	_ = Compare(b, a)

	for i, r := range a.Deciding {
		if aDeciding[i] != r {
			t.Fatal("Compare mutated deciding values")
		}
	}
	for i, r := range a.Kickers {
		if aKickers[i] != r {
			t.Fatal("Compare mutated kicker values")
		}
	}
}

func BenchmarkClassify(b *testing.B) {
	hand := MustParseHand("5H 5C 6S 7S KD")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Classify(hand)
	}
}

func BenchmarkCompare(b *testing.B) {
	x := Classify(MustParseHand("5H 5C 6S 7S KD"))
	y := Classify(MustParseHand("2C 3S 8S 8D TD"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compare(x, y)
	}
}
