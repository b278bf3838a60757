package scoring

// Tables holds every scoring constant. The algorithm never hard-codes
// a value; tune the game by swapping in a different Tables.
type Tables struct {
	// Base score by word length. Lengths beyond the table use the
	// longest entry; lengths below MinWordLength never reach scoring.
	Base map[int]int

	// StressBonus is indexed by stress level 0..2. Worn tiles are
	// worth more, so the bonus falls as the level rises.
	StressBonus [3]int

	// DepthBonus is indexed by regeneration count; counts beyond the
	// table use DepthBonusFallback.
	DepthBonus         []int
	DepthBonusFallback int

	// LetterBonus gives rare letters a small flat bonus. Letters not
	// present score zero. Keys are uppercase.
	LetterBonus map[rune]int

	// Combo multipliers. AllRed applies when every path cell sits at
	// stress 0, AllSame when they share any other level, Mixed otherwise.
	AllRedMultiplier  float64
	AllSameMultiplier float64
	MixedMultiplier   float64

	// RoundTo snaps the final score to the nearest multiple.
	RoundTo int
}

// DefaultTables returns the standard game constants
func DefaultTables() Tables {
	return Tables{
		Base: map[int]int{
			3:  100,
			4:  400,
			5:  800,
			6:  1400,
			7:  1800,
			8:  2200,
			9:  2600,
			10: 3000,
			11: 3400,
			12: 3800,
		},
		StressBonus:        [3]int{100, 50, 0},
		DepthBonus:         []int{0, 50, 100, 150},
		DepthBonusFallback: 200,
		LetterBonus: map[rune]int{
			'J': 150,
			'Q': 150,
			'X': 150,
			'Z': 150,
			'K': 100,
			'V': 75,
			'W': 50,
			'Y': 50,
			'B': 25,
			'F': 25,
		},
		AllRedMultiplier:  2.0,
		AllSameMultiplier: 1.5,
		MixedMultiplier:   1.0,
		RoundTo:           25,
	}
}

// baseFor returns the base score for a word length
func (t Tables) baseFor(length int) int {
	if score, ok := t.Base[length]; ok {
		return score
	}

	// Past the end of the table every length is worth the max entry
	best := 0
	longest := 0
	for l, score := range t.Base {
		if l > longest {
			longest = l
			best = score
		}
	}
	if length > longest {
		return best
	}
	return 0
}

// depthFor returns the depth bonus for a regeneration count
func (t Tables) depthFor(count int) int {
	if count >= 0 && count < len(t.DepthBonus) {
		return t.DepthBonus[count]
	}
	return t.DepthBonusFallback
}
