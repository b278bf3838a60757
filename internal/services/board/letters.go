package board

import (
	"github.com/wordcrumble/wordcrumble-go/internal/dependencies/random"
)

// Letter classes. Regeneration always replaces a letter with a
// different letter of the same class.
var vowels = []rune{'A', 'E', 'I', 'O', 'U'}

// letterWeights approximates English letter frequency (percent).
// Weighted draws use these for initial board fill and for consonant
// replacement.
var letterWeights = map[rune]float64{
	'E': 12.0, 'A': 8.2, 'R': 6.0, 'I': 7.0, 'O': 7.5, 'T': 9.1,
	'N': 6.7, 'S': 6.3, 'L': 4.0, 'C': 2.8, 'U': 2.8, 'D': 4.3,
	'P': 2.0, 'M': 2.4, 'H': 6.1, 'G': 2.0, 'B': 1.5, 'F': 2.2,
	'Y': 2.0, 'W': 2.0, 'K': 0.8, 'V': 1.0, 'X': 0.2, 'Z': 0.1,
	'J': 0.2, 'Q': 0.1,
}

// weightedAlphabet is the fixed draw order for weighted choices. A
// stable order keeps seeded draws reproducible across runs.
var weightedAlphabet = []rune{
	'E', 'A', 'R', 'I', 'O', 'T', 'N', 'S', 'L', 'C', 'U', 'D', 'P',
	'M', 'H', 'G', 'B', 'F', 'Y', 'W', 'K', 'V', 'X', 'Z', 'J', 'Q',
}

// IsVowel reports whether letter (uppercase) is a vowel
func IsVowel(letter rune) bool {
	for _, v := range vowels {
		if v == letter {
			return true
		}
	}
	return false
}

// LCG constants. The recurrence is a cross-language contract: the
// board service and any client must reproduce identical letters from
// the same seed, so these values and the discard count must never
// change independently.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32
	lcgDiscard    = 3
)

// lcg is a 32-bit linear congruential generator
type lcg struct {
	state uint64
}

// newLCG seeds a generator and discards the initial outputs, whose
// low bits correlate with the seed.
func newLCG(seed uint64) *lcg {
	g := &lcg{state: seed % lcgModulus}
	for i := 0; i < lcgDiscard; i++ {
		g.next()
	}
	return g
}

// next advances the generator and returns a float in [0, 1)
func (g *lcg) next() float64 {
	g.state = (lcgMultiplier*g.state + lcgIncrement) % lcgModulus
	return float64(g.state) / float64(lcgModulus)
}

// cellSeed mixes the board seed with the cell coordinates and the
// regeneration count, so each (cell, generation) pair draws from its
// own reproducible stream.
func cellSeed(boardSeed int64, row, col, regenCount int) uint64 {
	seed := uint64(boardSeed)
	seed ^= uint64(row+1) * 73856093
	seed ^= uint64(col+1) * 19349663
	seed ^= uint64(regenCount) * 83492791
	return seed
}

// ReplacementLetter deterministically picks the letter that replaces
// original when a cell at (row, col) regenerates for the regenCount-th
// time on a board with the given seed. Vowels become a different
// vowel, uniformly; consonants become a different consonant, weighted
// by letter frequency.
func ReplacementLetter(boardSeed int64, row, col, regenCount int, original rune) rune {
	g := newLCG(cellSeed(boardSeed, row, col, regenCount))

	if IsVowel(original) {
		remaining := make([]rune, 0, len(vowels)-1)
		for _, v := range vowels {
			if v != original {
				remaining = append(remaining, v)
			}
		}
		idx := int(g.next() * float64(len(remaining)))
		if idx >= len(remaining) {
			idx = len(remaining) - 1
		}
		return remaining[idx]
	}

	return weightedDraw(g.next(), original)
}

// FallbackLetter picks a replacement with no determinism guarantee,
// for boards that arrived without a seed. Class is still preserved.
func FallbackLetter(rnd random.Random, original rune) rune {
	if IsVowel(original) {
		remaining := make([]rune, 0, len(vowels)-1)
		for _, v := range vowels {
			if v != original {
				remaining = append(remaining, v)
			}
		}
		return remaining[rnd.Intn(len(remaining))]
	}
	return weightedDraw(rnd.Float64(), original)
}

// weightedDraw walks the weighted alphabet with a uniform draw in
// [0, 1), skipping vowels and the excluded letter.
func weightedDraw(u float64, exclude rune) rune {
	total := 0.0
	for _, ch := range weightedAlphabet {
		if ch == exclude || IsVowel(ch) {
			continue
		}
		total += letterWeights[ch]
	}

	target := u * total
	for _, ch := range weightedAlphabet {
		if ch == exclude || IsVowel(ch) {
			continue
		}
		target -= letterWeights[ch]
		if target < 0 {
			return ch
		}
	}

	// Floating point slop at u ~= 1.0 lands on the last candidate
	for i := len(weightedAlphabet) - 1; i >= 0; i-- {
		ch := weightedAlphabet[i]
		if ch != exclude && !IsVowel(ch) {
			return ch
		}
	}
	return 'T'
}

// randomLetter draws any letter (vowel or consonant) weighted by
// frequency; used for initial board fill.
func randomLetter(u float64) rune {
	total := 0.0
	for _, ch := range weightedAlphabet {
		total += letterWeights[ch]
	}
	target := u * total
	for _, ch := range weightedAlphabet {
		target -= letterWeights[ch]
		if target < 0 {
			return ch
		}
	}
	return weightedAlphabet[len(weightedAlphabet)-1]
}
