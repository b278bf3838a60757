package board

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/services/dictionary"
)

// GenerationRequest describes the board to generate
type GenerationRequest struct {
	Size           int     `json:"size"`
	TargetRichness float64 `json:"target_richness"`
	MinWordLength  int     `json:"min_word_length"`
	MinWordCount   int     `json:"min_word_count"`
}

// DefaultGenerationRequest returns the standard daily-board parameters
func DefaultGenerationRequest(size int) GenerationRequest {
	return GenerationRequest{
		Size:           size,
		TargetRichness: 0.9,
		MinWordLength:  dictionary.MinWordLength,
		MinWordCount:   0,
	}
}

const (
	// generateAttempts bounds the search for a board near the target
	// richness; the closest attempt is kept as a fallback.
	generateAttempts  = 200
	richnessTolerance = 0.05

	// wordSeedRetries bounds attempts to trace a word path onto a grid
	wordSeedRetries = 50

	// placementAttempts bounds straight-line word placement tries
	placementAttempts = 100
)

// Generator builds letter grids and analyses them against the
// dictionary index.
type Generator struct {
	dict dictionary.ServiceInterface
}

// NewGenerator creates a board generator
func NewGenerator(dict dictionary.ServiceInterface) *Generator {
	return &Generator{dict: dict}
}

// Generate searches for a board whose richness lands within tolerance
// of the target. Boards below the minimum word count are discarded;
// if nothing lands within tolerance the closest candidate wins.
func (g *Generator) Generate(req GenerationRequest, rng *rand.Rand) *model.GeneratedBoard {
	var best *model.GeneratedBoard
	bestDiff := math.Inf(1)

	// Fallback in case no attempt meets the minimum word count
	grid := g.randomGrid(req.Size, rng)
	words := g.FindWords(grid, req.MinWordLength)
	richness := Richness(words, req.Size)
	last := &model.GeneratedBoard{Grid: grid, Richness: richness, Words: words}

	longWords := g.candidateLongWords(req.MinWordLength)

	for attempt := 0; attempt < generateAttempts; attempt++ {
		grid = g.randomGrid(req.Size, rng)

		// Seeding a long word path lifts richness toward high targets
		if req.TargetRichness > 0.5 && len(longWords) > 0 {
			g.seedWordPath(grid, longWords[rng.Intn(len(longWords))], rng)
		}

		words = g.FindWords(grid, req.MinWordLength)
		richness = Richness(words, req.Size)
		last = &model.GeneratedBoard{Grid: grid, Richness: richness, Words: words}

		if len(words) < req.MinWordCount {
			continue
		}

		diff := math.Abs(richness - req.TargetRichness)
		if diff <= richnessTolerance {
			return last
		}
		if diff < bestDiff {
			bestDiff = diff
			best = last
		}
	}

	if best != nil {
		return best
	}
	return last
}

// GenerateFromWords builds a board containing only words from the
// given list: the words are placed along straight lines, gaps are
// filled with random letters, and boards that leak words outside the
// list are regenerated a bounded number of times.
func (g *Generator) GenerateFromWords(size int, inputWords []string, minLength int, rng *rand.Rand) *model.GeneratedBoard {
	valid := make([]string, 0, len(inputWords))
	for _, w := range inputWords {
		w = strings.ToUpper(strings.TrimSpace(w))
		if len(w) >= minLength {
			valid = append(valid, w)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	wordSet := make(map[string]struct{}, len(valid))
	for _, w := range valid {
		wordSet[w] = struct{}{}
	}

	var grid [][]rune
	var found []string
	for attempt := 0; attempt < 10; attempt++ {
		grid = g.placeWordList(size, valid, rng)
		found = findWordsInSet(grid, wordSet, minLength)

		leaked := false
		for _, w := range found {
			if _, ok := wordSet[w]; !ok {
				leaked = true
				break
			}
		}
		if !leaked {
			break
		}
	}

	return &model.GeneratedBoard{
		Grid:     grid,
		Richness: Richness(found, size),
		Words:    found,
	}
}

// FindWords enumerates every dictionary word traceable on the grid
// with length >= minLength, sorted.
func (g *Generator) FindWords(grid [][]rune, minLength int) []string {
	results := make(map[string]struct{})
	size := len(grid)
	visited := make([]bool, size*size)

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			g.dfs(grid, r, c, visited, "", results, minLength)
		}
	}

	words := make([]string, 0, len(results))
	for w := range results {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func (g *Generator) dfs(grid [][]rune, r, c int, visited []bool, prefix string, results map[string]struct{}, minLength int) {
	size := len(grid)
	word := prefix + string(grid[r][c])

	if !g.dict.HasPrefix(word) {
		return
	}
	if len(word) >= minLength && g.dict.Contains(word) {
		results[strings.ToLower(word)] = struct{}{}
	}

	visited[r*size+c] = true
	for _, n := range (model.Position{Row: r, Col: c}).Neighbors(size) {
		if !visited[n.Row*size+n.Col] {
			g.dfs(grid, n.Row, n.Col, visited, word, results, minLength)
		}
	}
	visited[r*size+c] = false
}

// Richness scores how word-dense a board is, in [0, 1]. Word count
// dominates; average word length contributes the rest.
func Richness(words []string, size int) float64 {
	if len(words) == 0 {
		return 0.0
	}

	maxExpectedWords := float64(size*size) * 0.5
	countScore := math.Min(float64(len(words))/maxExpectedWords, 1.0)

	maxExpectedLength := math.Min(float64(size*2), 15)
	totalLength := 0
	for _, w := range words {
		totalLength += len(w)
	}
	avgLength := float64(totalLength) / float64(len(words))
	lengthScore := math.Min(avgLength/maxExpectedLength, 1.0)

	return countScore*0.8 + lengthScore*0.2
}

// randomGrid fills a size x size grid with frequency-weighted letters
func (g *Generator) randomGrid(size int, rng *rand.Rand) [][]rune {
	grid := make([][]rune, size)
	for r := range grid {
		grid[r] = make([]rune, size)
		for c := range grid[r] {
			grid[r][c] = randomLetter(rng.Float64())
		}
	}
	return grid
}

// seedWordPath overwrites a random adjacent path with the letters of
// word. Returns false when no non-self-intersecting path was found.
func (g *Generator) seedWordPath(grid [][]rune, word string, rng *rand.Rand) bool {
	size := len(grid)
	letters := []rune(strings.ToUpper(word))

	for retry := 0; retry < wordSeedRetries; retry++ {
		used := make(map[model.Position]struct{}, len(letters))
		path := make([]model.Position, 0, len(letters))

		pos := model.Position{Row: rng.Intn(size), Col: rng.Intn(size)}
		used[pos] = struct{}{}
		path = append(path, pos)

		ok := true
		for range letters[1:] {
			options := make([]model.Position, 0, 8)
			for _, n := range pos.Neighbors(size) {
				if _, taken := used[n]; !taken {
					options = append(options, n)
				}
			}
			if len(options) == 0 {
				ok = false
				break
			}
			pos = options[rng.Intn(len(options))]
			used[pos] = struct{}{}
			path = append(path, pos)
		}

		if ok && len(path) == len(letters) {
			for i, p := range path {
				grid[p.Row][p.Col] = letters[i]
			}
			return true
		}
	}
	return false
}

// placeWordList lays words along straight lines (longest first) and
// fills the remaining cells with random letters.
func (g *Generator) placeWordList(size int, words []string, rng *rand.Rand) [][]rune {
	grid := make([][]rune, size)
	for r := range grid {
		grid[r] = make([]rune, size)
	}

	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	for _, word := range sorted {
		g.tryPlaceWord(grid, word, rng)
	}

	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] == 0 {
				grid[r][c] = randomLetter(rng.Float64())
			}
		}
	}
	return grid
}

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

func (g *Generator) tryPlaceWord(grid [][]rune, word string, rng *rand.Rand) bool {
	size := len(grid)
	letters := []rune(strings.ToUpper(word))

	for attempt := 0; attempt < placementAttempts; attempt++ {
		row := rng.Intn(size)
		col := rng.Intn(size)

		order := rng.Perm(len(directions))
		for _, di := range order {
			dr, dc := directions[di][0], directions[di][1]
			if canPlaceAt(grid, letters, row, col, dr, dc) {
				for i, ch := range letters {
					grid[row+i*dr][col+i*dc] = ch
				}
				return true
			}
		}
	}
	return false
}

func canPlaceAt(grid [][]rune, letters []rune, row, col, dr, dc int) bool {
	size := len(grid)
	endRow := row + (len(letters)-1)*dr
	endCol := col + (len(letters)-1)*dc
	if endRow < 0 || endRow >= size || endCol < 0 || endCol >= size {
		return false
	}
	for i, ch := range letters {
		cell := grid[row+i*dr][col+i*dc]
		if cell != 0 && cell != ch {
			return false
		}
	}
	return true
}

// findWordsInSet enumerates traceable words restricted to a word set
func findWordsInSet(grid [][]rune, wordSet map[string]struct{}, minLength int) []string {
	results := make(map[string]struct{})
	size := len(grid)
	visited := make([]bool, size*size)

	var dfs func(r, c int, prefix string)
	dfs = func(r, c int, prefix string) {
		word := prefix + string(grid[r][c])

		isPrefix := false
		for w := range wordSet {
			if strings.HasPrefix(w, word) {
				isPrefix = true
				break
			}
		}
		if !isPrefix {
			return
		}

		if len(word) >= minLength {
			if _, ok := wordSet[word]; ok {
				results[word] = struct{}{}
			}
		}

		visited[r*size+c] = true
		for _, n := range (model.Position{Row: r, Col: c}).Neighbors(size) {
			if !visited[n.Row*size+n.Col] {
				dfs(n.Row, n.Col, word)
			}
		}
		visited[r*size+c] = false
	}

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			dfs(r, c, "")
		}
	}

	words := make([]string, 0, len(results))
	for w := range results {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// candidateLongWords lists dictionary words long enough to seed
func (g *Generator) candidateLongWords(minLength int) []string {
	seedLength := minLength + 2
	var candidates []string
	for _, w := range g.dict.Words() {
		if len(w) >= seedLength {
			candidates = append(candidates, w)
		}
	}
	return candidates
}
