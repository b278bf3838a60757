package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case DailyBoard:
		o.printDailyBoard(v)
	case GeneratedBoard:
		o.printGeneratedBoard(v)
	case GameState:
		o.printGameState(v)
	case WordResult:
		o.printWordResult(v)
	case ValidationResult:
		o.printValidationResult(v)
	case Dictionary:
		o.printDictionary(v)
	case DictionaryVersion:
		fmt.Printf("Dictionary version: %d\n", v.Version)
	case Hint:
		o.printHint(v)
	case DayResult:
		o.printDayResult(v)
	case PlayedResult:
		o.printPlayedResult(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// DailyBoard response type (matches API)
type DailyBoard struct {
	Grid          []string `json:"grid"`
	Seed          int64    `json:"seed"`
	Day           string   `json:"day"`
	TimerDuration int      `json:"timer_duration"`
}

// GeneratedBoard response type
type GeneratedBoard struct {
	Grid     []string `json:"grid"`
	Richness float64  `json:"richness"`
	Words    []string `json:"words"`
}

// WordResult response type
type WordResult struct {
	Word   string `json:"word"`
	Score  int    `json:"score"`
	Stress []int  `json:"stress"`
}

// GameState response type
type GameState struct {
	ID               string       `json:"id"`
	Day              string       `json:"day"`
	Active           bool         `json:"active"`
	RemainingSeconds int          `json:"remaining_seconds"`
	Board            []string     `json:"board"`
	Stress           [][]int      `json:"stress"`
	Regens           [][]int      `json:"regens"`
	TotalScore       int          `json:"total_score"`
	Words            []WordResult `json:"words"`
}

// ValidationResult response type
type ValidationResult struct {
	Word   string `json:"word"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	Score  int    `json:"score,omitempty"`
}

// Dictionary response type
type Dictionary struct {
	Version int      `json:"version"`
	Words   []string `json:"words"`
}

// DictionaryVersion response type
type DictionaryVersion struct {
	Version int `json:"version"`
}

// DayResult response type
type DayResult struct {
	ID         string       `json:"id"`
	Day        string       `json:"day"`
	Words      []WordResult `json:"words"`
	MaxScore   int          `json:"max_score"`
	TotalScore int          `json:"total_score"`
	WordCount  int          `json:"word_count"`
	FinishedAt string       `json:"finished_at"`
}

// Hint response type
type Hint struct {
	Word  string     `json:"word"`
	Path  []HintCell `json:"path"`
	Score int        `json:"score"`
}

// HintCell response type
type HintCell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PlayedResult response type
type PlayedResult struct {
	Day    string `json:"day"`
	Played bool   `json:"played"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printDailyBoard(b DailyBoard) {
	fmt.Printf("Day: %s\n", b.Day)
	fmt.Printf("Seed: %d\n", b.Seed)
	fmt.Printf("Timer: %ds\n", b.TimerDuration)
	fmt.Println()
	o.printGrid(b.Grid)
}

func (o *Output) printGeneratedBoard(b GeneratedBoard) {
	fmt.Printf("Richness: %.2f\n", b.Richness)
	fmt.Println()
	o.printGrid(b.Grid)
	if len(b.Words) > 0 {
		fmt.Printf("\nWords (%d):\n", len(b.Words))
		for _, w := range b.Words {
			fmt.Printf("  - %s\n", w)
		}
	}
}

func (o *Output) printGameState(g GameState) {
	status := "finished"
	if g.Active {
		status = "active"
	}
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Day: %s\n", g.Day)
	fmt.Printf("Status: %s\n", status)
	fmt.Printf("Time Remaining: %ds\n", g.RemainingSeconds)
	fmt.Printf("Score: %d\n", g.TotalScore)

	fmt.Println("\nBoard:")
	o.printGridWithStress(g.Board, g.Stress)

	if len(g.Words) > 0 {
		fmt.Printf("\nWords (%d):\n", len(g.Words))
		for _, w := range g.Words {
			fmt.Printf("  - %s (%d pts)\n", w.Word, w.Score)
		}
	}
}

func (o *Output) printWordResult(w WordResult) {
	fmt.Printf("Word accepted: %s\n", w.Word)
	fmt.Printf("Score: %d\n", w.Score)
}

func (o *Output) printValidationResult(v ValidationResult) {
	if v.Valid {
		fmt.Printf("Valid: %s (%d pts)\n", v.Word, v.Score)
		return
	}
	fmt.Printf("Invalid: %s (%s)\n", v.Word, v.Reason)
}

func (o *Output) printDictionary(d Dictionary) {
	fmt.Printf("Version: %d\n", d.Version)
	fmt.Printf("Words: %d\n", len(d.Words))
}

func (o *Output) printHint(h Hint) {
	fmt.Printf("Try: %s (%d pts)\n", h.Word, h.Score)
	fmt.Print("Path:")
	for _, c := range h.Path {
		fmt.Printf(" %d,%d", c.Row, c.Col)
	}
	fmt.Println()
}

func (o *Output) printDayResult(r DayResult) {
	fmt.Printf("Day: %s\n", r.Day)
	fmt.Printf("Total Score: %d\n", r.TotalScore)
	fmt.Printf("Best Word Score: %d\n", r.MaxScore)
	fmt.Printf("Words (%d):\n", r.WordCount)
	for _, w := range r.Words {
		fmt.Printf("  - %s (%d pts)\n", w.Word, w.Score)
	}
}

func (o *Output) printPlayedResult(p PlayedResult) {
	if p.Played {
		fmt.Printf("%s: played\n", p.Day)
	} else {
		fmt.Printf("%s: not played\n", p.Day)
	}
}

func (o *Output) printGrid(rows []string) {
	o.printGridWithStress(rows, nil)
}

// printGridWithStress draws the board; when stress is given, worn cells
// are lowercased and red cells marked with '*'.
func (o *Output) printGridWithStress(rows []string, stress [][]int) {
	if len(rows) == 0 {
		return
	}

	size := len(rows)

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < size; col++ {
		fmt.Printf(" %d ", col)
	}
	fmt.Println()

	// Print top border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")

	// Print rows
	for row := 0; row < size; row++ {
		fmt.Printf(" %d |", row)
		letters := []rune(rows[row])
		for col := 0; col < size; col++ {
			cell := " "
			if col < len(letters) {
				cell = string(letters[col])
			}
			marker := " "
			if stress != nil && row < len(stress) && col < len(stress[row]) {
				switch stress[row][col] {
				case 1:
					marker = "."
				case 0:
					marker = "*"
				}
			}
			fmt.Printf(" %s%s", cell, marker)
		}
		fmt.Println("|")
	}

	// Print bottom border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")
}
