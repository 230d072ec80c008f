package domain

import (
	"fmt"
	"strings"
	"time"
)

// Grid is a raw 9x9 puzzle; 0 marks a blank cell.
type Grid [9][9]uint8

// DefaultTimeout bounds a single backtracking search.
const DefaultTimeout = 20 * time.Second

// Config selects heuristics and bounds for one solve attempt.
type Config struct {
	Preprocess         bool
	MRVAC3             bool
	DegreeAC3          bool
	MRVBacktracking    bool
	DegreeBacktracking bool
	Feedback           bool
	Timeout            time.Duration // zero means DefaultTimeout
}

// EffectiveTimeout resolves the zero value to the default budget.
func (c Config) EffectiveTimeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// Metrics counts the work done during one solve attempt.
type Metrics struct {
	EmptyCells       int
	ConstraintChecks int
	DomainReductions int
	RecursiveCalls   int
	Assignments      int
}

// SolveResult is the record a solve attempt hands back to its caller.
// Counters are valid even when Solved is false (wipeout, exhaustion,
// or timeout).
type SolveResult struct {
	Solved bool
	Grid   Grid
	Metrics
	Duration time.Duration
}

// Complexity is constraint checks per empty cell at start. The second
// return is false when the puzzle had no empty cells.
func (r SolveResult) Complexity() (float64, bool) {
	if r.EmptyCells == 0 {
		return 0, false
	}
	return float64(r.ConstraintChecks) / float64(r.EmptyCells), true
}

// ComplexityString renders Complexity with 4 decimals, or "N/A".
func (r SolveResult) ComplexityString() string {
	c, ok := r.Complexity()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", c)
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int
	Col int
}

// ReportRow is one line of a batch evaluation report.
type ReportRow struct {
	File   string
	Combo  Combo
	Result SolveResult
}

// String renders the grid with box-drawing borders, '.' for blanks.
func (g Grid) String() string {
	var sb strings.Builder
	sb.WriteString("╔═══════╦═══════╦═══════╗\n")
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			sb.WriteString("╠═══════╬═══════╬═══════╣\n")
		}
		sb.WriteString("║ ")
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				sb.WriteString("║ ")
			}
			if v := g[r][c]; v == 0 {
				sb.WriteString(". ")
			} else {
				fmt.Fprintf(&sb, "%d ", v)
			}
		}
		sb.WriteString("║\n")
	}
	sb.WriteString("╚═══════╩═══════╩═══════╝\n")
	return sb.String()
}
