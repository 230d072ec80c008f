// Package report persists batch evaluation results as CSV.
package report

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"svw.info/sudoku-csp/internal/domain"
)

type CSV struct {
	path string
}

func NewCSV(path string) *CSV { return &CSV{path: path} }

var header = []string{
	"File",
	"Combination",
	"MRV AC3",
	"Degree AC3",
	"MRV Backtracking",
	"Degree Backtracking",
	"Empty Cells",
	"Constraint Checks",
	"Complexity",
	"Solved",
}

// Write creates (or truncates) the target file and writes one row per
// result, preceded by the header.
func (c *CSV) Write(ctx context.Context, rows []domain.ReportRow) error {
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(c.path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		rec := []string{
			row.File,
			row.Combo.Name,
			strconv.FormatBool(row.Combo.MRVAC3),
			strconv.FormatBool(row.Combo.DegreeAC3),
			strconv.FormatBool(row.Combo.MRVBacktracking),
			strconv.FormatBool(row.Combo.DegreeBacktracking),
			strconv.Itoa(row.Result.EmptyCells),
			strconv.Itoa(row.Result.ConstraintChecks),
			row.Result.ComplexityString(),
			strconv.FormatBool(row.Result.Solved),
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
