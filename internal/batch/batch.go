// Package batch evaluates the heuristic-combination matrix across a
// folder of puzzles. Each (puzzle, combo) unit runs on its own grid
// copy under its own timeout, so no board state is ever shared between
// workers.
package batch

import (
	"context"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

type Harness struct {
	Source   ports.Source
	Solver   ports.Solver
	Reporter ports.Reporter

	// Workers caps concurrent units; zero means GOMAXPROCS.
	Workers int
	// UnitTimeout bounds each (puzzle, combo) unit; zero means the
	// solver's default budget.
	UnitTimeout time.Duration
	Log         zerolog.Logger
}

// Run evaluates every combination against every puzzle in dir. Rows
// come back ordered by (file, combo) regardless of completion order.
// A timed-out unit is an ordinary unsolved row, not an error.
func (h *Harness) Run(ctx context.Context, dir string) ([]domain.ReportRow, error) {
	files, err := h.Source.List(ctx, dir)
	if err != nil {
		return nil, err
	}
	combos := domain.Combos()
	rows := make([]domain.ReportRow, len(files)*len(combos))

	workers := h.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	timeout := h.UnitTimeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for fi, file := range files {
		for ci, combo := range combos {
			fi, file, ci, combo := fi, file, ci, combo
			g.Go(func() error {
				unitCtx, cancel := context.WithTimeout(gctx, timeout)
				defer cancel()

				grid, err := h.Source.Load(unitCtx, file)
				if err != nil {
					return err
				}
				cfg := combo.Config()
				cfg.Timeout = timeout
				res, err := h.Solver.Solve(unitCtx, grid, cfg)
				if err != nil {
					return err
				}
				rows[fi*len(combos)+ci] = domain.ReportRow{
					File:   filepath.Base(file),
					Combo:  combo,
					Result: res,
				}
				h.Log.Info().
					Str("file", filepath.Base(file)).
					Str("combo", combo.Name).
					Bool("solved", res.Solved).
					Int("checks", res.ConstraintChecks).
					Str("complexity", res.ComplexityString()).
					Msg("unit done")
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if h.Reporter != nil {
		if err := h.Reporter.Write(ctx, rows); err != nil {
			return nil, err
		}
	}
	return rows, nil
}
