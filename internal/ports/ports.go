package ports

import (
	"context"

	"svw.info/sudoku-csp/internal/domain"
)

// Solver runs one configured solve attempt over a raw grid.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid, cfg domain.Config) (domain.SolveResult, error)
}

// Validator performs the post-hoc row/col/box uniqueness check.
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Source lists and loads plain-text puzzles.
type Source interface {
	List(ctx context.Context, dir string) ([]string, error)
	Load(ctx context.Context, path string) (domain.Grid, error)
}

// Reporter persists the rows of a batch evaluation.
type Reporter interface {
	Write(ctx context.Context, rows []domain.ReportRow) error
}
