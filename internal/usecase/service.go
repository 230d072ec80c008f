package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

// Service is the facade the outer adapters (CLI, batch harness) talk
// to.
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Source    ports.Source
	Reporter  ports.Reporter
}

func NewService(s ports.Solver, v ports.Validator, src ports.Source, r ports.Reporter) *Service {
	return &Service{Solver: s, Validator: v, Source: src, Reporter: r}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g domain.Grid, cfg domain.Config) (domain.SolveResult, error) {
	if u.Solver == nil {
		return domain.SolveResult{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g, cfg)
}

func (u *Service) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) List(ctx context.Context, dir string) ([]string, error) {
	if u.Source == nil {
		return nil, errNotConfigured
	}
	return u.Source.List(ctx, dir)
}

func (u *Service) Load(ctx context.Context, path string) (domain.Grid, error) {
	if u.Source == nil {
		return domain.Grid{}, errNotConfigured
	}
	return u.Source.Load(ctx, path)
}

func (u *Service) Report(ctx context.Context, rows []domain.ReportRow) error {
	if u.Reporter == nil {
		return errNotConfigured
	}
	return u.Reporter.Write(ctx, rows)
}
