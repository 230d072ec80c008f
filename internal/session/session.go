// Package session orchestrates one solve attempt: preprocessing, AC-3
// propagation, then deadline-bounded backtracking search.
package session

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"svw.info/sudoku-csp/internal/board"
	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/logger"
	"svw.info/sudoku-csp/internal/propagate"
	"svw.info/sudoku-csp/internal/search"
)

// Session owns the counters and pipeline for a single solve attempt.
// It is single-threaded; the board it solves must not be shared.
type Session struct {
	cfg  domain.Config
	log  zerolog.Logger
	prop *propagate.Propagator
	srch *search.Searcher
}

func New(cfg domain.Config) *Session {
	lg := logger.Logger()
	if !cfg.Feedback {
		lg = zerolog.Nop()
	}
	return &Session{
		cfg:  cfg,
		log:  lg,
		prop: propagate.New(cfg, lg),
		srch: search.New(cfg, lg),
	}
}

// Solve mutates b in place and reports the outcome with all counters.
// A propagation wipeout, search exhaustion, or timeout all come back
// as Solved=false with the counters accumulated so far.
func (s *Session) Solve(ctx context.Context, b *board.Board) domain.SolveResult {
	start := time.Now()
	var m domain.Metrics
	for i := 0; i < board.Cells; i++ {
		if !b.Cell(i).Finalized() {
			m.EmptyCells++
		}
	}

	if s.cfg.Preprocess {
		removed := s.prop.Preprocess(b, &m)
		s.log.Debug().Int("removed", removed).Msg("preprocessing done")
	}

	s.log.Debug().Msg("starting AC-3")
	solved := false
	if s.prop.Run(b, &m) {
		if b.FullyAssigned() {
			s.log.Debug().Msg("solved by propagation alone")
			solved = true
		} else {
			deadline := start.Add(s.cfg.EffectiveTimeout())
			out := s.srch.Run(ctx, b, deadline, &m)
			s.log.Debug().Stringer("outcome", out).Msg("search finished")
			solved = out == domain.Solved
		}
	} else {
		s.log.Debug().Msg("propagation failed")
	}

	return domain.SolveResult{
		Solved:   solved,
		Grid:     b.Grid(),
		Metrics:  m,
		Duration: time.Since(start),
	}
}

// Runner adapts Session to the ports.Solver contract: it builds a
// fresh board per call so concurrent callers never share state.
type Runner struct{}

func NewRunner() Runner { return Runner{} }

func (Runner) Solve(ctx context.Context, g domain.Grid, cfg domain.Config) (domain.SolveResult, error) {
	b, err := board.New(g)
	if err != nil {
		return domain.SolveResult{}, err
	}
	return New(cfg).Solve(ctx, b), nil
}
