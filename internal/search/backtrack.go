// Package search completes an assignment by recursive backtracking
// when propagation alone does not finalize every cell.
package search

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"svw.info/sudoku-csp/internal/board"
	"svw.info/sudoku-csp/internal/domain"
)

// Searcher runs depth-first backtracking with optional MRV and Degree
// variable selection. Cancellation is cooperative: the deadline and
// context are polled at every recursive entry and Cancelled unwinds
// through all levels as an ordinary return value.
type Searcher struct {
	cfg domain.Config
	log zerolog.Logger
}

func New(cfg domain.Config, log zerolog.Logger) *Searcher {
	return &Searcher{cfg: cfg, log: log}
}

// Run searches from the board's current state. Counters accumulate
// into m and stay valid for every outcome, including Cancelled.
func (s *Searcher) Run(ctx context.Context, b *board.Board, deadline time.Time, m *domain.Metrics) domain.Outcome {
	return s.step(ctx, b, deadline, m)
}

func (s *Searcher) step(ctx context.Context, b *board.Board, deadline time.Time, m *domain.Metrics) domain.Outcome {
	m.RecursiveCalls++
	if ctx.Err() != nil || (!deadline.IsZero() && time.Now().After(deadline)) {
		return domain.Cancelled
	}

	unassigned := b.UnassignedIndices()
	if len(unassigned) == 0 {
		return domain.Solved
	}

	idx := s.selectCell(b, unassigned)
	cell := b.Cell(idx)
	for _, v := range cell.DomainValues() {
		if !s.consistent(b, cell, v, m) {
			continue
		}
		cell.SetValue(v)
		m.Assignments++
		s.log.Debug().
			Int("row", idx/board.Size).Int("col", idx%board.Size).
			Uint8("value", v).
			Msg("assign")
		out := s.step(ctx, b, deadline, m)
		if out != domain.Exhausted {
			// Solved and Cancelled both propagate straight up.
			return out
		}
		cell.SetValue(0)
	}
	return domain.Exhausted
}

// selectCell picks the branch variable. Default is the first
// unassigned cell in row-major order. MRV picks the smallest domain;
// Degree refines among the MRV ties by most unassigned peers. Enabling
// Degree always runs the MRV pass first. All ties fall back to
// encounter order.
func (s *Searcher) selectCell(b *board.Board, unassigned []int) int {
	if !s.cfg.MRVBacktracking && !s.cfg.DegreeBacktracking {
		return unassigned[0]
	}

	best := b.Cell(unassigned[0]).DomainSize()
	ties := []int{unassigned[0]}
	for _, i := range unassigned[1:] {
		switch size := b.Cell(i).DomainSize(); {
		case size < best:
			best = size
			ties = ties[:0]
			ties = append(ties, i)
		case size == best:
			ties = append(ties, i)
		}
	}
	if !s.cfg.DegreeBacktracking {
		return ties[0]
	}

	pick := ties[0]
	deg := b.UnfinalizedPeerCount(pick)
	for _, i := range ties[1:] {
		if d := b.UnfinalizedPeerCount(i); d > deg {
			pick, deg = i, d
		}
	}
	return pick
}

// consistent reports whether value v clashes with any finalized peer.
// One constraint check is counted per peer examined; the walk stops at
// the first conflict.
func (s *Searcher) consistent(b *board.Board, cell *board.Cell, v uint8, m *domain.Metrics) bool {
	for _, j := range cell.Peers() {
		m.ConstraintChecks++
		n := b.Cell(j)
		if n.Finalized() && n.Value() == v {
			return false
		}
	}
	return true
}
