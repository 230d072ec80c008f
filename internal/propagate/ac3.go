// Package propagate enforces arc consistency over a board's peer
// graph before search begins.
package propagate

import (
	"sort"

	"github.com/rs/zerolog"

	"svw.info/sudoku-csp/internal/board"
	"svw.info/sudoku-csp/internal/domain"
)

// arc (xi, xj) means "xi's domain must be consistent with xj". Arcs
// are transient work items, addressed by arena index.
type arc struct {
	xi, xj int
}

// Propagator runs the one-shot preprocessing pass and the AC-3
// worklist algorithm. Domain reductions accumulate into the caller's
// metrics.
type Propagator struct {
	cfg domain.Config
	log zerolog.Logger
}

func New(cfg domain.Config, log zerolog.Logger) *Propagator {
	return &Propagator{cfg: cfg, log: log}
}

// Preprocess strips each finalized cell's value from the domains of
// its unfinalized peers, without queueing. Returns the number of
// removals.
func (p *Propagator) Preprocess(b *board.Board, m *domain.Metrics) int {
	removed := 0
	for i := 0; i < board.Cells; i++ {
		c := b.Cell(i)
		if !c.Finalized() {
			continue
		}
		v := c.Value()
		for _, j := range c.Peers() {
			n := b.Cell(j)
			if n.Finalized() {
				continue
			}
			if n.RemoveFromDomain(v) {
				removed++
				m.DomainReductions++
				p.log.Debug().
					Int("row", j/board.Size).Int("col", j%board.Size).
					Uint8("value", v).
					Msg("preprocess removed candidate")
			}
		}
	}
	return removed
}

// Run drains the AC-3 worklist. It returns false on a domain wipeout,
// abandoning the rest of the worklist; true means an arc-consistent
// state was reached (cells may still hold several candidates).
func (p *Propagator) Run(b *board.Board, m *domain.Metrics) bool {
	queue := make([]arc, 0, board.Cells*board.PeersPerCell)
	for i := 0; i < board.Cells; i++ {
		for _, j := range b.Cell(i).Peers() {
			queue = append(queue, arc{xi: i, xj: j})
		}
	}

	for head := 0; head < len(queue); head++ {
		a := queue[head]
		if !p.revise(b, a, m) {
			continue
		}
		xi := b.Cell(a.xi)
		if xi.DomainSize() == 0 {
			p.log.Debug().
				Int("row", a.xi/board.Size).Int("col", a.xi%board.Size).
				Msg("domain wipeout")
			return false
		}
		cand := make([]int, 0, board.PeersPerCell-1)
		for _, xk := range xi.Peers() {
			if xk != a.xj {
				cand = append(cand, xk)
			}
		}
		p.order(b, cand)
		for _, xk := range cand {
			queue = append(queue, arc{xi: xk, xj: a.xi})
		}
	}
	return true
}

// revise removes xj's value from xi's domain when xj is finalized.
// Finalized xi are never revised.
func (p *Propagator) revise(b *board.Board, a arc, m *domain.Metrics) bool {
	xi, xj := b.Cell(a.xi), b.Cell(a.xj)
	if xi.Finalized() || !xj.Finalized() {
		return false
	}
	v := xj.Value()
	if !xi.RemoveFromDomain(v) {
		return false
	}
	m.DomainReductions++
	p.log.Debug().
		Int("row", a.xi/board.Size).Int("col", a.xi%board.Size).
		Uint8("value", v).
		Int("domain", xi.DomainSize()).
		Msg("revised domain")
	return true
}

// order applies the arc-ordering heuristics to re-enqueue candidates.
// Both sorts are stable; degree runs second and so takes precedence,
// with MRV as its tie-break.
func (p *Propagator) order(b *board.Board, cand []int) {
	if p.cfg.MRVAC3 {
		sort.SliceStable(cand, func(i, j int) bool {
			return b.Cell(cand[i]).DomainSize() < b.Cell(cand[j]).DomainSize()
		})
	}
	if p.cfg.DegreeAC3 {
		sort.SliceStable(cand, func(i, j int) bool {
			return b.UnfinalizedPeerCount(cand[i]) > b.UnfinalizedPeerCount(cand[j])
		})
	}
}
