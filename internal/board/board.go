package board

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"svw.info/sudoku-csp/internal/domain"
)

const (
	Size  = 9
	Cells = Size * Size
	// PeersPerCell is the deduplicated union of row, column, and box
	// peers: 8 + 8 + 4.
	PeersPerCell = 20
)

// ConstructionError reports a digit outside 0..9 in the input grid.
type ConstructionError struct {
	Row, Col int
	Value    uint8
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("board: invalid value %d at (%d,%d), want 0..9", e.Value, e.Row, e.Col)
}

// Cell holds a possibly-fixed value and, while unassigned, a candidate
// domain. Peer relations are indices into the owning board's arena.
type Cell struct {
	value uint8
	dom   *bitset.BitSet
	peers []int
}

// Finalized reports whether the cell holds a fixed value.
func (c *Cell) Finalized() bool { return c.value != 0 }

func (c *Cell) Value() uint8 { return c.value }

// SetValue assigns v; v == 0 unassigns (backtracking undo). Undo does
// not restore domain values removed earlier.
func (c *Cell) SetValue(v uint8) { c.value = v }

func (c *Cell) DomainSize() int { return int(c.dom.Count()) }

// DomainValues returns the remaining candidates in ascending order.
func (c *Cell) DomainValues() []uint8 {
	out := make([]uint8, 0, c.dom.Count())
	for v, ok := c.dom.NextSet(1); ok && v <= Size; v, ok = c.dom.NextSet(v + 1) {
		out = append(out, uint8(v))
	}
	return out
}

func (c *Cell) HasCandidate(v uint8) bool { return c.dom.Test(uint(v)) }

// RemoveFromDomain drops v and reports whether it was present.
func (c *Cell) RemoveFromDomain(v uint8) bool {
	if !c.dom.Test(uint(v)) {
		return false
	}
	c.dom.Clear(uint(v))
	return true
}

// Peers returns the cell's 20 peer indices in stable order (row, then
// column, then box, duplicates skipped).
func (c *Cell) Peers() []int { return c.peers }

// Board owns all 81 cells in a flat row-major arena. The peer graph is
// built once at construction; only values and domains mutate after.
type Board struct {
	cells [Cells]Cell
}

// New builds a board from a raw grid. Given digits become finalized
// cells with empty domains; blanks get the full domain {1..9}.
func New(g domain.Grid) (*Board, error) {
	b := &Board{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := g[r][c]
			if v > Size {
				return nil, &ConstructionError{Row: r, Col: c, Value: v}
			}
			cell := &b.cells[r*Size+c]
			cell.value = v
			cell.dom = bitset.New(Size + 1)
			if v == 0 {
				for d := uint(1); d <= Size; d++ {
					cell.dom.Set(d)
				}
			}
		}
	}
	b.wirePeers()
	return b, nil
}

func (b *Board) wirePeers() {
	for i := 0; i < Cells; i++ {
		r, c := i/Size, i%Size
		var seen [Cells]bool
		peers := make([]int, 0, PeersPerCell)
		add := func(j int) {
			if j != i && !seen[j] {
				seen[j] = true
				peers = append(peers, j)
			}
		}
		for x := 0; x < Size; x++ {
			add(r*Size + x)
		}
		for y := 0; y < Size; y++ {
			add(y*Size + c)
		}
		br, bc := r/3*3, c/3*3
		for y := br; y < br+3; y++ {
			for x := bc; x < bc+3; x++ {
				add(y*Size + x)
			}
		}
		b.cells[i].peers = peers
	}
}

// Cell returns the cell at arena index i (row-major).
func (b *Board) Cell(i int) *Cell { return &b.cells[i] }

// At returns the cell at (row, col).
func (b *Board) At(r, c int) *Cell { return &b.cells[r*Size+c] }

// Grid snapshots the current values.
func (b *Board) Grid() domain.Grid {
	var g domain.Grid
	for i := 0; i < Cells; i++ {
		g[i/Size][i%Size] = b.cells[i].value
	}
	return g
}

// FullyAssigned reports whether every cell is finalized.
func (b *Board) FullyAssigned() bool {
	for i := 0; i < Cells; i++ {
		if b.cells[i].value == 0 {
			return false
		}
	}
	return true
}

// UnassignedIndices lists unfinalized cells in row-major order. This
// encounter order is the tie-break for every selection heuristic.
func (b *Board) UnassignedIndices() []int {
	out := make([]int, 0, Cells)
	for i := 0; i < Cells; i++ {
		if b.cells[i].value == 0 {
			out = append(out, i)
		}
	}
	return out
}

// UnfinalizedPeerCount is the degree of cell i: how many of its peers
// are still unassigned.
func (b *Board) UnfinalizedPeerCount(i int) int {
	n := 0
	for _, j := range b.cells[i].peers {
		if b.cells[j].value == 0 {
			n++
		}
	}
	return n
}
