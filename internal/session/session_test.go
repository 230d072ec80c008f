package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-csp/internal/board"
	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/validator"
)

var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var solution = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func solve(t *testing.T, g domain.Grid, cfg domain.Config) domain.SolveResult {
	t.Helper()
	b, err := board.New(g)
	require.NoError(t, err)
	return New(cfg).Solve(context.Background(), b)
}

func TestSolveSampleUnderAllCombos(t *testing.T) {
	for _, combo := range domain.Combos() {
		t.Run(combo.Name, func(t *testing.T) {
			res := solve(t, sample, combo.Config())
			require.True(t, res.Solved)
			assert.Equal(t, solution, res.Grid)

			ok, conflicts, err := validator.New().Validate(context.Background(), res.Grid)
			require.NoError(t, err)
			require.True(t, ok, "conflicts: %v", conflicts)

			assert.Equal(t, 51, res.EmptyCells)
			c, hasC := res.Complexity()
			require.True(t, hasC)
			assert.InDelta(t, float64(res.ConstraintChecks)/51, c, 1e-9)
		})
	}
}

func TestSolveDeterministicConstraintChecks(t *testing.T) {
	for _, combo := range domain.Combos() {
		t.Run(combo.Name, func(t *testing.T) {
			a := solve(t, sample, combo.Config())
			b := solve(t, sample, combo.Config())
			assert.Equal(t, a.Solved, b.Solved)
			assert.Equal(t, a.Metrics, b.Metrics)
		})
	}
}

func TestSolvePreprocessSingleBlank(t *testing.T) {
	g := solution
	g[0][0] = 0

	res := solve(t, g, domain.Config{Preprocess: true})
	require.True(t, res.Solved)
	assert.Equal(t, solution, res.Grid)
	assert.Equal(t, 1, res.EmptyCells)
	// one consistency walk over the blank's 20 peers
	assert.Equal(t, board.PeersPerCell, res.ConstraintChecks)
	assert.Equal(t, 2, res.RecursiveCalls)
	assert.Equal(t, 1, res.Assignments)
}

func TestSolveFullGridComplexityNA(t *testing.T) {
	res := solve(t, solution, domain.Config{})
	require.True(t, res.Solved)
	assert.Equal(t, 0, res.EmptyCells)
	_, ok := res.Complexity()
	assert.False(t, ok)
	assert.Equal(t, "N/A", res.ComplexityString())
}

func TestSolvePropagationWipeout(t *testing.T) {
	// (0,8)'s row demands 9 but its column already holds one.
	g := domain.Grid{}
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	g[1][8] = 9

	start := time.Now()
	res := solve(t, g, domain.Config{})
	assert.False(t, res.Solved)
	assert.Equal(t, 0, res.RecursiveCalls, "search must not run after a wipeout")
	assert.Less(t, time.Since(start), time.Second)
}

func TestSolveContradictionExhaustsWithoutTimeout(t *testing.T) {
	// duplicated 6 forces the two column-0 blanks into the same value
	g := solution
	g[0][0] = 0
	g[1][0] = 0
	g[1][5] = 6

	for _, combo := range domain.Combos() {
		t.Run(combo.Name, func(t *testing.T) {
			start := time.Now()
			res := solve(t, g, combo.Config())
			assert.False(t, res.Solved)
			assert.Less(t, time.Since(start), time.Second, "contradiction must not hit the timeout")
		})
	}
}

func TestSolveTimeoutReportsPartialMetrics(t *testing.T) {
	res := solve(t, sample, domain.Config{Timeout: time.Nanosecond})
	assert.False(t, res.Solved)
	assert.Equal(t, 51, res.EmptyCells)
	assert.Equal(t, 1, res.RecursiveCalls)
}

func TestRunnerIsolatesCallers(t *testing.T) {
	r := NewRunner()
	a, err := r.Solve(context.Background(), sample, domain.Config{})
	require.NoError(t, err)
	b, err := r.Solve(context.Background(), sample, domain.Config{})
	require.NoError(t, err)
	assert.Equal(t, a.Metrics, b.Metrics)
	assert.Equal(t, a.Grid, b.Grid)

	bad := sample
	bad[3][3] = 12
	_, err = r.Solve(context.Background(), bad, domain.Config{})
	var ce *board.ConstructionError
	require.ErrorAs(t, err, &ce)
}
