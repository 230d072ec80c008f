package batch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/infrastructure/puzzle"
	"svw.info/sudoku-csp/internal/session"
)

const sampleText = `530070000
600195000
098000060
800060003
400803001
700020006
060000280
000419005
000080079
`

type captureReporter struct {
	mu   sync.Mutex
	rows []domain.ReportRow
}

func (c *captureReporter) Write(ctx context.Context, rows []domain.ReportRow) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = append([]domain.ReportRow(nil), rows...)
	return nil
}

func TestRunMatrix(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "p1.txt"), []byte(sampleText), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "p2.txt"), []byte(sampleText), 0o644))

	rep := &captureReporter{}
	h := &Harness{
		Source:      puzzle.NewFS(),
		Solver:      session.NewRunner(),
		Reporter:    rep,
		Workers:     4,
		UnitTimeout: 10 * time.Second,
		Log:         zerolog.Nop(),
	}

	rows, err := h.Run(context.Background(), dir)
	require.NoError(t, err)

	combos := domain.Combos()
	require.Len(t, rows, 2*len(combos))
	assert.Equal(t, rows, rep.rows)

	// deterministic (file, combo) ordering regardless of completion order
	for fi, file := range []string{"p1.txt", "p2.txt"} {
		for ci, combo := range combos {
			row := rows[fi*len(combos)+ci]
			assert.Equal(t, file, row.File)
			assert.Equal(t, combo.Name, row.Combo.Name)
			assert.True(t, row.Result.Solved, "%s / %s", file, combo.Name)
			assert.Equal(t, 51, row.Result.EmptyCells)
		}
	}

	// identical units produce identical counters
	for ci := range combos {
		assert.Equal(t, rows[ci].Result.Metrics, rows[len(combos)+ci].Result.Metrics)
	}
}

func TestRunMissingDir(t *testing.T) {
	h := &Harness{
		Source: puzzle.NewFS(),
		Solver: session.NewRunner(),
		Log:    zerolog.Nop(),
	}
	_, err := h.Run(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestRunEmptyDirWritesNoRows(t *testing.T) {
	rep := &captureReporter{}
	h := &Harness{
		Source:   puzzle.NewFS(),
		Solver:   session.NewRunner(),
		Reporter: rep,
		Log:      zerolog.Nop(),
	}
	rows, err := h.Run(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
