// Package puzzle loads plain-text puzzles: 9 lines of 9 digits,
// 0 = blank.
package puzzle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"svw.info/sudoku-csp/internal/domain"
)

type FS struct{}

func NewFS() *FS { return &FS{} }

// List returns the .txt files directly under dir, sorted by name.
func (*FS) List(ctx context.Context, dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

// Load reads and parses one puzzle file.
func (*FS) Load(ctx context.Context, path string) (domain.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Grid{}, err
	}
	g, err := Parse(string(data))
	if err != nil {
		return domain.Grid{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse decodes the 9-line digit format. Errors name the offending
// line and column (1-based).
func Parse(text string) (domain.Grid, error) {
	var g domain.Grid
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	// drop trailing blank lines
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != 9 {
		return domain.Grid{}, fmt.Errorf("puzzle: want 9 rows, got %d", len(lines))
	}
	for r, line := range lines {
		runes := []rune(strings.TrimRight(line, " \t"))
		if len(runes) != 9 {
			return domain.Grid{}, fmt.Errorf("puzzle: row %d: want 9 digits, got %d", r+1, len(runes))
		}
		for c, ch := range runes {
			if ch < '0' || ch > '9' {
				return domain.Grid{}, fmt.Errorf("puzzle: row %d, col %d: invalid character %q", r+1, c+1, ch)
			}
			g[r][c] = uint8(ch - '0')
		}
	}
	return g, nil
}
