package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"svw.info/sudoku-csp/internal/batch"
	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/infrastructure/puzzle"
	"svw.info/sudoku-csp/internal/infrastructure/report"
	"svw.info/sudoku-csp/internal/logger"
	"svw.info/sudoku-csp/internal/session"
	"svw.info/sudoku-csp/internal/usecase"
	"svw.info/sudoku-csp/internal/validator"
)

func newService() *usecase.Service {
	return usecase.NewService(session.NewRunner(), validator.New(), puzzle.NewFS(), nil)
}

func setLevel(levelStr string) {
	lvl := zerolog.InfoLevel
	switch strings.ToLower(levelStr) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	logger.Set(logger.Logger().Level(lvl))
}

func newSolveCmd() *cobra.Command {
	var cfg domain.Config
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve one puzzle file and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Timeout = timeout
			svc := newService()
			ctx := cmd.Context()

			grid, err := svc.Load(ctx, args[0])
			if err != nil {
				return err
			}
			res, err := svc.Solve(ctx, grid, cfg)
			if err != nil {
				return err
			}
			ok, conflicts, err := svc.Validate(ctx, res.Grid)
			if err != nil {
				return err
			}

			fmt.Print(res.Grid)
			fmt.Printf("solved: %v  valid: %v  duration: %v\n", res.Solved, ok, res.Duration.Round(time.Millisecond))
			fmt.Printf("empty cells: %d  constraint checks: %d  domain reductions: %d\n",
				res.EmptyCells, res.ConstraintChecks, res.DomainReductions)
			fmt.Printf("recursive calls: %d  assignments: %d  complexity: %s\n",
				res.RecursiveCalls, res.Assignments, res.ComplexityString())
			for _, c := range conflicts {
				fmt.Printf("conflict at (%d,%d)\n", c.Row, c.Col)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&cfg.Preprocess, "preprocess", false, "strip finalized values from peer domains before AC-3")
	cmd.Flags().BoolVar(&cfg.MRVAC3, "mrv-ac3", false, "order re-enqueued arcs by smallest domain")
	cmd.Flags().BoolVar(&cfg.DegreeAC3, "degree-ac3", false, "order re-enqueued arcs by most unassigned peers")
	cmd.Flags().BoolVar(&cfg.MRVBacktracking, "mrv-backtracking", false, "branch on the cell with the smallest domain")
	cmd.Flags().BoolVar(&cfg.DegreeBacktracking, "degree-backtracking", false, "break MRV ties by most unassigned peers")
	cmd.Flags().BoolVar(&cfg.Feedback, "feedback", false, "log per-step solver feedback")
	cmd.Flags().DurationVar(&timeout, "timeout", domain.DefaultTimeout, "search budget")
	return cmd
}

func newBatchCmd() *cobra.Command {
	var out string
	var workers int
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Evaluate all heuristic combinations over a folder of puzzles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := &batch.Harness{
				Source:      puzzle.NewFS(),
				Solver:      session.NewRunner(),
				Reporter:    report.NewCSV(out),
				Workers:     workers,
				UnitTimeout: timeout,
				Log:         logger.Logger(),
			}
			rows, err := h.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("wrote %d rows to %s\n", len(rows), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "sudoku_complexity_results.csv", "CSV output path")
	cmd.Flags().IntVar(&workers, "workers", 0, "max concurrent units (0 = GOMAXPROCS)")
	cmd.Flags().DurationVar(&timeout, "timeout", domain.DefaultTimeout, "per-unit budget")
	return cmd
}

func main() {
	var levelStr string

	root := &cobra.Command{
		Use:   "sudoku-csp",
		Short: "Sudoku constraint solver (AC-3 + backtracking) with heuristic benchmarking",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setLevel(levelStr)
		},
	}
	root.PersistentFlags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	root.AddCommand(newSolveCmd(), newBatchCmd())

	if err := root.Execute(); err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
