package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"nqueens/pkg/board"
	"nqueens/pkg/csp"
)

var (
	validStrategies = []string{"mrv-lcv", "sequential"}
	searchers       = map[string]func() csp.Searcher{
		"mrv-lcv":    csp.NewBacktrackingSearcher,
		"sequential": csp.NewSequentialSearcher,
	}
)

// noSolutionExitCode distinguishes an unsolvable board from a CLI failure,
// mirroring the UNSAT convention of SAT solvers.
const noSolutionExitCode = 20

type solveOpts struct {
	file     string // plain-text layout, one row per line
	json     string // JSON layout file
	size     int    // random layout of the given size
	strategy string // search strategy; empty means the configured default
	noFilter bool   // skip AC-3 filtering
	grid     bool   // ASCII board instead of (column, row) pairs
	out      string // output file; stdout when empty
}

func newSolveCmd() *cobra.Command {
	opts := &solveOpts{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a non-attacking placement of n queens",
		Long: `Solve reads a board layout from a file (--file or --json), generates a
random one (--size), or prompts for a size interactively. The layout's row
values are informational; only its length (the board size) feeds the engine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "path to a layout file with one row index per line")
	cmd.Flags().StringVarP(&opts.json, "json", "j", "", "path to a JSON layout file")
	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "board size for a randomly generated layout")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", `search strategy: "mrv-lcv" or "sequential"`)
	cmd.Flags().BoolVar(&opts.noFilter, "no-filter", false, "skip the AC-3 consistency filter")
	cmd.Flags().BoolVar(&opts.grid, "grid", false, "print the board as an ASCII grid")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the result to a file instead of stdout")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *solveOpts) error {
	logger := loggerFromContext(cmd.Context())

	config, err := loadConfig()
	if err != nil {
		return err
	}

	strategy := opts.strategy
	if strategy == "" {
		strategy = config.Strategy
	}
	if !slices.Contains(validStrategies, strategy) {
		return fmt.Errorf("%v is not a valid strategy", strategy)
	}

	layout, err := resolveLayout(cmd, opts, config)
	if err != nil {
		return err
	}
	n := layout.Size()
	logger.Debugf("starting layout for n=%v: %v", n, layout)

	filter := csp.NewConsistencyFilter()
	if opts.noFilter {
		filter = csp.NewPassthroughFilter()
	}
	solver := csp.NewSolver(filter, searchers[strategy]())

	tracker := newProgress(logger)
	solution, err := solver.Solve(n)
	if err != nil {
		return err
	}
	tracker.done(fmt.Sprintf("Solved n=%v: feasible=%v, pruned=%v, nodes=%v",
		n, solution.Feasible, solution.Stats.ValuesPruned, solution.Stats.SearchNodes))

	if solution.Feasible && !solver.Verify(solution) {
		return fmt.Errorf("solver produced an invalid placement for n=%v", n)
	}

	text := board.Render(solution)
	if opts.grid {
		text = board.Grid(solution)
	}
	if opts.out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	} else if err := os.WriteFile(opts.out, []byte(text+"\n"), 0666); err != nil {
		return fmt.Errorf("cannot write output file: %w", err)
	}

	if !solution.Feasible {
		os.Exit(noSolutionExitCode)
	}
	return nil
}

// resolveLayout picks the layout source: an explicit file wins over a JSON
// file, which wins over a random layout of the requested size; with no source
// at all the board size is read interactively. Size bounds apply only to
// generated layouts.
func resolveLayout(cmd *cobra.Command, opts *solveOpts, config Config) (board.Layout, error) {
	switch {
	case opts.file != "":
		return board.FromFile(opts.file)
	case opts.json != "":
		return board.FromJSON(opts.json)
	}

	size := opts.size
	if size == 0 {
		fmt.Fprint(cmd.OutOrStdout(), "Enter the board size (10 <= n <= 1000): ")
		if _, err := fmt.Fscan(cmd.InOrStdin(), &size); err != nil {
			return nil, fmt.Errorf("cannot read board size: %w", err)
		}
	}
	if size < config.MinSize || size > config.MaxSize {
		return nil, fmt.Errorf("board size %v is outside the configured bounds [%v, %v]", size, config.MinSize, config.MaxSize)
	}
	return board.Random(size), nil
}
