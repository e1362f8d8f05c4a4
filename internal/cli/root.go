// Package cli implements the nqueens command-line interface: a solve command
// around the CSP engine and a benchmark command comparing search strategies.
// The CLI is built using cobra; results go to stdout, logs to stderr.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the nqueens CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "nqueens",
		Short:        "nqueens solves the N-Queens problem as a constraint satisfaction problem",
		Long:         "nqueens places n non-attacking queens on an n-by-n board by modeling the board as a binary CSP: AC-3 arc consistency filtering followed by MRV/LCV-guided backtracking search.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBenchmarkCmd())

	return root.ExecuteContext(context.Background())
}
