// Package cli wires sudokusat's cobra command tree: solve, benchmark, and
// serve, plus the shared -v/-d flags the original's option parser
// recognized as "verbose" and "omit output".
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	omitOutput bool
	log        = logrus.New()
)

// Execute builds and runs the root command.
func Execute() error {
	root := &cobra.Command{
		Use:   "sudokusat",
		Short: "Reduce generalized Sudoku puzzles to SAT and solve them",
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress at debug level")
	root.PersistentFlags().BoolVarP(&omitOutput, "omit-output", "d", false, "don't print the solved grid")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBenchmarkCmd())
	root.AddCommand(newServeCmd())

	return root.Execute()
}

func configureLogger() *logrus.Entry {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return logrus.NewEntry(log)
}
