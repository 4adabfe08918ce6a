package cli

import (
	"context"

	"github.com/spf13/cobra"

	"sudokusat/internal/solve"
)

func newBenchmarkCmd() *cobra.Command {
	var workDir string

	cmd := &cobra.Command{
		Use:   "benchmark [folder] [sat-solver] [output-file]",
		Short: "Sweep a folder of extableN-K.txt puzzles and record timing to CSV",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logEntry := configureLogger()
			return solve.Benchmark(context.Background(), solve.BenchmarkOptions{
				Dir:        args[0],
				SolverCmd:  args[1],
				OutputPath: args[2],
				WorkDir:    workDir,
				Log:        logEntry,
			})
		},
	}

	cmd.Flags().StringVar(&workDir, "work-dir", ".", "directory for intermediate CNF/model files")
	return cmd
}
