package cli

import (
	"context"

	"github.com/spf13/cobra"

	"sudokusat/internal/solve"
)

func newSolveCmd() *cobra.Command {
	var workDir string

	cmd := &cobra.Command{
		Use:   "solve [path] [sat-solver]",
		Short: "Solve a single puzzle file with an external SAT solver",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logEntry := configureLogger()
			result, err := solve.Run(context.Background(), solve.Options{
				PuzzlePath: args[0],
				SolverCmd:  args[1],
				WorkDir:    workDir,
				Verbose:    verbose,
				OmitOutput: omitOutput,
				Log:        logEntry,
			})
			if err != nil {
				return err
			}
			if result.Unsolvable {
				cmd.PrintErrf("This Sudoku is unsolvable! No possible number for cell at position %d, %d.\n",
					result.UnsolvableAt[0]+1, result.UnsolvableAt[1]+1)
				return nil
			}
			cmd.Printf("Encoding took %.3f seconds, total %.3f seconds\n",
				result.EncodingTime.Seconds(), result.TotalTime.Seconds())
			return nil
		},
	}

	cmd.Flags().StringVar(&workDir, "work-dir", ".", "directory for intermediate CNF/model files")
	return cmd
}
