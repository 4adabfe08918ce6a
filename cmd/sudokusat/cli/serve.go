package cli

import (
	"context"

	"github.com/spf13/cobra"

	"sudokusat/internal/httpapi"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		solverCmd string
		workDir   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP (POST /api/solve, GET /health)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logEntry := configureLogger()
			server := httpapi.NewServer(httpapi.Config{
				Addr:      addr,
				SolverCmd: solverCmd,
				WorkDir:   workDir,
				Log:       logEntry,
			})
			return server.Run(context.Background())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on (default :8080)")
	cmd.Flags().StringVar(&solverCmd, "solver", "clasp", "external SAT solver binary to invoke")
	cmd.Flags().StringVar(&workDir, "work-dir", "", "base directory for per-request scratch directories")

	return cmd
}
