package solve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"sudokusat/pkg/constants"
)

// BenchmarkOptions configures a benchmark sweep over a directory of
// "extableN-K.txt" puzzles.
type BenchmarkOptions struct {
	Dir        string
	SolverCmd  string
	SolverArgs []string
	OutputPath string
	WorkDir    string
	Log        *logrus.Entry
}

// Benchmark walks dir for files named extable<N*N>-<K>.txt with N starting
// at 3 and K starting at 1, solving each it finds and appending a CSV row.
// The first missing K for a given N advances to N+1 and resets K to 1;
// the sweep stops once N exceeds constants.MaxN. Mirrors
// benchmark_sudokus.
func Benchmark(ctx context.Context, opts BenchmarkOptions) error {
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	out, err := os.Create(opts.OutputPath)
	if err != nil {
		return errors.Wrapf(err, "creating benchmark output %q", opts.OutputPath)
	}
	if _, err := fmt.Fprintln(out, constants.BenchmarkCSVHeader); err != nil {
		out.Close()
		return errors.Wrap(err, "writing benchmark header")
	}
	out.Close()

	n := constants.MinN
	count := 0
	for n <= constants.MaxN {
		count++
		path := filepath.Join(opts.Dir, fmt.Sprintf("extable%d-%d.txt", n*n, count))
		if _, err := os.Stat(path); err != nil {
			n++
			count = 0
			continue
		}

		log.WithField("path", path).Info("benchmarking puzzle")
		result, err := Run(ctx, Options{
			PuzzlePath: path,
			SolverCmd:  opts.SolverCmd,
			SolverArgs: opts.SolverArgs,
			WorkDir:    opts.WorkDir,
			OmitOutput: true,
			Log:        log,
		})
		if err != nil {
			return errors.Wrapf(err, "benchmarking %q", path)
		}

		if err := appendBenchmarkRow(opts.OutputPath, path, result); err != nil {
			return err
		}
	}

	return nil
}

func appendBenchmarkRow(outputPath, puzzlePath string, r *Result) error {
	f, err := os.OpenFile(outputPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "appending to benchmark output %q", outputPath)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s,%d,%d,%d,%d,%.3f\n",
		puzzlePath, r.Size, r.CESize, r.NumAtoms, r.NumClauses, r.TotalTime.Seconds())
	return err
}
