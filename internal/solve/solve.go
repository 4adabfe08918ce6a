// Package solve orchestrates one puzzle end to end: read, propagate,
// encode to CNF, hand off to an external SAT solver process, decode the
// model, and report timing. Grounded on solve_sudoku/system_call/
// signal_handler in original_source/my_solver/Sudoku.cpp.
package solve

import (
	"context"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"sudokusat/internal/grid"
	"sudokusat/internal/propagate"
	"sudokusat/internal/puzzleio"
	"sudokusat/internal/satenc"
	"sudokusat/pkg/config"
	"sudokusat/pkg/constants"
)

// Options configures one solve run.
type Options struct {
	PuzzlePath string
	SolverCmd  string
	SolverArgs []string
	WorkDir    string
	Verbose    bool
	OmitOutput bool
	Log        *logrus.Entry
}

// Result reports what a solve run found, including the size/clause
// counters the original prints to its benchmark CSV.
type Result struct {
	Grid *grid.Grid

	Size       int
	CESize     int
	NumAtoms   int
	NumClauses int

	Unsolvable   bool
	UnsolvableAt [2]int

	EncodingTime time.Duration
	TotalTime    time.Duration
}

// Run executes one solve: a puzzle that propagation already proves
// contradictory is reported via Result.Unsolvable, never as an error.
// Errors are reserved for I/O, encoding, and subprocess failures.
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	g, err := puzzleio.Read(opts.PuzzlePath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading puzzle %q", opts.PuzzlePath)
	}

	if opts.Verbose && g.S <= constants.MaxPrintSize {
		var sb strings.Builder
		_ = puzzleio.Write(&sb, g)
		log.Debug("initial grid:\n" + sb.String())
	}

	knownBefore := g.SolvedCells()
	if !g.Solvable() {
		x, y := g.BlameCell()
		return &Result{Grid: g, Size: g.S, Unsolvable: true, UnsolvableAt: [2]int{x, y}, TotalTime: time.Since(start)}, nil
	}
	log.WithFields(logrus.Fields{"filled": knownBefore, "total": g.S * g.S}).Debug("cells filled before propagation")

	cfg := config.Default(g.N)
	propagate.New(g, cfg).Run()

	if !g.Solvable() {
		x, y := g.BlameCell()
		return &Result{Grid: g, Size: g.S, Unsolvable: true, UnsolvableAt: [2]int{x, y}, TotalTime: time.Since(start)}, nil
	}

	knownAfter := g.SolvedCells()
	log.WithFields(logrus.Fields{"found": knownAfter - knownBefore, "filled": knownAfter, "total": g.S * g.S}).
		Debug("propagation done")

	lut := satenc.BuildLUT(g)
	enc, err := satenc.NewEncoder(g, lut, cfg, log)
	if err != nil {
		return nil, err
	}

	numClauses, err := enc.GenerateAll()
	if err != nil {
		enc.Close()
		return nil, err
	}

	cnfPath := filepath.Join(workDir, constants.DefaultCNFFilename)
	if err := enc.Finalize(cnfPath); err != nil {
		return nil, err
	}

	encodingTime := time.Since(start)

	modelPath := filepath.Join(workDir, constants.DefaultModelFilename)
	log.WithField("solver", opts.SolverCmd).Debug("invoking external SAT solver")
	if err := runSolver(ctx, opts.SolverCmd, opts.SolverArgs, cnfPath, modelPath); err != nil {
		return nil, errors.Wrap(err, "running external SAT solver")
	}

	if err := satenc.Decode(modelPath, g, lut); err != nil {
		return nil, errors.Wrap(err, "decoding solver output")
	}

	if !opts.OmitOutput {
		var sb strings.Builder
		_ = puzzleio.Write(&sb, g)
		log.Info("solved grid:\n" + sb.String())
	}

	return &Result{
		Grid:         g,
		Size:         g.S,
		CESize:       cfg.CommanderGroupSize,
		NumAtoms:     enc.TotalAtoms(),
		NumClauses:   numClauses,
		EncodingTime: encodingTime,
		TotalTime:    time.Since(start),
	}, nil
}

// runSolver hands the CNF off to an external SAT solver subprocess and
// forwards termination signals to it, the idiomatic equivalent of
// system_call's fork/exec/wait plus signal_handler's forwarding kill(). A
// nonzero exit status is not an error: solvers conventionally use it to
// report SAT/UNSAT rather than failure, exactly as the original ignores
// the child's exit code and only checks whether the fork itself succeeded.
func runSolver(ctx context.Context, solverCmd string, solverArgs []string, cnfPath, modelPath string) error {
	out, err := os.Create(modelPath)
	if err != nil {
		return errors.Wrapf(err, "creating solver output file %q", modelPath)
	}
	defer out.Close()

	args := append(append([]string{}, solverArgs...), cnfPath)
	cmd := exec.CommandContext(ctx, solverCmd, args...)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "starting solver %q", solverCmd)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGABRT)
	defer signal.Stop(sigCh)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case sig := <-sigCh:
		if cmd.Process != nil {
			_ = cmd.Process.Signal(sig)
		}
		<-done
		return errors.Errorf("solver interrupted by signal %v", sig)
	case <-done:
		// Exit status deliberately ignored; see the doc comment above.
		return nil
	}
}
