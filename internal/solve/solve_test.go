package solve

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeSolverScript returns the path to a trivial shell script standing in
// for an external SAT solver: it ignores its input and prints one "v" line
// repeating literal 1 vars times, which is not a real model but is
// perfectly fine for exercising the plumbing around an external process.
func fakeSolverScript(t *testing.T, vars int) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fake-solver.sh")
	var sb strings.Builder
	sb.WriteString("#!/bin/sh\necho s SATISFIABLE\necho -n v ")
	for i := 1; i <= vars; i++ {
		sb.WriteString("1 ")
	}
	sb.WriteString("0\n")
	if err := os.WriteFile(path, []byte(sb.String()), 0o755); err != nil {
		t.Fatalf("writing fake solver: %v", err)
	}
	return path
}

func writeTinyPuzzle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.txt")
	var sb strings.Builder
	sb.WriteString("experiment: fixture\nunused\nunused\nGrid 4x4\n")
	rows := []string{
		"1 _ _ _",
		"_ _ _ 2",
		"_ 1 _ _",
		"_ _ 2 _",
	}
	for _, r := range rows {
		sb.WriteString(r + "\n")
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("writing puzzle: %v", err)
	}
	return path
}

func TestRunReportsUnsolvableWithoutError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contradiction.txt")
	var sb strings.Builder
	sb.WriteString("experiment: fixture\nunused\nunused\nGrid 4x4\n")
	rows := []string{
		"1 2 _ _",
		"2 _ _ _",
		"_ _ _ _",
		"_ _ _ _",
	}
	for _, r := range rows {
		sb.WriteString(r + "\n")
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("writing puzzle: %v", err)
	}

	res, err := Run(context.Background(), Options{PuzzlePath: path, WorkDir: t.TempDir(), OmitOutput: true})
	if err != nil {
		t.Fatalf("expected no error for a propagation-detected contradiction, got %v", err)
	}
	if !res.Unsolvable {
		t.Fatalf("expected Result.Unsolvable=true")
	}
}

func TestRunInvokesExternalSolverAndDecodes(t *testing.T) {
	puzzlePath := writeTinyPuzzle(t)
	solver := fakeSolverScript(t, 64)

	res, err := Run(context.Background(), Options{
		PuzzlePath: puzzlePath,
		SolverCmd:  solver,
		WorkDir:    t.TempDir(),
		OmitOutput: true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Unsolvable {
		t.Fatalf("did not expect an unsolvable result")
	}
	if res.NumClauses == 0 {
		t.Fatalf("expected a nonzero clause count")
	}
}
