package puzzleio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sudokusat/internal/grid"
)

func writePuzzleFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test puzzle: %v", err)
	}
	return path
}

func TestDetectSizeExperimentHeader(t *testing.T) {
	content := "experiment: fixture\nunused line\nunused line\nGrid 9x9\n" + strings.Repeat("_ _ _ _ _ _ _ _ _\n", 9)
	path := writePuzzleFile(t, content)

	n, err := DetectSize(path)
	if err != nil {
		t.Fatalf("DetectSize: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected N=3 for a 9x9 header, got %d", n)
	}
}

func TestDetectSizeBareHeaderForces9(t *testing.T) {
	content := "some reader tag\nanother header line\n" + strings.Repeat("_ _ _ _ _ _ _ _ _\n", 9)
	path := writePuzzleFile(t, content)

	n, err := DetectSize(path)
	if err != nil {
		t.Fatalf("DetectSize: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected the bare header to force a 9x9 (N=3) puzzle, got N=%d", n)
	}
}

func TestReadAppliesGivenCellsAndLeavesBlanksOpen(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("experiment: fixture\nunused\nunused\nGrid 9x9\n")
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if x == 0 && y == 0 {
				sb.WriteString("5 ")
			} else {
				sb.WriteString("_ ")
			}
		}
		sb.WriteString("\n")
	}
	path := writePuzzleFile(t, sb.String())

	g, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	n, ok := g.NumberAt(0, 0)
	if !ok || n != 4 {
		t.Fatalf("expected (0,0) to be fixed to digit 4 (1-based 5), got %d ok=%v", n, ok)
	}
	if _, ok := g.NumberAt(1, 1); ok {
		t.Fatalf("expected (1,1) to remain undecided")
	}
}

func TestWriteRendersBorderedGrid(t *testing.T) {
	g := grid.New(2)
	g.SetField(0, 0, 1)
	g.SetField(2, 3, 3)

	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "+") || !strings.Contains(out, "|") {
		t.Fatalf("expected bordered ASCII grid, got: %q", out)
	}
	if !strings.Contains(out, "2 ") {
		t.Fatalf("expected digit 2 (1-based) rendered for cell (0,0), got: %q", out)
	}
}
