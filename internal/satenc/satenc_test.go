package satenc

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"sudokusat/internal/grid"
	"sudokusat/pkg/config"
)

// digits snapshots the solved (or blank) value of every cell, -1 for still
// unfixed, so two grids can be structurally diffed with cmp.
func digits(g *grid.Grid, size int) [][]int {
	out := make([][]int, size)
	for y := 0; y < size; y++ {
		out[y] = make([]int, size)
		for x := 0; x < size; x++ {
			if n, ok := g.NumberAt(x, y); ok {
				out[y][x] = n
			} else {
				out[y][x] = -1
			}
		}
	}
	return out
}

func solved4x4(t *testing.T) *grid.Grid {
	t.Helper()
	g := grid.New(2)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			d := (x + 2*(y%2) + y/2) % 4
			g.SetField(x, y, d)
		}
	}
	return g
}

func TestLUTRoundTripsPosition(t *testing.T) {
	g := grid.New(3)
	lut := BuildLUT(g)
	if lut.NumAtoms() != 9*9*9 {
		t.Fatalf("expected a fully unconstrained grid to keep every atom, got %d", lut.NumAtoms())
	}
	for x := 0; x < 9; x++ {
		for y := 0; y < 9; y++ {
			for n := 0; n < 9; n++ {
				atom := lut.Lookup(x, y, n)
				if atom == 0 {
					t.Fatalf("expected atom for (%d,%d,%d) to survive on an unconstrained grid", x, y, n)
				}
				gx, gy, gn := lut.Position(atom)
				if gx != x || gy != y || gn != n {
					t.Fatalf("Position(%d) = (%d,%d,%d), want (%d,%d,%d)", atom, gx, gy, gn, x, y, n)
				}
			}
		}
	}
}

func TestLUTDropsEliminatedCandidates(t *testing.T) {
	g := solved4x4(t)
	lut := BuildLUT(g)
	if lut.NumAtoms() != 16 {
		t.Fatalf("expected a fully solved 4x4 grid to keep exactly 16 atoms, got %d", lut.NumAtoms())
	}
}

func TestEncoderGeneratesAndDecodesRoundTrip(t *testing.T) {
	g := solved4x4(t)
	lut := BuildLUT(g)
	cfg := config.Default(2)

	enc, err := NewEncoder(g, lut, cfg, nil)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	n, err := enc.GenerateAll()
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if n == 0 {
		t.Fatalf("expected at least one clause")
	}

	dir := t.TempDir()
	cnfPath := filepath.Join(dir, "out.cnf")
	if err := enc.Finalize(cnfPath); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	data, err := os.ReadFile(cnfPath)
	if err != nil {
		t.Fatalf("reading CNF: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty CNF output")
	}

	modelPath := filepath.Join(dir, "model.txt")
	if err := os.WriteFile(modelPath, solvedModelLines(g, lut), 0o644); err != nil {
		t.Fatalf("writing model file: %v", err)
	}

	decoded := grid.New(2)
	if err := Decode(modelPath, decoded, lut); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if diff := cmp.Diff(digits(g, 4), digits(decoded, 4)); diff != "" {
		t.Fatalf("decoded grid diverged from the encoded one (-want +got):\n%s", diff)
	}
}

// solvedModelLines builds a fake DIMACS "v" line asserting every atom the
// LUT assigned to g's actual solved digits, as if an external solver had
// emitted it.
func solvedModelLines(g *grid.Grid, lut *LUT) []byte {
	var lits []string
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			n, ok := g.NumberAt(x, y)
			if !ok {
				continue
			}
			lits = append(lits, strconv.Itoa(lut.Lookup(x, y, n)))
		}
	}
	line := "v"
	for _, l := range lits {
		line += " " + l
	}
	line += " 0\n"
	return []byte(line)
}

func TestDecodeIgnoresNegativeAndOutOfRangeLiterals(t *testing.T) {
	g := grid.New(2)
	lut := BuildLUT(g)

	dir := t.TempDir()
	path := filepath.Join(dir, "model.txt")
	atom := lut.Lookup(0, 0, 2)
	content := "s SATISFIABLE\nv -1 -2 " + strconv.Itoa(atom) + " 9999 0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing model file: %v", err)
	}

	if err := Decode(path, g, lut); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, ok := g.NumberAt(0, 0)
	if !ok || got != 2 {
		t.Fatalf("expected (0,0) decoded to digit 2, got %d (ok=%v)", got, ok)
	}
}
