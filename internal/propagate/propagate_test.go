package propagate

import (
	"testing"

	"sudokusat/internal/grid"
	"sudokusat/pkg/config"
)

// fill9 builds a fully solved classic grid from a row pattern shifted by
// row index, fixing every cell through SetField.
func fill9(t *testing.T) *grid.Grid {
	t.Helper()
	g := grid.New(3)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			d := (x + 3*(y%3) + y/3) % 9
			g.SetField(x, y, d)
		}
	}
	return g
}

func TestHiddenSinglesColumnsFillsLastCandidate(t *testing.T) {
	g := grid.New(3)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if x == 0 && y == 0 {
				continue
			}
			d := (x + 3*(y%3) + y/3) % 9
			g.SetField(x, y, d)
		}
	}
	s := New(g, config.Default(3))
	if !s.hiddenSinglesColumns() {
		t.Fatalf("expected hiddenSinglesColumns to report progress")
	}
	n, ok := g.NumberAt(0, 0)
	if !ok {
		t.Fatalf("expected cell (0,0) to be solved")
	}
	if n != 0 {
		t.Fatalf("expected digit 0 at (0,0), got %d", n)
	}
}

func TestNakedSubsetsRestrictedToRowColumn(t *testing.T) {
	g := grid.New(3)
	two := grid.Candidates{}.Set(0).Set(1)
	g.SetCandidates(0, 0, two)
	g.SetCandidates(1, 0, two)
	for x := 2; x < 9; x++ {
		if !g.Candidates(x, 0).Has(0) {
			t.Fatalf("sanity: expected digit 0 still candidate at (%d,0)", x)
		}
	}

	s := New(g, config.Default(3))
	if !s.nakedSubsets() {
		t.Fatalf("expected nakedSubsets to report progress")
	}
	for x := 2; x < 9; x++ {
		if g.Candidates(x, 0).Has(0) || g.Candidates(x, 0).Has(1) {
			t.Fatalf("expected digits 0,1 eliminated from (%d,0)", x)
		}
	}
}

func TestPointingCandidatesClearsOutsideBlock(t *testing.T) {
	g := grid.New(3)
	for x := 1; x < 3; x++ {
		for y := 0; y < 3; y++ {
			g.SetCandidates(x, y, g.Candidates(x, y).Clear(0))
		}
	}
	s := New(g, config.Default(3))
	if !s.pointingCandidates() {
		t.Fatalf("expected pointingCandidates to report progress")
	}
	for y := 3; y < 9; y++ {
		if g.Candidates(0, y).Has(0) {
			t.Fatalf("expected digit 0 cleared from (0,%d)", y)
		}
	}
}

func TestBoxLineReductionClearsInsideBlock(t *testing.T) {
	g := grid.New(3)
	for y := 3; y < 9; y++ {
		g.SetCandidates(0, y, g.Candidates(0, y).Clear(0))
	}
	s := New(g, config.Default(3))
	if !s.boxLineReduction() {
		t.Fatalf("expected boxLineReduction to report progress")
	}
	for xi := 1; xi < 3; xi++ {
		for yi := 0; yi < 3; yi++ {
			if g.Candidates(xi, yi).Has(0) {
				t.Fatalf("expected digit 0 cleared from (%d,%d)", xi, yi)
			}
		}
	}
}

func TestXWingEliminatesAcrossColumns(t *testing.T) {
	g := grid.New(3)
	for x := 0; x < 9; x++ {
		for y := 0; y < 9; y++ {
			g.SetCandidates(x, y, g.Candidates(x, y).Clear(0))
		}
	}
	for _, x := range []int{0, 4} {
		for _, y := range []int{1, 6} {
			g.SetCandidates(x, y, g.Candidates(x, y).Set(0))
		}
	}
	g.SetCandidates(2, 1, g.Candidates(2, 1).Set(0))

	s := New(g, config.Default(3))
	if !s.xWing() {
		t.Fatalf("expected xWing to report progress")
	}
	if g.Candidates(2, 1).Has(0) {
		t.Fatalf("expected digit 0 cleared from (2,1) by x-wing")
	}
	if !g.Candidates(0, 1).Has(0) || !g.Candidates(4, 6).Has(0) {
		t.Fatalf("expected x-wing corners to retain the digit")
	}
}

func TestRunReachesFixedPointOnFullySolvedGrid(t *testing.T) {
	g := fill9(t)
	s := New(g, config.Default(3))
	s.Run()
	if !g.Solvable() {
		t.Fatalf("expected solved grid to remain solvable")
	}
	if g.SolvedCells() != 81 {
		t.Fatalf("expected 81 solved cells, got %d", g.SolvedCells())
	}
}

func TestRunSkipsWhenSimpleSolvingDisabled(t *testing.T) {
	g := grid.New(3)
	cfg := config.Default(3)
	cfg.SimpleSolvingEnabled = false
	s := New(g, cfg)
	s.Run()
	if g.SolvedCells() != 0 {
		t.Fatalf("expected no cells solved when simple solving is disabled, got %d", g.SolvedCells())
	}
}
