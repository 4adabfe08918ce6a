package grid

import "testing"

func TestSetFieldFixesSingleCandidate(t *testing.T) {
	g := New(3)
	if applied := g.SetField(0, 0, 4); !applied {
		t.Fatal("expected SetField to apply on an unfixed cell")
	}
	if !g.IsFixed(0, 0) {
		t.Fatal("expected cell to be fixed")
	}
	n, ok := g.NumberAt(0, 0)
	if !ok || n != 4 {
		t.Fatalf("NumberAt(0,0) = (%d, %v), want (4, true)", n, ok)
	}
}

func TestSetFieldIsNoOpWhenAlreadyFixed(t *testing.T) {
	g := New(3)
	g.SetField(0, 0, 4)
	if applied := g.SetField(0, 0, 5); applied {
		t.Fatal("expected second SetField on the same cell to report not-applied")
	}
	n, _ := g.NumberAt(0, 0)
	if n != 4 {
		t.Fatalf("digit changed after no-op SetField: got %d", n)
	}
}

func TestSetFieldEliminatesRowColumnAndBlockPeers(t *testing.T) {
	g := New(3)
	g.SetField(0, 0, 4)

	// row peer (same y, different x)
	if g.Candidates(5, 0).Has(4) {
		t.Error("row peer still has eliminated digit")
	}
	// column peer (same x, different y)
	if g.Candidates(0, 5).Has(4) {
		t.Error("column peer still has eliminated digit")
	}
	// block peer
	if g.Candidates(1, 1).Has(4) {
		t.Error("block peer still has eliminated digit")
	}
	// unrelated cell should be untouched
	if !g.Candidates(8, 8).Has(4) {
		t.Error("unrelated cell lost a candidate it should still have")
	}
}

func TestNumberAtFlipsSolvableOnEmptyCandidateSet(t *testing.T) {
	g := New(3)
	g.cells[1][1] = Candidates{} // force a contradiction directly
	if !g.Solvable() {
		t.Fatal("grid should start solvable")
	}
	if _, ok := g.NumberAt(1, 1); ok {
		t.Fatal("expected NumberAt to report not-decided on empty candidates")
	}
	if g.Solvable() {
		t.Fatal("expected Solvable to flip false after an empty candidate set")
	}
	x, y := g.BlameCell()
	if x != 1 || y != 1 {
		t.Fatalf("BlameCell() = (%d,%d), want (1,1)", x, y)
	}

	// Solvability flips exactly once: a second empty cell must not move blame.
	g.cells[2][2] = Candidates{}
	g.NumberAt(2, 2)
	x, y = g.BlameCell()
	if x != 1 || y != 1 {
		t.Fatalf("blame cell moved after it was already set: got (%d,%d)", x, y)
	}
}

func TestBlockIndexing(t *testing.T) {
	g := New(3)
	if b := g.Block(0, 0); b != 0 {
		t.Errorf("Block(0,0) = %d, want 0", b)
	}
	if b := g.Block(4, 4); b != 4 {
		t.Errorf("Block(4,4) = %d, want 4", b)
	}
	bx, by := g.BlockOrigin(4, 4)
	if bx != 3 || by != 3 {
		t.Errorf("BlockOrigin(4,4) = (%d,%d), want (3,3)", bx, by)
	}
}
