// Package propagate implements spec's Simple Solver: iterated constraint
// propagation using seven named rules, run to a fixed point before the
// puzzle is handed to the SAT encoder.
//
// Grounded on original_source/my_solver/Sudoku.cpp (simple_solve and the
// seven rule functions it calls in order); each rule lives in its own file
// the way the teacher splits techniques_*.go per rule family.
package propagate

import (
	"sudokusat/internal/grid"
	"sudokusat/pkg/config"
)

// Solver runs the simple-solve rule set against a grid.Grid under a given
// configuration.
type Solver struct {
	g   *grid.Grid
	cfg config.EncoderConfig
}

// New creates a Solver bound to g under cfg. The grid is mutated in place.
func New(g *grid.Grid, cfg config.EncoderConfig) *Solver {
	return &Solver{g: g, cfg: cfg}
}

// Run applies the rule set until a fixed point, following the original's
// order-of-application policy exactly: retry rules 1-5 (naked singles,
// naked subsets, the three hidden-singles scans) from the top on any
// progress; only fall through to pointing/box-line, and then to x-wing,
// once those have stalled. It keeps iterating even after the grid becomes
// unsolvable, same as the original's do/while(keep_going) loop, since a
// contradiction doesn't stop rule application from terminating normally.
func (s *Solver) Run() {
	if !s.cfg.SimpleSolvingEnabled {
		return
	}

	for {
		progress := false

		if s.nakedSingles() {
			progress = true
		}
		if s.nakedSubsets() {
			progress = true
		}
		if s.hiddenSinglesColumns() {
			progress = true
		}
		if s.hiddenSinglesRows() {
			progress = true
		}
		if s.hiddenSinglesBlocks() {
			progress = true
		}

		if progress {
			continue
		}

		if s.cfg.PointingCandidatesEnabled && s.pointingCandidates() {
			progress = true
		}
		if s.cfg.BoxLineReductionEnabled && s.boxLineReduction() {
			progress = true
		}

		if progress {
			continue
		}

		if s.cfg.XWingEnabled && s.xWing() {
			progress = true
		}

		if !progress {
			return
		}
	}
}

// nakedSingles fixes every unfixed cell that has exactly one remaining
// candidate. Mirrors Sudoku::naked_singles.
func (s *Solver) nakedSingles() bool {
	result := false
	for x := 0; x < s.g.S; x++ {
		for y := 0; y < s.g.S; y++ {
			n, ok := s.g.NumberAt(x, y)
			if ok && !s.g.IsFixed(x, y) {
				s.g.SetField(x, y, n)
				result = true
			}
		}
	}
	return result
}
