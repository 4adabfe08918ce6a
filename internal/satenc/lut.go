// Package satenc turns a propagated grid.Grid into a DIMACS CNF formula and
// decodes a SAT solver's model back into cell assignments.
package satenc

import "sudokusat/internal/grid"

// RawAtom computes the unlooked-up atom number for the literal "digit n is
// placed at (x,y)". The +1 keeps 0 reserved as an impossible literal, and n
// is 0-indexed to match grid's candidate bitset convention.
func RawAtom(x, y, n, size int) int {
	return x*size*size + y*size + n + 1
}

// LUT compacts the raw atom numbering down to only the atoms a propagated
// grid still considers possible, so the generated CNF doesn't waste a
// variable on every literal a naked-single already eliminated. Forward maps
// a raw atom to its compact number (0 if eliminated); Reverse is the
// inverse, used to decode a solver's model back into (x,y,n) triples.
// Grounded on Sudoku::create_lut / Sudoku::get_position.
type LUT struct {
	size    int
	forward []int
	reverse []int
}

// BuildLUT scans the grid in (y,x,n) order, assigning compact atom numbers
// 1..N in the order surviving candidates are encountered. This scan order
// is preserved verbatim from the source even though it has no semantic
// effect on the resulting formula, since later atom numbers only change
// variable names, not clause structure.
func BuildLUT(g *grid.Grid) *LUT {
	size := g.S
	l := &LUT{
		size:    size,
		forward: make([]int, size*size*size+1),
		reverse: make([]int, 1, size*size*size+1),
	}

	counter := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			for n := 0; n < size; n++ {
				if !g.Candidates(x, y).Has(n) {
					continue
				}
				raw := RawAtom(x, y, n, size)
				counter++
				l.forward[raw] = counter
				l.reverse = append(l.reverse, raw)
			}
		}
	}

	return l
}

// Lookup returns the compact atom number for (x,y,n), or 0 if propagation
// already ruled that literal out.
func (l *LUT) Lookup(x, y, n int) int {
	return l.forward[RawAtom(x, y, n, l.size)]
}

// NumAtoms is the count of surviving atoms, i.e. the highest compact atom
// number in use before any commander-encoding extra atoms are allocated.
func (l *LUT) NumAtoms() int {
	return len(l.reverse) - 1
}

// Position inverts a compact atom number back to the (x,y,n) triple it
// names. Mirrors Sudoku::get_position.
func (l *LUT) Position(atom int) (x, y, n int) {
	raw := l.reverse[atom] - 1
	n = raw % l.size
	raw /= l.size
	y = raw % l.size
	raw /= l.size
	x = raw
	return x, y, n
}
