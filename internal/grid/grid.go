// Package grid implements spec's Candidate Tensor and Assignment Operator:
// a dense per-cell candidate bitset, the sole operation (SetField) allowed
// to move a cell from unknown to known, and the monotone infeasibility
// signal that operation maintains.
//
// Grounded on original_source/my_solver/Sudoku.cpp (mSudoku_matrix,
// set_field, get_number_at_position) and generalized per spec.md's Design
// Notes to a bitset-per-cell instead of a nested bool tensor.
package grid

// Grid is the S x S candidate tensor for one puzzle, plus the fixed-cell
// flags and the solvability signal. Cell (x, y) means column x, row y,
// matching the coordinate convention of the original encoder; n is the
// 0-based digit index used throughout the solving core.
type Grid struct {
	N int // block side
	S int // grid side, S = N*N

	cells [][]Candidates
	fixed [][]bool

	solvable bool
	blameX   int
	blameY   int
}

// New creates an S x S grid with every candidate initially possible and no
// cell fixed.
func New(n int) *Grid {
	s := n * n
	g := &Grid{N: n, S: s, solvable: true, blameX: -1, blameY: -1}
	g.cells = make([][]Candidates, s)
	g.fixed = make([][]bool, s)
	for x := 0; x < s; x++ {
		g.cells[x] = make([]Candidates, s)
		g.fixed[x] = make([]bool, s)
		for y := 0; y < s; y++ {
			g.cells[x][y] = full(s)
		}
	}
	return g
}

// Candidates returns the candidate bitset currently held for cell (x, y).
func (g *Grid) Candidates(x, y int) Candidates {
	return g.cells[x][y]
}

// SetCandidates overwrites the candidate bitset for cell (x, y). Rule
// implementations in internal/propagate use this directly; it does not by
// itself fix the cell or propagate consequences the way SetField does.
func (g *Grid) SetCandidates(x, y int, c Candidates) {
	g.cells[x][y] = c
}

// IsFixed reports whether cell (x, y) has been fixed via SetField.
func (g *Grid) IsFixed(x, y int) bool {
	return g.fixed[x][y]
}

// SetField is the only legitimate way to transition a cell from unknown to
// known. It fixes (x, y) to digit n and eliminates n from every peer in
// the row, column, and block, mirroring Sudoku::set_field exactly
// (including which axis is called "row" vs "column" there). Applying it to
// an already-fixed cell is a no-op, reported via the bool return.
func (g *Grid) SetField(x, y, n int) bool {
	if n < 0 || n >= g.S || x < 0 || x >= g.S || y < 0 || y >= g.S {
		return false
	}
	if g.fixed[x][y] {
		return false
	}

	g.fixed[x][y] = true

	for i := 0; i < g.S; i++ {
		if i == n {
			g.cells[x][y] = g.cells[x][y].Set(i)
		} else {
			g.cells[x][y] = g.cells[x][y].Clear(i)
		}

		if i != x {
			g.cells[i][y] = g.cells[i][y].Clear(n) // column peers
		}
		if i != y {
			g.cells[x][i] = g.cells[x][i].Clear(n) // row peers
		}
	}

	sx, sy := (x/g.N)*g.N, (y/g.N)*g.N
	for xi := sx; xi < sx+g.N; xi++ {
		for yi := sy; yi < sy+g.N; yi++ {
			if xi != x && yi != y {
				g.cells[xi][yi] = g.cells[xi][yi].Clear(n)
			}
		}
	}

	return true
}

// NumberAt returns the sole remaining candidate digit at (x, y), whether or
// not the cell has been fixed via SetField, or (0, false) if the cell is not
// yet decided. Discovering zero remaining candidates flips
// Solvable to false exactly once and records the blame cell, per
// get_number_at_position's contradiction detection.
func (g *Grid) NumberAt(x, y int) (int, bool) {
	if x < 0 || x >= g.S || y < 0 || y >= g.S {
		return 0, false
	}
	n, ok := g.cells[x][y].Only()
	if ok {
		return n, true
	}
	if g.cells[x][y].IsEmpty() && g.solvable {
		g.blameX, g.blameY = x, y
		g.solvable = false
	}
	return 0, false
}

// Solvable reports whether a contradiction (an emptied candidate set) has
// been observed yet.
func (g *Grid) Solvable() bool {
	return g.solvable
}

// BlameCell returns the first cell found with zero candidates, or (-1, -1)
// if the grid has not (yet) been found unsolvable.
func (g *Grid) BlameCell() (int, int) {
	return g.blameX, g.blameY
}

// SolvedCells counts cells with exactly one remaining candidate. It also exercises
// NumberAt over the whole grid, so it is the same call the original uses to
// both report progress and opportunistically detect infeasibility.
func (g *Grid) SolvedCells() int {
	count := 0
	for y := 0; y < g.S; y++ {
		for x := 0; x < g.S; x++ {
			if _, ok := g.NumberAt(x, y); ok {
				count++
			}
		}
	}
	return count
}

// Block returns the block index (0..S-1, row-major over N x N blocks) that
// cell (x, y) belongs to.
func (g *Grid) Block(x, y int) int {
	return (y/g.N)*g.N + x/g.N
}

// BlockOrigin returns the top-left (x, y) coordinate of the block
// containing cell (x, y).
func (g *Grid) BlockOrigin(x, y int) (int, int) {
	return (x / g.N) * g.N, (y / g.N) * g.N
}
