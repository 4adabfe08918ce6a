package satenc

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"sudokusat/internal/grid"
)

// Decode reads a SAT solver's DIMACS output (lines starting with "v ",
// ending in a trailing 0) and replays every relevant positive literal as a
// SetField call on g. Negative literals and positive literals beyond the
// LUT's atom range are ignored; the latter are commander-encoding helper
// atoms with no grid position. Mirrors Sudoku::read_solution.
func Decode(path string, g *grid.Grid, lut *LUT) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening solver output %q", path)
	}
	defer f.Close()

	numAtoms := lut.NumAtoms()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] != 'v' {
			continue
		}
		fields := strings.Fields(line)[1:]
		for _, tok := range fields {
			lit, err := strconv.Atoi(tok)
			if err != nil {
				continue
			}
			if lit <= 0 || lit > numAtoms {
				continue
			}
			x, y, n := lut.Position(lit)
			g.SetField(x, y, n)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading solver output %q", path)
	}

	return nil
}
