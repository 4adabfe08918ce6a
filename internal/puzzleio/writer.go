package puzzleio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"sudokusat/internal/grid"
)

// Write renders g as the bordered ASCII grid the original prints to
// stdout and to its solved-puzzle file, with '_'-padded blanks for
// undecided cells. Mirrors Sudoku::print / Sudoku::print_out.
func Write(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)

	numberLength := 0
	for i := 1; i <= g.S; i *= 10 {
		numberLength++
	}
	emptyField := strings.Repeat("_", numberLength) + " "

	var limitLine strings.Builder
	for x := 0; x < g.N; x++ {
		limitLine.WriteByte('+')
		for i := 0; i < (numberLength+1)*g.N+1; i++ {
			limitLine.WriteByte('-')
		}
	}
	limitLine.WriteByte('+')
	limit := limitLine.String()

	for y := 0; y < g.S; y++ {
		if y%g.N == 0 {
			if _, err := bw.WriteString(limit + "\n"); err != nil {
				return err
			}
		}

		for x := 0; x < g.S; x++ {
			if x%g.N == 0 {
				if _, err := bw.WriteString("| "); err != nil {
					return err
				}
			}

			n, ok := g.NumberAt(x, y)
			if !ok {
				if _, err := bw.WriteString(emptyField); err != nil {
					return err
				}
				continue
			}

			display := n + 1
			digits := len(strconv.Itoa(display))
			for i := digits; i < numberLength; i++ {
				bw.WriteByte(' ')
			}
			if _, err := bw.WriteString(strconv.Itoa(display) + " "); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("|\n"); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString(limit + "\n"); err != nil {
		return err
	}

	return bw.Flush()
}

// WriteFile renders g to path, the equivalent of Sudoku::print_out.
func WriteFile(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating output file %q", path)
	}
	defer f.Close()

	if err := Write(f, g); err != nil {
		return errors.Wrapf(err, "writing grid to %q", path)
	}
	return nil
}
