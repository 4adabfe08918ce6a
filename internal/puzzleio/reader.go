// Package puzzleio reads and writes the puzzle text format: either the
// 4-line "experiment:"-tagged header used by the benchmark corpus, or a
// bare 2-line header that always means a 9x9 grid. Grounded on
// Sudoku::init_size / Sudoku::read_sudoku / Sudoku::print_out.
package puzzleio

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"sudokusat/internal/grid"
	"sudokusat/pkg/constants"
)

// DetectSize opens path and inspects only its header to determine the
// puzzle's block side N, without reading the grid body. Mirrors
// Sudoku::init_size.
func DetectSize(path string) (n int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "opening puzzle file %q", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	size, err := detectSize(scanner)
	if err != nil {
		return 0, err
	}
	return int(math.Sqrt(float64(size))), nil
}

func detectSize(scanner *bufio.Scanner) (int, error) {
	if !scanner.Scan() {
		return 0, errors.New("puzzle file is empty")
	}
	first := scanner.Text()

	if strings.HasPrefix(first, "experiment:") {
		var last string
		for i := 0; i < constants.HeaderLines-1; i++ {
			if !scanner.Scan() {
				return 0, errors.New("puzzle header is truncated")
			}
			last = scanner.Text()
		}
		if idx := strings.IndexByte(last, 'x'); idx >= 0 {
			last = last[:idx]
		}
		size, ok := firstInteger(last)
		if !ok {
			return 0, errors.Errorf("couldn't find a size in header line %q", last)
		}
		return size, nil
	}

	// Bare-header format: the reader that emits it only ever produces
	// classic 9x9 puzzles.
	return 9, nil
}

// firstInteger extracts the first run of decimal digits found in s,
// mirroring get_first_integer's "skip anything that isn't a digit" scan.
func firstInteger(s string) (int, bool) {
	i := strings.IndexFunc(s, unicode.IsDigit)
	if i < 0 {
		return 0, false
	}
	j := i
	for j < len(s) && unicode.IsDigit(rune(s[j])) {
		j++
	}
	n, err := strconv.Atoi(s[i:j])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Read parses the puzzle at path into a freshly built grid.Grid. Blank
// cells are left fully candidate; given cells are applied through
// SetField, so their eliminations propagate to peers immediately.
//
// The file is opened twice, deliberately mirroring the two independent
// passes the original makes (one to size the grid, one to read it): a
// puzzle whose first line is itself a border ('+...+', i.e. this
// package's own rendered output fed back in) is sized as a bare 9x9 by
// the first pass and body-read via the border-skip branch by the second,
// exactly as those two original passes disagree on that file shape.
func Read(path string) (*grid.Grid, error) {
	size, err := DetectSize(path)
	if err != nil {
		return nil, err
	}
	s := size * size
	g := grid.New(size)

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening puzzle file %q", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if err := skipBodyHeader(scanner); err != nil {
		return nil, err
	}
	if err := readBody(scanner, g, s); err != nil {
		return nil, err
	}
	return g, nil
}

// skipBodyHeader consumes the header lines preceding the grid body,
// mirroring read_sudoku's three branches: the full "experiment:" header,
// a lone border line that opens the grid itself (only that line is
// consumed, so readBody starts at the first grid row on line 2), or the
// bare 2-line header.
func skipBodyHeader(scanner *bufio.Scanner) error {
	if !scanner.Scan() {
		return errors.New("puzzle file is empty")
	}
	first := scanner.Text()

	switch {
	case strings.HasPrefix(first, "experiment:"):
		for i := 0; i < constants.HeaderLines-1; i++ {
			if !scanner.Scan() {
				return errors.New("puzzle header is truncated")
			}
		}
	case strings.HasPrefix(first, "+"):
		// Nothing further to consume; the next line is row 0 of the
		// grid, which readBody reads directly.
	default:
		if !scanner.Scan() {
			return errors.New("puzzle header is truncated")
		}
	}
	return nil
}

func readBody(scanner *bufio.Scanner, g *grid.Grid, size int) error {
	emptyField := emptyFieldToken(size)

	for y := 0; y < size; y++ {
		if !scanner.Scan() {
			return errors.Errorf("puzzle body truncated at row %d", y)
		}
		line := scanner.Text()
		if strings.Contains(line, "+") {
			// Border row interleaved every N rows; the real row follows.
			if !scanner.Scan() {
				return errors.Errorf("puzzle body truncated at row %d", y)
			}
			line = scanner.Text()
		}

		fields := strings.Fields(line)
		x := 0
		for _, tok := range fields {
			if tok == "|" {
				continue
			}
			if x >= size {
				break
			}
			if tok != emptyField {
				if num, err := strconv.Atoi(tok); err == nil && num != 0 {
					g.SetField(x, y, num-1)
				}
			}
			x++
		}
	}

	return nil
}

func emptyFieldToken(size int) string {
	digits := 1
	for i := 1; i <= size; i *= 10 {
		digits++
	}
	digits--
	return strings.Repeat("_", digits)
}
