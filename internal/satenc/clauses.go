package satenc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"sudokusat/internal/grid"
	"sudokusat/pkg/config"
)

// Encoder streams the CNF clauses implied by a propagated grid to a
// temporary file, then finalizes them under a DIMACS header once the total
// clause and variable counts are known. Clauses are generated in eight
// families: single-cell, row, column and block, each split into a
// definedness clause (at least one digit/position) and a uniqueness clause
// (at most one). Grounded on Sudoku::generate_all_clauses and friends.
type Encoder struct {
	g   *grid.Grid
	lut *LUT
	cfg config.EncoderConfig
	log *logrus.Entry

	tmpFile *os.File
	tmpPath string
	w       *bufio.Writer

	numClauses int
	extraAtom  int
}

// NewEncoder opens a scoped temporary file to stream clauses into. Callers
// must call Close (directly or via Finalize) to remove it.
func NewEncoder(g *grid.Grid, lut *LUT, cfg config.EncoderConfig, log *logrus.Entry) (*Encoder, error) {
	f, err := os.CreateTemp("", "sudokusat-clauses-*.tmp")
	if err != nil {
		return nil, errors.Wrap(err, "creating temporary clause file")
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Encoder{
		g:         g,
		lut:       lut,
		cfg:       cfg,
		log:       log,
		tmpFile:   f,
		tmpPath:   f.Name(),
		w:         bufio.NewWriter(f),
		extraAtom: lut.NumAtoms() + 1,
	}, nil
}

func (e *Encoder) writeClause(lits []int) error {
	for _, l := range lits {
		if _, err := e.w.WriteString(strconv.Itoa(l)); err != nil {
			return err
		}
		if err := e.w.WriteByte(' '); err != nil {
			return err
		}
	}
	if _, err := e.w.WriteString("0\n"); err != nil {
		return err
	}
	e.numClauses++
	return nil
}

// getUnusedAtom allocates a fresh atom beyond the LUT's range, for
// commander-encoding helper variables. Returns the atom, then advances the
// counter, matching Sudoku::get_unused_atom's post-increment.
func (e *Encoder) getUnusedAtom() int {
	a := e.extraAtom
	e.extraAtom++
	return a
}

// GenerateAll writes every clause family to the temporary file and returns
// the total clause count generated. The family order matches
// Sudoku::generate_all_clauses exactly; it has no effect on the resulting
// model but keeps generated CNFs byte-comparable across runs of the same
// puzzle.
func (e *Encoder) GenerateAll() (int, error) {
	e.log.Debug("generating clauses")

	families := []struct {
		name string
		fn   func() (int, error)
	}{
		{"single-cell definedness", e.singleCellDefinedness},
		{"single-cell uniqueness", e.singleCellUniqueness},
		{"row definedness", e.rowDefinedness},
		{"row uniqueness", e.rowUniqueness},
		{"column definedness", e.columnDefinedness},
		{"column uniqueness", e.columnUniqueness},
		{"block definedness", e.blockDefinedness},
		{"block uniqueness", e.blockUniqueness},
	}

	total := 0
	for _, fam := range families {
		n, err := fam.fn()
		if err != nil {
			return total, errors.Wrapf(err, "generating %s clauses", fam.name)
		}
		e.log.WithFields(logrus.Fields{"family": fam.name, "clauses": n}).Debug("clause family done")
		total += n
	}

	return total, nil
}

func (e *Encoder) singleCellDefinedness() (int, error) {
	size := e.g.S
	count := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var clause []int
			for n := 0; n < size; n++ {
				if e.g.Candidates(x, y).Has(n) {
					clause = append(clause, e.lut.Lookup(x, y, n))
				}
			}
			if err := e.writeClause(clause); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func (e *Encoder) singleCellUniqueness() (int, error) {
	size := e.g.S
	count := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var possible []int
			for n := 0; n < size; n++ {
				if e.g.Candidates(x, y).Has(n) {
					possible = append(possible, e.lut.Lookup(x, y, n))
				}
			}
			n, err := e.encodeAtMostOne(possible)
			if err != nil {
				return count, err
			}
			count += n
		}
	}
	return count, nil
}

func (e *Encoder) rowDefinedness() (int, error) {
	size := e.g.S
	count := 0
	for y := 0; y < size; y++ {
		for n := 0; n < size; n++ {
			var clause []int
			for x := 0; x < size; x++ {
				if e.g.Candidates(x, y).Has(n) {
					clause = append(clause, e.lut.Lookup(x, y, n))
				}
			}
			if len(clause) <= 1 {
				continue
			}
			if err := e.writeClause(clause); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func (e *Encoder) rowUniqueness() (int, error) {
	size := e.g.S
	count := 0
	for y := 0; y < size; y++ {
		for n := 0; n < size; n++ {
			var possible []int
			for x := 0; x < size; x++ {
				if e.g.Candidates(x, y).Has(n) {
					possible = append(possible, e.lut.Lookup(x, y, n))
				}
			}
			c, err := e.encodeAtMostOne(possible)
			if err != nil {
				return count, err
			}
			count += c
		}
	}
	return count, nil
}

func (e *Encoder) columnDefinedness() (int, error) {
	size := e.g.S
	count := 0
	for x := 0; x < size; x++ {
		for n := 0; n < size; n++ {
			var clause []int
			for y := 0; y < size; y++ {
				if e.g.Candidates(x, y).Has(n) {
					clause = append(clause, e.lut.Lookup(x, y, n))
				}
			}
			if len(clause) <= 1 {
				continue
			}
			if err := e.writeClause(clause); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func (e *Encoder) columnUniqueness() (int, error) {
	size := e.g.S
	count := 0
	for x := 0; x < size; x++ {
		for n := 0; n < size; n++ {
			var possible []int
			for y := 0; y < size; y++ {
				if e.g.Candidates(x, y).Has(n) {
					possible = append(possible, e.lut.Lookup(x, y, n))
				}
			}
			c, err := e.encodeAtMostOne(possible)
			if err != nil {
				return count, err
			}
			count += c
		}
	}
	return count, nil
}

func (e *Encoder) blockDefinedness() (int, error) {
	n := e.g.N
	size := e.g.S
	count := 0
	for d := 0; d < size; d++ {
		for sx := 0; sx < n; sx++ {
			for sy := 0; sy < n; sy++ {
				var clause []int
				for xi := sx * n; xi < (sx+1)*n; xi++ {
					for yi := sy * n; yi < (sy+1)*n; yi++ {
						if e.g.Candidates(xi, yi).Has(d) {
							clause = append(clause, e.lut.Lookup(xi, yi, d))
						}
					}
				}
				if len(clause) <= 1 {
					continue
				}
				if err := e.writeClause(clause); err != nil {
					return count, err
				}
				count++
			}
		}
	}
	return count, nil
}

func (e *Encoder) blockUniqueness() (int, error) {
	n := e.g.N
	size := e.g.S
	count := 0
	for d := 0; d < size; d++ {
		for sx := 0; sx < n; sx++ {
			for sy := 0; sy < n; sy++ {
				var possible []int
				for xi := sx * n; xi < (sx+1)*n; xi++ {
					for yi := sy * n; yi < (sy+1)*n; yi++ {
						if e.g.Candidates(xi, yi).Has(d) {
							possible = append(possible, e.lut.Lookup(xi, yi, d))
						}
					}
				}
				c, err := e.encodeAtMostOne(possible)
				if err != nil {
					return count, err
				}
				count += c
			}
		}
	}
	return count, nil
}

// Finalize writes the DIMACS header followed by the buffered clauses to
// path, and removes the temporary scratch file. V is extraAtom-1: every
// atom handed out, from the LUT's compact numbering through any commander
// helper variables, minus one for get_unused_atom's post-increment.
func (e *Encoder) Finalize(path string) error {
	if err := e.w.Flush(); err != nil {
		return errors.Wrap(err, "flushing clause buffer")
	}
	if err := e.tmpFile.Close(); err != nil {
		return errors.Wrap(err, "closing temporary clause file")
	}
	defer os.Remove(e.tmpPath)

	in, err := os.Open(e.tmpPath)
	if err != nil {
		return errors.Wrap(err, "reopening temporary clause file")
	}
	defer in.Close()

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating CNF output file %q", path)
	}
	defer out.Close()

	if _, err := fmt.Fprintf(out, "p cnf %d %d\n", e.extraAtom-1, e.numClauses); err != nil {
		return errors.Wrap(err, "writing CNF header")
	}
	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrap(err, "copying clause body into CNF output")
	}

	return nil
}

// NumClauses reports how many clauses have been written so far.
func (e *Encoder) NumClauses() int {
	return e.numClauses
}

// TotalAtoms reports the highest atom number in use, LUT atoms plus any
// commander-encoding helper atoms handed out so far. Matches
// get_unused_atom()-1, the value the benchmark CSV reports as atom count.
func (e *Encoder) TotalAtoms() int {
	return e.extraAtom - 1
}

// Close discards the temporary scratch file without finalizing, for use on
// early-exit error paths.
func (e *Encoder) Close() error {
	e.tmpFile.Close()
	return os.Remove(e.tmpPath)
}
