// Command sudokusat reduces a generalized Sudoku puzzle to a CNF formula,
// hands it to an external SAT solver, and decodes the result back into a
// grid. Grounded on original_source/my_solver/Sudoku.cpp's main()/
// command dispatch, rebuilt on cobra/pflag per the rest of this pack's
// CLI convention.
package main

import (
	"fmt"
	"os"

	"sudokusat/cmd/sudokusat/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
