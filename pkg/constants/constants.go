// Package constants groups the compile-time bounds of the puzzle and CNF
// formats. Tunable solving behavior lives in pkg/config instead, since that
// is threaded per-encoder rather than fixed at build time.
package constants

// Puzzle order bounds. S = N*N is the grid side; N=3 is the classic 9x9.
const (
	MinN = 3
	MaxN = 15
)

// BitsetWords is the number of uint64 lanes a grid.Candidates value needs to
// address the 0-based digits 0..S-1 for the largest supported S (15*15 = 225).
const BitsetWords = 4

// HeaderLines is the number of lines preceding the grid body in the
// "experiment:"-tagged puzzle text format (see internal/puzzleio).
const HeaderLines = 4

// MaxPrintSize caps the grid side for which solve.Run logs the initial grid
// in verbose mode; for larger grids that print is skipped.
const MaxPrintSize = 36

// DefaultCNFFilename and DefaultModelFilename name the intermediate files
// solve.Run exchanges with the external SAT solver process.
const (
	DefaultCNFFilename   = "clauses_out.cnf"
	DefaultModelFilename = "model.txt"
)

// BenchmarkCSVHeader is the fixed column header for benchmark runs.
const BenchmarkCSVHeader = "Sudoku,Size,CE-Size,No. Atoms,No. Clauses,Seconds"

// DefaultAPIPort is the port internal/httpapi listens on when none is set.
const DefaultAPIPort = "8080"
