// Package config groups the compile-time switches of the original solver
// into a single value threaded through constructors, instead of keeping them
// as package-level globals.
package config

import "sudokusat/pkg/constants"

// commanderGroupSizes is indexed by N (block side); index 0..2 are 0,
// meaning "no grouping possible, fall back to naive AMO" for N<3. Values
// match the per-N tuning of the original encoder.
var commanderGroupSizes = [constants.MaxN + 1]int{
	0, 0, 0, 3, 4, 5, 4, 6, 4, 4, 3, 4, 6, 4, 4, 3,
}

// EncoderConfig groups every switch that changes propagation or clause
// generation behavior. A single value is constructed once per puzzle and
// passed explicitly to the propagator and encoder; nothing here is
// process-wide mutable state.
type EncoderConfig struct {
	// CommanderEncoding selects the commander-variable AMO scheme over the
	// naive pairwise one.
	CommanderEncoding bool
	// CommanderEncodingBinary selects the binary-tree commander variant
	// instead of the flat k-ary one, when CommanderEncoding is set.
	CommanderEncodingBinary bool
	// CommanderGroupSize is the configured chunk size per N. A value of 0
	// means "no commander grouping for this N," i.e. fall back to naive.
	CommanderGroupSize int
	// EncodeExtraCommanders forces AMO encoding to run even over singleton
	// (or empty) literal sets, which ordinarily need no clauses at all.
	EncodeExtraCommanders bool

	// SimpleSolvingEnabled toggles the whole constraint-propagation
	// pre-solve pass.
	SimpleSolvingEnabled bool
	// PointingCandidatesEnabled toggles the intersection-removal rule.
	PointingCandidatesEnabled bool
	// BoxLineReductionEnabled toggles the box-line reduction rule.
	BoxLineReductionEnabled bool
	// XWingEnabled toggles the x-wing rule; off by default since it rarely
	// finds anything new and is comparatively expensive.
	XWingEnabled bool
}

// Default returns the configuration the original encoder hard-codes,
// resolving CommanderGroupSize for the given N.
func Default(n int) EncoderConfig {
	cfg := EncoderConfig{
		CommanderEncoding:       true,
		CommanderEncodingBinary: false,
		EncodeExtraCommanders:   false,

		SimpleSolvingEnabled:      true,
		PointingCandidatesEnabled: true,
		BoxLineReductionEnabled:   true,
		XWingEnabled:              false,
	}
	cfg.CommanderGroupSize = GroupSizeForN(n)
	return cfg
}

// GroupSizeForN returns the configured commander chunk size for block side
// n, or 0 if n is out of [constants.MinN, constants.MaxN] or the table
// entry is 0 (meaning "use naive encoding instead").
func GroupSizeForN(n int) int {
	if n < 0 || n > constants.MaxN {
		return 0
	}
	return commanderGroupSizes[n]
}
