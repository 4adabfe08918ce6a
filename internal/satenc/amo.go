package satenc

// encodeAtMostOne dispatches to the configured at-most-one encoding:
// commander (the default, optionally its binary-tree variant) or the naive
// pairwise encoding. Mirrors Sudoku::encode_at_most_one.
func (e *Encoder) encodeAtMostOne(numbers []int) (int, error) {
	if !e.cfg.EncodeExtraCommanders && len(numbers) <= 1 {
		return 0, nil
	}
	if e.cfg.CommanderEncoding {
		if e.cfg.CommanderEncodingBinary && e.cfg.CommanderGroupSize > 0 {
			n, _, err := e.commanderEncodeBinary(numbers)
			return n, err
		}
		return e.commanderEncode(numbers)
	}
	return e.naiveAtMostOne(numbers)
}

// naiveAtMostOne emits one binary clause (¬a ∨ ¬b) per pair, the textbook
// quadratic-size at-most-one encoding. Mirrors
// Sudoku::naive_encode_at_most_one.
func (e *Encoder) naiveAtMostOne(numbers []int) (int, error) {
	count := 0
	for i := 0; i < len(numbers); i++ {
		for j := i + 1; j < len(numbers); j++ {
			if err := e.writeClause([]int{-numbers[i], -numbers[j]}); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

// commanderEncode splits numbers into fixed-size groups (pkg/config's
// per-N group size), naive-encodes at-most-one within each group, and
// introduces one commander atom per group with clauses (commander ∨ ¬g) for
// every g in the group. The commander atoms are then recursively commander
// encoded. This is deliberately one-directional: the converse clause
// (¬commander ∨ g1 ∨ … ∨ gk), forcing the commander false when every member
// is false, is never added, so an assignment can set a commander true while
// every member is false. That is
// sound for at-most-one (it can only forbid models, never permit an
// invalid one) and matches the source exactly — it is not a bug to fix.
// Mirrors Sudoku::commander_encode.
func (e *Encoder) commanderEncode(numbers []int) (int, error) {
	count := 0
	if len(numbers) <= 1 {
		return 0, nil
	}

	groupSize := e.cfg.CommanderGroupSize
	if groupSize <= 0 {
		return e.naiveAtMostOne(numbers)
	}

	var commanders []int
	for i := 0; i < len(numbers); i += groupSize {
		end := i + groupSize
		if end > len(numbers) {
			end = len(numbers)
		}
		subgroup := numbers[i:end]

		n, err := e.naiveAtMostOne(subgroup)
		if err != nil {
			return count, err
		}
		count += n

		commander := e.getUnusedAtom()
		commanders = append(commanders, commander)
		for _, g := range subgroup {
			if err := e.writeClause([]int{commander, -g}); err != nil {
				return count, err
			}
			count++
		}
	}

	n, err := e.commanderEncode(commanders)
	if err != nil {
		return count, err
	}
	count += n

	return count, nil
}

// commanderEncodeBinary is the binary-tree commander variant: it recurses
// on halves of numbers until a group is small enough to naive-encode
// directly under its own commander, then at-most-one's the two child
// commanders and implication-connects them to a fresh parent commander.
// Mirrors Sudoku::commander_encode_binary. Returns the clause count and the
// commander atom representing this (sub)group.
func (e *Encoder) commanderEncodeBinary(numbers []int) (int, int, error) {
	count := 0
	commander := e.getUnusedAtom()

	if len(numbers) <= e.cfg.CommanderGroupSize {
		for _, g := range numbers {
			if err := e.writeClause([]int{commander, -g}); err != nil {
				return count, commander, err
			}
			count++
		}
		n, err := e.naiveAtMostOne(numbers)
		if err != nil {
			return count, commander, err
		}
		count += n
		return count, commander, nil
	}

	half := len(numbers) / 2
	groupA, groupB := numbers[:half], numbers[half:]

	nA, commanderA, err := e.commanderEncodeBinary(groupA)
	if err != nil {
		return count, commander, err
	}
	count += nA
	nB, commanderB, err := e.commanderEncodeBinary(groupB)
	if err != nil {
		return count, commander, err
	}
	count += nB

	n, err := e.naiveAtMostOne([]int{commanderA, commanderB})
	if err != nil {
		return count, commander, err
	}
	count += n

	if err := e.writeClause([]int{commander, -commanderA}); err != nil {
		return count, commander, err
	}
	if err := e.writeClause([]int{commander, -commanderB}); err != nil {
		return count, commander, err
	}
	count += 2

	return count, commander, nil
}
