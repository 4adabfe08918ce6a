package propagate

// nakedSubsets implements the "naked candidates" rule exactly as the
// original does: for an unfixed cell, it looks for other unfixed cells
// sharing its *exact* candidate set along the same axis. If the number of
// such cells equals the size of the shared set, that set is a locked
// subset and every other cell on the axis loses those digits as
// candidates.
//
// This intentionally only checks two single-axis directions (what the
// source calls "column" and "row," see internal/grid's SetField comments
// for that naming convention) and only exact-set matches, not the general
// "any k cells whose union of candidates has size k" naked-subset rule or
// the block direction. Per spec.md's Design Notes Open Question, this
// narrower behavior is preserved deliberately, not generalized.
//
// found is drained as its members are stepped past; every other index on
// the axis, before, between or after the members, has the subset's digits
// cleared.
func (s *Solver) nakedSubsets() bool {
	result := false
	size := s.g.S

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if s.g.IsFixed(x, y) {
				continue
			}

			numbers := s.g.Candidates(x, y)
			m := numbers.Count()
			digits := numbers.ToSlice()

			found := []int{x}
			for xi := x + 1; xi < size; xi++ {
				if s.g.Candidates(xi, y).Equals(numbers) {
					found = append(found, xi)
				}
			}
			if len(found) == m {
				for xi := 0; xi < size; xi++ {
					if len(found) > 0 && found[0] == xi {
						found = found[1:]
						continue
					}
					for _, n := range digits {
						if s.g.Candidates(xi, y).Has(n) {
							result = true
						}
						s.g.SetCandidates(xi, y, s.g.Candidates(xi, y).Clear(n))
					}
				}
			}

			found = []int{y}
			for yi := y + 1; yi < size; yi++ {
				if s.g.Candidates(x, yi).Equals(numbers) {
					found = append(found, yi)
				}
			}
			if len(found) == m {
				for yi := 0; yi < size; yi++ {
					if len(found) > 0 && found[0] == yi {
						found = found[1:]
						continue
					}
					for _, n := range digits {
						if s.g.Candidates(x, yi).Has(n) {
							result = true
						}
						s.g.SetCandidates(x, yi, s.g.Candidates(x, yi).Clear(n))
					}
				}
			}
		}
	}

	return result
}
