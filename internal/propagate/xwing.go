package propagate

// xWingCandidate records two same-digit positions along one axis, plus the
// index of the line they were found on, used to look for a matching
// partner line during the x-wing scan.
type xWingCandidate struct {
	pos1, pos2, pos3 int
}

// xWing implements the basic x-wing elimination: if a digit appears
// exactly twice in each of two lines, at the same two positions on the
// cross axis, it can be removed from those two cross-axis lines everywhere
// else. Off by default (see pkg/config) since it rarely fires and is
// comparatively expensive. Mirrors Sudoku::x_wing.
func (s *Solver) xWing() bool {
	result := false
	size := s.g.S

	for d := 0; d < size; d++ {
		var candidates []xWingCandidate
		for x := 0; x < size; x++ {
			n1y, n2y := -1, -1
			for y := 0; y < size; y++ {
				if !s.g.Candidates(x, y).Has(d) {
					continue
				}
				if n1y == -1 {
					n1y = y
				} else if n2y == -1 {
					n2y = y
				} else {
					n1y, n2y = -1, -1
					break
				}
			}
			if n1y == -1 || n2y == -1 {
				continue
			}
			for _, c := range candidates {
				if c.pos1 == n1y && c.pos2 == n2y {
					for xr := 0; xr < size; xr++ {
						if xr == x || xr == c.pos3 {
							continue
						}
						if s.g.Candidates(xr, n1y).Has(d) {
							result = true
						}
						if s.g.Candidates(xr, n2y).Has(d) {
							result = true
						}
						s.g.SetCandidates(xr, n1y, s.g.Candidates(xr, n1y).Clear(d))
						s.g.SetCandidates(xr, n2y, s.g.Candidates(xr, n2y).Clear(d))
					}
				}
			}
			candidates = append(candidates, xWingCandidate{n1y, n2y, x})
		}

		candidates = nil
		for y := 0; y < size; y++ {
			n1x, n2x := -1, -1
			for x := 0; x < size; x++ {
				if !s.g.Candidates(x, y).Has(d) {
					continue
				}
				if n1x == -1 {
					n1x = x
				} else if n2x == -1 {
					n2x = x
				} else {
					n1x, n2x = -1, -1
					break
				}
			}
			if n1x == -1 || n2x == -1 {
				continue
			}
			for _, c := range candidates {
				if c.pos1 == n1x && c.pos2 == n2x {
					for yr := 0; yr < size; yr++ {
						if yr == y || yr == c.pos3 {
							continue
						}
						if s.g.Candidates(n1x, yr).Has(d) {
							result = true
						}
						if s.g.Candidates(n2x, yr).Has(d) {
							result = true
						}
						s.g.SetCandidates(n1x, yr, s.g.Candidates(n1x, yr).Clear(d))
						s.g.SetCandidates(n2x, yr, s.g.Candidates(n2x, yr).Clear(d))
					}
				}
			}
			candidates = append(candidates, xWingCandidate{n1x, n2x, y})
		}
	}

	return result
}
