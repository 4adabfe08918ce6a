package propagate

// boxLineReduction is the converse of pointing candidates: if every
// remaining occurrence of a digit along a row or column falls inside a
// single block, the digit can be removed from the rest of that block.
// Applied only when at least two occurrences exist. Mirrors
// Sudoku::box_line_reduction.
func (s *Solver) boxLineReduction() bool {
	result := false
	n := s.g.N
	size := s.g.S

	for d := 0; d < size; d++ {
		for x := 0; x < size; x++ {
			sectionX := x / n
			sectionY := -1
			possible := true
			count := 0
			for y := 0; y < size; y++ {
				if !s.g.Candidates(x, y).Has(d) {
					continue
				}
				if sectionY == -1 {
					sectionY = y / n
				} else if sectionY != y/n {
					possible = false
					break
				}
				count++
			}
			if possible && sectionY != -1 && count > 1 {
				for xi := sectionX * n; xi < (sectionX+1)*n; xi++ {
					for yi := sectionY * n; yi < (sectionY+1)*n; yi++ {
						if xi == x {
							continue
						}
						if s.g.Candidates(xi, yi).Has(d) {
							result = true
						}
						s.g.SetCandidates(xi, yi, s.g.Candidates(xi, yi).Clear(d))
					}
				}
			}
		}

		for y := 0; y < size; y++ {
			sectionY := y / n
			sectionX := -1
			possible := true
			count := 0
			for x := 0; x < size; x++ {
				if !s.g.Candidates(x, y).Has(d) {
					continue
				}
				if sectionX == -1 {
					sectionX = x / n
				} else if sectionX != x/n {
					possible = false
					break
				}
				count++
			}
			if possible && sectionX != -1 && count > 1 {
				for xi := sectionX * n; xi < (sectionX+1)*n; xi++ {
					for yi := sectionY * n; yi < (sectionY+1)*n; yi++ {
						if yi == y {
							continue
						}
						if s.g.Candidates(xi, yi).Has(d) {
							result = true
						}
						s.g.SetCandidates(xi, yi, s.g.Candidates(xi, yi).Clear(d))
					}
				}
			}
		}
	}

	return result
}
