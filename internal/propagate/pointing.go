package propagate

// pointingCandidates implements intersection removal: if every remaining
// occurrence of a digit within a block lines up on a single row or column,
// the digit can be removed from the rest of that row/column outside the
// block. Mirrors Sudoku::pointing_candidates.
func (s *Solver) pointingCandidates() bool {
	result := false
	n := s.g.N
	size := s.g.S

	for d := 0; d < size; d++ {
		for sx := 0; sx < n; sx++ {
			for sy := 0; sy < n; sy++ {
				var occX, occY []int
				for xi := sx * n; xi < (sx+1)*n; xi++ {
					for yi := sy * n; yi < (sy+1)*n; yi++ {
						if s.g.Candidates(xi, yi).Has(d) {
							occX = append(occX, xi)
							occY = append(occY, yi)
						}
					}
				}
				if len(occX) <= 1 {
					continue
				}

				xAligned, yAligned := true, true
				xAlign, yAlign := occX[0], occY[0]
				for i := 1; i < len(occX); i++ {
					if occX[i] != xAlign {
						xAligned = false
					}
					if occY[i] != yAlign {
						yAligned = false
					}
				}

				if xAligned {
					for y := 0; y < size; {
						if y == sy*n {
							y += n
							continue
						}
						if s.g.Candidates(xAlign, y).Has(d) {
							result = true
						}
						s.g.SetCandidates(xAlign, y, s.g.Candidates(xAlign, y).Clear(d))
						y++
					}
				}
				if yAligned {
					for x := 0; x < size; {
						if x == sx*n {
							x += n
							continue
						}
						if s.g.Candidates(x, yAlign).Has(d) {
							result = true
						}
						s.g.SetCandidates(x, yAlign, s.g.Candidates(x, yAlign).Clear(d))
						x++
					}
				}
			}
		}
	}

	return result
}
