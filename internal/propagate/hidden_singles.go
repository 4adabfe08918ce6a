package propagate

// hiddenSinglesColumns places a digit whenever it has exactly one possible
// position along the axis held fixed at x (the source's "column" scan; see
// internal/grid's SetField comments for the coordinate convention).
// Mirrors Sudoku::hidden_singles_columns.
func (s *Solver) hiddenSinglesColumns() bool {
	result := false
	size := s.g.S
	for x := 0; x < size; x++ {
		for n := 0; n < size; n++ {
			yPos := -1
			for y := 0; y < size; y++ {
				if s.g.Candidates(x, y).Has(n) {
					if yPos == -1 {
						yPos = y
					} else {
						yPos = -1
						break
					}
				}
			}
			if yPos == -1 {
				continue
			}
			if s.g.SetField(x, yPos, n) {
				result = true
			}
		}
	}
	return result
}

// hiddenSinglesRows is the symmetric scan along the axis held fixed at y
// (the source's "row" scan). Mirrors Sudoku::hidden_singles_rows.
func (s *Solver) hiddenSinglesRows() bool {
	result := false
	size := s.g.S
	for y := 0; y < size; y++ {
		for n := 0; n < size; n++ {
			xPos := -1
			for x := 0; x < size; x++ {
				if s.g.Candidates(x, y).Has(n) {
					if xPos == -1 {
						xPos = x
					} else {
						xPos = -1
						break
					}
				}
			}
			if xPos == -1 {
				continue
			}
			if s.g.SetField(xPos, y, n) {
				result = true
			}
		}
	}
	return result
}

// hiddenSinglesBlocks scans each N x N block for a digit with exactly one
// possible position within it. Mirrors Sudoku::hidden_singles_section.
func (s *Solver) hiddenSinglesBlocks() bool {
	result := false
	n := s.g.N
	size := s.g.S
	for sx := 0; sx < n; sx++ {
		for sy := 0; sy < n; sy++ {
			for d := 0; d < size; d++ {
				xPos, yPos := -1, -1
				found := false
			scan:
				for xi := sx * n; xi < (sx+1)*n; xi++ {
					for yi := sy * n; yi < (sy+1)*n; yi++ {
						if s.g.Candidates(xi, yi).Has(d) {
							if xPos == -1 {
								xPos, yPos = xi, yi
							} else {
								xPos, yPos = -1, -1
								found = false
								break scan
							}
							found = true
						}
					}
				}
				if !found || xPos == -1 {
					continue
				}
				if s.g.SetField(xPos, yPos, d) {
					result = true
				}
			}
		}
	}
	return result
}
