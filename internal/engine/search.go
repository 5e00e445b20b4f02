package engine

import "github.com/piwi3910/PizzaCut/internal/model"

// candidate is the best slice found at an anchor cell together with the
// shrunk versions of the slices it overlaps.
type candidate struct {
	slice   model.Slice
	gain    int           // uncovered cells the slice would claim
	shrinks []model.Slice // new bounds of each overlapped slice
}

// maxSliceAt searches every rectangle containing (row, col) that reaches at
// most MaxSliceArea cells away in each direction, and returns the valid one
// claiming the most uncovered cells. Ties keep the first one enumerated.
func (s *Slicer) maxSliceAt(row, col, id int) (candidate, bool) {
	g := s.grid
	limit := g.MaxSliceArea

	var best candidate
	found := false

	for minRow := row; minRow >= max(0, row-limit); minRow-- {
		for maxRow := row; maxRow < min(row+limit+1, g.Rows); maxRow++ {
			for minCol := col; minCol >= max(0, col-limit); minCol-- {
				for maxCol := col; maxCol < min(col+limit+1, g.Cols); maxCol++ {
					cand := model.NewSlice(id, minRow, minCol, maxRow, maxCol)

					class := Classify(g, cand)
					if class == TooBig || class == InvalidCells {
						// Area only grows with maxCol.
						break
					}
					if class != Valid {
						continue
					}

					gain := s.plate.newCells(cand)
					if gain == 0 {
						continue
					}
					if found && gain <= best.gain {
						continue
					}

					shrinks, ok := s.simulateOverlap(cand)
					if !ok {
						continue
					}

					best = candidate{slice: cand, gain: gain, shrinks: shrinks}
					found = true
				}
			}
		}
	}

	return best, found
}

// simulateOverlap shrinks every slice cand overlaps and checks that each
// remainder is still a valid slice.
func (s *Slicer) simulateOverlap(cand model.Slice) ([]model.Slice, bool) {
	if s.plate.newCells(cand) == cand.Area() {
		return nil, true
	}

	var shrinks []model.Slice
	for _, id := range s.plate.otherOwners(cand) {
		existing, ok := s.slices[id]
		if !ok {
			panic(&model.InvalidSliceError{Slice: cand, Reason: "overlaps a cell owned by an unknown slice"})
		}
		shrunk, ok := Shrink(existing, cand)
		if !ok {
			return nil, false
		}
		if Classify(s.grid, shrunk) != Valid {
			return nil, false
		}
		shrinks = append(shrinks, shrunk)
	}
	return shrinks, true
}
