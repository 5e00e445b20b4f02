package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/PizzaCut/internal/model"
)

// plate is the working copy used while slicing: the owner id of every cell,
// parallel to the immutable grid. Ingredient data never lives here.
type plate struct {
	rows, cols int
	owner      []int
}

func newPlate(g *model.Grid) *plate {
	return &plate{
		rows:  g.Rows,
		cols:  g.Cols,
		owner: make([]int, g.Rows*g.Cols),
	}
}

func (p *plate) at(r, c int) int {
	return p.owner[r*p.cols+c]
}

// markOwned tags every cell of s with its id. All cells must be uncovered or
// already belong to s.
func (p *plate) markOwned(s model.Slice) {
	for r := s.RowMin; r <= s.RowMax; r++ {
		for c := s.ColMin; c <= s.ColMax; c++ {
			i := r*p.cols + c
			if o := p.owner[i]; o != model.Uncovered && o != s.ID {
				panic(&model.InvalidSliceError{
					Slice:  s,
					Reason: fmt.Sprintf("cell (%d,%d) still owned by slice %d", r, c, o),
				})
			}
			p.owner[i] = s.ID
		}
	}
}

// restoreUncovered frees every cell of s regardless of its current owner.
func (p *plate) restoreUncovered(s model.Slice) {
	for r := s.RowMin; r <= s.RowMax; r++ {
		for c := s.ColMin; c <= s.ColMax; c++ {
			p.owner[r*p.cols+c] = model.Uncovered
		}
	}
}

// release frees the cells of old that shrunk no longer covers.
func (p *plate) release(old, shrunk model.Slice) {
	for r := old.RowMin; r <= old.RowMax; r++ {
		for c := old.ColMin; c <= old.ColMax; c++ {
			i := r*p.cols + c
			if !shrunk.Contains(r, c) && p.owner[i] == old.ID {
				p.owner[i] = model.Uncovered
			}
		}
	}
}

// newCells counts the uncovered cells inside s.
func (p *plate) newCells(s model.Slice) int {
	n := 0
	for r := s.RowMin; r <= s.RowMax; r++ {
		for c := s.ColMin; c <= s.ColMax; c++ {
			if p.owner[r*p.cols+c] == model.Uncovered {
				n++
			}
		}
	}
	return n
}

// cellsByOwner maps each owner id found inside s to its cell count.
// model.Uncovered counts the free cells.
func (p *plate) cellsByOwner(s model.Slice) map[int]int {
	owners := make(map[int]int)
	for r := s.RowMin; r <= s.RowMax; r++ {
		for c := s.ColMin; c <= s.ColMax; c++ {
			owners[p.owner[r*p.cols+c]]++
		}
	}
	return owners
}

// otherOwners lists the slice ids inside s other than s itself, in
// placement order (-1, -2, ...).
func (p *plate) otherOwners(s model.Slice) []int {
	var ids []int
	for id := range p.cellsByOwner(s) {
		if id != model.Uncovered && id != s.ID {
			ids = append(ids, id)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	return ids
}
