package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/PizzaCut/internal/model"
)

func TestPlate_MarkAndRestore(t *testing.T) {
	p := newPlate(exampleGrid(t))
	a := model.NewSlice(-1, 0, 0, 1, 1)

	p.markOwned(a)
	assert.Equal(t, -1, p.at(1, 1))
	assert.Equal(t, 0, p.newCells(a))
	assert.Equal(t, map[int]int{-1: 2, model.Uncovered: 2}, p.cellsByOwner(model.NewSlice(0, 0, 1, 1, 2)))

	p.restoreUncovered(a)
	assert.Equal(t, model.Uncovered, p.at(0, 0))
	assert.Equal(t, 4, p.newCells(a))
}

func TestPlate_MarkOwnedConflictPanics(t *testing.T) {
	p := newPlate(exampleGrid(t))
	p.markOwned(model.NewSlice(-1, 0, 0, 1, 1))

	assert.Panics(t, func() {
		p.markOwned(model.NewSlice(-2, 1, 1, 2, 2))
	})
}

func TestPlate_ReleaseKeepsRemainder(t *testing.T) {
	p := newPlate(exampleGrid(t))
	old := model.NewSlice(-1, 0, 0, 1, 2)
	p.markOwned(old)

	shrunk := model.NewSlice(-1, 0, 2, 1, 2)
	p.release(old, shrunk)

	assert.Equal(t, model.Uncovered, p.at(0, 0))
	assert.Equal(t, model.Uncovered, p.at(1, 1))
	assert.Equal(t, -1, p.at(0, 2))
	assert.Equal(t, -1, p.at(1, 2))
}

func TestPlate_OtherOwnersInPlacementOrder(t *testing.T) {
	p := newPlate(exampleGrid(t))
	p.markOwned(model.NewSlice(-2, 0, 0, 0, 1))
	p.markOwned(model.NewSlice(-1, 1, 0, 1, 1))

	ids := p.otherOwners(model.NewSlice(-3, 0, 0, 2, 1))
	assert.Equal(t, []int{-1, -2}, ids)
}
