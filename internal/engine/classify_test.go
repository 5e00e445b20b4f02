package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/PizzaCut/internal/model"
)

func TestClassify(t *testing.T) {
	g := exampleGrid(t)

	tests := []struct {
		name  string
		slice model.Slice
		want  Classification
	}{
		{"valid square", model.NewSlice(-1, 0, 0, 1, 1), Valid},
		{"valid column", model.NewSlice(-1, 0, 2, 2, 2), Valid},
		{"only tomatoes", model.NewSlice(-1, 0, 0, 0, 4), TooFewIngredients},
		{"area above max", model.NewSlice(-1, 0, 0, 2, 4), TooBig},
		{"outside grid", model.NewSlice(-1, 2, 4, 3, 4), InvalidCells},
		{"negative origin", model.NewSlice(-1, -1, 0, 0, 0), InvalidCells},
		{"empty bounds", model.Slice{ID: -1, RowMin: 1, RowMax: 0}, InvalidCells},
		{"too big wins over outside", model.NewSlice(-1, 0, 0, 5, 5), TooBig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(g, tt.slice))
		})
	}
}

func TestClassify_ZeroMinimum(t *testing.T) {
	g := mustGrid(t, []string{"TT"}, 0, 1)
	assert.Equal(t, Valid, Classify(g, model.NewSlice(-1, 0, 1, 0, 1)))
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "too big", TooBig.String())
	assert.Equal(t, "valid", Valid.String())
}
