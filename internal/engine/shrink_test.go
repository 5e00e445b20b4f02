package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/PizzaCut/internal/model"
)

func TestShrink(t *testing.T) {
	existing := model.NewSlice(-4, 0, 0, 2, 3)

	tests := []struct {
		name   string
		placed model.Slice
		want   model.Slice
		ok     bool
	}{
		{"disjoint", model.NewSlice(-9, 3, 0, 3, 0), existing, true},
		{"top band", model.NewSlice(-9, 0, 0, 0, 5), model.NewSlice(-4, 1, 0, 2, 3), true},
		{"bottom band", model.NewSlice(-9, 2, 0, 4, 3), model.NewSlice(-4, 0, 0, 1, 3), true},
		{"left band", model.NewSlice(-9, 0, 0, 2, 1), model.NewSlice(-4, 0, 2, 2, 3), true},
		{"right band", model.NewSlice(-9, 0, 3, 5, 3), model.NewSlice(-4, 0, 0, 2, 2), true},
		{"middle row bisects", model.NewSlice(-9, 1, 0, 1, 3), model.Slice{}, false},
		{"middle columns bisect", model.NewSlice(-9, 0, 1, 2, 2), model.Slice{}, false},
		{"corner", model.NewSlice(-9, 0, 0, 0, 0), model.Slice{}, false},
		{"interior hole", model.NewSlice(-9, 1, 1, 1, 2), model.Slice{}, false},
		{"swallowed", model.NewSlice(-9, 0, 0, 3, 3), model.Slice{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Shrink(existing, tt.placed)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.False(t, got.Overlaps(tt.placed), "remainder must not overlap the new slice")
			}
		})
	}
}

func TestShrink_KeepsEveryCellOutsideOverlap(t *testing.T) {
	existing := model.NewSlice(-1, 2, 2, 5, 4)
	placed := model.NewSlice(-2, 0, 1, 3, 6)

	got, ok := Shrink(existing, placed)
	assert.True(t, ok)
	in, _ := existing.Intersect(placed)
	assert.Equal(t, existing.Area()-in.Area(), got.Area())
	assert.Equal(t, existing.ID, got.ID)
}
