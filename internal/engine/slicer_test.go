package engine

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PizzaCut/internal/model"
)

func mustGrid(t *testing.T, rows []string, minIngredients, maxArea int) *model.Grid {
	t.Helper()
	g, err := model.ParseRows(rows, minIngredients, maxArea)
	require.NoError(t, err)
	return g
}

// exampleGrid is the 3x5 sample pizza with one mushroom band in the middle.
func exampleGrid(t *testing.T) *model.Grid {
	return mustGrid(t, []string{"TTTTT", "TMMMT", "TTTTT"}, 1, 6)
}

func randomGrid(t *testing.T, rng *rand.Rand, rows, cols, minIngredients, maxArea int) *model.Grid {
	t.Helper()
	lines := make([]string, rows)
	for r := range lines {
		b := make([]byte, cols)
		for c := range b {
			if rng.Intn(3) == 0 {
				b[c] = 'M'
			} else {
				b[c] = 'T'
			}
		}
		lines[r] = string(b)
	}
	return mustGrid(t, lines, minIngredients, maxArea)
}

func TestPlaceAll_Example(t *testing.T) {
	s := New(exampleGrid(t), model.DefaultSettings())

	placed := s.PlaceAll()

	assert.Equal(t, 3, placed)
	want := []model.Slice{
		model.NewSlice(-3, 0, 0, 2, 1),
		model.NewSlice(-1, 0, 2, 1, 2), // shrunk when slice -3 took its left columns
		model.NewSlice(-2, 0, 3, 2, 4),
	}
	if diff := cmp.Diff(want, s.Slices()); diff != "" {
		t.Errorf("placement pass mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 14, s.CoveredArea())
}

func TestRun_ExampleCoversWholeGrid(t *testing.T) {
	result, err := New(exampleGrid(t), model.DefaultSettings()).Run()
	require.NoError(t, err)

	want := []model.Slice{
		model.NewSlice(-3, 0, 0, 2, 1),
		model.NewSlice(-1, 0, 2, 2, 2),
		model.NewSlice(-2, 0, 3, 2, 4),
	}
	if diff := cmp.Diff(want, result.Slices); diff != "" {
		t.Errorf("final slicing mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 14, result.Phase1Area)
	assert.Equal(t, 15, result.CoveredArea)
	assert.Equal(t, 15, result.GridArea())
	assert.InDelta(t, 100.0, result.Efficiency(), 0.001)
	assert.Equal(t, 1, result.Rounds)
}

func TestRun_EverySliceHoldsBothIngredients(t *testing.T) {
	g := exampleGrid(t)
	result, err := New(g, model.DefaultSettings()).Run()
	require.NoError(t, err)

	for _, sl := range result.Slices {
		tomatoes, mushrooms := g.CountIngredients(sl)
		assert.GreaterOrEqual(t, tomatoes, 1, "%s needs a tomato", sl)
		assert.GreaterOrEqual(t, mushrooms, 1, "%s needs a mushroom", sl)
		assert.LessOrEqual(t, sl.Area(), g.MaxSliceArea)
	}
}

func TestRun_Deterministic(t *testing.T) {
	g := randomGrid(t, rand.New(rand.NewSource(7)), 9, 11, 1, 6)

	first, err := New(g, model.DefaultSettings()).Run()
	require.NoError(t, err)
	second, err := New(g, model.DefaultSettings()).Run()
	require.NoError(t, err)

	if diff := cmp.Diff(first.Slices, second.Slices); diff != "" {
		t.Errorf("runs differ (-first +second):\n%s", diff)
	}
	assert.NotEqual(t, first.RunID, second.RunID, "each run gets its own id")
}

func TestRun_SingleSliceCoversGrid(t *testing.T) {
	g := mustGrid(t, []string{"TMT", "MTM"}, 1, 6)

	result, err := New(g, model.DefaultSettings()).Run()
	require.NoError(t, err)

	require.Len(t, result.Slices, 1)
	assert.Equal(t, model.NewSlice(-1, 0, 0, 1, 2), result.Slices[0])
	assert.Equal(t, 6, result.CoveredArea)
}

func TestRun_NoValidSlice(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		min  int
		max  int
	}{
		{"single ingredient", []string{"TTTT", "TTTT"}, 1, 4},
		{"area too small", []string{"TMTM", "MTMT"}, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New(mustGrid(t, tt.rows, tt.min, tt.max), model.DefaultSettings()).Run()
			require.NoError(t, err)
			assert.Empty(t, result.Slices)
			assert.Equal(t, 0, result.CoveredArea)
		})
	}
}

func TestRun_PlacementOnly(t *testing.T) {
	settings := model.DefaultSettings()
	settings.Reslice = false

	result, err := New(exampleGrid(t), settings).Run()
	require.NoError(t, err)

	assert.Equal(t, 0, result.Rounds)
	assert.Equal(t, 14, result.CoveredArea)
	assert.Equal(t, result.Phase1Area, result.CoveredArea)
}

func TestReslice_IdempotentOnSettledResult(t *testing.T) {
	s := New(exampleGrid(t), model.DefaultSettings())
	s.PlaceAll()

	require.True(t, s.Reslice(), "first pass grows the middle slice")
	settled := s.Slices()

	assert.False(t, s.Reslice(), "second pass has nothing left to improve")
	if diff := cmp.Diff(settled, s.Slices()); diff != "" {
		t.Errorf("second pass changed the slicing (-want +got):\n%s", diff)
	}
}

func TestRun_RandomGridProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cases := []struct{ rows, cols, min, max int }{
		{6, 8, 1, 5},
		{10, 10, 1, 6},
		{7, 12, 2, 8},
		{12, 5, 1, 4},
		{9, 9, 2, 12},
	}

	for _, tc := range cases {
		g := randomGrid(t, rng, tc.rows, tc.cols, tc.min, tc.max)
		settings := model.DefaultSettings()
		settings.ResliceRounds = 0

		s := New(g, settings)
		result, err := s.Run()
		require.NoError(t, err, "audit must pass on %dx%d grid", tc.rows, tc.cols)

		assert.GreaterOrEqual(t, result.CoveredArea, result.Phase1Area, "re-slicing must never lose area")
		assert.LessOrEqual(t, result.CoveredArea, model.EstimateScore(g).UpperBound)

		if result.Rounds < maxResliceRounds {
			assert.False(t, s.Reslice(), "a stable slicing must not change on another pass")
		}
	}
}

func TestRun_RoundsAreMonotonic(t *testing.T) {
	g := randomGrid(t, rand.New(rand.NewSource(3)), 10, 14, 1, 6)

	prev := -1
	for rounds := 1; rounds <= 4; rounds++ {
		settings := model.DefaultSettings()
		settings.ResliceRounds = rounds
		result, err := New(g, settings).Run()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.CoveredArea, prev, "round %d lost area", rounds)
		prev = result.CoveredArea
	}
}

func TestRun_ResetsBetweenRuns(t *testing.T) {
	s := New(exampleGrid(t), model.DefaultSettings())

	first, err := s.Run()
	require.NoError(t, err)
	second, err := s.Run()
	require.NoError(t, err)

	if diff := cmp.Diff(first.Slices, second.Slices); diff != "" {
		t.Errorf("rerun differs (-first +second):\n%s", diff)
	}
}

func TestSliceAt_SkipsCoveredAnchor(t *testing.T) {
	s := New(exampleGrid(t), model.DefaultSettings())
	s.PlaceAll()

	assert.False(t, s.sliceAt(0, 0, -99), "anchor already owned")
	assert.Len(t, s.Slices(), 3)
}
