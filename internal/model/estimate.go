package model

// ScoreEstimate holds an upper bound on the score a slicing can reach.
type ScoreEstimate struct {
	GridArea       int     `json:"grid_area"`       // Max theoretical score
	Tomatoes       int     `json:"tomatoes"`        // Tomato cells on the grid
	Mushrooms      int     `json:"mushrooms"`       // Mushroom cells on the grid
	MaxSlices      int     `json:"max_slices"`      // Slices the scarcer ingredient can feed
	UpperBound     int     `json:"upper_bound"`     // min(GridArea, MaxSlices x MaxSliceArea)
	BoundPercent   float64 `json:"bound_percent"`   // UpperBound as a share of GridArea
	MinSliceArea   int     `json:"min_slice_area"`  // Smallest area a valid slice can have
	MaxSliceArea   int     `json:"max_slice_area"`  // Copied from the grid
	MinIngredients int     `json:"min_ingredients"` // Copied from the grid
}

// EstimateScore computes how much of the grid a slicing could cover at best.
// Every slice needs MinIngredients of each topping, so the scarcer topping
// caps the number of slices.
func EstimateScore(g *Grid) ScoreEstimate {
	tomatoes, mushrooms := g.IngredientTotals()
	est := ScoreEstimate{
		GridArea:       g.Area(),
		Tomatoes:       tomatoes,
		Mushrooms:      mushrooms,
		MinSliceArea:   2 * g.MinIngredients,
		MaxSliceArea:   g.MaxSliceArea,
		MinIngredients: g.MinIngredients,
	}

	if est.MinSliceArea > g.MaxSliceArea {
		return est
	}

	if g.MinIngredients == 0 {
		est.MaxSlices = est.GridArea
	} else {
		est.MaxSlices = min(tomatoes, mushrooms) / g.MinIngredients
	}
	est.UpperBound = min(est.GridArea, est.MaxSlices*g.MaxSliceArea)
	if est.GridArea > 0 {
		est.BoundPercent = float64(est.UpperBound) / float64(est.GridArea) * 100.0
	}
	return est
}
