package engine

import "github.com/piwi3910/PizzaCut/internal/model"

// Classification is the outcome of checking a slice against the grid rules.
type Classification int

const (
	Valid             Classification = iota
	TooFewIngredients                // Either topping below the minimum
	InvalidCells                     // Bounds leave the grid or cover an unknown marker
	TooBig                           // Area above the maximum slice area
)

func (c Classification) String() string {
	switch c {
	case Valid:
		return "valid"
	case TooFewIngredients:
		return "too few ingredients"
	case InvalidCells:
		return "invalid cells"
	case TooBig:
		return "too big"
	default:
		return "unknown"
	}
}

// Classify checks s against g. Size is checked first so the search can stop
// widening as soon as a bound grows too far.
func Classify(g *model.Grid, s model.Slice) Classification {
	if s.Area() > g.MaxSliceArea {
		return TooBig
	}
	if !g.Contains(s) {
		return InvalidCells
	}
	tomatoes, mushrooms := g.CountIngredients(s)
	if tomatoes+mushrooms != s.Area() {
		return InvalidCells
	}
	if tomatoes < g.MinIngredients || mushrooms < g.MinIngredients {
		return TooFewIngredients
	}
	return Valid
}
