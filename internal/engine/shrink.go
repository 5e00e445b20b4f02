package engine

import "github.com/piwi3910/PizzaCut/internal/model"

// Shrink cuts the cells of placed out of existing and returns what is left,
// keeping the id of existing. It only succeeds when the overlap spans the
// full width or height of existing and sits against exactly one of its
// edges, so the remainder is a single rectangle losing nothing but the
// overlap. Callers must reclassify the result.
func Shrink(existing, placed model.Slice) (model.Slice, bool) {
	in, ok := existing.Intersect(placed)
	if !ok {
		return existing, true
	}

	fullWidth := in.ColMin == existing.ColMin && in.ColMax == existing.ColMax
	fullHeight := in.RowMin == existing.RowMin && in.RowMax == existing.RowMax

	out := existing
	switch {
	case fullWidth && fullHeight:
		// Swallowed whole.
		return model.Slice{}, false
	case fullWidth:
		switch {
		case in.RowMin == existing.RowMin:
			out.RowMin = in.RowMax + 1
		case in.RowMax == existing.RowMax:
			out.RowMax = in.RowMin - 1
		default:
			return model.Slice{}, false
		}
	case fullHeight:
		switch {
		case in.ColMin == existing.ColMin:
			out.ColMin = in.ColMax + 1
		case in.ColMax == existing.ColMax:
			out.ColMax = in.ColMin - 1
		default:
			return model.Slice{}, false
		}
	default:
		return model.Slice{}, false
	}
	return out, true
}
