package importer

import (
	"fmt"
	"math"

	"github.com/piwi3910/PizzaCut/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// snapTolerance is how far, in cells, a vertex may sit from a grid line.
const snapTolerance = 0.01

// SliceImportResult holds the slices read back from a drawing.
type SliceImportResult struct {
	Slices   []model.Slice
	Errors   []string
	Warnings []string
}

// ImportSlicesDXF reads a slicing from a DXF file. Each closed axis-aligned
// four-vertex LWPOLYLINE becomes one slice; other entities, such as the
// grid border lines, are skipped. Coordinates are in model.DXFCellSize
// units with rows running along -Y.
func ImportSlicesDXF(path string) SliceImportResult {
	result := SliceImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	for _, ent := range entities {
		lw, ok := ent.(*entity.LwPolyline)
		if !ok {
			continue
		}
		id := -(len(result.Slices) + 1)
		s, err := lwPolylineToSlice(lw, id)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped LWPOLYLINE: %v", err))
			continue
		}
		result.Slices = append(result.Slices, s)
	}

	if len(result.Slices) == 0 {
		result.Errors = append(result.Errors, "No slice rectangles found in DXF file")
	}
	return result
}

// lwPolylineToSlice converts a rectangle outline into slice bounds.
func lwPolylineToSlice(lw *entity.LwPolyline, id int) (model.Slice, error) {
	if len(lw.Vertices) != 4 {
		return model.Slice{}, fmt.Errorf("expected 4 vertices, got %d", len(lw.Vertices))
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range lw.Vertices {
		if len(v) < 2 {
			return model.Slice{}, fmt.Errorf("vertex without coordinates")
		}
		minX, maxX = math.Min(minX, v[0]), math.Max(maxX, v[0])
		minY, maxY = math.Min(minY, v[1]), math.Max(maxY, v[1])
	}

	// Every vertex must be a corner of the bounding box.
	for _, v := range lw.Vertices {
		onX := near(v[0], minX) || near(v[0], maxX)
		onY := near(v[1], minY) || near(v[1], maxY)
		if !onX || !onY {
			return model.Slice{}, fmt.Errorf("outline is not an axis-aligned rectangle")
		}
	}

	colMin, ok1 := toCell(minX)
	colEnd, ok2 := toCell(maxX)
	rowMin, ok3 := toCell(-maxY)
	rowEnd, ok4 := toCell(-minY)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return model.Slice{}, fmt.Errorf("corners are off the cell grid")
	}
	if colEnd <= colMin || rowEnd <= rowMin {
		return model.Slice{}, fmt.Errorf("degenerate rectangle")
	}
	return model.NewSlice(id, rowMin, colMin, rowEnd-1, colEnd-1), nil
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= snapTolerance*model.DXFCellSize
}

// toCell snaps a drawing coordinate to the nearest cell boundary.
func toCell(v float64) (int, bool) {
	cells := v / model.DXFCellSize
	rounded := math.Round(cells)
	if math.Abs(cells-rounded) > snapTolerance {
		return 0, false
	}
	return int(rounded), true
}
