package export

import (
	"fmt"

	"github.com/piwi3910/PizzaCut/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
)

// DXF layer names.
const (
	LayerGrid   = "GRID"
	LayerSlices = "SLICES"
)

// ExportDXF writes the slicing as a drawing: the grid border as LINE
// entities on layer GRID and one closed LWPOLYLINE per slice on layer
// SLICES. Each cell is model.DXFCellSize units square, row 0 at the top.
func ExportDXF(path string, result model.SliceResult) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer(LayerGrid, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add grid layer: %w", err)
	}
	w := float64(result.GridCols) * model.DXFCellSize
	h := -float64(result.GridRows) * model.DXFCellSize
	border := [][4]float64{
		{0, 0, w, 0},
		{w, 0, w, h},
		{w, h, 0, h},
		{0, h, 0, 0},
	}
	for _, l := range border {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return fmt.Errorf("failed to draw grid border: %w", err)
		}
	}

	if _, err := d.AddLayer(LayerSlices, color.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add slice layer: %w", err)
	}
	for _, s := range result.Slices {
		if _, err := d.LwPolyline(true, sliceOutline(s)...); err != nil {
			return fmt.Errorf("failed to draw %s: %w", s, err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// sliceOutline returns the four corners of s in drawing units.
func sliceOutline(s model.Slice) [][]float64 {
	x0 := float64(s.ColMin) * model.DXFCellSize
	x1 := float64(s.ColMax+1) * model.DXFCellSize
	y0 := -float64(s.RowMin) * model.DXFCellSize
	y1 := -float64(s.RowMax+1) * model.DXFCellSize
	return [][]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}
