package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PizzaCut/internal/model"
)

// Slice colors, cycled for visual distinction.
var sliceColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 140},  // green
	{R: 33, G: 150, B: 243, A: 140}, // blue
	{R: 255, G: 152, B: 0, A: 140},  // orange
	{R: 156, G: 39, B: 176, A: 140}, // purple
	{R: 0, G: 188, B: 212, A: 140},  // cyan
	{R: 244, G: 67, B: 54, A: 140},  // red
	{R: 255, G: 235, B: 59, A: 140}, // yellow
	{R: 121, G: 85, B: 72, A: 140},  // brown
}

var (
	crustColor    = color.NRGBA{R: 235, G: 200, B: 140, A: 255}
	tomatoColor   = color.NRGBA{R: 214, G: 48, B: 49, A: 255}
	mushroomColor = color.NRGBA{R: 160, G: 140, B: 120, A: 255}
	outlineColor  = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
)

// minLetterCell is the smallest cell edge, in pixels, that gets a T/M letter.
const minLetterCell = 14

// PizzaCanvas renders a grid with its ingredients and a set of slice outlines.
type PizzaCanvas struct {
	widget.BaseWidget
	grid      *model.Grid
	slices    []model.Slice
	maxWidth  float32
	maxHeight float32
}

func NewPizzaCanvas(grid *model.Grid, slices []model.Slice, maxW, maxH float32) *PizzaCanvas {
	pc := &PizzaCanvas{
		grid:      grid,
		slices:    slices,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	pc.ExtendBaseWidget(pc)
	return pc
}

// SetSlices replaces the drawn slices, e.g. while stepping through a journal.
func (pc *PizzaCanvas) SetSlices(slices []model.Slice) {
	pc.slices = slices
	pc.Refresh()
}

// Slices returns the slices currently drawn.
func (pc *PizzaCanvas) Slices() []model.Slice {
	return pc.slices
}

// cellSize returns the pixel edge of one cell so the grid fits the bounds.
func (pc *PizzaCanvas) cellSize() float32 {
	if pc.grid == nil {
		return 0
	}
	sx := pc.maxWidth / float32(pc.grid.Cols)
	sy := pc.maxHeight / float32(pc.grid.Rows)
	if sy < sx {
		return sy
	}
	return sx
}

func (pc *PizzaCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newPizzaCanvasRenderer(pc)
}

type pizzaCanvasRenderer struct {
	pc      *PizzaCanvas
	objects []fyne.CanvasObject
}

func newPizzaCanvasRenderer(pc *PizzaCanvas) *pizzaCanvasRenderer {
	r := &pizzaCanvasRenderer{pc: pc}
	r.rebuild()
	return r
}

func (r *pizzaCanvasRenderer) rebuild() {
	r.objects = nil

	g := r.pc.grid
	if g == nil {
		return
	}
	cell := r.pc.cellSize()
	canvasW := float32(g.Cols) * cell
	canvasH := float32(g.Rows) * cell

	bg := canvas.NewRectangle(crustColor)
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, bg)

	r.drawIngredients(cell)

	for i, s := range r.pc.slices {
		col := sliceColors[i%len(sliceColors)]
		sx := float32(s.ColMin) * cell
		sy := float32(s.RowMin) * cell
		sw := float32(s.Width()) * cell
		sh := float32(s.Height()) * cell

		fill := canvas.NewRectangle(col)
		fill.Resize(fyne.NewSize(sw, sh))
		fill.Move(fyne.NewPos(sx, sy))
		r.objects = append(r.objects, fill)

		border := canvas.NewRectangle(color.Transparent)
		border.StrokeColor = outlineColor
		border.StrokeWidth = 2
		border.Resize(fyne.NewSize(sw, sh))
		border.Move(fyne.NewPos(sx, sy))
		r.objects = append(r.objects, border)
	}

	frame := canvas.NewRectangle(color.Transparent)
	frame.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	frame.StrokeWidth = 2
	frame.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, frame)
}

// drawIngredients paints one dot per cell, or the cell letter when cells are large.
func (r *pizzaCanvasRenderer) drawIngredients(cell float32) {
	g := r.pc.grid
	for row := 0; row < g.Rows; row++ {
		for c := 0; c < g.Cols; c++ {
			ing := g.At(row, c)
			col := mushroomColor
			if ing == model.Tomato {
				col = tomatoColor
			}
			x := float32(c) * cell
			y := float32(row) * cell

			if cell >= minLetterCell {
				letter := canvas.NewText(string(ing.Rune()), col)
				letter.TextSize = cell * 0.6
				letter.TextStyle = fyne.TextStyle{Bold: true}
				letter.Alignment = fyne.TextAlignCenter
				letter.Resize(fyne.NewSize(cell, cell))
				letter.Move(fyne.NewPos(x, y))
				r.objects = append(r.objects, letter)
				continue
			}

			d := cell * 0.5
			dot := canvas.NewCircle(col)
			dot.Resize(fyne.NewSize(d, d))
			dot.Move(fyne.NewPos(x+(cell-d)/2, y+(cell-d)/2))
			r.objects = append(r.objects, dot)
		}
	}
}

func (r *pizzaCanvasRenderer) Layout(size fyne.Size)        {}
func (r *pizzaCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *pizzaCanvasRenderer) Destroy()                     {}
func (r *pizzaCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *pizzaCanvasRenderer) MinSize() fyne.Size {
	g := r.pc.grid
	if g == nil {
		return fyne.NewSize(0, 0)
	}
	cell := r.pc.cellSize()
	return fyne.NewSize(float32(g.Cols)*cell, float32(g.Rows)*cell)
}

// ResultSummary formats the score lines shown under a result.
func ResultSummary(result *model.SliceResult) string {
	if result == nil {
		return ""
	}
	return fmt.Sprintf(
		"Run %s: %d slices, solution score %d of %d (%.1f%%), placement pass %d, %d re-slice round(s)",
		result.RunID, len(result.Slices), result.CoveredArea, result.GridArea(),
		result.Efficiency(), result.Phase1Area, result.Rounds,
	)
}

// RenderGrid creates a scrollable view of a grid, its slices and score line.
func RenderGrid(grid *model.Grid, result *model.SliceResult) (fyne.CanvasObject, *PizzaCanvas) {
	if grid == nil {
		return widget.NewLabel("No pizza loaded. Use File > Open Input to begin."), nil
	}

	var slices []model.Slice
	if result != nil {
		slices = result.Slices
	}

	header := widget.NewLabel(fmt.Sprintf(
		"Pizza %d x %d: at least %d of each ingredient, at most %d cells per slice",
		grid.Rows, grid.Cols, grid.MinIngredients, grid.MaxSliceArea,
	))
	header.TextStyle = fyne.TextStyle{Bold: true}

	pc := NewPizzaCanvas(grid, slices, 800, 500)

	items := []fyne.CanvasObject{header, pc}
	if result != nil {
		summary := widget.NewLabel(ResultSummary(result))
		summary.TextStyle = fyne.TextStyle{Bold: true}
		items = append(items, widget.NewSeparator(), summary)
	}
	return container.NewVScroll(container.NewVBox(items...)), pc
}
