package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Grid is the immutable pizza: ingredient cells plus the slicing limits.
// Per-ingredient prefix sums make rectangle counts constant time.
type Grid struct {
	Rows           int
	Cols           int
	MinIngredients int // Minimum count of each ingredient per slice
	MaxSliceArea   int // Maximum rows x columns of any slice

	cells    []Ingredient
	tomatoes []int // (Rows+1) x (Cols+1) prefix sums
	mushroom []int
}

// NewGrid validates and loads a grid. cells must be rows x cols.
func NewGrid(rows, cols int, cells [][]Ingredient, minIngredients, maxSliceArea int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("grid dimensions %dx%d must be at least 1x1", rows, cols)}
	}
	if minIngredients < 0 {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("minimum ingredients %d must not be negative", minIngredients)}
	}
	if maxSliceArea < 1 {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("maximum slice area %d must be positive", maxSliceArea)}
	}
	if len(cells) != rows {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("expected %d rows, got %d", rows, len(cells))}
	}

	g := &Grid{
		Rows:           rows,
		Cols:           cols,
		MinIngredients: minIngredients,
		MaxSliceArea:   maxSliceArea,
		cells:          make([]Ingredient, 0, rows*cols),
	}
	for r, row := range cells {
		if len(row) != cols {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("row %d has %d cells, expected %d", r, len(row), cols)}
		}
		for c, v := range row {
			if !v.Valid() {
				return nil, &InvalidInputError{Reason: fmt.Sprintf("cell (%d,%d) holds unknown ingredient %d", r, c, int(v))}
			}
		}
		g.cells = append(g.cells, row...)
	}
	g.buildPrefixSums()
	return g, nil
}

// ParseRows loads a grid from one string per row, using the T/M letters.
func ParseRows(rows []string, minIngredients, maxSliceArea int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, &InvalidInputError{Reason: "grid has no rows"}
	}
	cells := make([][]Ingredient, len(rows))
	for r, line := range rows {
		cells[r] = make([]Ingredient, 0, len(line))
		for _, ch := range line {
			ing, ok := ParseIngredient(ch)
			if !ok {
				return nil, &InvalidInputError{Reason: fmt.Sprintf("row %d: unknown ingredient %q", r, ch)}
			}
			cells[r] = append(cells[r], ing)
		}
	}
	return NewGrid(len(rows), len(cells[0]), cells, minIngredients, maxSliceArea)
}

func (g *Grid) buildPrefixSums() {
	w := g.Cols + 1
	g.tomatoes = make([]int, (g.Rows+1)*w)
	g.mushroom = make([]int, (g.Rows+1)*w)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			t, m := 0, 0
			if g.cells[r*g.Cols+c] == Tomato {
				t = 1
			} else {
				m = 1
			}
			i := (r+1)*w + c + 1
			g.tomatoes[i] = t + g.tomatoes[i-1] + g.tomatoes[i-w] - g.tomatoes[i-w-1]
			g.mushroom[i] = m + g.mushroom[i-1] + g.mushroom[i-w] - g.mushroom[i-w-1]
		}
	}
}

// InBounds reports whether (r, c) is a grid cell.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// Contains reports whether every cell of s is a grid cell.
func (g *Grid) Contains(s Slice) bool {
	return !s.Empty() && g.InBounds(s.RowMin, s.ColMin) && g.InBounds(s.RowMax, s.ColMax)
}

// At returns the ingredient at (r, c), or 0 outside the grid.
func (g *Grid) At(r, c int) Ingredient {
	if !g.InBounds(r, c) {
		return 0
	}
	return g.cells[r*g.Cols+c]
}

// Area returns rows x columns.
func (g *Grid) Area() int {
	return g.Rows * g.Cols
}

// CountIngredients returns the tomato and mushroom counts inside s.
// Cells outside the grid are not counted.
func (g *Grid) CountIngredients(s Slice) (tomatoes, mushrooms int) {
	rMin, cMin := max(s.RowMin, 0), max(s.ColMin, 0)
	rMax, cMax := min(s.RowMax, g.Rows-1), min(s.ColMax, g.Cols-1)
	if rMax < rMin || cMax < cMin {
		return 0, 0
	}
	return g.rectSum(g.tomatoes, rMin, cMin, rMax, cMax), g.rectSum(g.mushroom, rMin, cMin, rMax, cMax)
}

func (g *Grid) rectSum(sum []int, rMin, cMin, rMax, cMax int) int {
	w := g.Cols + 1
	return sum[(rMax+1)*w+cMax+1] - sum[rMin*w+cMax+1] - sum[(rMax+1)*w+cMin] + sum[rMin*w+cMin]
}

// IngredientTotals returns the tomato and mushroom counts of the whole grid.
func (g *Grid) IngredientTotals() (tomatoes, mushrooms int) {
	return g.CountIngredients(Slice{RowMax: g.Rows - 1, ColMax: g.Cols - 1})
}

// RowStrings renders the grid back to its T/M letters.
func (g *Grid) RowStrings() []string {
	rows := make([]string, g.Rows)
	var sb strings.Builder
	for r := 0; r < g.Rows; r++ {
		sb.Reset()
		for c := 0; c < g.Cols; c++ {
			sb.WriteRune(g.At(r, c).Rune())
		}
		rows[r] = sb.String()
	}
	return rows
}

type gridJSON struct {
	Rows           int      `json:"rows"`
	Cols           int      `json:"cols"`
	MinIngredients int      `json:"min_ingredients"`
	MaxSliceArea   int      `json:"max_slice_area"`
	Cells          []string `json:"cells"`
}

func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(gridJSON{
		Rows:           g.Rows,
		Cols:           g.Cols,
		MinIngredients: g.MinIngredients,
		MaxSliceArea:   g.MaxSliceArea,
		Cells:          g.RowStrings(),
	})
}

func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseRows(raw.Cells, raw.MinIngredients, raw.MaxSliceArea)
	if err != nil {
		return err
	}
	if parsed.Rows != raw.Rows || parsed.Cols != raw.Cols {
		return &InvalidInputError{Reason: fmt.Sprintf("declared %dx%d grid holds %dx%d cells",
			raw.Rows, raw.Cols, parsed.Rows, parsed.Cols)}
	}
	*g = *parsed
	return nil
}
