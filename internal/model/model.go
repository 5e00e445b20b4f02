package model

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Ingredient is the topping held by a single pizza cell.
type Ingredient int

const (
	Tomato   Ingredient = 1 // 'T' in input files
	Mushroom Ingredient = 2 // 'M' in input files
)

// Valid reports whether i is one of the two recognized markers.
func (i Ingredient) Valid() bool {
	return i == Tomato || i == Mushroom
}

// Rune returns the input-file letter for the ingredient.
func (i Ingredient) Rune() rune {
	switch i {
	case Tomato:
		return 'T'
	case Mushroom:
		return 'M'
	default:
		return '?'
	}
}

func (i Ingredient) String() string {
	switch i {
	case Tomato:
		return "Tomato"
	case Mushroom:
		return "Mushroom"
	default:
		return fmt.Sprintf("Ingredient(%d)", int(i))
	}
}

// ParseIngredient maps an input-file letter to its ingredient.
func ParseIngredient(r rune) (Ingredient, bool) {
	switch r {
	case 'T':
		return Tomato, true
	case 'M':
		return Mushroom, true
	default:
		return 0, false
	}
}

// Uncovered is the owner id of a cell that belongs to no slice.
// Slice ids are always negative so they never collide with it.
const Uncovered = 0

// Slice is an axis-aligned rectangle of cells, bounds inclusive.
type Slice struct {
	ID     int `json:"id"`
	RowMin int `json:"row_min"`
	ColMin int `json:"col_min"`
	RowMax int `json:"row_max"`
	ColMax int `json:"col_max"`
}

// NewSlice builds a slice from its corner cells.
func NewSlice(id, rowMin, colMin, rowMax, colMax int) Slice {
	return Slice{ID: id, RowMin: rowMin, ColMin: colMin, RowMax: rowMax, ColMax: colMax}
}

// Height returns the number of rows covered.
func (s Slice) Height() int { return s.RowMax - s.RowMin + 1 }

// Width returns the number of columns covered.
func (s Slice) Width() int { return s.ColMax - s.ColMin + 1 }

// Empty reports whether the bounds contain no cells.
func (s Slice) Empty() bool {
	return s.RowMax < s.RowMin || s.ColMax < s.ColMin
}

// Area returns rows x columns, or 0 for empty bounds.
func (s Slice) Area() int {
	if s.Empty() {
		return 0
	}
	return s.Height() * s.Width()
}

// Contains reports whether cell (r, c) lies inside the slice.
func (s Slice) Contains(r, c int) bool {
	return r >= s.RowMin && r <= s.RowMax && c >= s.ColMin && c <= s.ColMax
}

// Overlaps reports whether the two slices share at least one cell.
func (s Slice) Overlaps(o Slice) bool {
	_, ok := s.Intersect(o)
	return ok
}

// Intersect returns the common cells of s and o. The returned slice keeps
// the id of s.
func (s Slice) Intersect(o Slice) (Slice, bool) {
	in := Slice{
		ID:     s.ID,
		RowMin: max(s.RowMin, o.RowMin),
		ColMin: max(s.ColMin, o.ColMin),
		RowMax: min(s.RowMax, o.RowMax),
		ColMax: min(s.ColMax, o.ColMax),
	}
	if in.Empty() {
		return Slice{}, false
	}
	return in, true
}

// SameBounds reports whether the slices cover the same cells, ignoring ids.
func (s Slice) SameBounds(o Slice) bool {
	return s.RowMin == o.RowMin && s.ColMin == o.ColMin &&
		s.RowMax == o.RowMax && s.ColMax == o.ColMax
}

func (s Slice) String() string {
	return fmt.Sprintf("slice %d [%d,%d]-[%d,%d]", s.ID, s.RowMin, s.ColMin, s.RowMax, s.ColMax)
}

// SortSlices orders slices row-major by their top-left cell.
func SortSlices(slices []Slice) {
	sort.Slice(slices, func(i, j int) bool {
		a, b := slices[i], slices[j]
		if a.RowMin != b.RowMin {
			return a.RowMin < b.RowMin
		}
		if a.ColMin != b.ColMin {
			return a.ColMin < b.ColMin
		}
		return a.ID > b.ID
	})
}

// TotalArea sums the area of all slices.
func TotalArea(slices []Slice) int {
	total := 0
	for _, s := range slices {
		total += s.Area()
	}
	return total
}

// SliceSettings holds the slicer configuration.
type SliceSettings struct {
	Reslice       bool `json:"reslice" yaml:"reslice"`               // Run the corrective re-slicing pass
	ResliceRounds int  `json:"reslice_rounds" yaml:"reslice_rounds"` // Number of re-slicing passes, 0 = until stable
	Audit         bool `json:"audit" yaml:"audit"`                   // Verify the final slicing before returning it
}

func DefaultSettings() SliceSettings {
	return SliceSettings{
		Reslice:       true,
		ResliceRounds: 1,
		Audit:         true,
	}
}

// SliceResult holds the full solution of one slicer run.
type SliceResult struct {
	RunID       string  `json:"run_id"`
	GridRows    int     `json:"grid_rows"`
	GridCols    int     `json:"grid_cols"`
	Slices      []Slice `json:"slices"`
	Phase1Area  int     `json:"phase1_area"`  // Covered area before re-slicing
	CoveredArea int     `json:"covered_area"` // Covered area of Slices
	Rounds      int     `json:"rounds"`       // Re-slicing passes actually run
}

// NewSliceResult wraps a finished slice set with a fresh run id.
func NewSliceResult(g *Grid, slices []Slice, phase1Area int) SliceResult {
	sorted := make([]Slice, len(slices))
	copy(sorted, slices)
	SortSlices(sorted)
	return SliceResult{
		RunID:       uuid.New().String()[:8],
		GridRows:    g.Rows,
		GridCols:    g.Cols,
		Slices:      sorted,
		Phase1Area:  phase1Area,
		CoveredArea: TotalArea(sorted),
	}
}

// GridArea returns the maximum theoretical score.
func (r SliceResult) GridArea() int {
	return r.GridRows * r.GridCols
}

// Efficiency returns the covered percentage of the grid.
func (r SliceResult) Efficiency() float64 {
	ga := r.GridArea()
	if ga == 0 {
		return 0
	}
	return float64(r.CoveredArea) / float64(ga) * 100.0
}

// Project ties a grid, its settings and the last result together for save/load.
type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	InputPath string        `json:"input_path,omitempty"`
	Grid      *Grid         `json:"grid,omitempty"`
	Settings  SliceSettings `json:"settings"`
	Result    *SliceResult  `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		ID:       uuid.New().String()[:8],
		Name:     "Untitled",
		Settings: DefaultSettings(),
	}
}

// DXFCellSize is the drawing-unit edge length of one grid cell in DXF files.
// Rows grow downward along -Y so a cell keeps its (row, col) reading order.
const DXFCellSize = 10.0
