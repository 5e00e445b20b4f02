// Package engine implements the greedy pizza slicer: a row-major placement
// pass that grows the best valid slice at every uncovered cell, shrinking
// the neighbours it overlaps, followed by a re-slicing pass that retries
// each slice once its surroundings have settled.
package engine

import (
	"sort"

	"go.uber.org/zap"

	"github.com/piwi3910/PizzaCut/internal/model"
)

// maxResliceRounds bounds "until stable" re-slicing.
const maxResliceRounds = 64

// Slicer owns the working state of one slicing run.
type Slicer struct {
	Settings model.SliceSettings

	grid    *model.Grid
	plate   *plate
	slices  map[int]model.Slice // arena indexed by slice id
	nextID  int
	journal *Journal
	logger  *zap.Logger
}

// Option customizes a Slicer.
type Option func(*Slicer)

// WithLogger sets the logger used for run summaries and placement detail.
func WithLogger(l *zap.Logger) Option {
	return func(s *Slicer) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(grid *model.Grid, settings model.SliceSettings, opts ...Option) *Slicer {
	s := &Slicer{
		Settings: settings,
		grid:     grid,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

func (s *Slicer) reset() {
	s.plate = newPlate(s.grid)
	s.slices = make(map[int]model.Slice)
	s.nextID = -1
	s.journal = &Journal{}
}

// Grid returns the grid being sliced.
func (s *Slicer) Grid() *model.Grid { return s.grid }

// Journal returns the log of every change made so far.
func (s *Slicer) Journal() *Journal { return s.journal }

// Run slices the grid from scratch: one placement pass, the configured
// re-slicing passes, then an audit when enabled. The result is returned
// even when the audit fails.
func (s *Slicer) Run() (model.SliceResult, error) {
	s.reset()

	placed := s.PlaceAll()
	phaseOne := s.CoveredArea()
	s.journal.markPhaseOne()
	s.logger.Info("placement pass complete",
		zap.Int("slices", placed),
		zap.Int("covered", phaseOne),
		zap.Int("grid_area", s.grid.Area()))

	rounds := 0
	if s.Settings.Reslice {
		limit := s.Settings.ResliceRounds
		if limit <= 0 {
			limit = maxResliceRounds
		}
		for rounds < limit {
			rounds++
			if !s.Reslice() {
				break
			}
		}
		s.logger.Info("re-slicing complete",
			zap.Int("rounds", rounds),
			zap.Int("slices", len(s.slices)),
			zap.Int("covered", s.CoveredArea()))
	}

	result := model.NewSliceResult(s.grid, s.Slices(), phaseOne)
	result.Rounds = rounds

	if s.Settings.Audit {
		if err := AuditSlicing(s.grid, result.Slices); err != nil {
			s.logger.Error("audit failed", zap.Error(err))
			return result, err
		}
	}
	return result, nil
}

// PlaceAll scans the grid row-major and places the best slice at every
// uncovered cell. It returns the number of slices placed.
func (s *Slicer) PlaceAll() int {
	placed := 0
	for r := 0; r < s.grid.Rows; r++ {
		for c := 0; c < s.grid.Cols; c++ {
			if s.sliceAt(r, c, s.nextID) {
				s.nextID--
				placed++
			}
		}
	}
	return placed
}

// Reslice lifts every current slice off in placement order and searches
// again from its top-left cell, reusing its id. Slices that disappear
// earlier in the pass are skipped. It reports whether any slice changed.
func (s *Slicer) Reslice() bool {
	ids := s.ids()
	changed := false

	for _, id := range ids {
		current, ok := s.slices[id]
		if !ok {
			continue
		}

		delete(s.slices, id)
		s.plate.restoreUncovered(current)
		s.journal.record(Op{Kind: OpRemove, Before: current})

		if !s.sliceAt(current.RowMin, current.ColMin, id) {
			s.logger.Debug("slice lost on re-slice", zap.Stringer("slice", current))
			changed = true
			continue
		}
		if replaced := s.slices[id]; !replaced.SameBounds(current) {
			s.logger.Debug("slice improved",
				zap.Stringer("before", current),
				zap.Stringer("after", replaced))
			changed = true
		}
	}
	return changed
}

// sliceAt places the best slice anchored at (r, c) under the given id,
// shrinking every slice it overlaps. It reports whether a slice was placed.
func (s *Slicer) sliceAt(r, c, id int) bool {
	if s.plate.at(r, c) != model.Uncovered {
		return false
	}

	best, ok := s.maxSliceAt(r, c, id)
	if !ok {
		return false
	}

	for _, shrunk := range best.shrinks {
		before := s.slices[shrunk.ID]
		s.plate.release(before, shrunk)
		s.slices[shrunk.ID] = shrunk
		s.journal.record(Op{Kind: OpShrink, Before: before, After: shrunk})
	}

	s.plate.markOwned(best.slice)
	s.slices[id] = best.slice
	s.journal.record(Op{Kind: OpPlace, After: best.slice})

	s.logger.Debug("slice placed",
		zap.Stringer("slice", best.slice),
		zap.Int("gain", best.gain),
		zap.Int("shrunk", len(best.shrinks)))
	return true
}

// ids returns the current slice ids in placement order.
func (s *Slicer) ids() []int {
	ids := make([]int, 0, len(s.slices))
	for id := range s.slices {
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	return ids
}

// Slices returns the current slice set sorted row-major.
func (s *Slicer) Slices() []model.Slice {
	slices := make([]model.Slice, 0, len(s.slices))
	for _, sl := range s.slices {
		slices = append(slices, sl)
	}
	model.SortSlices(slices)
	return slices
}

// CoveredArea returns the total area of the current slices.
func (s *Slicer) CoveredArea() int {
	total := 0
	for _, sl := range s.slices {
		total += sl.Area()
	}
	return total
}
