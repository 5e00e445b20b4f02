package engine

import "github.com/piwi3910/PizzaCut/internal/model"

// OpKind identifies a change to the slice set.
type OpKind int

const (
	OpPlace  OpKind = iota // A new slice claimed its cells
	OpShrink               // An existing slice lost the cells a new one took
	OpRemove               // A slice was lifted off for re-slicing
)

func (k OpKind) String() string {
	switch k {
	case OpPlace:
		return "place"
	case OpShrink:
		return "shrink"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Op is one recorded change. Before is unset for OpPlace, After for OpRemove.
type Op struct {
	Kind   OpKind      `json:"kind"`
	Before model.Slice `json:"before"`
	After  model.Slice `json:"after"`
}

// Journal is the ordered log of every change the slicer made. Replaying a
// prefix rebuilds the slice set as it stood at that point.
type Journal struct {
	ops         []Op
	phaseOneOps int
}

func (j *Journal) record(op Op) {
	j.ops = append(j.ops, op)
}

func (j *Journal) markPhaseOne() {
	j.phaseOneOps = len(j.ops)
}

// Len returns the number of recorded operations.
func (j *Journal) Len() int {
	return len(j.ops)
}

// PhaseOneOps returns how many operations the placement pass recorded.
func (j *Journal) PhaseOneOps() int {
	return j.phaseOneOps
}

// Ops returns a copy of the recorded operations.
func (j *Journal) Ops() []Op {
	ops := make([]Op, len(j.ops))
	copy(ops, j.ops)
	return ops
}

// Replay returns the slice set after the first n operations, sorted
// row-major. n is clamped to the journal length.
func (j *Journal) Replay(n int) []model.Slice {
	n = max(0, min(n, len(j.ops)))
	arena := make(map[int]model.Slice)
	for _, op := range j.ops[:n] {
		switch op.Kind {
		case OpPlace, OpShrink:
			arena[op.After.ID] = op.After
		case OpRemove:
			delete(arena, op.Before.ID)
		}
	}

	slices := make([]model.Slice, 0, len(arena))
	for _, sl := range arena {
		slices = append(slices, sl)
	}
	model.SortSlices(slices)
	return slices
}
