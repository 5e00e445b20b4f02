package ui

import "github.com/piwi3910/PizzaCut/internal/model"

const defaultMaxDepth = 50

// Snapshot captures the settings and slicing result at a point in time.
type Snapshot struct {
	Settings model.SliceSettings
	Result   *model.SliceResult
	Label    string // Human-readable description (e.g. "Slice")
}

// History manages undo/redo stacks of run snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// This should be called before the modification is applied.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot from the undo stack and pushes
// the current state onto the redo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo pops the most recent snapshot from the redo stack and pushes
// the current state onto the undo stack.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

// CanUndo returns true if there is at least one snapshot to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is at least one snapshot to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Labels returns the undo stack descriptions, oldest first.
func (h *History) Labels() []string {
	labels := make([]string, len(h.undoStack))
	for i, s := range h.undoStack {
		labels[i] = s.Label
	}
	return labels
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// copyResult returns a deep copy of a result, including its slices.
func copyResult(r *model.SliceResult) *model.SliceResult {
	if r == nil {
		return nil
	}
	cp := *r
	if r.Slices != nil {
		cp.Slices = make([]model.Slice, len(r.Slices))
		copy(cp.Slices, r.Slices)
	}
	return &cp
}

// MakeSnapshot creates a snapshot from the current project state with a label.
func MakeSnapshot(settings model.SliceSettings, result *model.SliceResult, label string) Snapshot {
	return Snapshot{
		Settings: settings,
		Result:   copyResult(result),
		Label:    label,
	}
}
