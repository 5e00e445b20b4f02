package model

import "fmt"

// InvalidInputError reports a grid that cannot be loaded. Line is 1-based
// and zero when the problem is not tied to a line of an input file.
type InvalidInputError struct {
	Line   int
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid input at line %d: %s", e.Line, e.Reason)
	}
	return "invalid input: " + e.Reason
}

// InvalidSliceError flags a slice whose bounds fall outside the grid or over
// an unrecognized marker. On a loaded grid this only happens through a bug
// in bounds computation.
type InvalidSliceError struct {
	Slice  Slice
	Reason string
}

func (e *InvalidSliceError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Slice, e.Reason)
}
