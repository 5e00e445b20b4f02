package engine

import (
	"fmt"
	"strings"

	"github.com/piwi3910/PizzaCut/internal/model"
)

// AuditError lists every rule a slicing breaks.
type AuditError struct {
	Problems []string
}

func (e *AuditError) Error() string {
	return fmt.Sprintf("invalid slicing: %s", strings.Join(e.Problems, "; "))
}

// AuditSlicing re-validates a finished slicing against the original grid:
// every slice must classify as Valid and no cell may be covered twice.
// It never modifies slices.
func AuditSlicing(g *model.Grid, slices []model.Slice) error {
	var problems []string
	painted := make([]int, g.Rows*g.Cols) // index into slices + 1

	for i, s := range slices {
		if class := Classify(g, s); class != Valid {
			problems = append(problems, fmt.Sprintf("%s is %s", s, class))
			continue
		}

	paint:
		for r := s.RowMin; r <= s.RowMax; r++ {
			for c := s.ColMin; c <= s.ColMax; c++ {
				cell := r*g.Cols + c
				if prev := painted[cell]; prev != 0 {
					problems = append(problems, fmt.Sprintf("%s overlaps %s at (%d,%d)", s, slices[prev-1], r, c))
					break paint
				}
				painted[cell] = i + 1
			}
		}
	}

	if len(problems) > 0 {
		return &AuditError{Problems: problems}
	}
	return nil
}
