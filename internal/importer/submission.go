package importer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/PizzaCut/internal/model"
)

// ParseSubmission reads a solution file: the slice count on the first line,
// then "<row1> <col1> <row2> <col2>" per slice with any two opposite corners.
// Slices get ids -1, -2, ... in file order.
func ParseSubmission(r io.Reader) ([]model.Slice, error) {
	sc := bufio.NewScanner(r)
	lineNum := 0
	expected := -1
	var slices []model.Slice

	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if expected < 0 {
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 {
				return nil, &model.InvalidInputError{Line: lineNum, Reason: fmt.Sprintf("slice count %q is not a non-negative integer", line)}
			}
			expected = n
			slices = make([]model.Slice, 0, min(n, maxPrealloc))
			continue
		}

		if len(slices) == expected {
			return nil, &model.InvalidInputError{Line: lineNum, Reason: fmt.Sprintf("more than the declared %d slices", expected)}
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, &model.InvalidInputError{Line: lineNum, Reason: fmt.Sprintf("slice needs 4 integers, got %d fields", len(fields))}
		}
		var v [4]int
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, &model.InvalidInputError{Line: lineNum, Reason: fmt.Sprintf("coordinate %q is not an integer", f)}
			}
			v[i] = n
		}

		id := -(len(slices) + 1)
		slices = append(slices, model.NewSlice(id,
			min(v[0], v[2]), min(v[1], v[3]),
			max(v[0], v[2]), max(v[1], v[3])))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading submission: %w", err)
	}

	if expected < 0 {
		return nil, &model.InvalidInputError{Line: 1, Reason: "missing slice count"}
	}
	if len(slices) != expected {
		return nil, &model.InvalidInputError{
			Line:   lineNum + 1,
			Reason: fmt.Sprintf("declared %d slices, found %d", expected, len(slices)),
		}
	}
	return slices, nil
}

// LoadSubmission opens and parses a solution file.
func LoadSubmission(path string) ([]model.Slice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening submission: %w", err)
	}
	defer f.Close()

	slices, err := ParseSubmission(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return slices, nil
}
