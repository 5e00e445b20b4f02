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

// maxPrealloc caps buffers sized from counts read out of a file.
const maxPrealloc = 1024

// ParseInput reads a grid in the plain-text dataset format: a header line
// "<rows> <cols> <min ingredients> <max slice area>" followed by one line
// of T/M letters per row. Line numbers in errors are 1-based.
func ParseInput(r io.Reader) (*model.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lineNum := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNum++
		return strings.TrimRight(sc.Text(), "\r"), true
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		return nil, &model.InvalidInputError{Line: 1, Reason: "missing header"}
	}
	rows, cols, minIngredients, maxArea, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	// rows comes from the file; grow as lines arrive rather than trusting it.
	cells := make([][]model.Ingredient, 0, min(rows, maxPrealloc))
	for len(cells) < rows {
		line, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading input: %w", err)
			}
			return nil, &model.InvalidInputError{
				Line:   lineNum + 1,
				Reason: fmt.Sprintf("expected %d grid rows, found %d", rows, len(cells)),
			}
		}
		row, err := parseGridLine(line, cols, lineNum)
		if err != nil {
			return nil, err
		}
		cells = append(cells, row)
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) != "" {
			return nil, &model.InvalidInputError{Line: lineNum, Reason: "unexpected content after the last grid row"}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return model.NewGrid(rows, cols, cells, minIngredients, maxArea)
}

func parseHeader(line string) (rows, cols, minIngredients, maxArea int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return 0, 0, 0, 0, &model.InvalidInputError{
			Line:   1,
			Reason: fmt.Sprintf("header needs 4 integers, got %d fields", len(fields)),
		}
	}

	var vals [4]int
	for i, f := range fields {
		v, convErr := strconv.Atoi(f)
		if convErr != nil {
			return 0, 0, 0, 0, &model.InvalidInputError{Line: 1, Reason: fmt.Sprintf("header field %q is not an integer", f)}
		}
		vals[i] = v
	}

	rows, cols, minIngredients, maxArea = vals[0], vals[1], vals[2], vals[3]
	switch {
	case rows < 1 || cols < 1:
		err = &model.InvalidInputError{Line: 1, Reason: fmt.Sprintf("grid dimensions %dx%d must be at least 1x1", rows, cols)}
	case minIngredients < 0:
		err = &model.InvalidInputError{Line: 1, Reason: fmt.Sprintf("minimum ingredients %d must not be negative", minIngredients)}
	case maxArea < 1:
		err = &model.InvalidInputError{Line: 1, Reason: fmt.Sprintf("maximum slice area %d must be positive", maxArea)}
	}
	return rows, cols, minIngredients, maxArea, err
}

func parseGridLine(line string, cols, lineNum int) ([]model.Ingredient, error) {
	if n := len([]rune(line)); n != cols {
		return nil, &model.InvalidInputError{
			Line:   lineNum,
			Reason: fmt.Sprintf("row has %d cells, expected %d", n, cols),
		}
	}
	row := make([]model.Ingredient, 0, cols)
	for i, ch := range []rune(line) {
		ing, ok := model.ParseIngredient(ch)
		if !ok {
			return nil, &model.InvalidInputError{
				Line:   lineNum,
				Reason: fmt.Sprintf("column %d: unknown ingredient %q", i+1, ch),
			}
		}
		row = append(row, ing)
	}
	return row, nil
}

// LoadInput opens and parses a dataset file.
func LoadInput(path string) (*model.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	g, err := ParseInput(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
