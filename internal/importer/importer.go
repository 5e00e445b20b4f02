// Package importer loads pizza grids and finished slicings from disk. It
// reads the plain-text dataset format, spreadsheet grids (CSV with automatic
// delimiter detection, or the first sheet of an Excel workbook), submission
// files and DXF drawings of slices.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/piwi3910/PizzaCut/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of a tolerant grid import. Grid is nil
// whenever Errors is non-empty.
type ImportResult struct {
	Grid     *model.Grid
	Errors   []string
	Warnings []string
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// rowLetters joins the cells of a spreadsheet row into one string of
// ingredient letters. A row may hold one letter per cell or a whole grid
// row in its first cell.
func rowLetters(row []string) string {
	var sb strings.Builder
	for _, cell := range row {
		sb.WriteString(strings.TrimSpace(cell))
	}
	return sb.String()
}

// isGridRow reports whether s consists only of ingredient letters in
// either case.
func isGridRow(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if _, ok := model.ParseIngredient(ch); ok {
			continue
		}
		if ch == 't' || ch == 'm' {
			continue
		}
		return false
	}
	return true
}

// ImportCSV imports a grid from a CSV file.
// It automatically detects the delimiter.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string, minIngredients, maxSliceArea int) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings, minIngredients, maxSliceArea)
}

// ImportCSVFromReader imports a grid from a CSV reader with a specific delimiter.
// This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune, minIngredients, maxSliceArea int) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", nil, minIngredients, maxSliceArea)
}

// ImportExcel imports a grid from an Excel (.xlsx) file.
// Reads the first sheet.
func ImportExcel(path string, minIngredients, maxSliceArea int) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil, minIngredients, maxSliceArea)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// A leading row that is not made of ingredient letters is skipped as a
// header; every other non-empty row must be one grid row.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string, minIngredients, maxSliceArea int) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	var lines []string
	lowercase := false
	headerSeen := false

	for i, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		letters := rowLetters(row)

		if !isGridRow(letters) {
			if len(lines) == 0 && !headerSeen {
				headerSeen = true
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Unknown ingredient in '%s'", rowLabel, letters))
			continue
		}

		upper := strings.ToUpper(letters)
		if upper != letters {
			lowercase = true
		}
		if len(lines) > 0 && len(upper) != len(lines[0]) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: Row has %d cells, expected %d", rowLabel, len(upper), len(lines[0])))
			continue
		}
		lines = append(lines, upper)
	}

	if lowercase {
		result.Warnings = append(result.Warnings, "Lowercase ingredient letters converted to uppercase")
	}
	if len(lines) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No grid rows found")
	}
	if len(result.Errors) > 0 {
		return result
	}

	g, err := model.ParseRows(lines, minIngredients, maxSliceArea)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Grid = g
	return result
}
