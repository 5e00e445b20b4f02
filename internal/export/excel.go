package export

import (
	"fmt"

	"github.com/piwi3910/PizzaCut/internal/model"
	"github.com/xuri/excelize/v2"
)

const (
	slicesSheet  = "Slices"
	gridSheet    = "Grid"
	summarySheet = "Summary"

	// Worksheet limits of the xlsx format.
	maxSheetRows = 1048576
	maxSheetCols = 16384
)

// ExportExcel writes a workbook with a "Slices" sheet listing every slice
// with its bounds and ingredient counts, a "Grid" sheet holding the pizza
// letters tinted by owning slice, and a "Summary" sheet with the scores.
func ExportExcel(path string, grid *model.Grid, result model.SliceResult) error {
	if grid == nil {
		return fmt.Errorf("no grid to export")
	}
	if grid.Rows >= maxSheetRows || grid.Cols > maxSheetCols {
		return fmt.Errorf("grid %dx%d exceeds worksheet limits", grid.Rows, grid.Cols)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), slicesSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	if err := writeSlicesSheet(f, grid, result, bold); err != nil {
		return err
	}
	if err := writeGridSheet(f, grid, result); err != nil {
		return err
	}
	if err := writeSummarySheet(f, result, bold); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSlicesSheet(f *excelize.File, grid *model.Grid, result model.SliceResult, headerStyle int) error {
	header := []interface{}{"Slice", "Row Min", "Col Min", "Row Max", "Col Max", "Area", "Tomatoes", "Mushrooms"}
	if err := f.SetSheetRow(slicesSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(slicesSheet, "A1", "H1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, s := range result.Slices {
		t, m := grid.CountIngredients(s)
		row := []interface{}{i + 1, s.RowMin, s.ColMin, s.RowMax, s.ColMax, s.Area(), t, m}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(slicesSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write slice %d: %w", i+1, err)
		}
	}
	return nil
}

func writeGridSheet(f *excelize.File, grid *model.Grid, result model.SliceResult) error {
	if _, err := f.NewSheet(gridSheet); err != nil {
		return fmt.Errorf("failed to add grid sheet: %w", err)
	}

	for r, line := range grid.RowStrings() {
		row := make([]interface{}, len(line))
		for c, ch := range line {
			row[c] = string(ch)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(gridSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write grid row %d: %w", r, err)
		}
	}

	// One fill style per palette entry, applied to each slice's range.
	styles := make([]int, len(sliceColors))
	for i, col := range sliceColors {
		id, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{col.hex()}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return fmt.Errorf("failed to create slice style: %w", err)
		}
		styles[i] = id
	}

	for i, s := range result.Slices {
		topLeft, err := excelize.CoordinatesToCellName(s.ColMin+1, s.RowMin+1)
		if err != nil {
			return err
		}
		bottomRight, err := excelize.CoordinatesToCellName(s.ColMax+1, s.RowMax+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(gridSheet, topLeft, bottomRight, styles[i%len(styles)]); err != nil {
			return fmt.Errorf("failed to tint slice %d: %w", i+1, err)
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, result model.SliceResult, labelStyle int) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Run", result.RunID},
		{"Rows", result.GridRows},
		{"Columns", result.GridCols},
		{"Slices", len(result.Slices)},
		{"Max Theoretical Score", result.GridArea()},
		{"Placement Pass Score", result.Phase1Area},
		{"Solution Score", result.CoveredArea},
		{"Efficiency %", result.Efficiency()},
		{"Re-slice Rounds", result.Rounds},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(1, len(rows))
	return f.SetCellStyle(summarySheet, "A1", last, labelStyle)
}
