package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("T,T,M\nM,T,T\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("T;T;M\nM;T;T\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("T\tT\tM\nM\tT\tT\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("T|T|M\nM|T|T\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestImportCSV_OneLetterPerCell(t *testing.T) {
	path := writeTempFile(t, "grid.csv", "T,T,T,T,T\nT,M,M,M,T\nT,T,T,T,T\n")

	result := ImportCSV(path, 1, 6)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Grid.Rows != 3 || result.Grid.Cols != 5 {
		t.Errorf("expected 3x5 grid, got %dx%d", result.Grid.Rows, result.Grid.Cols)
	}
	if result.Grid.MinIngredients != 1 || result.Grid.MaxSliceArea != 6 {
		t.Errorf("limits not applied: min=%d max=%d", result.Grid.MinIngredients, result.Grid.MaxSliceArea)
	}
	tomatoes, mushrooms := result.Grid.IngredientTotals()
	if tomatoes != 12 || mushrooms != 3 {
		t.Errorf("expected 12 tomatoes and 3 mushrooms, got %d and %d", tomatoes, mushrooms)
	}
}

func TestImportCSV_SemicolonWarns(t *testing.T) {
	path := writeTempFile(t, "grid.csv", "T;M\nM;T\n")

	result := ImportCSV(path, 1, 2)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected semicolon warning, got %v", result.Warnings)
	}
}

func TestImportCSV_HeaderAndLowercase(t *testing.T) {
	path := writeTempFile(t, "grid.csv", "c1,c2,c3\nt,m,t\n\nm,t,m\n")

	result := ImportCSV(path, 1, 6)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if got := result.Grid.RowStrings(); got[0] != "TMT" || got[1] != "MTM" {
		t.Errorf("unexpected rows %v", got)
	}
	if len(result.Warnings) != 2 {
		t.Errorf("expected header and lowercase warnings, got %v", result.Warnings)
	}
}

func TestImportCSV_RaggedRow(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("T,M,T\nM,T\n"), ',', 1, 6)

	if result.Grid != nil {
		t.Error("expected no grid for ragged rows")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Line 2") {
		t.Errorf("expected one error on line 2, got %v", result.Errors)
	}
}

func TestImportCSV_UnknownLetter(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("T,M\nT,X\n"), ',', 1, 6)

	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Unknown ingredient") {
		t.Errorf("expected unknown ingredient error, got %v", result.Errors)
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.csv", "  \n")

	result := ImportCSV(path, 1, 6)

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

func TestImportCSV_InvalidLimits(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("T,M\n"), ',', 1, 0)

	if len(result.Errors) == 0 {
		t.Error("expected error for zero maximum slice area")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_LetterCells(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"T", "T", "T", "T", "T"},
		{"T", "M", "M", "M", "T"},
		{"T", "T", "T", "T", "T"},
	})

	result := ImportExcel(path, 1, 6)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Grid.Cols != 5 || result.Grid.Rows != 3 {
		t.Errorf("expected 3x5 grid, got %dx%d", result.Grid.Rows, result.Grid.Cols)
	}
}

func TestImportExcel_RowStrings(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Pizza"},
		{"TMMT"},
		{"MTTM"},
	})

	result := ImportExcel(path, 1, 4)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if got := result.Grid.RowStrings(); got[0] != "TMMT" || got[1] != "MTTM" {
		t.Errorf("unexpected rows %v", got)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/file.xlsx", 1, 6)

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}
