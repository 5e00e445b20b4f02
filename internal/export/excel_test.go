package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportExcel_Sheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.xlsx")

	if err := ExportExcel(path, buildTestGrid(t), buildTestResult(t)); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{slicesSheet, gridSheet, summarySheet}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Errorf("sheet %d: expected %q, got %q", i, want[i], sheets[i])
		}
	}

	rows, err := f.GetRows(slicesSheet)
	if err != nil {
		t.Fatalf("failed to read slices: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 slices, got %d rows", len(rows))
	}
	if rows[1][5] != "6" || rows[1][6] != "5" || rows[1][7] != "1" {
		t.Errorf("unexpected first slice row %v", rows[1])
	}

	gridRows, err := f.GetRows(gridSheet)
	if err != nil {
		t.Fatalf("failed to read grid: %v", err)
	}
	if len(gridRows) != 3 || gridRows[1][2] != "M" {
		t.Errorf("unexpected grid rows %v", gridRows)
	}

	score, err := f.GetCellValue(summarySheet, "B7")
	if err != nil {
		t.Fatalf("failed to read score: %v", err)
	}
	if score != "15" {
		t.Errorf("expected solution score 15, got %q", score)
	}
}

func TestExportExcel_NoGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.xlsx")

	if err := ExportExcel(path, nil, buildTestResult(t)); err == nil {
		t.Fatal("expected error for missing grid")
	}
}
