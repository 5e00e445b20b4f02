package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PizzaCut/internal/model"
)

// buildTestGrid returns the 3x5 sample pizza.
func buildTestGrid(t *testing.T) *model.Grid {
	t.Helper()
	g, err := model.ParseRows([]string{"TTTTT", "TMMMT", "TTTTT"}, 1, 6)
	if err != nil {
		t.Fatalf("failed to build grid: %v", err)
	}
	return g
}

// buildTestResult returns a full slicing of the sample pizza.
func buildTestResult(t *testing.T) model.SliceResult {
	t.Helper()
	slices := []model.Slice{
		model.NewSlice(-3, 0, 0, 2, 1),
		model.NewSlice(-1, 0, 2, 2, 2),
		model.NewSlice(-2, 0, 3, 2, 4),
	}
	result := model.NewSliceResult(buildTestGrid(t), slices, 14)
	result.Rounds = 1
	return result
}

func assertNonEmptyFile(t *testing.T, path string, minSize int64) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	if info.Size() < minSize {
		t.Errorf("file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	err := ExportPDF(path, buildTestGrid(t), buildTestResult(t))
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 500)
}

func TestExportPDF_NoSlices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	grid := buildTestGrid(t)

	err := ExportPDF(path, grid, model.NewSliceResult(grid, nil, 0))
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 500)
}

func TestExportPDF_LargeGridSkipsMarks(t *testing.T) {
	rows := make([]string, 200)
	for i := range rows {
		line := make([]byte, 300)
		for j := range line {
			line[j] = "TM"[(i+j)%2]
		}
		rows[i] = string(line)
	}
	grid, err := model.ParseRows(rows, 1, 2)
	if err != nil {
		t.Fatalf("failed to build grid: %v", err)
	}
	path := filepath.Join(t.TempDir(), "large.pdf")

	if err := ExportPDF(path, grid, model.NewSliceResult(grid, []model.Slice{model.NewSlice(-1, 0, 0, 0, 1)}, 2)); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 500)
}

func TestExportPDF_Mismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	result := buildTestResult(t)
	result.GridCols = 4

	if err := ExportPDF(path, buildTestGrid(t), result); err == nil {
		t.Fatal("expected error for mismatched grid, got nil")
	}
	if err := ExportPDF(path, nil, result); err == nil {
		t.Fatal("expected error for missing grid, got nil")
	}
}

func TestNewReportSummary(t *testing.T) {
	summary := NewReportSummary(buildTestResult(t))

	if summary.Slices != 3 || summary.CoveredArea != 15 || summary.GridArea != 15 {
		t.Errorf("unexpected summary %+v", summary)
	}
	if summary.Efficiency != 100 {
		t.Errorf("expected efficiency 100, got %v", summary.Efficiency)
	}

	data, err := json.Marshal(summary)
	if err != nil {
		t.Fatalf("failed to marshal summary: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal summary: %v", err)
	}
	if _, ok := decoded["run_id"]; !ok {
		t.Error("expected run_id in summary JSON")
	}
}
