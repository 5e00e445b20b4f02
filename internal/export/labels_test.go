package export

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PizzaCut/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	err := ExportLabels(path, buildTestGrid(t), buildTestResult(t))
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 500)
}

func TestExportLabels_NoSlices(t *testing.T) {
	grid := buildTestGrid(t)
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, grid, model.NewSliceResult(grid, nil, 0)); err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportLabels_MultiplePages(t *testing.T) {
	rows := []string{"TMTMTMTMTM", "MTMTMTMTMT", "TMTMTMTMTM", "MTMTMTMTMT"}
	grid, err := model.ParseRows(rows, 1, 2)
	if err != nil {
		t.Fatalf("failed to build grid: %v", err)
	}
	var slices []model.Slice
	for r := 0; r < 4; r++ {
		for c := 0; c < 10; c += 2 {
			slices = append(slices, model.NewSlice(-(len(slices)+1), r, c, r, c+1))
		}
	}
	path := filepath.Join(t.TempDir(), "labels.pdf")

	// 20 slices fit on one page; 40 need a second.
	slices = append(slices, slices...)
	if err := ExportLabels(path, grid, model.NewSliceResult(grid, slices, 0)); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 500)
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestGrid(t), buildTestResult(t))

	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}
	first := labels[0]
	if first.Number != 1 || first.Area != 6 {
		t.Errorf("unexpected first label %+v", first)
	}
	if first.Tomatoes != 5 || first.Mushrooms != 1 {
		t.Errorf("expected 5 tomatoes and 1 mushroom, got %d and %d", first.Tomatoes, first.Mushrooms)
	}

	data, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("failed to marshal label: %v", err)
	}
	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal label: %v", err)
	}
	if decoded != first {
		t.Errorf("label changed through JSON: %+v", decoded)
	}
}
