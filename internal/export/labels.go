package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/PizzaCut/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each slice label's QR code.
type LabelInfo struct {
	RunID     string `json:"run_id"`
	Number    int    `json:"number"`
	RowMin    int    `json:"row_min"`
	ColMin    int    `json:"col_min"`
	RowMax    int    `json:"row_max"`
	ColMax    int    `json:"col_max"`
	Area      int    `json:"area"`
	Tomatoes  int    `json:"tomatoes"`
	Mushrooms int    `json:"mushrooms"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per slice, so a
// printed slicing can be matched back to the result it came from.
func ExportLabels(path string, grid *model.Grid, result model.SliceResult) error {
	labels := CollectLabelInfos(grid, result)
	if len(labels) == 0 {
		return fmt.Errorf("no slices to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for slice %d: %w", label.Number, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.RunID, info.Number)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, fmt.Sprintf("Slice %d", info.Number), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	bounds := fmt.Sprintf("(%d, %d) - (%d, %d)", info.RowMin, info.ColMin, info.RowMax, info.ColMax)
	pdf.CellFormat(textW, 3.5, bounds, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	counts := fmt.Sprintf("%d cells: %d T / %d M", info.Area, info.Tomatoes, info.Mushrooms)
	pdf.CellFormat(textW, 3, counts, "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.CellFormat(textW, 3, "Run "+info.RunID, "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a slicing result
// for use in testing or alternative export formats.
func CollectLabelInfos(grid *model.Grid, result model.SliceResult) []LabelInfo {
	var labels []LabelInfo
	for i, s := range result.Slices {
		t, m := grid.CountIngredients(s)
		labels = append(labels, LabelInfo{
			RunID:     result.RunID,
			Number:    i + 1,
			RowMin:    s.RowMin,
			ColMin:    s.ColMin,
			RowMax:    s.RowMax,
			ColMax:    s.ColMax,
			Area:      s.Area(),
			Tomatoes:  t,
			Mushrooms: m,
		})
	}
	return labels
}
