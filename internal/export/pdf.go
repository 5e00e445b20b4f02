// Package export writes slicing results to submission files and to PDF,
// Excel and DXF documents.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/PizzaCut/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0

	summaryQRSize = 50.0
	// Cells smaller than this are drawn without ingredient marks.
	minMarkedCell = 2.0
)

// ReportSummary is the data encoded into the summary page QR code.
type ReportSummary struct {
	RunID       string  `json:"run_id"`
	Rows        int     `json:"rows"`
	Cols        int     `json:"cols"`
	Slices      int     `json:"slices"`
	Phase1Area  int     `json:"phase1_area"`
	CoveredArea int     `json:"covered_area"`
	GridArea    int     `json:"grid_area"`
	Efficiency  float64 `json:"efficiency"`
}

// NewReportSummary condenses a result for the report QR code.
func NewReportSummary(result model.SliceResult) ReportSummary {
	return ReportSummary{
		RunID:       result.RunID,
		Rows:        result.GridRows,
		Cols:        result.GridCols,
		Slices:      len(result.Slices),
		Phase1Area:  result.Phase1Area,
		CoveredArea: result.CoveredArea,
		GridArea:    result.GridArea(),
		Efficiency:  math.Round(result.Efficiency()*10) / 10,
	}
}

// ExportPDF generates a PDF report of a slicing: the grid with every slice
// drawn over it, followed by a summary page with statistics and a QR code
// of the summary.
func ExportPDF(path string, grid *model.Grid, result model.SliceResult) error {
	if grid == nil {
		return fmt.Errorf("no grid to export")
	}
	if grid.Rows != result.GridRows || grid.Cols != result.GridCols {
		return fmt.Errorf("result is for a %dx%d grid, not %dx%d",
			result.GridRows, result.GridCols, grid.Rows, grid.Cols)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderGridPage(pdf, grid, result)

	pdf.AddPage()
	if err := renderSummaryPage(pdf, grid, result); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// renderGridPage draws the pizza and its slices on the current PDF page.
func renderGridPage(pdf *fpdf.Fpdf, grid *model.Grid, result model.SliceResult) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Pizza %d x %d (min %d each, max area %d)", grid.Rows, grid.Cols, grid.MinIngredients, grid.MaxSliceArea)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Slices: %d | Covered: %d cells | Grid: %d cells | Efficiency: %.1f%%",
		len(result.Slices), result.CoveredArea, result.GridArea(), result.Efficiency())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	// Scale so the whole grid fits
	cell := math.Min(drawWidth/float64(grid.Cols), drawHeight/float64(grid.Rows))
	canvasW := float64(grid.Cols) * cell
	canvasH := float64(grid.Rows) * cell

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Uncovered background
	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Slice fills
	for i, s := range result.Slices {
		col := colorFor(i)
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(offsetX+float64(s.ColMin)*cell, offsetY+float64(s.RowMin)*cell,
			float64(s.Width())*cell, float64(s.Height())*cell, "F")
	}

	if cell >= minMarkedCell {
		drawIngredients(pdf, grid, cell, offsetX, offsetY)
	}

	// Slice outlines on top of everything
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(math.Min(0.3, cell/8))
	for _, s := range result.Slices {
		pdf.Rect(offsetX+float64(s.ColMin)*cell, offsetY+float64(s.RowMin)*cell,
			float64(s.Width())*cell, float64(s.Height())*cell, "D")
	}

	drawDimensionAnnotations(pdf, grid, offsetX, offsetY, canvasW, canvasH)
	drawLegend(pdf, offsetY+canvasH+6)
}

// drawIngredients marks each cell with a dot: red for tomato, brown for mushroom.
func drawIngredients(pdf *fpdf.Fpdf, grid *model.Grid, cell, offsetX, offsetY float64) {
	radius := cell / 5
	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			if grid.At(r, c) == model.Tomato {
				pdf.SetFillColor(200, 30, 30)
			} else {
				pdf.SetFillColor(110, 80, 50)
			}
			pdf.Circle(offsetX+(float64(c)+0.5)*cell, offsetY+(float64(r)+0.5)*cell, radius, "F")
		}
	}
}

// drawDimensionAnnotations adds column and row count labels outside the grid rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, grid *model.Grid, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Column count (below the grid)
	widthLabel := fmt.Sprintf("%d columns", grid.Cols)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Row count (left of the grid, rotated)
	heightLabel := fmt.Sprintf("%d rows", grid.Rows)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawLegend explains the ingredient marks.
func drawLegend(pdf *fpdf.Fpdf, startY float64) {
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)

	items := []struct {
		label   string
		r, g, b int
	}{
		{"Tomato", 200, 30, 30},
		{"Mushroom", 110, 80, 50},
		{"Uncovered", 235, 235, 235},
	}
	x := marginLeft
	for _, item := range items {
		pdf.SetFillColor(item.r, item.g, item.b)
		pdf.Rect(x, startY+0.5, 3, 3, "F")
		pdf.SetXY(x+4, startY)
		w := pdf.GetStringWidth(item.label) + 2
		pdf.CellFormat(w, 4, item.label, "", 0, "L", false, 0, "")
		x += w + 8
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, grid *model.Grid, result model.SliceResult) error {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Slicing Summary", "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	tomatoes, mushrooms := grid.IngredientTotals()
	estimate := model.EstimateScore(grid)
	summaryItems := []struct {
		label string
		value string
	}{
		{"Run", result.RunID},
		{"Grid", fmt.Sprintf("%d x %d", grid.Rows, grid.Cols)},
		{"Tomatoes / Mushrooms", fmt.Sprintf("%d / %d", tomatoes, mushrooms)},
		{"Slices", fmt.Sprintf("%d", len(result.Slices))},
		{"Max Theoretical Score", fmt.Sprintf("%d", result.GridArea())},
		{"Upper Bound", fmt.Sprintf("%d", estimate.UpperBound)},
		{"Placement Pass Score", fmt.Sprintf("%d", result.Phase1Area)},
		{"Solution Score", fmt.Sprintf("%d", result.CoveredArea)},
		{"Efficiency", fmt.Sprintf("%.1f%%", result.Efficiency())},
		{"Re-slice Rounds", fmt.Sprintf("%d", result.Rounds)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	qrData, err := json.Marshal(NewReportSummary(result))
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	imgName := "summary_qr_" + result.RunID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, pageWidth-marginRight-summaryQRSize, marginTop+18, summaryQRSize, summaryQRSize,
		false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	renderLargestSlices(pdf, grid, result, y+5)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by PizzaCut - Pizza Slicing Optimizer", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}

// maxTableRows limits the slice table to what fits below the statistics.
const maxTableRows = 8

// renderLargestSlices lists the first slices of the result in a table.
func renderLargestSlices(pdf *fpdf.Fpdf, grid *model.Grid, result model.SliceResult, y float64) {
	if len(result.Slices) == 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "No valid slice exists for this pizza", "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		return
	}

	colWidths := []float64{20, 50, 50, 25, 30, 30}
	headers := []string{"Slice", "Top Left", "Bottom Right", "Area", "Tomatoes", "Mushrooms"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, s := range result.Slices {
		if i == maxTableRows {
			pdf.SetXY(marginLeft, y)
			pdf.CellFormat(100, 6, fmt.Sprintf("... and %d more", len(result.Slices)-maxTableRows), "", 0, "L", false, 0, "")
			break
		}
		t, m := grid.CountIngredients(s)
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("(%d, %d)", s.RowMin, s.ColMin),
			fmt.Sprintf("(%d, %d)", s.RowMax, s.ColMax),
			fmt.Sprintf("%d", s.Area()),
			fmt.Sprintf("%d", t),
			fmt.Sprintf("%d", m),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}
}
