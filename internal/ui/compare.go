package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PizzaCut/internal/engine"
)

// showCompareDialog runs the default what-if scenarios on the open grid and
// lists them side by side. Choosing a row applies its settings.
func (a *App) showCompareDialog() {
	if a.project.Grid == nil {
		dialog.ShowInformation("Nothing to compare", "Open an input file first.", a.window)
		return
	}

	scenarios := engine.BuildDefaultScenarios(a.project.Settings)
	results := engine.CompareScenarios(a.project.Grid, scenarios, engine.WithLogger(a.logger))

	bold := fyne.TextStyle{Bold: true}
	rows := container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Scenario", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Slices", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Score", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Efficiency", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Audit", fyne.TextAlignLeading, bold),
		widget.NewLabel(""),
	)

	var d dialog.Dialog
	for _, r := range results {
		r := r
		audit := "ok"
		if r.AuditErr != nil {
			audit = "FAILED"
		}
		rows.Add(widget.NewLabel(r.Scenario.Name))
		rows.Add(widget.NewLabel(fmt.Sprintf("%d", r.SliceCount)))
		rows.Add(widget.NewLabel(fmt.Sprintf("%d / %d", r.CoveredArea, r.Result.GridArea())))
		rows.Add(widget.NewLabel(fmt.Sprintf("%.1f%%", r.Efficiency)))
		rows.Add(widget.NewLabel(audit))
		rows.Add(widget.NewButton("Use", func() {
			a.history.Push(MakeSnapshot(a.project.Settings, a.project.Result, "Compare: "+r.Scenario.Name))
			a.applySettings(r.Scenario.Settings)
			result := r.Result
			a.project.Result = &result
			a.journal = nil
			a.refreshResults()
			d.Hide()
		}))
	}

	d = dialog.NewCustom("Compare Scenarios", "Close", container.NewVScroll(rows), a.window)
	d.Resize(fyne.NewSize(700, 300))
	d.Show()
}
