package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/piwi3910/PizzaCut/internal/engine"
	"github.com/piwi3910/PizzaCut/internal/export"
	"github.com/piwi3910/PizzaCut/internal/importer"
	"github.com/piwi3910/PizzaCut/internal/model"
	"github.com/piwi3910/PizzaCut/internal/project"
	"github.com/piwi3910/PizzaCut/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app     fyne.App
	window  fyne.Window
	logger  *zap.Logger
	project model.Project
	config  model.AppConfig
	presets model.PresetStore
	history *History
	journal *engine.Journal // nil unless the shown result came from a run in this session

	// UI references for dynamic updates
	resultContainer  *fyne.Container
	journalContainer *fyne.Container
	pizzaCanvas      *widgets.PizzaCanvas
	presetSelect     *widget.Select
	resliceCheck     *widget.Check
	roundsEntry      *widget.Entry
	auditCheck       *widget.Check
	statusLabel      *widget.Label
}

// NewApp creates the viewer. Missing config or preset files fall back to defaults.
func NewApp(application fyne.App, window fyne.Window, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		app:     application,
		window:  window,
		logger:  logger,
		project: model.NewProject(),
		history: NewHistory(),
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		logger.Warn("cannot load app config, using defaults", zap.Error(err))
		cfg = model.DefaultAppConfig()
	}
	a.config = cfg
	a.config.ApplyToSettings(&a.project.Settings)

	presets, err := project.LoadPresets(project.DefaultPresetPath())
	if err != nil {
		logger.Warn("cannot load presets", zap.Error(err))
		presets = model.NewPresetStore()
	}
	a.presets = presets

	application.Settings().SetTheme(ThemeFromConfig(a.config.Theme))
	return a
}

// LoadInput opens a dataset file into a fresh project.
func (a *App) LoadInput(path string) error {
	grid, err := importer.LoadInput(path)
	if err != nil {
		return err
	}
	a.setGrid(grid, path)
	return nil
}

func (a *App) setGrid(grid *model.Grid, inputPath string) {
	settings := a.project.Settings
	a.project = model.NewProject()
	a.project.Settings = settings
	a.project.Grid = grid
	a.project.InputPath = inputPath
	if inputPath != "" {
		a.project.Name = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}
	a.journal = nil
	a.history.Clear()
	a.refreshResults()
	a.setStatus(fmt.Sprintf("Loaded %d x %d pizza", grid.Rows, grid.Cols))
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", func() {
			settings := a.project.Settings
			a.project = model.NewProject()
			a.project.Settings = settings
			a.journal = nil
			a.history.Clear()
			a.refreshResults()
		}),
		fyne.NewMenuItem("Open Input...", func() {
			a.openInput()
		}),
		fyne.NewMenuItem("Open Project...", func() {
			a.loadProject()
		}),
		fyne.NewMenuItem("Save Project...", func() {
			a.saveProject()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Grid from CSV...", func() {
			a.importGrid(importer.ImportCSV)
		}),
		fyne.NewMenuItem("Import Grid from Excel...", func() {
			a.importGrid(importer.ImportExcel)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Submission...", func() {
			a.exportSubmission()
		}),
		fyne.NewMenuItem("Export PDF Report...", func() {
			a.exportWithGrid("PDF report", ".pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export Excel...", func() {
			a.exportWithGrid("Excel workbook", ".xlsx", export.ExportExcel)
		}),
		fyne.NewMenuItem("Export DXF...", func() {
			a.exportWithGrid("DXF drawing", ".dxf", func(path string, _ *model.Grid, r model.SliceResult) error {
				return export.ExportDXF(path, r)
			})
		}),
		fyne.NewMenuItem("Export Slice Labels...", func() {
			a.exportWithGrid("slice labels", "-labels.pdf", export.ExportLabels)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Slices", func() {
			if a.project.Result == nil {
				return
			}
			a.history.Push(MakeSnapshot(a.project.Settings, a.project.Result, "Clear Slices"))
			a.project.Result = nil
			a.journal = nil
			a.refreshResults()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Slice", func() {
			a.runSlice()
		}),
		fyne.NewMenuItem("Compare Scenarios...", func() {
			a.showCompareDialog()
		}),
		fyne.NewMenuItem("Audit Solution File...", func() {
			a.auditSolutionFile()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Presets...", func() {
			a.showPresetManager()
		}),
		fyne.NewMenuItem("Settings...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItem("Import / Export Data...", func() {
			a.showImportExportDialog()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))

	a.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.undo() })
	a.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.redo() })
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About PizzaCut",
		"PizzaCut: Greedy Pizza Slicer\n\n"+
			"Cuts a grid of tomato and mushroom cells into rectangular\n"+
			"slices, each holding enough of both ingredients, while\n"+
			"covering as many cells as possible.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.statusLabel = widget.NewLabel("")
	a.resultContainer = container.NewStack()
	a.journalContainer = container.NewVBox()
	a.refreshResults()

	toolbar := container.NewHBox(
		newIconButtonWithTooltip(theme.FolderOpenIcon(), "Open input file", a.openInput),
		newIconButtonWithTooltip(theme.DocumentSaveIcon(), "Save project", a.saveProject),
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.MediaPlayIcon(), "Slice the pizza", a.runSlice),
		newIconButtonWithTooltip(theme.ViewRefreshIcon(), "Compare scenarios", a.showCompareDialog),
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo", a.undo),
		newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", a.redo),
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.UploadIcon(), "Export submission", a.exportSubmission),
		layout.NewSpacer(),
		a.statusLabel,
	)

	return container.NewBorder(
		toolbar,
		a.journalContainer,
		a.buildSettingsPanel(),
		nil,
		a.resultContainer,
	)
}

// ─── Settings Panel ────────────────────────────────────────

func (a *App) buildSettingsPanel() fyne.CanvasObject {
	s := &a.project.Settings

	a.resliceCheck = widget.NewCheck("", func(b bool) { s.Reslice = b })
	a.auditCheck = widget.NewCheck("", func(b bool) { s.Audit = b })
	a.roundsEntry = widget.NewEntry()
	a.roundsEntry.OnChanged = func(text string) {
		if v, err := strconv.Atoi(text); err == nil && v >= 0 {
			s.ResliceRounds = v
		}
	}

	builtIns := a.presets.WithBuiltIns()
	a.presetSelect = widget.NewSelect(builtIns.Names(), func(selected string) {
		all := a.presets.WithBuiltIns()
		if p := all.FindByName(selected); p != nil {
			a.applySettings(p.Settings)
		}
	})
	a.presetSelect.PlaceHolder = "Select a preset..."
	a.syncSettingsWidgets()

	slicerSection := widget.NewCard("Slicer", "", container.NewGridWithColumns(2,
		widget.NewLabel("Preset"), a.presetSelect,
		widget.NewLabel("Re-slice"), a.resliceCheck,
		widget.NewLabel("Rounds (0 = until stable)"), a.roundsEntry,
		widget.NewLabel("Audit Result"), a.auditCheck,
	))

	sliceBtn := widget.NewButtonWithIcon("Slice", theme.MediaPlayIcon(), a.runSlice)
	sliceBtn.Importance = widget.HighImportance

	return container.NewVBox(slicerSection, sliceBtn)
}

// applySettings replaces the project settings and updates the settings card.
func (a *App) applySettings(settings model.SliceSettings) {
	a.project.Settings = settings
	a.syncSettingsWidgets()
}

func (a *App) syncSettingsWidgets() {
	if a.resliceCheck == nil {
		return
	}
	s := a.project.Settings
	a.resliceCheck.SetChecked(s.Reslice)
	a.auditCheck.SetChecked(s.Audit)
	a.roundsEntry.SetText(strconv.Itoa(s.ResliceRounds))
}

func (a *App) refreshPresetSelector() {
	if a.presetSelect == nil {
		return
	}
	all := a.presets.WithBuiltIns()
	a.presetSelect.Options = all.Names()
	a.presetSelect.Refresh()
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) refreshResults() {
	if a.resultContainer == nil {
		return
	}
	view, pc := widgets.RenderGrid(a.project.Grid, a.project.Result)
	a.pizzaCanvas = pc
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(view)
	a.resultContainer.Refresh()
	a.refreshJournal()
}

// refreshJournal shows a step slider over the last run's journal, so the
// placement and re-slicing passes can be watched one change at a time.
func (a *App) refreshJournal() {
	a.journalContainer.RemoveAll()
	if a.journal == nil || a.journal.Len() == 0 || a.pizzaCanvas == nil {
		a.journalContainer.Refresh()
		return
	}

	j := a.journal
	total := j.Len()
	stepLabel := widget.NewLabel("")
	describe := func(step int) {
		text := fmt.Sprintf("Step %d of %d (placement pass ends at %d)", step, total, j.PhaseOneOps())
		if step > 0 {
			op := j.Ops()[step-1]
			switch op.Kind {
			case engine.OpRemove:
				text += fmt.Sprintf(": %s %s", op.Kind, op.Before)
			default:
				text += fmt.Sprintf(": %s %s", op.Kind, op.After)
			}
		}
		stepLabel.SetText(text)
	}

	slider := widget.NewSlider(0, float64(total))
	slider.Step = 1
	slider.Value = float64(total)
	slider.OnChanged = func(v float64) {
		step := int(v)
		a.pizzaCanvas.SetSlices(j.Replay(step))
		describe(step)
	}
	describe(total)

	a.journalContainer.Add(widget.NewSeparator())
	a.journalContainer.Add(container.NewBorder(nil, nil, widget.NewLabel("Journal"), stepLabel, slider))
	a.journalContainer.Refresh()
}

func (a *App) setStatus(text string) {
	if a.statusLabel != nil {
		a.statusLabel.SetText(text)
	}
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) runSlice() {
	if a.project.Grid == nil {
		dialog.ShowInformation("Nothing to slice", "Open an input file first.", a.window)
		return
	}

	a.history.Push(MakeSnapshot(a.project.Settings, a.project.Result, "Slice"))

	slicer := engine.New(a.project.Grid, a.project.Settings, engine.WithLogger(a.logger))
	result, err := slicer.Run()
	a.project.Result = &result
	a.journal = slicer.Journal()
	a.refreshResults()
	a.setStatus(fmt.Sprintf("Solution score %d of %d", result.CoveredArea, result.GridArea()))

	if err != nil {
		dialog.ShowError(err, a.window)
	}
}

func (a *App) undo() {
	restored, ok := a.history.Undo(a.currentSnapshot())
	if !ok {
		return
	}
	a.restore(restored)
}

func (a *App) redo() {
	restored, ok := a.history.Redo(a.currentSnapshot())
	if !ok {
		return
	}
	a.restore(restored)
}

func (a *App) currentSnapshot() Snapshot {
	return MakeSnapshot(a.project.Settings, a.project.Result, "Current")
}

func (a *App) restore(s Snapshot) {
	a.applySettings(s.Settings)
	a.project.Result = s.Result
	a.journal = nil
	a.refreshResults()
	a.setStatus("Restored " + s.Label)
}

func (a *App) openInput() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		if err := a.LoadInput(reader.URI().Path()); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
}

func (a *App) saveProject() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SaveProject(path, a.project); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberRecent(path)
	}, a.window)
	d.SetFileName(a.project.Name + project.ProjectExt)
	d.Show()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		path := reader.URI().Path()
		proj, err := project.LoadProject(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.project = proj
		a.journal = nil
		a.history.Clear()
		a.syncSettingsWidgets()
		a.refreshResults()
		a.rememberRecent(path)
	}, a.window)
	d.Show()
}

func (a *App) rememberRecent(path string) {
	a.config.AddRecent(path)
	if err := a.saveConfig(); err != nil {
		a.logger.Warn("cannot save recent projects", zap.Error(err))
	}
}

func (a *App) requireResult() bool {
	if a.project.Grid == nil || a.project.Result == nil {
		dialog.ShowInformation("No results", "Slice the pizza before exporting.", a.window)
		return false
	}
	return true
}

func (a *App) exportName(suffix string) string {
	return a.project.Name + suffix
}

func (a *App) exportSubmission() {
	if !a.requireResult() {
		return
	}
	slices := a.project.Result.Slices
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := export.SaveSubmission(path, slices); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("%d slices saved to %s", len(slices), path), a.window)
	}, a.window)
	d.SetFileName(a.exportName(export.SubmissionExt))
	d.Show()
}

// exportWithGrid saves the current result with one of the grid-aware exporters.
func (a *App) exportWithGrid(what, suffix string, write func(string, *model.Grid, model.SliceResult) error) {
	if !a.requireResult() {
		return
	}
	grid, result := a.project.Grid, *a.project.Result
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := write(path, grid, result); err != nil {
			dialog.ShowError(fmt.Errorf("failed to export %s: %w", what, err), a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("%s saved to %s", strings.ToUpper(what[:1])+what[1:], path), a.window)
	}, a.window)
	d.SetFileName(a.exportName(suffix))
	d.Show()
}

// auditSolutionFile checks a .out or .dxf slicing against the open grid.
func (a *App) auditSolutionFile() {
	if a.project.Grid == nil {
		dialog.ShowInformation("No pizza", "Open the input the solution was made for first.", a.window)
		return
	}
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		path := reader.URI().Path()

		var slices []model.Slice
		if strings.EqualFold(filepath.Ext(path), ".dxf") {
			res := importer.ImportSlicesDXF(path)
			if len(res.Errors) > 0 {
				dialog.ShowError(errors.New(strings.Join(res.Errors, "\n")), a.window)
				return
			}
			slices = res.Slices
		} else {
			slices, err = importer.LoadSubmission(path)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
		}

		if err := engine.AuditSlicing(a.project.Grid, slices); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Audit Passed",
			fmt.Sprintf("%d slices, solution score %d of %d",
				len(slices), model.TotalArea(slices), a.project.Grid.Area()), a.window)
	}, a.window)
}

// ─── Import Functions ───────────────────────────────────────

// importGrid asks for the slicing limits, which spreadsheets do not carry,
// then runs the given importer on the chosen file.
func (a *App) importGrid(load func(path string, minIngredients, maxSliceArea int) importer.ImportResult) {
	minIng, maxArea := 1, 6
	if g := a.project.Grid; g != nil {
		minIng, maxArea = g.MinIngredients, g.MaxSliceArea
	}

	minEntry := widget.NewEntry()
	minEntry.SetText(strconv.Itoa(minIng))
	maxEntry := widget.NewEntry()
	maxEntry.SetText(strconv.Itoa(maxArea))

	form := dialog.NewForm("Slicing Limits", "Choose File", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Min of each ingredient", minEntry),
			widget.NewFormItem("Max cells per slice", maxEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			lo, err1 := strconv.Atoi(minEntry.Text)
			hi, err2 := strconv.Atoi(maxEntry.Text)
			if err1 != nil || err2 != nil || lo < 0 || hi < 1 {
				dialog.ShowError(fmt.Errorf("minimum must be >= 0 and maximum must be > 0"), a.window)
				return
			}
			dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
				if err != nil || reader == nil {
					return
				}
				defer reader.Close()
				path := reader.URI().Path()
				a.handleImportResult(load(path, lo, hi), path)
			}, a.window)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 220))
	form.Show()
}

func (a *App) handleImportResult(result importer.ImportResult, path string) {
	if len(result.Warnings) > 0 {
		a.logger.Warn("import warnings", zap.String("path", path), zap.Strings("warnings", result.Warnings))
	}

	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
		return
	}

	a.setGrid(result.Grid, path)
	dialog.ShowInformation("Import Complete",
		fmt.Sprintf("Imported a %d x %d pizza.", result.Grid.Rows, result.Grid.Cols), a.window)
}
