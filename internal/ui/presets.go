package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PizzaCut/internal/model"
	"github.com/piwi3910/PizzaCut/internal/project"
)

// describeSettings renders slicer settings as one line.
func describeSettings(s model.SliceSettings) string {
	reslice := "off"
	if s.Reslice {
		if s.ResliceRounds == 0 {
			reslice = "until stable"
		} else {
			reslice = fmt.Sprintf("%d round(s)", s.ResliceRounds)
		}
	}
	return fmt.Sprintf("Re-slice: %s, audit: %t", reslice, s.Audit)
}

// showPresetManager opens the preset window where users can apply, save,
// delete, import and export settings presets.
func (a *App) showPresetManager() {
	w := a.app.NewWindow("Settings Presets")
	w.Resize(fyne.NewSize(600, 400))

	selectedIdx := -1
	presets := a.presets.WithBuiltIns().Presets
	detail := container.NewVBox(widget.NewLabel("Select a preset to view details."))

	list := widget.NewList(
		func() int {
			return len(presets)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.SettingsIcon()),
				widget.NewLabel("Preset Name"),
				layout.NewSpacer(),
				widget.NewLabel("(built-in)"),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			box := obj.(*fyne.Container)
			p := presets[id]
			box.Objects[1].(*widget.Label).SetText(p.Name)
			tag := "(custom)"
			if p.IsBuiltIn {
				tag = "(built-in)"
			}
			box.Objects[3].(*widget.Label).SetText(tag)
		},
	)

	reload := func() {
		presets = a.presets.WithBuiltIns().Presets
		selectedIdx = -1
		list.UnselectAll()
		list.Refresh()
		detail.RemoveAll()
		detail.Add(widget.NewLabel("Select a preset to view details."))
		detail.Refresh()
		a.refreshPresetSelector()
	}

	list.OnSelected = func(id widget.ListItemID) {
		selectedIdx = id
		p := presets[id]
		detail.RemoveAll()
		detail.Add(widget.NewLabelWithStyle(p.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		if p.Description != "" {
			detail.Add(widget.NewLabel(p.Description))
		}
		detail.Add(widget.NewLabel(describeSettings(p.Settings)))
		if p.UpdatedAt != "" {
			detail.Add(widget.NewLabel("Updated " + p.UpdatedAt))
		}
		detail.Refresh()
	}

	selected := func() (model.SettingsPreset, bool) {
		if selectedIdx < 0 || selectedIdx >= len(presets) {
			dialog.ShowInformation("No Selection", "Select a preset first.", w)
			return model.SettingsPreset{}, false
		}
		return presets[selectedIdx], true
	}

	applyBtn := widget.NewButtonWithIcon("Apply", theme.ConfirmIcon(), func() {
		if p, ok := selected(); ok {
			a.applySettings(p.Settings)
			a.presetSelect.SetSelected(p.Name)
		}
	})

	saveBtn := widget.NewButtonWithIcon("Save Current", theme.ContentAddIcon(), func() {
		a.showSavePresetDialog(w, reload)
	})

	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() {
		p, ok := selected()
		if !ok {
			return
		}
		if p.IsBuiltIn {
			dialog.ShowInformation("Cannot Delete", "Built-in presets cannot be deleted.", w)
			return
		}
		dialog.ShowConfirm("Delete Preset", fmt.Sprintf("Delete preset %q?", p.Name), func(ok bool) {
			if !ok {
				return
			}
			a.presets.Remove(p.ID)
			if err := a.savePresets(); err != nil {
				dialog.ShowError(err, w)
			}
			reload()
		}, w)
	})

	importBtn := widget.NewButtonWithIcon("Import", theme.FolderOpenIcon(), func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()
			p, err := project.ImportPreset(reader.URI().Path())
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if a.presets.FindByID(p.ID) != nil || p.ID == "" {
				p = model.NewSettingsPreset(p.Name, p.Description, p.Settings)
			}
			a.presets.Add(p)
			if err := a.savePresets(); err != nil {
				dialog.ShowError(err, w)
			}
			reload()
		}, w)
	})

	exportBtn := widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), func() {
		p, ok := selected()
		if !ok {
			return
		}
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			if err := project.ExportPreset(writer.URI().Path(), p); err != nil {
				dialog.ShowError(err, w)
			}
		}, w)
		d.SetFileName(p.Name + ".json")
		d.Show()
	})

	buttons := container.NewHBox(applyBtn, saveBtn, deleteBtn, layout.NewSpacer(), importBtn, exportBtn)
	split := container.NewHSplit(list, container.NewPadded(detail))
	split.Offset = 0.4

	w.SetContent(container.NewBorder(nil, buttons, nil, nil, split))
	w.Show()
}

func (a *App) showSavePresetDialog(parent fyne.Window, onSaved func()) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Preset name")
	descEntry := widget.NewEntry()
	descEntry.SetPlaceHolder("Optional description")

	form := dialog.NewForm("Save Preset", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
			widget.NewFormItem("Settings", widget.NewLabel(describeSettings(a.project.Settings))),
		},
		func(ok bool) {
			if !ok {
				return
			}
			if nameEntry.Text == "" {
				dialog.ShowError(fmt.Errorf("preset name is required"), parent)
				return
			}
			all := a.presets.WithBuiltIns()
			if all.FindByName(nameEntry.Text) != nil {
				dialog.ShowError(fmt.Errorf("a preset named %q already exists", nameEntry.Text), parent)
				return
			}
			a.presets.Add(model.NewSettingsPreset(nameEntry.Text, descEntry.Text, a.project.Settings))
			if err := a.savePresets(); err != nil {
				dialog.ShowError(err, parent)
			}
			onSaved()
		},
		parent,
	)
	form.Resize(fyne.NewSize(400, 250))
	form.Show()
}
