package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/PizzaCut/internal/ui"
)

var guiCmd = &cobra.Command{
	Use:   "gui [input]",
	Short: "Open the desktop viewer",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application := app.NewWithID("com.piwi3910.pizzacut")
		window := application.NewWindow("PizzaCut - Greedy Pizza Slicer")

		appUI := ui.NewApp(application, window, logger)
		appUI.SetupMenus()
		window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
		window.Resize(fyne.NewSize(1200, 800))
		window.CenterOnScreen()

		if len(args) == 1 {
			if err := appUI.LoadInput(args[0]); err != nil {
				return err
			}
		}

		window.ShowAndRun()
		return nil
	},
}
