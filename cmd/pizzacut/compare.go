package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PizzaCut/internal/engine"
	"github.com/piwi3910/PizzaCut/internal/importer"
)

var compareCmd = &cobra.Command{
	Use:   "compare <input>",
	Short: "Compare slicing scenarios on one dataset",
	Long: `Runs the slicer with the current settings and with the what-if
alternatives (placement only, single re-slice, re-slice until stable) and
prints their scores side by side.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompareCmd,
}

func init() {
	compareCmd.Flags().StringVar(&presetName, "preset", "", "Base the current scenario on a named settings preset")
}

func runCompareCmd(cmd *cobra.Command, args []string) error {
	grid, err := importer.LoadInput(args[0])
	if err != nil {
		return err
	}
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	results := engine.CompareScenarios(grid, engine.BuildDefaultScenarios(settings), engine.WithLogger(logger))

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tSLICES\tSCORE\tEFFICIENCY\tAUDIT")
	for _, r := range results {
		audit := "ok"
		if r.AuditErr != nil {
			audit = r.AuditErr.Error()
		}
		fmt.Fprintf(tw, "%s\t%d\t%d / %d\t%.1f%%\t%s\n",
			r.Scenario.Name, r.SliceCount, r.CoveredArea, r.Result.GridArea(), r.Efficiency, audit)
	}
	return tw.Flush()
}
