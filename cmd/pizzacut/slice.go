package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/PizzaCut/internal/engine"
	"github.com/piwi3910/PizzaCut/internal/export"
	"github.com/piwi3910/PizzaCut/internal/importer"
	"github.com/piwi3910/PizzaCut/internal/model"
	"github.com/piwi3910/PizzaCut/internal/project"
)

var (
	outputPath string
	pdfPath    string
	xlsxPath   string
	dxfPath    string
	labelsPath string
	noReslice  bool
	rounds     int
	noAudit    bool
	presetName string
)

var sliceCmd = &cobra.Command{
	Use:   "slice <input>",
	Short: "Slice one dataset and write its solution",
	Long: `Reads a dataset, runs the placement pass and the configured re-slicing
passes, audits the result and writes the solution file. Without -o the
solution is written as <input name>.out next to the input, or into the
configured output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runSliceCmd,
}

func init() {
	sliceCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Solution file (default: derived from input)")
	sliceCmd.Flags().StringVar(&pdfPath, "pdf", "", "Also write a PDF report")
	sliceCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write an Excel workbook")
	sliceCmd.Flags().StringVar(&dxfPath, "dxf", "", "Also write a DXF drawing of the slices")
	sliceCmd.Flags().StringVar(&labelsPath, "labels", "", "Also write a PDF of QR slice labels")
	sliceCmd.Flags().BoolVar(&noReslice, "no-reslice", false, "Skip the re-slicing pass")
	sliceCmd.Flags().IntVar(&rounds, "rounds", 1, "Re-slicing passes, 0 = until stable")
	sliceCmd.Flags().BoolVar(&noAudit, "no-audit", false, "Skip the final audit")
	sliceCmd.Flags().StringVar(&presetName, "preset", "", "Start from a named settings preset")
}

// resolveSettings layers config defaults, an optional preset and explicit flags.
func resolveSettings(cmd *cobra.Command) (model.SliceSettings, error) {
	settings := model.DefaultSettings()
	appConfig.ApplyToSettings(&settings)

	if presetName != "" {
		store, err := project.LoadPresets(project.DefaultPresetPath())
		if err != nil {
			return settings, fmt.Errorf("failed to load presets: %w", err)
		}
		all := store.WithBuiltIns()
		p := all.FindByName(presetName)
		if p == nil {
			return settings, fmt.Errorf("unknown preset %q", presetName)
		}
		settings = p.Settings
	}

	flags := cmd.Flags()
	if flags.Changed("no-reslice") {
		settings.Reslice = !noReslice
	}
	if flags.Changed("rounds") {
		if rounds < 0 {
			return settings, fmt.Errorf("--rounds must not be negative")
		}
		settings.ResliceRounds = rounds
	}
	if flags.Changed("no-audit") {
		settings.Audit = !noAudit
	}
	return settings, nil
}

func runSliceCmd(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	input := args[0]
	grid, err := importer.LoadInput(input)
	if err != nil {
		return err
	}

	result, err := sliceGrid(grid, settings)
	printScores(cmd.OutOrStdout(), grid, result)
	if err != nil {
		return err
	}

	out := outputPath
	if out == "" {
		out = export.SubmissionPath(input, appConfig.OutputDir)
	}
	if err := export.SaveSubmission(out, result.Slices); err != nil {
		return err
	}
	logger.Info("solution written", zap.String("path", out), zap.Int("slices", len(result.Slices)))

	return writeReports(grid, result)
}

// sliceGrid runs the slicer and logs the run summary. An audit failure is
// returned together with the result.
func sliceGrid(grid *model.Grid, settings model.SliceSettings) (model.SliceResult, error) {
	est := model.EstimateScore(grid)
	logger.Debug("score estimate",
		zap.Int("grid_area", est.GridArea),
		zap.Int("upper_bound", est.UpperBound),
		zap.Int("max_slices", est.MaxSlices))

	result, err := engine.New(grid, settings, engine.WithLogger(logger)).Run()
	logger.Info("slicing complete",
		zap.String("run_id", result.RunID),
		zap.Int("slices", len(result.Slices)),
		zap.Int("covered", result.CoveredArea),
		zap.Int("grid_area", result.GridArea()),
		zap.Int("rounds", result.Rounds))

	var auditErr *engine.AuditError
	if errors.As(err, &auditErr) {
		return result, fmt.Errorf("slicing failed audit: %w", err)
	}
	return result, err
}

func printScores(w io.Writer, grid *model.Grid, result model.SliceResult) {
	fmt.Fprintf(w, "Max theoretical score: %d\n", grid.Area())
	fmt.Fprintf(w, "Solution score: %d (%.1f%%, %d slices)\n",
		result.CoveredArea, result.Efficiency(), len(result.Slices))
}

func writeReports(grid *model.Grid, result model.SliceResult) error {
	reports := []struct {
		path  string
		what  string
		write func() error
	}{
		{pdfPath, "PDF report", func() error { return export.ExportPDF(pdfPath, grid, result) }},
		{xlsxPath, "Excel workbook", func() error { return export.ExportExcel(xlsxPath, grid, result) }},
		{dxfPath, "DXF drawing", func() error { return export.ExportDXF(dxfPath, result) }},
		{labelsPath, "slice labels", func() error { return export.ExportLabels(labelsPath, grid, result) }},
	}
	for _, r := range reports {
		if r.path == "" {
			continue
		}
		if err := r.write(); err != nil {
			return fmt.Errorf("failed to write %s: %w", r.what, err)
		}
		logger.Info("report written", zap.String("kind", r.what), zap.String("path", r.path))
	}
	return nil
}
