package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/PizzaCut/internal/export"
	"github.com/piwi3910/PizzaCut/internal/importer"
	"github.com/piwi3910/PizzaCut/internal/model"
	"github.com/piwi3910/PizzaCut/internal/project"
)

var batchCmd = &cobra.Command{
	Use:   "batch <jobs.yaml>",
	Short: "Slice every dataset listed in a job file",
	Long: `Runs the slicer over each dataset of a YAML job file, writes one solution
per dataset and prints the total score. Datasets are processed in order;
the first failure stops the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatchCmd,
}

// batchLine is the per-dataset summary printed by the batch command.
type batchLine struct {
	Name     string
	Score    int
	MaxScore int
	Output   string
}

func runBatch(jobs project.JobFile, settings model.SliceSettings) ([]batchLine, error) {
	var lines []batchLine
	for _, ds := range jobs.Datasets {
		grid, err := importer.LoadInput(ds.Input)
		if err != nil {
			return lines, fmt.Errorf("dataset %s: %w", ds.Name, err)
		}
		result, err := sliceGrid(grid, settings)
		if err != nil {
			return lines, fmt.Errorf("dataset %s: %w", ds.Name, err)
		}

		out := ds.Output
		if out == "" {
			out = export.SubmissionPath(ds.Input, jobs.OutputDir)
		}
		if err := export.SaveSubmission(out, result.Slices); err != nil {
			return lines, fmt.Errorf("dataset %s: %w", ds.Name, err)
		}
		logger.Info("dataset done", zap.String("dataset", ds.Name), zap.String("output", out))

		lines = append(lines, batchLine{
			Name:     ds.Name,
			Score:    result.CoveredArea,
			MaxScore: result.GridArea(),
			Output:   out,
		})
	}
	return lines, nil
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	jobs, err := project.LoadJobs(args[0])
	if err != nil {
		return err
	}
	if jobs.OutputDir == "" {
		jobs.OutputDir = appConfig.OutputDir
	}

	store, err := project.LoadPresets(project.DefaultPresetPath())
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}
	fallback := model.DefaultSettings()
	appConfig.ApplyToSettings(&fallback)
	settings, err := jobs.ResolveSettings(store.WithBuiltIns(), fallback)
	if err != nil {
		return err
	}

	lines, err := runBatch(jobs, settings)

	w := cmd.OutOrStdout()
	total, maxTotal := 0, 0
	for _, l := range lines {
		fmt.Fprintf(w, "%-24s %8d / %-8d %s\n", l.Name, l.Score, l.MaxScore, l.Output)
		total += l.Score
		maxTotal += l.MaxScore
	}
	fmt.Fprintf(w, "Total score: %d of %d\n", total, maxTotal)
	return err
}
