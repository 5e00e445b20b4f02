package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/PizzaCut/internal/engine"
	"github.com/piwi3910/PizzaCut/internal/importer"
	"github.com/piwi3910/PizzaCut/internal/model"
)

var auditCmd = &cobra.Command{
	Use:   "audit <input> <solution>",
	Short: "Check a solution file against its dataset",
	Long: `Reads a dataset and a solution, either a submission file or a DXF drawing
of slice rectangles, and verifies that every slice is valid and that no
two slices overlap. Exits non-zero when the solution is invalid.`,
	Args: cobra.ExactArgs(2),
	RunE: runAuditCmd,
}

// loadSolution reads slices from a .dxf drawing or a submission file.
func loadSolution(path string) ([]model.Slice, error) {
	if !strings.EqualFold(filepath.Ext(path), ".dxf") {
		return importer.LoadSubmission(path)
	}
	res := importer.ImportSlicesDXF(path)
	for _, w := range res.Warnings {
		logger.Warn("dxf import", zap.String("path", path), zap.String("warning", w))
	}
	if len(res.Errors) > 0 {
		return nil, fmt.Errorf("%s: %s", path, strings.Join(res.Errors, "; "))
	}
	return res.Slices, nil
}

func runAuditCmd(cmd *cobra.Command, args []string) error {
	grid, err := importer.LoadInput(args[0])
	if err != nil {
		return err
	}
	slices, err := loadSolution(args[1])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if err := engine.AuditSlicing(grid, slices); err != nil {
		var auditErr *engine.AuditError
		if errors.As(err, &auditErr) {
			for _, p := range auditErr.Problems {
				fmt.Fprintln(w, "  "+p)
			}
		}
		return fmt.Errorf("%s: %w", args[1], err)
	}

	fmt.Fprintf(w, "Max theoretical score: %d\n", grid.Area())
	fmt.Fprintf(w, "Solution score: %d (%d slices)\n", model.TotalArea(slices), len(slices))
	return nil
}
