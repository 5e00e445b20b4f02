package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/PizzaCut/internal/model"
)

// SubmissionExt is the extension of solution files.
const SubmissionExt = ".out"

// WriteSubmission writes the slice count followed by
// "<rowMin> <colMin> <rowMax> <colMax>" for every slice, in the given order.
func WriteSubmission(w io.Writer, slices []model.Slice) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(slices)); err != nil {
		return err
	}
	for _, s := range slices {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", s.RowMin, s.ColMin, s.RowMax, s.ColMax); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveSubmission writes a solution file, creating parent directories.
func SaveSubmission(path string, slices []model.Slice) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create submission file: %w", err)
	}
	if err := WriteSubmission(f, slices); err != nil {
		f.Close()
		return fmt.Errorf("failed to write submission: %w", err)
	}
	return f.Close()
}

// SubmissionPath derives the solution file name from an input file:
// "data/a_example.in" becomes "a_example.out" inside outputDir, or next to
// the input when outputDir is empty.
func SubmissionPath(inputPath, outputDir string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + SubmissionExt
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	return filepath.Join(outputDir, name)
}
