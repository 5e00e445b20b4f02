// PizzaCut: greedy pizza slicer.
//
// Cuts a grid of tomato and mushroom cells into rectangular slices that each
// hold enough of both ingredients, covering as many cells as possible.
//
// Build:
//   go build -o pizzacut ./cmd/pizzacut
//
// Usage:
//   pizzacut slice a_example.in --pdf report.pdf
//   pizzacut audit a_example.in a_example.out
//   pizzacut batch jobs.yaml
//   pizzacut gui a_example.in

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/piwi3910/PizzaCut/internal/model"
	"github.com/piwi3910/PizzaCut/internal/project"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger    *zap.Logger
	appConfig model.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "pizzacut",
	Short: "PizzaCut - greedy pizza slicer",
	Long: `PizzaCut cuts a rectangular pizza of tomato (T) and mushroom (M) cells into
rectangular slices. Every slice holds at least L cells of each ingredient and
at most H cells in total; slices never overlap. The score is the number of
cells covered.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = project.DefaultConfigPath()
		}
		cfg, err := project.LoadAppConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		appConfig = cfg

		logger, err = buildLogger(verbose, appConfig.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// buildLogger creates the production logger; verbose forces debug level,
// otherwise the configured level applies.
func buildLogger(verbose bool, level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	switch {
	case verbose:
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case level != "":
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	return config.Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.pizzacut/config.json)")

	rootCmd.AddCommand(sliceCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(guiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
