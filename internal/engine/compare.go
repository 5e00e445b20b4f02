package engine

import (
	"github.com/piwi3910/PizzaCut/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.SliceSettings
}

// ComparisonResult holds the slicing result and computed statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario    ComparisonScenario
	Result      model.SliceResult
	SliceCount  int
	CoveredArea int
	Efficiency  float64
	AuditErr    error
}

// CompareScenarios runs the slicer for each scenario and returns the results
// in scenario order. This enables side-by-side comparison of, for example,
// placement only against placement plus re-slicing.
func CompareScenarios(grid *model.Grid, scenarios []ComparisonScenario, opts ...Option) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		settings := scenario.Settings
		settings.Audit = true
		result, err := New(grid, settings, opts...).Run()

		results = append(results, ComparisonResult{
			Scenario:    scenario,
			Result:      result,
			SliceCount:  len(result.Slices),
			CoveredArea: result.CoveredArea,
			Efficiency:  result.Efficiency(),
			AuditErr:    err,
		})
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the current settings, varying the re-slicing passes to show what-if
// alternatives.
func BuildDefaultScenarios(baseSettings model.SliceSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: baseSettings,
		},
	}

	// Scenario: placement pass alone
	if baseSettings.Reslice {
		noReslice := baseSettings
		noReslice.Reslice = false
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Placement Only",
			Settings: noReslice,
		})
	} else {
		withReslice := baseSettings
		withReslice.Reslice = true
		withReslice.ResliceRounds = 1
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Single Re-slice",
			Settings: withReslice,
		})
	}

	// Scenario: re-slice until nothing changes
	if !baseSettings.Reslice || baseSettings.ResliceRounds != 0 {
		stable := baseSettings
		stable.Reslice = true
		stable.ResliceRounds = 0
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Re-slice Until Stable",
			Settings: stable,
		})
	}

	return scenarios
}
