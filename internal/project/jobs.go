package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/PizzaCut/internal/model"
)

// Dataset is one input file of a batch job.
type Dataset struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output,omitempty"` // empty = derived from Input
}

// JobFile describes a batch of datasets sliced with the same settings.
//
//	output_dir: out
//	settings:
//	  reslice: true
//	  reslice_rounds: 1
//	  audit: true
//	datasets:
//	  - name: example
//	    input: a_example.in
type JobFile struct {
	OutputDir string               `yaml:"output_dir"`
	Settings  *model.SliceSettings `yaml:"settings"`
	Preset    string               `yaml:"preset"`
	Datasets  []Dataset            `yaml:"datasets"`
}

// LoadJobs reads a YAML job file. Relative input, output and output_dir
// paths are resolved against the job file's directory; datasets without a
// name are named after their input file.
func LoadJobs(path string) (JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return JobFile{}, fmt.Errorf("failed to read job file: %w", err)
	}

	var jobs JobFile
	if err := yaml.Unmarshal(data, &jobs); err != nil {
		return JobFile{}, fmt.Errorf("failed to parse job file: %w", err)
	}
	if len(jobs.Datasets) == 0 {
		return JobFile{}, fmt.Errorf("job file %s lists no datasets", path)
	}

	base := filepath.Dir(path)
	jobs.OutputDir = resolve(base, jobs.OutputDir)
	for i := range jobs.Datasets {
		ds := &jobs.Datasets[i]
		if ds.Input == "" {
			return JobFile{}, fmt.Errorf("dataset %d has no input", i+1)
		}
		ds.Input = resolve(base, ds.Input)
		ds.Output = resolve(base, ds.Output)
		if ds.Name == "" {
			ds.Name = filepath.Base(ds.Input)
		}
	}
	return jobs, nil
}

// ResolveSettings picks the job's settings: explicit settings win, then a
// named preset from presets, then fallback.
func (j JobFile) ResolveSettings(presets model.PresetStore, fallback model.SliceSettings) (model.SliceSettings, error) {
	if j.Settings != nil {
		return *j.Settings, nil
	}
	if j.Preset != "" {
		p := presets.FindByName(j.Preset)
		if p == nil {
			return model.SliceSettings{}, fmt.Errorf("unknown preset %q", j.Preset)
		}
		return p.Settings, nil
	}
	return fallback, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
