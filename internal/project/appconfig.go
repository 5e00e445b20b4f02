// Package project persists everything around a slicing run: application
// configuration, project files, settings presets, batch job files and
// configuration backups.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/PizzaCut/internal/model"
)

// DefaultConfigDir is ~/.pizzacut, or ./.pizzacut when no home is known.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".pizzacut")
}

func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig writes config as indented JSON, creating the directory.
func SaveAppConfig(path string, config model.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig overlays the file at path on DefaultAppConfig. A missing
// file is not an error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	config := model.DefaultAppConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return model.AppConfig{}, err
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	fillConfigLists(&config)
	return config, nil
}

// fillConfigLists replaces a null recent list so the UI can range and
// append without checks.
func fillConfigLists(config *model.AppConfig) {
	if config.RecentProjects == nil {
		config.RecentProjects = []string{}
	}
}
