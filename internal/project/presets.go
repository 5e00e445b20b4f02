package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/PizzaCut/internal/model"
)

// DefaultPresetPath returns the default file path for the preset store.
// This is located at ~/.pizzacut/presets.json.
func DefaultPresetPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SavePresets writes the preset store to a JSON file.
func SavePresets(path string, store model.PresetStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets reads a preset store from a JSON file.
// If the file does not exist, returns an empty store.
func LoadPresets(path string) (model.PresetStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewPresetStore(), nil
		}
		return model.PresetStore{}, err
	}
	var store model.PresetStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.PresetStore{}, err
	}
	if store.Presets == nil {
		store.Presets = []model.SettingsPreset{}
	}
	return store, nil
}

// ExportPreset exports a single preset to a JSON file (for sharing).
func ExportPreset(path string, preset model.SettingsPreset) error {
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportPreset imports a single preset from a JSON file.
func ImportPreset(path string) (model.SettingsPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SettingsPreset{}, err
	}

	var preset model.SettingsPreset
	if err := json.Unmarshal(data, &preset); err != nil {
		return model.SettingsPreset{}, err
	}

	if preset.Name == "" {
		return model.SettingsPreset{}, errors.New("imported preset has no name")
	}
	return preset, nil
}
