package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/PizzaCut/internal/model"
)

// backupVersion is stamped into every export; imports without one are rejected.
const backupVersion = "1.0.0"

// BackupData bundles the app config and custom presets into one file.
type BackupData struct {
	Version   string            `json:"version"`
	CreatedAt string            `json:"created_at"`
	Config    model.AppConfig   `json:"config"`
	Presets   model.PresetStore `json:"presets"`
}

func ExportAllData(exportPath string, config model.AppConfig, presets model.PresetStore) error {
	data, err := json.MarshalIndent(BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Presets:   presets,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(exportPath), 0755); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}
	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// ImportAllData only decodes; applying the result is up to the caller.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("read backup: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("decode backup: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("%s: no version field, not a pizzacut backup", importPath)
	}
	fillConfigLists(&backup.Config)
	if backup.Presets.Presets == nil {
		backup.Presets = model.NewPresetStore()
	}
	return backup, nil
}
