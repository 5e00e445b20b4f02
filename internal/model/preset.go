package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingsPreset is a named, reusable set of slicer settings.
type SettingsPreset struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	CreatedAt   string        `json:"created_at" yaml:"created_at"`
	UpdatedAt   string        `json:"updated_at" yaml:"updated_at"`
	Settings    SliceSettings `json:"settings" yaml:"settings"`
	IsBuiltIn   bool          `json:"-" yaml:"-"`
}

// NewSettingsPreset creates a custom preset for the given settings.
func NewSettingsPreset(name, description string, settings SliceSettings) SettingsPreset {
	now := time.Now().UTC().Format(time.RFC3339)
	return SettingsPreset{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Settings:    settings,
	}
}

// ToProject creates a new project that starts from this preset's settings.
func (p SettingsPreset) ToProject(projectName string) Project {
	proj := NewProject()
	proj.Name = projectName
	proj.Settings = p.Settings
	return proj
}

// BuiltInPresets returns the presets that ship with the application.
func BuiltInPresets() []SettingsPreset {
	return []SettingsPreset{
		{
			ID:          "fast",
			Name:        "Fast",
			Description: "Placement pass only",
			Settings:    SliceSettings{Reslice: false, Audit: true},
			IsBuiltIn:   true,
		},
		{
			ID:          "standard",
			Name:        "Standard",
			Description: "Placement followed by one re-slicing pass",
			Settings:    DefaultSettings(),
			IsBuiltIn:   true,
		},
		{
			ID:          "thorough",
			Name:        "Thorough",
			Description: "Re-slice until nothing improves",
			Settings:    SliceSettings{Reslice: true, ResliceRounds: 0, Audit: true},
			IsBuiltIn:   true,
		},
	}
}

// PresetStore holds a collection of settings presets.
type PresetStore struct {
	Presets []SettingsPreset `json:"presets"`
}

// NewPresetStore creates an empty preset store.
func NewPresetStore() PresetStore {
	return PresetStore{
		Presets: []SettingsPreset{},
	}
}

// Add adds a preset to the store.
func (ps *PresetStore) Add(p SettingsPreset) {
	ps.Presets = append(ps.Presets, p)
}

// Remove removes a preset by ID. Returns true if found and removed.
func (ps *PresetStore) Remove(id string) bool {
	for i, p := range ps.Presets {
		if p.ID == id {
			ps.Presets = append(ps.Presets[:i], ps.Presets[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (ps *PresetStore) FindByID(id string) *SettingsPreset {
	for i := range ps.Presets {
		if ps.Presets[i].ID == id {
			return &ps.Presets[i]
		}
	}
	return nil
}

// Names returns a list of preset names for UI dropdowns.
func (ps *PresetStore) Names() []string {
	names := make([]string, len(ps.Presets))
	for i, p := range ps.Presets {
		names[i] = p.Name
	}
	return names
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (ps *PresetStore) FindByName(name string) *SettingsPreset {
	for i := range ps.Presets {
		if ps.Presets[i].Name == name {
			return &ps.Presets[i]
		}
	}
	return nil
}

// WithBuiltIns returns the built-in presets followed by the store's own.
func (ps PresetStore) WithBuiltIns() PresetStore {
	all := BuiltInPresets()
	all = append(all, ps.Presets...)
	return PresetStore{Presets: all}
}
