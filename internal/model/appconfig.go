package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default slicer settings applied to new projects and CLI runs
	DefaultReslice       bool `json:"default_reslice"`
	DefaultResliceRounds int  `json:"default_reslice_rounds"`
	DefaultAudit         bool `json:"default_audit"`

	// Application preferences
	OutputDir      string   `json:"output_dir"` // empty = next to the input file
	LogLevel       string   `json:"log_level"`  // "debug", "info", "warn", "error"
	RecentProjects []string `json:"recent_projects"`
	Theme          string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultReslice:       defaults.Reslice,
		DefaultResliceRounds: defaults.ResliceRounds,
		DefaultAudit:         defaults.Audit,
		LogLevel:             "info",
		RecentProjects:       []string{},
		Theme:                "system",
	}
}

// ApplyToSettings copies the default values from AppConfig into a SliceSettings struct.
func (c AppConfig) ApplyToSettings(s *SliceSettings) {
	s.Reslice = c.DefaultReslice
	s.ResliceRounds = c.DefaultResliceRounds
	s.Audit = c.DefaultAudit
}

const maxRecentProjects = 10

// AddRecent moves path to the front of the recent list, dropping duplicates
// and keeping at most ten entries.
func (c *AppConfig) AddRecent(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}
