package model

import "testing"

func TestDefaultAppConfigMatchesDefaultSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultSettings()

	if cfg.DefaultReslice != defaults.Reslice {
		t.Errorf("Reslice mismatch: config=%v settings=%v", cfg.DefaultReslice, defaults.Reslice)
	}
	if cfg.DefaultResliceRounds != defaults.ResliceRounds {
		t.Errorf("ResliceRounds mismatch: config=%d settings=%d", cfg.DefaultResliceRounds, defaults.ResliceRounds)
	}
	if cfg.DefaultAudit != defaults.Audit {
		t.Errorf("Audit mismatch: config=%v settings=%v", cfg.DefaultAudit, defaults.Audit)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level=info, got %s", cfg.LogLevel)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should not be nil")
	}
}

func TestApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultReslice = false
	cfg.DefaultResliceRounds = 0
	cfg.DefaultAudit = false

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	if s.Reslice {
		t.Error("expected Reslice=false")
	}
	if s.ResliceRounds != 0 {
		t.Errorf("expected ResliceRounds=0, got %d", s.ResliceRounds)
	}
	if s.Audit {
		t.Error("expected Audit=false")
	}
}

func TestAddRecent(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecent("a.in")
	cfg.AddRecent("b.in")
	cfg.AddRecent("a.in")

	if len(cfg.RecentProjects) != 2 {
		t.Fatalf("expected 2 recent entries, got %d", len(cfg.RecentProjects))
	}
	if cfg.RecentProjects[0] != "a.in" || cfg.RecentProjects[1] != "b.in" {
		t.Errorf("unexpected order: %v", cfg.RecentProjects)
	}

	for i := 0; i < 20; i++ {
		cfg.AddRecent(string(rune('c'+i)) + ".in")
	}
	if len(cfg.RecentProjects) != maxRecentProjects {
		t.Errorf("expected %d recent entries, got %d", maxRecentProjects, len(cfg.RecentProjects))
	}
}
