package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("Port = %q, want %q", cfg.Port, defaultPort)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("Provider = %q, want %q", cfg.Provider, defaultProvider)
	}
	if cfg.TeamID != defaultTeamID {
		t.Fatalf("TeamID = %d, want %d", cfg.TeamID, defaultTeamID)
	}
	if cfg.TickInterval != defaultTickInterval {
		t.Fatalf("TickInterval = %s, want %s", cfg.TickInterval, defaultTickInterval)
	}
	if cfg.CanvasWidth != 96 || cfg.CanvasHeight != 48 {
		t.Fatalf("canvas = %dx%d, want 96x48", cfg.CanvasWidth, cfg.CanvasHeight)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envPollInterval, "2m")
	t.Setenv(envTeamID, "145")
	t.Setenv(envDriver, "emulator")

	cfg := Load()
	if cfg.PollInterval != 2*time.Minute {
		t.Fatalf("PollInterval = %s, want 2m", cfg.PollInterval)
	}
	if cfg.TeamID != 145 {
		t.Fatalf("TeamID = %d, want 145", cfg.TeamID)
	}
	if cfg.Driver != "emulator" {
		t.Fatalf("Driver = %q, want emulator", cfg.Driver)
	}
}

func TestEnvHelpersRejectGarbage(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")
	t.Setenv(envTeamID, "-3")
	t.Setenv(envMetricsOn, "maybe")

	cfg := Load()
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %s, want default", cfg.PollInterval)
	}
	if cfg.TeamID != defaultTeamID {
		t.Fatalf("TeamID = %d, want default", cfg.TeamID)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("Metrics.Enabled should fall back to default true")
	}
}
