package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettingsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write settings file: %v", err)
	}
	return path
}

func TestSettingsStoreMissingFileUsesDefaults(t *testing.T) {
	store, err := NewSettingsStore(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}

	got := store.Get()
	if !got.EnableWeather || !got.EnableTeamNews {
		t.Fatalf("defaults should enable segments: %+v", got)
	}
	if got.CustomMessage == "" {
		t.Fatal("default custom message missing")
	}
}

func TestSettingsStoreMergesOntoDefaults(t *testing.T) {
	path := writeSettingsFile(t, `{"enable_weather": false, "zip_code": "60613"}`)

	store, err := NewSettingsStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.Get()
	if got.EnableWeather {
		t.Fatal("file should disable weather")
	}
	if got.ZipCode != "60613" {
		t.Fatalf("ZipCode = %q, want 60613", got.ZipCode)
	}
	// Keys absent from the file keep their defaults.
	if !got.EnableBears {
		t.Fatal("EnableBears should keep its default")
	}
}

func TestSettingsStoreMalformedFileIsFatalAtStartup(t *testing.T) {
	path := writeSettingsFile(t, `{"enable_weather": `)

	if _, err := NewSettingsStore(path); err == nil {
		t.Fatal("expected error for malformed settings file")
	}
}

func TestSettingsStoreReloadKeepsPreviousOnFailure(t *testing.T) {
	path := writeSettingsFile(t, `{"zip_code": "60613"}`)

	store, err := NewSettingsStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := os.WriteFile(path, []byte(`{broken`), 0o644); err != nil {
		t.Fatalf("rewrite file: %v", err)
	}
	if err := store.Reload(); err == nil {
		t.Fatal("expected reload error")
	}
	if got := store.Get().ZipCode; got != "60613" {
		t.Fatalf("previous snapshot lost, ZipCode = %q", got)
	}
}
