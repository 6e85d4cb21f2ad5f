package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if filepath.Base(path) != "config.yaml" {
		t.Errorf("DefaultConfigPath() = %q, should end with config.yaml", path)
	}
	if os.Getenv("HOME") != "" || os.Getenv("USERPROFILE") != "" {
		if dir := filepath.Base(filepath.Dir(path)); dir != ".toprofile" {
			t.Errorf("DefaultConfigPath() = %q, should be in .toprofile directory", path)
		}
	}
}

func TestDefaultConfigPathNoHome(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", "")

	if path := DefaultConfigPath(); path != "config.yaml" {
		t.Errorf("DefaultConfigPath() = %q, want config.yaml", path)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil for missing file", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfig() returned nil config")
	}
	if cfg.Sieve != (SieveDefaults{}) {
		t.Errorf("Sieve = %+v, want zero value", cfg.Sieve)
	}
}

func TestLoadConfigValid(t *testing.T) {
	content := `
sieve:
  super: true
  sexy: true
  count: true
  hash: murmur3
log:
  level: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := SieveDefaults{Super: true, Sexy: true, Count: true, Hash: "murmur3"}
	if cfg.Sieve != want {
		t.Errorf("Sieve = %+v, want %+v", cfg.Sieve, want)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sieve: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() error = nil, want parse error")
	}
}

func TestLoadConfigDirectory(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Error("LoadConfig() error = nil, want read error for a directory")
	}
}
