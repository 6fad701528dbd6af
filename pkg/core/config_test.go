package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.PackageManager != "auto" {
		t.Errorf("PackageManager = %q, want auto", cfg.PackageManager)
	}
	if cfg.OverridesDir != "overrides" {
		t.Errorf("OverridesDir = %q, want overrides", cfg.OverridesDir)
	}
	if cfg.SkipOverrides || cfg.KeepGoing || cfg.Debug {
		t.Errorf("boolean defaults must be false: %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `package_manager: pacman
overrides_dir: /etc/hostpkg/overrides
skip_overrides: true
keep_going: true
debug: true
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.PackageManager != "pacman" {
		t.Errorf("PackageManager = %q, want pacman", cfg.PackageManager)
	}
	if cfg.OverridesDir != "/etc/hostpkg/overrides" {
		t.Errorf("OverridesDir = %q", cfg.OverridesDir)
	}
	if !cfg.SkipOverrides || !cfg.KeepGoing || !cfg.Debug {
		t.Errorf("booleans not loaded: %+v", cfg)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("debug: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.PackageManager != "auto" || cfg.OverridesDir != "overrides" {
		t.Errorf("unset keys must keep defaults: %+v", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("package_manager: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed config must fail to load")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{Outcome{Package: "vim", Status: StatusInstalled}, "vim installed"},
		{Outcome{Package: "vim", Status: StatusAlreadyPresent}, "vim already-present"},
		{Outcome{Package: "git", Status: StatusSkipped, Reason: "pinned"}, "git skipped: pinned"},
		{Outcome{Package: "git", Status: StatusFailed, ExitCode: 2}, "git failed with exit code 2"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
