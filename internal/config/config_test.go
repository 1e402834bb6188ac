package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maartenor/photo-organizer/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Folders.ToSort != "to_sort" || cfg.Folders.Unprocessable != "unprocessable" {
		t.Fatalf("unexpected folder defaults: %+v", cfg.Folders)
	}
	if cfg.Probe.Binary != "ffprobe" || cfg.Probe.TimeoutSeconds != 30 {
		t.Fatalf("unexpected probe defaults: %+v", cfg.Probe)
	}
	if cfg.Logging.Format != "auto" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[folders]\nto_sort = \"pending\"\n\n[logging]\nlevel = \"DEBUG\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Folders.ToSort != "pending" {
		t.Fatalf("override lost: %+v", cfg.Folders)
	}
	if cfg.Folders.Unprocessable != "unprocessable" {
		t.Fatalf("default lost: %+v", cfg.Folders)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level not normalized: %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"separator in folder name", "[folders]\nto_sort = \"a/b\"\n"},
		{"unknown level", "[logging]\nlevel = \"loud\"\n"},
		{"unknown format", "[logging]\nformat = \"xml\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSampleMatchesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := os.WriteFile(path, []byte(config.Sample()), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("sample should equal defaults, got %+v", cfg)
	}
}
