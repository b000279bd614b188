package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Extension != ".m" || cfg.OutExtension != ".py" {
		t.Errorf("default extensions = %q -> %q", cfg.Extension, cfg.OutExtension)
	}
	if cfg.Output != "auto" {
		t.Errorf("default output = %q", cfg.Output)
	}
	if cfg.ErrorLog != "mconv-errors.log" {
		t.Errorf("default error log = %q", cfg.ErrorLog)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Cleanup(ResetConfig)

	path := filepath.Join(t.TempDir(), "mconv.yaml")
	if err := os.WriteFile(path, []byte("workers: 4\nout_extension: .txt\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Workers != 4 {
		t.Errorf("workers = %d, want 4", cfg.Workers)
	}
	if cfg.OutExtension != ".txt" {
		t.Errorf("out_extension = %q, want .txt", cfg.OutExtension)
	}
	if GetConfigFileUsed() != path {
		t.Errorf("config file used = %q", GetConfigFileUsed())
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Cleanup(ResetConfig)

	path := filepath.Join(t.TempDir(), "mconv.yaml")
	if err := os.WriteFile(path, []byte("workers: 4\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MCONV_WORKERS", "8")

	cfg, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("workers = %d, want 8 from env", cfg.Workers)
	}
}

func TestLoadConfigFlagsWin(t *testing.T) {
	t.Cleanup(ResetConfig)
	t.Setenv("MCONV_WORKERS", "8")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("workers", 0, "")
	flags.String("out-extension", ".py", "")
	if err := flags.Parse([]string{"--workers", "2", "--out-extension", ".out"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := LoadConfig("", flags)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("workers = %d, want 2 from flag", cfg.Workers)
	}
	if cfg.OutExtension != ".out" {
		t.Errorf("out_extension = %q, want .out from kebab-case flag", cfg.OutExtension)
	}
}

func TestLoadConfigUnchangedFlagsIgnored(t *testing.T) {
	t.Cleanup(ResetConfig)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("extension", ".weird", "")
	if err := flags.Parse(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := LoadConfig("", flags)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Extension != ".m" {
		t.Errorf("extension = %q, unchanged flag should not apply", cfg.Extension)
	}
}

func TestGetCurrentConfigFallsBackToDefaults(t *testing.T) {
	ResetConfig()
	cfg := GetCurrentConfig()
	if cfg == nil || cfg.Extension != ".m" {
		t.Errorf("fallback config = %+v", cfg)
	}
}
