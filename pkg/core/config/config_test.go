package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/fixstr/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "200ms", 200 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{200 * time.Millisecond}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "200ms" {
		t.Errorf("MarshalText() = %v, want 200ms", string(result))
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "info" || cfg.General.LogFormat != "text" {
		t.Errorf("General = %+v", cfg.General)
	}
	if diff := cmp.Diff([]string{".doc", ".docx", ".txt"}, cfg.Finder.Extensions); diff != "" {
		t.Errorf("Finder.Extensions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Windows", "Program Files"}, cfg.Finder.IgnoreDirs); diff != "" {
		t.Errorf("Finder.IgnoreDirs mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Finder.IncludeHidden || cfg.Finder.FollowSymlinks {
		t.Errorf("Finder flags = %+v", cfg.Finder)
	}
	if cfg.Finder.Debounce.Duration != 200*time.Millisecond {
		t.Errorf("Finder.Debounce = %v, want 200ms", cfg.Finder.Debounce)
	}
	if diff := cmp.Diff([]string{"lower"}, cfg.Transform.DefaultSteps); diff != "" {
		t.Errorf("Transform.DefaultSteps mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("Load() error = %v, want MISSING_CONFIG", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[general]
log_level = "debug"

[finder]
extensions = [".md"]
max_depth = 3
include_hidden = false
debounce = "50ms"

[transform]
default_steps = ["lower", "right=4"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	// untouched keys keep their defaults
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if diff := cmp.Diff([]string{"Windows", "Program Files"}, cfg.Finder.IgnoreDirs); diff != "" {
		t.Errorf("Finder.IgnoreDirs mismatch (-want +got):\n%s", diff)
	}

	opts := cfg.FinderOptions()
	if diff := cmp.Diff([]string{".md"}, opts.Extensions); diff != "" {
		t.Errorf("Extensions mismatch (-want +got):\n%s", diff)
	}
	if opts.MaxDepth != 3 || opts.IncludeHidden || opts.Debounce != 50*time.Millisecond {
		t.Errorf("FinderOptions() = %+v", opts)
	}
	if diff := cmp.Diff([]string{"lower", "right=4"}, cfg.Transform.DefaultSteps); diff != "" {
		t.Errorf("DefaultSteps mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
general:
  log_format: json
finder:
  roots: ["$FIXSTR_TEST_ROOT/docs"]
  ignore_dirs: [node_modules]
  follow_symlinks: true
  debounce: 1s
`)
	t.Setenv("FIXSTR_TEST_ROOT", "/srv")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogFormat != "json" || cfg.General.LogLevel != "info" {
		t.Errorf("General = %+v", cfg.General)
	}
	if diff := cmp.Diff([]string{"/srv/docs"}, cfg.Finder.Roots); diff != "" {
		t.Errorf("Roots mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"node_modules"}, cfg.Finder.IgnoreDirs); diff != "" {
		t.Errorf("IgnoreDirs mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Finder.FollowSymlinks || cfg.Finder.Debounce.Duration != time.Second {
		t.Errorf("Finder = %+v", cfg.Finder)
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "empty.yml", ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("empty file should yield defaults, got %+v", cfg.General)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml syntax", "c.toml", "[general\nlog_level = "},
		{"unknown toml key", "c.toml", "[general]\ncolour = true\n"},
		{"unknown yaml key", "c.yaml", "general:\n  colour: true\n"},
		{"bad level", "c.toml", "[general]\nlog_level = \"loud\"\n"},
		{"bad format", "c.toml", "[general]\nlog_format = \"xml\"\n"},
		{"negative depth", "c.toml", "[finder]\nmax_depth = -1\n"},
		{"bad duration", "c.toml", "[finder]\ndebounce = \"soon\"\n"},
		{"negative duration", "c.yaml", "finder:\n  debounce: -1s\n"},
		{"blank extension", "c.toml", "[finder]\nextensions = [\"\"]\n"},
		{"unknown step", "c.toml", "[transform]\ndefault_steps = [\"upper\"]\n"},
		{"bad step argument", "c.toml", "[transform]\ndefault_steps = [\"left=x\"]\n"},
		{"step without argument", "c.toml", "[transform]\ndefault_steps = [\"left\"]\n"},
		{"step with extra argument", "c.yaml", "transform:\n  default_steps: [\"lower=7\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("Load() error = %v (code %v), want INVALID_CONFIG", err, mdwerror.GetCode(err))
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, " DEBUG ")
	t.Setenv(EnvLogFormat, "json")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.General.LogLevel != "debug" || cfg.General.LogFormat != "json" {
		t.Errorf("General = %+v", cfg.General)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	path := writeConfig(t, "config.toml", "[general]\nlog_level = \"debug\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn from the environment", cfg.General.LogLevel)
	}
}

func TestLoadFromEnv_ExplicitPath(t *testing.T) {
	path := writeConfig(t, "custom.toml", "[general]\nlog_level = \"error\"\n")
	t.Setenv(EnvConfig, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.LogLevel != "error" {
		t.Errorf("LogLevel = %v, want error", cfg.General.LogLevel)
	}
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv("HOME", t.TempDir())

	// Change to a temp directory without config files
	originalWd, _ := os.Getwd()
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	defer os.Chdir(originalWd)

	_, err := LoadFromEnv()
	if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("LoadFromEnv() error = %v, want MISSING_CONFIG", err)
	}
}

func TestLoadFromEnv_DefaultLocation(t *testing.T) {
	t.Setenv(EnvConfig, "")

	originalWd, _ := os.Getwd()
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	defer os.Chdir(originalWd)

	if err := os.MkdirAll("configs", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "config.toml"), []byte("[finder]\nmax_depth = 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Finder.MaxDepth != 7 {
		t.Errorf("MaxDepth = %d, want 7", cfg.Finder.MaxDepth)
	}
}
