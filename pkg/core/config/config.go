// ============================================================================
// fixstr - Fixed-length string toolkit
// ============================================================================
//
// Package:     config
// Description: Typed application configuration loaded from TOML or YAML
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/fixstr/foundation/core/error"
	mdwerrors "github.com/msto63/fixstr/foundation/core/errors"
	"github.com/msto63/fixstr/foundation/utils/filex"
)

// Environment variables read by LoadFromEnv and ApplyEnv
const (
	EnvConfig    = "FIXSTR_CONFIG"
	EnvLogLevel  = "FIXSTR_LOG_LEVEL"
	EnvLogFormat = "FIXSTR_LOG_FORMAT"
)

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	Finder    FinderConfig    `toml:"finder" yaml:"finder"`
	Transform TransformConfig `toml:"transform" yaml:"transform"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// FinderConfig holds the document finder settings
type FinderConfig struct {
	Roots          []string `toml:"roots" yaml:"roots"`
	Extensions     []string `toml:"extensions" yaml:"extensions"`
	IgnoreDirs     []string `toml:"ignore_dirs" yaml:"ignore_dirs"`
	MaxDepth       int      `toml:"max_depth" yaml:"max_depth"`
	FollowSymlinks bool     `toml:"follow_symlinks" yaml:"follow_symlinks"`
	IncludeHidden  bool     `toml:"include_hidden" yaml:"include_hidden"`
	Debounce       Duration `toml:"debounce" yaml:"debounce"`
}

// TransformConfig holds the transform pipeline settings
type TransformConfig struct {
	DefaultSteps []string `toml:"default_steps" yaml:"default_steps"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns the built-in configuration
func Default() *Config {
	opts := filex.DefaultOptions()
	return &Config{
		General: GeneralConfig{
			LogLevel:  "info",
			LogFormat: "text",
		},
		Finder: FinderConfig{
			Roots:          []string{"."},
			Extensions:     opts.Extensions,
			IgnoreDirs:     opts.IgnoreDirs,
			MaxDepth:       opts.MaxDepth,
			FollowSymlinks: opts.FollowSymlinks,
			IncludeHidden:  opts.IncludeHidden,
			Debounce:       Duration{opts.Debounce},
		},
		Transform: TransformConfig{
			DefaultSteps: []string{"lower"},
		},
	}
}

// Load loads configuration from a TOML or YAML file. The format follows
// the file extension; anything but .yaml and .yml is read as TOML. Keys
// missing from the file keep their default values.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
				Operation("load").
				Messagef("config file not found: %s", path).
				Cause(err).
				Code(mdwerror.CodeMissingConfig).
				Detail("path", path).
				Build()
		}
		return nil, mdwerrors.FromFS(mdwerrors.ModuleConfig, "load", path, err)
	}

	cfg, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load "+path).WithDetail("path", path)
	}
	return cfg, nil
}

// Format names a configuration file syntax
type Format string

// Supported file formats
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes data over the defaults, applies environment overrides and
// validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()

	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(cfg); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		var md toml.MetaData
		md, err = toml.Decode(string(data), cfg)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				keys := make([]string, len(undecoded))
				for i, k := range undecoded {
					keys[i] = k.String()
				}
				return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
					Operation("parse").
					Messagef("unknown configuration keys: %s", strings.Join(keys, ", ")).
					Code(mdwerror.CodeInvalidConfig).
					Build()
			}
		}
	}
	if err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("parse").
			Messagef("failed to parse %s config", format).
			Cause(err).
			Code(mdwerror.CodeInvalidConfig).
			Build()
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from the FIXSTR_CONFIG environment
// variable or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load_from_env").
			Messagef("no config file found, set %s or create configs/config.toml", EnvConfig).
			Code(mdwerror.CodeMissingConfig).
			Build()
	}

	return Load(path)
}

// DefaultPaths returns the locations searched by LoadFromEnv in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "fixstr", "config.toml"))
	}
	return paths
}

// applyDefaults fills values that were explicitly set empty
func (c *Config) applyDefaults() {
	def := Default()

	if c.General.LogLevel == "" {
		c.General.LogLevel = def.General.LogLevel
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = def.General.LogFormat
	}
	if len(c.Finder.Roots) == 0 {
		c.Finder.Roots = def.Finder.Roots
	}
	if len(c.Finder.Extensions) == 0 {
		c.Finder.Extensions = def.Finder.Extensions
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	for i, root := range c.Finder.Roots {
		c.Finder.Roots[i] = os.ExpandEnv(root)
	}
}

// ApplyEnv overrides the log settings from FIXSTR_LOG_LEVEL and
// FIXSTR_LOG_FORMAT when they are set
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.General.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.General.LogFormat = strings.ToLower(v)
	}
}

// FinderOptions converts the finder section into scanner options
func (c *Config) FinderOptions() filex.Options {
	return filex.Options{
		Extensions:     append([]string(nil), c.Finder.Extensions...),
		IgnoreDirs:     append([]string(nil), c.Finder.IgnoreDirs...),
		MaxDepth:       c.Finder.MaxDepth,
		FollowSymlinks: c.Finder.FollowSymlinks,
		IncludeHidden:  c.Finder.IncludeHidden,
		Debounce:       c.Finder.Debounce.Duration,
	}
}
