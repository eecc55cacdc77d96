// Package config loads the optional line-view settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"
const configDirName = "line-view"

// Color modes accepted by the "color" setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the line-view config.yaml settings file.
type Config struct {
	// Home overrides the directory "~/" expands to in include payloads.
	// Empty means the current user's home directory.
	Home string `yaml:"home,omitempty"`

	// Color controls styled output: auto, always or never.
	Color string `yaml:"color,omitempty"`

	// Trace enables directive tracing (debug level logging) by default.
	Trace bool `yaml:"trace,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{Color: ColorAuto}
}

// DefaultPath returns the platform-standard settings path, empty if the
// user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configDirName, configFileName)
}

// Load reads and validates a settings file. A missing file is not an
// error: defaults are returned. A present but malformed file is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return cfg, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	switch cfg.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		errs = append(errs, fmt.Sprintf("invalid color mode '%s', must be one of: auto, always, never", cfg.Color))
	}

	if cfg.Home != "" && !filepath.IsAbs(cfg.Home) {
		errs = append(errs, fmt.Sprintf("home '%s' must be an absolute path", cfg.Home))
	}

	return errs
}
