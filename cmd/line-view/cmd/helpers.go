package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/bianoble/line-view/internal/config"
)

// loadSettings reads the settings file named by --config, falling back to
// the platform default location. A missing file yields defaults.
func loadSettings() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.Trace && !quiet {
		log.SetLevel(log.DebugLevel)
	}
	return cfg, nil
}

// resolveHome picks the directory "~/" expands to: the --home flag wins,
// then the settings file, then the current user's home. Empty means
// expansion is unavailable and degrades to warning lines.
func resolveHome(cfg *config.Config) string {
	if homeDir != "" {
		return homeDir
	}
	if cfg.Home != "" {
		return cfg.Home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// colorEnabled decides whether styled output is wanted for stdout. Always
// mode forces the renderer's color profile, so styles survive pipes and
// redirection instead of being stripped on non-TTY output.
func colorEnabled(cfg *config.Config) bool {
	if noColor {
		return false
	}
	switch cfg.Color {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		lipgloss.DefaultRenderer().SetColorProfile(termenv.TrueColor)
		return true
	}
	return true // auto: lipgloss degrades on non-TTY profiles
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}
