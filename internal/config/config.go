// Package config holds the runtime configuration for a browsing session.
// There is no configuration file by design: everything comes from built-in
// defaults, the environment, and command line flags.
package config

import (
	"fmt"
	"os"
)

// Environment variables consulted by FromEnv.
const (
	// EnvEditor selects the command used to open files.
	EnvEditor = "EDITOR"
	// EnvLogFile points application logging at a file.
	EnvLogFile = "PICKD_LOG"
)

// Config represents the application configuration.
type Config struct {
	StartDir       string // Directory the browser opens in
	Editor         string // Command used to open files, empty means use the pager
	Pager          string // Viewer used when no editor is configured
	FallbackEditor string // Last resort when the editor and pager both fail
	LogFile        string // Log file path, empty disables logging
	Watch          bool   // Refresh the listing when the directory changes on disk
	Debug          bool   // Enable debug logging
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	return &Config{
		StartDir:       ".",    // Current directory by default
		Editor:         "",     // Resolved from $EDITOR, then the pager
		Pager:          "less", // Present on any POSIX system
		FallbackEditor: "vi",
		LogFile:        "",
		Watch:          true,
		Debug:          false,
	}
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// FromEnv builds a configuration from defaults overlaid with the
// environment. EDITOR selects the editor command and PICKD_LOG points
// logging at a file.
func FromEnv() *Config {
	cfg := defaultConfig()
	if editor := os.Getenv(EnvEditor); editor != "" {
		cfg.Editor = editor
	}
	if logFile := os.Getenv(EnvLogFile); logFile != "" {
		cfg.LogFile = logFile
	}
	return cfg
}

// Validate checks if the configuration is valid.
// Returns an error if any settings are unusable.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if c.StartDir == "" {
		return fmt.Errorf("start directory is required")
	}
	info, err := os.Stat(c.StartDir)
	if err != nil {
		return fmt.Errorf("error accessing start directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("start directory is not a directory: %s", c.StartDir)
	}

	// The pager and fallback editor close out the spawn chain, so they
	// must be set even when an editor is configured.
	if c.Pager == "" {
		return fmt.Errorf("pager command is required")
	}
	if c.FallbackEditor == "" {
		return fmt.Errorf("fallback editor command is required")
	}

	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Editor = "true" // Exits immediately without touching the terminal
	cfg.Watch = false
	return cfg
}
