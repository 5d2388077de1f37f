// Package config provides configuration management for numberourdays.
// Configurations are loaded from TOML files with XDG-compliant paths.
//
// The grid dimensions and the life-expectancy table are not part of the
// configuration; they live in the calendar package.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Config holds the complete application configuration.
type Config struct {
	Poster  PosterConfig  `toml:"poster"`
	Logging LoggingConfig `toml:"logging"`
}

// PosterConfig controls how and where the poster is written.
type PosterConfig struct {
	Theme      ThemeName `toml:"theme"`
	Title      string    `toml:"title"`
	OutputDir  string    `toml:"output_dir"`
	FilePrefix string    `toml:"file_prefix"`
}

// ThemeName selects the poster's color scheme.
type ThemeName string

const (
	ThemeClassic ThemeName = "classic"
	ThemeSepia   ThemeName = "sepia"
)

// Themes lists the valid theme names.
func Themes() []ThemeName {
	return []ThemeName{ThemeClassic, ThemeSepia}
}

// Valid returns true if the theme name is known.
func (t ThemeName) Valid() bool {
	for _, name := range Themes() {
		if t == name {
			return true
		}
	}
	return false
}

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level LogLevel `toml:"level"`
	File  string   `toml:"file"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Poster.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("poster: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the poster configuration is valid.
func (p *PosterConfig) Validate() error {
	var errs []error

	if !p.Theme.Valid() {
		errs = append(errs, fmt.Errorf("invalid theme: %s", p.Theme))
	}

	if p.OutputDir == "" {
		errs = append(errs, errors.New("output_dir is required"))
	}

	if p.FilePrefix == "" {
		errs = append(errs, errors.New("file_prefix is required"))
	} else if strings.ContainsAny(p.FilePrefix, `/\`) {
		errs = append(errs, errors.New("file_prefix must not contain path separators"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}

	if !validLevels[l.Level] && l.Level != "" {
		return fmt.Errorf("invalid log level: %s", l.Level)
	}

	return nil
}

// Default returns a configuration with sensible default values.
func Default() *Config {
	return &Config{
		Poster: PosterConfig{
			Theme:      ThemeClassic,
			Title:      "Number Our Days",
			OutputDir:  ".",
			FilePrefix: "number_our_days",
		},
		Logging: LoggingConfig{
			Level: LogLevelWarn,
			File:  "",
		},
	}
}

// OutputFileName returns the poster file name for a lowercased first name.
func (p *PosterConfig) OutputFileName(stem string) string {
	return fmt.Sprintf("%s_%s.pdf", p.FilePrefix, stem)
}

// OutputPath joins the output directory and the poster file name.
func (p *PosterConfig) OutputPath(stem string) string {
	return filepath.Join(p.OutputDir, p.OutputFileName(stem))
}
