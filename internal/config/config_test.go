package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() config should be valid: %v", err)
	}
	if cfg.Poster.Theme != ThemeClassic {
		t.Errorf("default theme = %q, want %q", cfg.Poster.Theme, ThemeClassic)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{"unknown theme", func(c *Config) { c.Poster.Theme = "neon" }, "invalid theme"},
		{"empty theme", func(c *Config) { c.Poster.Theme = "" }, "invalid theme"},
		{"empty output dir", func(c *Config) { c.Poster.OutputDir = "" }, "output_dir is required"},
		{"empty prefix", func(c *Config) { c.Poster.FilePrefix = "" }, "file_prefix is required"},
		{"prefix with slash", func(c *Config) { c.Poster.FilePrefix = "a/b" }, "path separators"},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_JoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Poster.Theme = "neon"
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "poster:") || !strings.Contains(msg, "logging:") {
		t.Errorf("expected both sections in error, got %q", msg)
	}
}

func TestThemeName_Valid(t *testing.T) {
	for _, name := range Themes() {
		if !name.Valid() {
			t.Errorf("%q should be valid", name)
		}
	}
	if ThemeName("plaid").Valid() {
		t.Error("plaid should not be a valid theme")
	}
}

func TestPosterConfig_OutputPath(t *testing.T) {
	p := Default().Poster
	if got := p.OutputFileName("ruth"); got != "number_our_days_ruth.pdf" {
		t.Errorf("OutputFileName() = %q", got)
	}

	p.OutputDir = filepath.Join("out", "posters")
	want := filepath.Join("out", "posters", "number_our_days_ruth.pdf")
	if got := p.OutputPath("ruth"); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}
