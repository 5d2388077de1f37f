package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultConfigFileName is the standard configuration file name.
	DefaultConfigFileName = "numberourdays.toml"

	// XDGConfigSubdir is the subdirectory under XDG_CONFIG_HOME for numberourdays.
	XDGConfigSubdir = "numberourdays"
)

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading config from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load attempts to load configuration from multiple sources in order of precedence:
// 1. Explicit path (if provided)
// 2. XDG config path (~/.config/numberourdays/numberourdays.toml)
// 3. Current working directory (./numberourdays.toml)
// 4. Built-in defaults
//
// Returns the loaded configuration and the path it was loaded from,
// which is empty when the defaults were used.
func Load(explicitPath string) (*Config, string, error) {
	// If explicit path provided, use only that
	if explicitPath != "" {
		cfg, err := loadFromFile(explicitPath)
		if err != nil {
			return nil, "", &LoadError{Path: explicitPath, Err: err}
		}
		return cfg, explicitPath, nil
	}

	for _, path := range searchPaths() {
		if !fileExists(path) {
			continue
		}
		cfg, err := loadFromFile(path)
		if err != nil {
			return nil, "", &LoadError{Path: path, Err: err}
		}
		return cfg, path, nil
	}

	return Default(), "", nil
}

// searchPaths returns the implicit config locations, most preferred first.
func searchPaths() []string {
	var paths []string
	if xdg := xdgConfigPath(); xdg != "" {
		paths = append(paths, xdg)
	}
	return append(paths, filepath.Join(".", DefaultConfigFileName))
}

// loadFromFile reads and parses a TOML configuration file.
func loadFromFile(path string) (*Config, error) {
	// Start with defaults so missing values get sensible defaults
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Save writes a configuration to a new TOML file. It refuses to replace
// an existing file; the returned error then matches os.ErrExist.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0640)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("config file %s already exists: %w", path, err)
		}
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	header := `# numberourdays configuration
#
# poster.theme: classic | sepia
# logging.level: debug | info | warn | error

`
	if _, err := f.WriteString(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	return f.Close()
}

// xdgConfigPath returns the XDG-compliant config file path.
// Returns empty string if XDG_CONFIG_HOME is not set and HOME is not available.
func xdgConfigPath() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig != "" {
		return filepath.Join(xdgConfig, XDGConfigSubdir, DefaultConfigFileName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", XDGConfigSubdir, DefaultConfigFileName)
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ConfigPath returns the configuration file path that would be used.
// Useful for displaying to users and for writing a fresh default.
func ConfigPath(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}

	for _, path := range searchPaths() {
		if fileExists(path) {
			return path
		}
	}

	// Return XDG path as the preferred location for new configs
	if xdg := xdgConfigPath(); xdg != "" {
		return xdg
	}

	return filepath.Join(".", DefaultConfigFileName)
}

// EnsureLogDir creates the log directory if needed.
// Returns the path to the log file, or "" when file logging is disabled.
func EnsureLogDir(cfg *Config) (string, error) {
	logPath := cfg.Logging.File

	if logPath == "" {
		return "", nil
	}

	dir := filepath.Dir(logPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return "", fmt.Errorf("creating log directory: %w", err)
		}
	}

	return logPath, nil
}

// EnsureOutputDir creates the poster output directory if needed.
func EnsureOutputDir(cfg *Config) error {
	if err := os.MkdirAll(cfg.Poster.OutputDir, 0750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}
