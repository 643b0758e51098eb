package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the qlr configuration file
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the qlr configuration directory
const ConfigDirName = ".qlr"

// Config holds all qlr configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Intake IntakeConfig `yaml:"intake"`
	Serve  ServeConfig  `yaml:"serve"`
}

// OutputConfig controls how rendered reports are written
type OutputConfig struct {
	// Section is the default report part: combined, billing or all
	Section string `yaml:"section"`
	// LineEnding replaces the report's \r separators: cr, lf or crlf
	LineEnding string `yaml:"line_ending"`
}

// IntakeConfig controls job sheet decoding
type IntakeConfig struct {
	// Lenient skips field validation. Enum values are still checked.
	Lenient bool `yaml:"lenient"`
}

// ServeConfig holds MCP server settings
type ServeConfig struct {
	Tools   []string `yaml:"tools"`
	Timeout string   `yaml:"timeout"`
}

// TimeoutDuration parses Timeout. An empty or "0" timeout disables it.
func (s ServeConfig) TimeoutDuration() (time.Duration, error) {
	if s.Timeout == "" || s.Timeout == "0" {
		return 0, nil
	}
	return time.ParseDuration(s.Timeout)
}

// ErrConfigNotFound is returned when no config file can be found
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from .qlr/config.yaml, falling back to defaults.
// It searches for the config directory starting from workDir and walking up
// the directory tree. Environment overrides are applied last.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		return ApplyEnv(DefaultConfig(), workDir)
	}

	cfg, err := LoadFromPath(filepath.Join(configDir, ConfigFileName))
	if err != nil {
		return nil, err
	}
	return ApplyEnv(cfg, workDir)
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merged := Merge(loaded, DefaultConfig())

	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// FindConfigDir locates the .qlr directory by walking up from startDir.
func FindConfigDir(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// EnsureConfigDir creates the .qlr directory if it doesn't exist.
// Returns the path to the .qlr directory.
func EnsureConfigDir(workDir string) (string, error) {
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	configDir := filepath.Join(absDir, ConfigDirName)

	info, err := os.Stat(configDir)
	if err == nil {
		if info.IsDir() {
			return configDir, nil
		}
		return "", fmt.Errorf("%s exists but is not a directory", configDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return configDir, nil
}

// Validate checks that config values are valid.
func Validate(cfg *Config) error {
	if !isOneOf(cfg.Output.Section, ValidSections) {
		return fmt.Errorf("%w: section must be one of %v, got %q",
			ErrInvalidConfig, ValidSections, cfg.Output.Section)
	}

	if !isOneOf(cfg.Output.LineEnding, ValidLineEndings) {
		return fmt.Errorf("%w: line_ending must be one of %v, got %q",
			ErrInvalidConfig, ValidLineEndings, cfg.Output.LineEnding)
	}

	for _, tool := range cfg.Serve.Tools {
		if !isOneOf(tool, ValidTools) {
			return fmt.Errorf("%w: unknown serve tool %q (expected one of %v)",
				ErrInvalidConfig, tool, ValidTools)
		}
	}

	d, err := cfg.Serve.TimeoutDuration()
	if err != nil {
		return fmt.Errorf("%w: timeout: %v", ErrInvalidConfig, err)
	}
	if d < 0 {
		return fmt.Errorf("%w: timeout must be non-negative, got %s", ErrInvalidConfig, cfg.Serve.Timeout)
	}

	return nil
}

// SaveDefault writes the default configuration to .qlr/config.yaml in workDir.
// Creates the .qlr directory if it doesn't exist.
func SaveDefault(workDir string) (string, error) {
	configDir, err := EnsureConfigDir(workDir)
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists: %s", configPath)
	}

	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	header := "# qlr configuration\n# line_ending: cr keeps the raw report separators\n\n"
	data = append([]byte(header), data...)

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return configPath, nil
}
