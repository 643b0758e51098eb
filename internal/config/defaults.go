package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvSection    = "QLR_SECTION"
	EnvLineEnding = "QLR_LINE_ENDING"
	EnvLenient    = "QLR_LENIENT"
)

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// config file is missing specific fields.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Section:    "all",
			LineEnding: "lf",
		},
		Intake: IntakeConfig{
			Lenient: false,
		},
		Serve: ServeConfig{
			Tools:   append([]string(nil), ValidTools...),
			Timeout: "30m",
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}

	result.Output = mergeOutputConfig(loaded.Output, defaults.Output)

	// Lenient defaults to false, so the loaded value is always right
	result.Intake.Lenient = loaded.Intake.Lenient

	result.Serve = mergeServeConfig(loaded.Serve, defaults.Serve)

	return result
}

func mergeOutputConfig(loaded, defaults OutputConfig) OutputConfig {
	result := OutputConfig{}

	if loaded.Section != "" {
		result.Section = loaded.Section
	} else {
		result.Section = defaults.Section
	}

	if loaded.LineEnding != "" {
		result.LineEnding = loaded.LineEnding
	} else {
		result.LineEnding = defaults.LineEnding
	}

	return result
}

func mergeServeConfig(loaded, defaults ServeConfig) ServeConfig {
	result := ServeConfig{}

	if len(loaded.Tools) > 0 {
		result.Tools = loaded.Tools
	} else {
		result.Tools = defaults.Tools
	}

	if loaded.Timeout != "" {
		result.Timeout = loaded.Timeout
	} else {
		result.Timeout = defaults.Timeout
	}

	return result
}

// ApplyEnv overlays QLR_* environment variables onto cfg. A .env file in
// workDir, if present, is loaded first; variables already set in the
// process environment win over the file.
func ApplyEnv(cfg *Config, workDir string) (*Config, error) {
	envFile := filepath.Join(workDir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	result := *cfg
	if v := strings.TrimSpace(os.Getenv(EnvSection)); v != "" {
		result.Output.Section = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLineEnding)); v != "" {
		result.Output.LineEnding = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLenient)); v != "" {
		lenient, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvLenient, err)
		}
		result.Intake.Lenient = lenient
	}

	if err := Validate(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ValidSections lists the report parts that can be rendered
var ValidSections = []string{"combined", "billing", "all"}

// ValidLineEndings lists the supported line ending conversions
var ValidLineEndings = []string{"cr", "lf", "crlf"}

// ValidTools lists the MCP tools the server can expose
var ValidTools = []string{"qlr_render", "qlr_pages"}

func isOneOf(value string, valid []string) bool {
	for _, v := range valid {
		if value == v {
			return true
		}
	}
	return false
}
