package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Section != "all" {
		t.Errorf("expected default section all, got %s", cfg.Output.Section)
	}

	if cfg.Output.LineEnding != "lf" {
		t.Errorf("expected default line_ending lf, got %s", cfg.Output.LineEnding)
	}

	if cfg.Intake.Lenient {
		t.Error("expected strict intake by default")
	}

	if len(cfg.Serve.Tools) != len(ValidTools) {
		t.Errorf("expected all %d tools, got %v", len(ValidTools), cfg.Serve.Tools)
	}

	if cfg.Serve.Timeout != "30m" {
		t.Errorf("expected timeout 30m, got %s", cfg.Serve.Timeout)
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "invalid section",
			modify: func(c *Config) {
				c.Output.Section = "summary"
			},
			wantErr: true,
		},
		{
			name: "invalid line ending",
			modify: func(c *Config) {
				c.Output.LineEnding = "LF"
			},
			wantErr: true,
		},
		{
			name: "raw line ending",
			modify: func(c *Config) {
				c.Output.LineEnding = "cr"
			},
			wantErr: false,
		},
		{
			name: "unknown tool",
			modify: func(c *Config) {
				c.Serve.Tools = []string{"qlr_render", "qlr_delete"}
			},
			wantErr: true,
		},
		{
			name: "bad timeout",
			modify: func(c *Config) {
				c.Serve.Timeout = "soon"
			},
			wantErr: true,
		},
		{
			name: "negative timeout",
			modify: func(c *Config) {
				c.Serve.Timeout = "-5m"
			},
			wantErr: true,
		},
		{
			name: "disabled timeout",
			modify: func(c *Config) {
				c.Serve.Timeout = "0"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestServeConfig_TimeoutDuration(t *testing.T) {
	tests := []struct {
		timeout string
		want    time.Duration
	}{
		{"", 0},
		{"0", 0},
		{"30m", 30 * time.Minute},
		{"1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.timeout, func(t *testing.T) {
			got, err := ServeConfig{Timeout: tt.timeout}.TimeoutDuration()
			if err != nil {
				t.Fatalf("TimeoutDuration(%q) error = %v", tt.timeout, err)
			}
			if got != tt.want {
				t.Errorf("TimeoutDuration(%q) = %v, want %v", tt.timeout, got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	defaults := DefaultConfig()

	t.Run("empty loaded uses all defaults", func(t *testing.T) {
		merged := Merge(&Config{}, defaults)

		if merged.Output.Section != defaults.Output.Section {
			t.Errorf("expected section %s, got %s", defaults.Output.Section, merged.Output.Section)
		}

		if merged.Serve.Timeout != defaults.Serve.Timeout {
			t.Errorf("expected timeout %s, got %s", defaults.Serve.Timeout, merged.Serve.Timeout)
		}
	})

	t.Run("loaded values take precedence", func(t *testing.T) {
		loaded := &Config{
			Output: OutputConfig{LineEnding: "crlf"},
			Intake: IntakeConfig{Lenient: true},
			Serve:  ServeConfig{Tools: []string{"qlr_pages"}},
		}
		merged := Merge(loaded, defaults)

		if merged.Output.LineEnding != "crlf" {
			t.Errorf("expected line_ending crlf, got %s", merged.Output.LineEnding)
		}
		if !merged.Intake.Lenient {
			t.Error("expected lenient intake")
		}
		if len(merged.Serve.Tools) != 1 || merged.Serve.Tools[0] != "qlr_pages" {
			t.Errorf("expected tools [qlr_pages], got %v", merged.Serve.Tools)
		}

		// Unset values should use defaults
		if merged.Output.Section != defaults.Output.Section {
			t.Errorf("expected default section %s, got %s", defaults.Output.Section, merged.Output.Section)
		}
	})
}

func TestFindConfigDir(t *testing.T) {
	tmpDir := t.TempDir()

	projectDir := filepath.Join(tmpDir, "project")
	subDir := filepath.Join(projectDir, "subdir")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("no config dir returns error", func(t *testing.T) {
		_, err := FindConfigDir(subDir)
		if err == nil {
			t.Error("expected error when no .qlr directory exists")
		}
	})

	configDir := filepath.Join(projectDir, ConfigDirName)
	if err := os.Mkdir(configDir, 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("finds config dir in current directory", func(t *testing.T) {
		found, err := FindConfigDir(projectDir)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if found != configDir {
			t.Errorf("expected %s, got %s", configDir, found)
		}
	})

	t.Run("finds config dir in parent directory", func(t *testing.T) {
		found, err := FindConfigDir(subDir)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if found != configDir {
			t.Errorf("expected %s, got %s", configDir, found)
		}
	})
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("loads valid config file", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		content := `
output:
  section: billing
intake:
  lenient: true
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadFromPath(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Output.Section != "billing" {
			t.Errorf("expected section billing, got %s", cfg.Output.Section)
		}
		if !cfg.Intake.Lenient {
			t.Error("expected lenient intake")
		}
		if cfg.Output.LineEnding != "lf" {
			t.Errorf("expected default line_ending lf, got %s", cfg.Output.LineEnding)
		}
	})

	t.Run("returns defaults for non-existent file", func(t *testing.T) {
		cfg, err := LoadFromPath(filepath.Join(tmpDir, "nonexistent.yaml"))
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if cfg.Output.Section != DefaultConfig().Output.Section {
			t.Errorf("expected default section, got %s", cfg.Output.Section)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("invalid: yaml: content"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadFromPath(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("returns error for invalid config values", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "bad-values.yaml")
		content := `
output:
  line_ending: newline
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadFromPath(configPath); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("returns defaults when no config dir exists", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Output.Section != DefaultConfig().Output.Section {
			t.Errorf("expected default config")
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := SaveDefault(dir); err != nil {
			t.Fatal(err)
		}
		t.Setenv(EnvLineEnding, "CRLF")

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Output.LineEnding != "crlf" {
			t.Errorf("expected line_ending crlf from env, got %s", cfg.Output.LineEnding)
		}
	})

	t.Run("dotenv file is read", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(EnvSection, "")
		os.Unsetenv(EnvSection)
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvSection+"=combined\n"), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Output.Section != "combined" {
			t.Errorf("expected section combined from .env, got %s", cfg.Output.Section)
		}
	})

	t.Run("invalid env value", func(t *testing.T) {
		t.Setenv(EnvLenient, "maybe")
		if _, err := Load(t.TempDir()); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestSaveDefault(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveDefault(dir)
	if err != nil {
		t.Fatalf("SaveDefault() error = %v", err)
	}
	if path != filepath.Join(dir, ConfigDirName, ConfigFileName) {
		t.Errorf("unexpected path %s", path)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if cfg.Output.Section != "all" || cfg.Serve.Timeout != "30m" {
		t.Errorf("saved config did not round-trip: %+v", cfg)
	}

	if _, err := SaveDefault(dir); err == nil {
		t.Error("expected error when config already exists")
	}
}
