// Package cmd contains all CLI commands for qlr.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/quadralocate/qlr/internal/config"
)

var (
	// Version is the current version of qlr
	Version = "0.1.0"

	// Global flags
	verbose      bool
	configPath   string
	forAgents    bool
	outputFormat string

	// Set up by PersistentPreRunE for every command that runs
	logger *zap.Logger
	cfg    *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qlr",
	Short: "Locate report formatter for utility locate job sheets",
	Long: `qlr turns a utility locate job sheet into the text of a locate report.

A job sheet is a YAML, JSON or JSON5 document holding what the crew recorded on
site: locate methods and notes per utility, technician hours per work day,
hydrovac recommendation, missing documentation, supplemental charges,
materials, photo pages and drawings. qlr renders the billing details block and
the combined narrative report exactly as they appear in the final document.

Output:
  Report text uses "\r" between lines inside the document. qlr converts these
  to "\n" by default; use --line-ending cr for the raw text.
  Listings (pages, check --detail, call --list) are YAML by default; use
  --format json to switch.

Configuration:
  .qlr/config.yaml (see 'qlr init') and QLR_SECTION, QLR_LINE_ENDING,
  QLR_LENIENT environment variables, also read from a .env file.

Examples:
  qlr template > job.yaml            # Start from a sample job sheet
  qlr check job.yaml                 # Validate and summarize
  qlr render job.yaml                # Billing details and combined report
  qlr render job.yaml --section billing
  qlr pages job.yaml --format json   # Pages for document assembly
  qlr serve --mcp                    # MCP server for agents

See 'qlr <command> --help' for command-specific options.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .qlr/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "yaml", "Listing format (yaml|json)")
	rootCmd.Flags().BoolVar(&forAgents, "for-agents", false, "Output machine-readable capability discovery JSON")

	// Set custom help function to intercept --for-agents flag
	originalHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if forAgents {
			outputAgentHelp(cmd, cmd.OutOrStdout())
			return
		}
		originalHelp(cmd, args)
	})
}

// setup builds the logger and loads configuration before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	logger, err = newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	logger.Debug("Configuration loaded",
		zap.String("section", cfg.Output.Section),
		zap.String("line_ending", cfg.Output.LineEnding),
		zap.Bool("lenient", cfg.Intake.Lenient))
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapConfig.Build()
}

// loadConfig reads --config when given, otherwise searches upward from the
// working directory. Environment overrides apply either way.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	if configPath == "" {
		return config.Load(cwd)
	}

	loaded, err := config.LoadFromPath(configPath)
	if err != nil {
		return nil, err
	}
	return config.ApplyEnv(loaded, cwd)
}

// CommandInfo represents a command for agent discovery
type CommandInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Usage       string        `json:"usage"`
	Flags       []FlagInfo    `json:"flags,omitempty"`
	Subcommands []CommandInfo `json:"subcommands,omitempty"`
	Examples    []string      `json:"examples,omitempty"`
}

// FlagInfo represents a command flag for agent discovery
type FlagInfo struct {
	Name        string `json:"name"`
	Shorthand   string `json:"shorthand,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
}

// outputAgentHelp outputs machine-readable JSON describing all commands
func outputAgentHelp(cmd *cobra.Command, w io.Writer) {
	root := buildCommandInfo(cmd.Root())

	output := map[string]interface{}{
		"version":      Version,
		"commands":     root.Subcommands,
		"global_flags": root.Flags,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(output)
}

// buildCommandInfo recursively builds command information for agent discovery
func buildCommandInfo(cmd *cobra.Command) CommandInfo {
	info := CommandInfo{
		Name:        cmd.Name(),
		Description: cmd.Short,
		Usage:       cmd.UseLine(),
	}

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		info.Flags = append(info.Flags, FlagInfo{
			Name:        f.Name,
			Shorthand:   f.Shorthand,
			Description: f.Usage,
			Type:        f.Value.Type(),
			Default:     f.DefValue,
		})
	})

	for _, sub := range cmd.Commands() {
		if !sub.Hidden {
			info.Subcommands = append(info.Subcommands, buildCommandInfo(sub))
		}
	}

	if cmd.Example != "" {
		lines := strings.Split(cmd.Example, "\n")
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if trimmed != "" {
				info.Examples = append(info.Examples, trimmed)
			}
		}
	}

	return info
}
