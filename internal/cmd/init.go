// Package cmd implements the init command for qlr CLI.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quadralocate/qlr/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize .qlr directory and config",
	Long: `Initialize the .qlr directory and config.yaml in the current directory.

The config sets the default report section and line ending, whether job
sheets are validated strictly, and which tools the MCP server exposes.

Examples:
  qlr init          # Initialize in current directory
  qlr init --force  # Rewrite config.yaml with defaults`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Rewrite config.yaml even if it already exists")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	configDir := filepath.Join(cwd, config.ConfigDirName)
	configFile := filepath.Join(configDir, config.ConfigFileName)

	_, err = os.Stat(configFile)
	if err == nil {
		if !initForce {
			relPath, _ := filepath.Rel(cwd, configDir)
			fmt.Fprintf(cmd.OutOrStdout(), "Already initialized at %s\n", relPath)
			return nil
		}
		if err := os.Remove(configFile); err != nil {
			return fmt.Errorf("removing existing config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config path: %w", err)
	}

	path, err := config.SaveDefault(cwd)
	if err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}

	relPath, _ := filepath.Rel(cwd, path)
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized qlr config at %s\n", relPath)
	return nil
}
