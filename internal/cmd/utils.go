package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quadralocate/qlr/internal/config"
	"github.com/quadralocate/qlr/internal/intake"
	"github.com/quadralocate/qlr/internal/locate"
	"github.com/quadralocate/qlr/internal/output"
)

// Shared helpers for command implementations

// stdinPath is the job-sheet argument that reads from standard input.
const stdinPath = "-"

// currentConfig returns the loaded configuration, or defaults when a
// command runs without the root's PersistentPreRunE (as in tests).
func currentConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

func currentLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func newDecoder() *intake.Decoder {
	return intake.NewDecoder(currentLogger(), currentConfig().Intake.Lenient)
}

// loadReport decodes the job sheet at path. "-" reads standard input in
// inputFormat.
func loadReport(cmd *cobra.Command, path, inputFormat string) (*locate.LocateReport, error) {
	d := newDecoder()

	if path != stdinPath {
		currentLogger().Debug("Reading job sheet", zap.String("path", path))
		return d.DecodeFile(path)
	}

	format, err := intake.ParseFormat(inputFormat)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("reading standard input: %w", err)
	}
	return d.Decode(data, format)
}

// resolveSection picks the flag value when given, otherwise the configured
// section.
func resolveSection(flag string) (output.Section, error) {
	if flag == "" {
		flag = currentConfig().Output.Section
	}
	return output.ParseSection(flag)
}

// resolveLineEnding picks the flag value when given, otherwise the
// configured line ending.
func resolveLineEnding(flag string) (output.LineEnding, error) {
	if flag == "" {
		flag = currentConfig().Output.LineEnding
	}
	return output.ParseLineEnding(flag)
}

// writeListing encodes v in the --format chosen on the command line.
func writeListing(w io.Writer, v interface{}) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.FormatToWriter(w, v)
}
