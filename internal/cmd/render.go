package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quadralocate/qlr/internal/output"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <job-sheet>",
	Short: "Render the locate report text from a job sheet",
	Long: `Render the billing details and the combined report from a job sheet.

Sections:
  billing    TIME ON SITE, TYPE/TIME, SUPPLEMENTAL, MATERIALS and PROPERTY TYPE,
             aligned to an 18-character header column
  combined   Travel notes, site conditions, each located utility, hydrovac
             recommendation and recommendations
  all        billing, a blank line, then combined (default)

The job sheet format follows its extension (.yaml, .yml, .json, .json5).
Use "-" to read the sheet from standard input with --input-format.`,
	Example: `  qlr render job.yaml
  qlr render job.json --section billing
  qlr render job.yaml --line-ending cr -o report.txt
  cat job.json5 | qlr render - --input-format json5`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderSection     string
	renderLineEnding  string
	renderOutput      string
	renderInputFormat string
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderSection, "section", "", "Report part: combined|billing|all (default from config)")
	renderCmd.Flags().StringVar(&renderLineEnding, "line-ending", "", "Line separator: cr|lf|crlf (default from config)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write the report to a file instead of stdout")
	renderCmd.Flags().StringVar(&renderInputFormat, "input-format", "yaml", "Job sheet format when reading stdin (yaml|json|json5)")
}

func runRender(cmd *cobra.Command, args []string) error {
	section, err := resolveSection(renderSection)
	if err != nil {
		return err
	}
	lineEnding, err := resolveLineEnding(renderLineEnding)
	if err != nil {
		return err
	}

	report, err := loadReport(cmd, args[0], renderInputFormat)
	if err != nil {
		return err
	}

	if renderOutput == "" {
		return output.WriteReport(cmd.OutOrStdout(), report, section, lineEnding)
	}

	f, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := output.WriteReport(f, report, section, lineEnding); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	currentLogger().Debug("Report written",
		zap.String("path", renderOutput),
		zap.String("section", section.String()))
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", renderOutput)
	return nil
}
