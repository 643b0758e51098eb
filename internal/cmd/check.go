package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quadralocate/qlr/internal/output"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <job-sheet>",
	Short: "Validate a job sheet and summarize it",
	Long: `Decode and validate a job sheet without rendering it.

Validation checks enum values (bc1_provider, property_type, drawing format),
dates (YYYY-MM-DD), non-negative hours, page numbers and clock times. Set
intake.lenient in the config or QLR_LENIENT=true to skip these checks.

On success a one-line summary is printed. Use --detail for the full summary
in the listing --format.`,
	Example: `  qlr check job.yaml
  qlr check job.yaml --detail --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

var (
	checkDetail      bool
	checkInputFormat string
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkDetail, "detail", false, "Print the structured summary")
	checkCmd.Flags().StringVar(&checkInputFormat, "input-format", "yaml", "Job sheet format when reading stdin (yaml|json|json5)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	report, err := loadReport(cmd, args[0], checkInputFormat)
	if err != nil {
		return err
	}

	summary := output.NewSummaryOutput(report)
	if checkDetail {
		return writeListing(cmd.OutOrStdout(), summary)
	}

	fmt.Fprintln(cmd.OutOrStdout(), summaryLine(args[0], summary))
	return nil
}

// summaryLine renders e.g.
// "job.yaml: ok, 3 utilities, 2 work days, 2 technicians, 14.5 hours, hydrovac recommended".
func summaryLine(name string, s *output.SummaryOutput) string {
	parts := []string{
		plural(len(s.Utilities), "utility", "utilities"),
		plural(s.WorkDays, "work day", "work days"),
		plural(len(s.Technicians), "technician", "technicians"),
		s.TotalHours + " hours",
	}
	if s.HydrovacRecommended {
		parts = append(parts, "hydrovac recommended")
	}
	if s.ContentPages > 0 {
		parts = append(parts, plural(s.ContentPages, "photo page", "photo pages"))
	}
	if s.Drawings > 0 {
		parts = append(parts, plural(s.Drawings, "drawing", "drawings"))
	}
	return name + ": ok, " + strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
