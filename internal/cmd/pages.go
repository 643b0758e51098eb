package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quadralocate/qlr/internal/output"
)

// pagesCmd represents the pages command
var pagesCmd = &cobra.Command{
	Use:   "pages <job-sheet>",
	Short: "List photo pages and drawings for document assembly",
	Long: `List the photo pages and drawings of a job sheet.

Every photo page is listed with has_content; content_pages holds the page
numbers that have photos or comments and belong in the final document.
Drawings carry their paper-size label and a large flag for 11x17 output.`,
	Example: `  qlr pages job.yaml
  qlr pages job.yaml --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runPages,
}

var pagesInputFormat string

func init() {
	rootCmd.AddCommand(pagesCmd)

	pagesCmd.Flags().StringVar(&pagesInputFormat, "input-format", "yaml", "Job sheet format when reading stdin (yaml|json|json5)")
}

func runPages(cmd *cobra.Command, args []string) error {
	report, err := loadReport(cmd, args[0], pagesInputFormat)
	if err != nil {
		return err
	}
	return writeListing(cmd.OutOrStdout(), output.NewPagesOutput(report))
}
