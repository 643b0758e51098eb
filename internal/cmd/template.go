package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quadralocate/qlr/internal/intake"
)

// templateCmd represents the template command
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print a sample job sheet",
	Long: `Print a filled-in two-day job sheet in YAML.

The sample uses every section of the report and is a starting point for new
job sheets. Keys that qlr does not know are ignored when a sheet is read.`,
	Example: `  qlr template > job.yaml
  qlr template -o job.yaml`,
	Args: cobra.NoArgs,
	RunE: runTemplate,
}

var templateOutput string

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "", "Write the sample to a file instead of stdout")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	data, err := intake.SampleYAML()
	if err != nil {
		return err
	}

	if templateOutput == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if _, err := os.Stat(templateOutput); err == nil {
		return fmt.Errorf("%s already exists", templateOutput)
	}
	if err := os.WriteFile(templateOutput, data, 0644); err != nil {
		return fmt.Errorf("writing sample: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", templateOutput)
	return nil
}
