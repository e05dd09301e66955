package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courtline/ecourts/pkg/casehistory"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a human-readable summary of a case-history page",
	Long: `Parse one saved case-history HTML page and print a sectioned text
summary with entry counts. Long histories are truncated to the first few
entries with a remainder count.

Examples:
  ecourts summary -f case_history.html
  ecourts summary -f case_history.html --max-entries 10`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	flags := summaryCmd.Flags()
	flags.StringP("file", "f", "", "HTML file to parse (- for stdin)")
	flags.String("labels", "", "YAML file overriding field label synonyms")
	flags.Int("max-entries", casehistory.DefaultSummaryEntries, "list entries to show before truncating")

	_ = summaryCmd.MarkFlagRequired("file")
}

func runSummary(cmd *cobra.Command, args []string) error {
	initLogger()

	path, _ := cmd.Flags().GetString("file")
	labelsPath, _ := cmd.Flags().GetString("labels")
	maxEntries, _ := cmd.Flags().GetInt("max-entries")

	parser, err := loadParser(labelsPath)
	if err != nil {
		return err
	}

	html, err := readInput(path)
	if err != nil {
		return err
	}

	record, err := parser.Parse(html)
	if err != nil {
		return classifyParseError(path, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), casehistory.Summarize(record, maxEntries))
	return nil
}
