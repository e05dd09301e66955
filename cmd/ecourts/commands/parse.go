package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/courtline/ecourts/internal/logger"
	"github.com/courtline/ecourts/internal/output"
	"github.com/courtline/ecourts/pkg/casehistory"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a saved case-history page to a structured record",
	Long: `Parse one saved case-history HTML page and emit the structured
record as JSON, JSONL, or YAML.

Disguised server errors, empty results, and unparsable markup are
reported as classified errors rather than empty records, so downstream
tooling can tell "no FIR" from "parse failed".

Examples:
  ecourts parse -f case_history.html
  ecourts parse -f case_history.html -o record.yaml --format yaml
  ecourts parse -f page1.html -f page2.html --format jsonl`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	flags := parseCmd.Flags()
	flags.StringSliceP("file", "f", nil, "HTML file(s) to parse (can be repeated, - for stdin)")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "json", "output format: json, jsonl, yaml")
	flags.String("labels", "", "YAML file overriding field label synonyms")
	flags.Bool("pretty", true, "pretty-print JSON output")

	_ = parseCmd.MarkFlagRequired("file")
}

func runParse(cmd *cobra.Command, args []string) error {
	initLogger()

	files, _ := cmd.Flags().GetStringSlice("file")
	formatStr, _ := cmd.Flags().GetString("format")
	labelsPath, _ := cmd.Flags().GetString("labels")
	outPath, _ := cmd.Flags().GetString("output")
	pretty, _ := cmd.Flags().GetBool("pretty")

	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	parser, err := loadParser(labelsPath)
	if err != nil {
		return err
	}

	dest := cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		dest = f
	}

	writer, err := output.NewWriter(dest, format, output.WithPretty(pretty))
	if err != nil {
		return err
	}

	for _, path := range files {
		html, err := readInput(path)
		if err != nil {
			return err
		}

		record, err := parser.Parse(html)
		if err != nil {
			return classifyParseError(path, err)
		}

		logger.Debug("parsed", "file", path,
			"hearings", len(record.Hearings), "orders", len(record.Orders))
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Flush()
}

// readInput reads an HTML document from a file, or stdin for "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// classifyParseError maps the parser's error taxonomy to actionable CLI
// messages.
func classifyParseError(path string, err error) error {
	switch {
	case errors.Is(err, casehistory.ErrServerSQL):
		return fmt.Errorf("%s: the server returned an error page, re-fetch the document: %w", path, err)
	case errors.Is(err, casehistory.ErrEmptyResult):
		return fmt.Errorf("%s: the portal reports no matching record: %w", path, err)
	case errors.Is(err, casehistory.ErrMalformedMarkup):
		return fmt.Errorf("%s: not a case-history page: %w", path, err)
	default:
		var incomplete *casehistory.IncompleteRecordError
		if errors.As(err, &incomplete) {
			return fmt.Errorf("%s: page parsed but is missing %v", path, incomplete.Missing)
		}
		return fmt.Errorf("%s: %w", path, err)
	}
}
