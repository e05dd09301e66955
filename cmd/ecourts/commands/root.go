// Package commands implements the CLI commands for ecourts.
package commands

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/courtline/ecourts/internal/logger"
	"github.com/courtline/ecourts/pkg/casehistory"
)

var rootCmd = &cobra.Command{
	Use:   "ecourts",
	Short: "Extract structured case records from eCourts case-history pages",
	Long: `ecourts parses saved eCourts High Court Services case-history HTML
into structured, validated case records.

The parser takes one saved HTML page and produces a record with case
identifiers, status, parties, acts, FIR details, and the hearing, order,
and objection histories. Server error pages disguised as results are
detected and classified instead of being parsed as case data.

Examples:
  # Parse a saved page to JSON
  ecourts parse -f case_history.html

  # Parse to YAML with custom field labels
  ecourts parse -f case_history.html --format yaml --labels labels.yaml

  # Print a human-readable summary
  ecourts summary -f case_history.html

  # Download a page for later parsing
  ecourts fetch -u "https://hcservices.ecourts.gov.in/..." -o case_history.html`,
	Version: version(),
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.ecourts.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".ecourts")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ECOURTS")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// initLogger configures logging from the global flags; called by every
// subcommand before doing work.
func initLogger() {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})
}

// loadParser builds a parser, applying a label override file when the
// --labels flag is set.
func loadParser(labelsPath string) (*casehistory.Parser, error) {
	if labelsPath == "" {
		return casehistory.New(), nil
	}
	labels, err := casehistory.LoadLabels(labelsPath)
	if err != nil {
		return nil, fmt.Errorf("loading label table: %w", err)
	}
	logger.Debug("label table loaded", "path", labelsPath, "fields", len(labels))
	return casehistory.New(casehistory.WithLabels(labels)), nil
}
