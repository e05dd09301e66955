package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/courtline/ecourts/internal/fetch"
	"github.com/courtline/ecourts/internal/logger"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a case-history page for later parsing",
	Long: `Fetch one URL and save the raw response body. This is a plain GET:
the portal's session, captcha, and search flow are not handled here, so
the URL must already resolve to a case-history response.

Examples:
  ecourts fetch -u "https://hcservices.ecourts.gov.in/..." -o case_history.html`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	flags := fetchCmd.Flags()
	flags.StringP("url", "u", "", "URL to fetch")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.Duration("timeout", 30*time.Second, "request timeout")
	flags.String("user-agent", "", "override the User-Agent header")

	_ = fetchCmd.MarkFlagRequired("url")
	_ = viper.BindPFlag("user_agent", flags.Lookup("user-agent"))
}

func runFetch(cmd *cobra.Command, args []string) error {
	initLogger()

	targetURL, _ := cmd.Flags().GetString("url")
	outPath, _ := cmd.Flags().GetString("output")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := fetch.DefaultOptions()
	opts.Timeout = timeout
	if ua := viper.GetString("user_agent"); ua != "" {
		opts.UserAgent = ua
	}

	logger.Debug("fetching", "url", targetURL, "timeout", timeout)
	body, err := fetch.Page(ctx, targetURL, opts)
	if err != nil {
		return err
	}
	logger.Info("fetched", "url", targetURL, "bytes", len(body))

	if outPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), body)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(body), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
