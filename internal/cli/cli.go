package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ntxvolley/club-report/internal/config"
	"github.com/ntxvolley/club-report/internal/logger"
	"github.com/ntxvolley/club-report/internal/normalize"
	"github.com/ntxvolley/club-report/internal/report"
	"github.com/ntxvolley/club-report/internal/result"
	"github.com/ntxvolley/club-report/internal/scraper"
	"github.com/ntxvolley/club-report/internal/stats"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagData         string
	flagFetch        bool
	flagURLs         []string
	flagCookie       string
	flagWeekendStart string
	flagWeekendEnd   string
	flagSeasonStart  string
	flagOutput       string
	flagVerbose      bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "club-report",
		Short: "Generate weekend and season volleyball club reports",
		Long: `Generate a Markdown report of North Texas volleyball club performance.
Aggregates per-club tournament results from a CSV file or scraped result
pages into a weekend snapshot and season-to-date rankings.`,
		RunE: runReport,
	}

	cmd.Flags().StringVar(&flagData, "data", "data/tournaments.csv", "Path to tournament results CSV")
	cmd.Flags().BoolVar(&flagFetch, "fetch", false, "Fetch results from the configured result pages instead of --data")
	cmd.Flags().StringSliceVar(&flagURLs, "url", nil, "Result page URL to fetch (repeatable; implies --fetch)")
	cmd.Flags().StringVar(&flagCookie, "cookie", "", "Cookie header for fetched pages")
	cmd.Flags().StringVar(&flagWeekendStart, "weekend-start", "", "Weekend start date (YYYY-MM-DD); defaults to the latest weekend in the data")
	cmd.Flags().StringVar(&flagWeekendEnd, "weekend-end", "", "Weekend end date (YYYY-MM-DD); defaults to weekend start + 1 day")
	cmd.Flags().StringVar(&flagSeasonStart, "season-start", "", "First date included in season rankings (YYYY-MM-DD); defaults to all data")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Optional path to save the Markdown report")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runReport is the main command logic
func runReport(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	weekendStart, err := parseDateFlag("weekend-start", flagWeekendStart)
	if err != nil {
		return err
	}
	weekendEnd, err := parseDateFlag("weekend-end", flagWeekendEnd)
	if err != nil {
		return err
	}
	seasonStart, err := parseDateFlag("season-start", flagSeasonStart)
	if err != nil {
		return err
	}

	outcome, source, err := loadResults()
	if err != nil {
		return err
	}

	if outcome.Skipped > 0 {
		logger.Warn("Skipped rows missing date or club", logger.Fields{
			"source":  source,
			"skipped": outcome.Skipped,
		})
	}
	if len(outcome.Results) == 0 {
		return fmt.Errorf("%s: %w", source, normalize.ErrNoUsableData)
	}

	weekendWindow, err := result.ResolveWeekend(weekendStart, weekendEnd, outcome.Results)
	if err != nil {
		return fmt.Errorf("resolving weekend window: %w", err)
	}
	seasonWindow := result.Window{Start: seasonStart}

	weekendRanking := stats.Rank(stats.Summarize(outcome.Results, weekendWindow))
	seasonRanking := stats.Rank(stats.Summarize(outcome.Results, seasonWindow))

	body := report.Render(weekendRanking, seasonRanking, weekendWindow, seasonWindow)

	fmt.Fprintln(cmd.OutOrStdout(), body)

	if flagOutput != "" {
		if err := writeReport(flagOutput, body); err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nReport saved to %s\n", flagOutput)
	}

	logger.Debug("Run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})

	return nil
}

// loadResults reads the input source selected by flags: a CSV file by
// default, or the configured result pages when fetching.
func loadResults() (*normalize.Outcome, string, error) {
	if flagFetch || len(flagURLs) > 0 {
		cfg, err := config.LoadScrape()
		if err != nil {
			return nil, "", fmt.Errorf("loading scrape config: %w", err)
		}
		if flagCookie != "" {
			cfg.Cookie = flagCookie
		}

		urls := flagURLs
		if len(urls) == 0 {
			urls = cfg.URLs()
		}

		outcome, err := scraper.New(cfg).FetchResults(urls)
		if err != nil {
			return nil, "", err
		}
		return outcome, "fetched pages", nil
	}

	f, err := os.Open(flagData)
	if err != nil {
		return nil, "", fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	outcome, err := normalize.ReadCSV(f)
	if err != nil {
		return nil, "", fmt.Errorf("loading %s: %w", flagData, err)
	}
	return outcome, flagData, nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q for --%s (use YYYY-MM-DD)", value, name)
	}
	return &t, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
