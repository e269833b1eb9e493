package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/ntxvolley/club-report/internal/config"
	"github.com/ntxvolley/club-report/internal/logger"
	"github.com/ntxvolley/club-report/internal/normalize"
)

// maxFetchRetries bounds retry attempts per URL for transient failures.
const maxFetchRetries = 3

// Scraper fetches tournament result pages and normalizes their tables.
type Scraper struct {
	client *http.Client
	cfg    config.Scrape
}

// New creates a Scraper using the given scrape configuration.
func New(cfg config.Scrape) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg: cfg,
	}
}

// FetchResults fetches each URL sequentially and merges the normalized
// results. Any per-URL failure aborts the run with an error naming the
// URL.
func (s *Scraper) FetchResults(urls []string) (*normalize.Outcome, error) {
	combined := &normalize.Outcome{}

	for _, url := range urls {
		outcome, err := s.fetchOne(url)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", url, err)
		}
		combined.Merge(outcome)
	}

	return combined, nil
}

// fetchOne fetches and parses a single page, retrying transient network
// errors and 5xx responses with exponential backoff.
func (s *Scraper) fetchOne(url string) (*normalize.Outcome, error) {
	var outcome *normalize.Outcome

	start := time.Now()
	operation := func() error {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", s.cfg.UserAgent)
		if s.cfg.Cookie != "" {
			req.Header.Set("Cookie", s.cfg.Cookie)
		}

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= http.StatusInternalServerError {
				return err
			}
			return backoff.Permanent(err)
		}

		outcome, err = parseTables(resp.Body)
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxFetchRetries)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	logger.RecordTiming("scraper.fetch", time.Since(start))
	logger.Info("Fetched result page", logger.Fields{
		"url":     url,
		"results": len(outcome.Results),
		"skipped": outcome.Skipped,
	})

	return outcome, nil
}

// parseTables extracts every <table> from an HTML document and
// normalizes each one independently. The first row of a table is its
// header; tables whose headers match no known aliases contribute nothing
// but skipped-row counts.
func parseTables(r io.Reader) (*normalize.Outcome, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tables := doc.Find("table")
	if tables.Length() == 0 {
		return nil, fmt.Errorf("no tables found in document")
	}

	combined := &normalize.Outcome{}
	tables.Each(func(i int, table *goquery.Selection) {
		t := extractTable(table)
		if len(t.Header) == 0 {
			return
		}
		combined.Merge(normalize.Normalize(t))
	})

	return combined, nil
}

// extractTable converts one <table> selection into a raw header/rows
// table. Header cells may be <th> or <td>.
func extractTable(table *goquery.Selection) normalize.Table {
	t := normalize.Table{}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		cells := make([]string, 0)
		row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}

		if t.Header == nil {
			t.Header = cells
			return
		}
		t.Rows = append(t.Rows, cells)
	})

	return t
}
