// Package config holds scraping defaults for the club report generator.
//
// The default page pair (current and past tournament results) is a named
// configuration value, not mutable global state: callers load a Scrape
// config, optionally overridden through CLUBREPORT_* environment
// variables, and inject it into the scraper.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Defaults for the scrape configuration.
const (
	DefaultCurrentResultsURL = "https://www.ntxvolleyball.org/tournament-results/"
	DefaultPastResultsURL    = "https://www.ntxvolleyball.org/tournament-results/past/"
	DefaultUserAgent         = "club-report/1.0 (github.com/ntxvolley/club-report)"
	DefaultTimeout           = 30 * time.Second
)

// Scrape configures remote fetching of tournament result pages.
type Scrape struct {
	CurrentURL string        `envconfig:"CURRENT_URL"`
	PastURL    string        `envconfig:"PAST_URL"`
	Cookie     string        `envconfig:"COOKIE"`
	UserAgent  string        `envconfig:"USER_AGENT"`
	Timeout    time.Duration `envconfig:"TIMEOUT"`
}

// DefaultScrape returns the built-in scrape configuration.
func DefaultScrape() Scrape {
	return Scrape{
		CurrentURL: DefaultCurrentResultsURL,
		PastURL:    DefaultPastResultsURL,
		UserAgent:  DefaultUserAgent,
		Timeout:    DefaultTimeout,
	}
}

// LoadScrape returns the default scrape configuration with any
// CLUBREPORT_* environment overrides applied (e.g. CLUBREPORT_COOKIE,
// CLUBREPORT_CURRENT_URL).
func LoadScrape() (Scrape, error) {
	cfg := DefaultScrape()
	if err := envconfig.Process("clubreport", &cfg); err != nil {
		return Scrape{}, err
	}
	return cfg, nil
}

// URLs returns the configured page pair in fetch order.
func (s Scrape) URLs() []string {
	return []string{s.CurrentURL, s.PastURL}
}
