// Package cli implements the command-line interface for club-report.
//
// The cli package provides the Cobra-based CLI that resolves flags into
// report parameters (input source, weekend and season windows, output
// destination), coordinates the normalize, scraper, stats, and report
// packages, and writes the generated Markdown to stdout and optionally
// to a file.
package cli
