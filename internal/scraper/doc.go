// Package scraper provides HTTP fetching and HTML table extraction for
// remote tournament result pages.
//
// The scraper fetches each configured page sequentially, retrying
// transient network failures with exponential backoff, and extracts every
// <table> element. Table headers are matched through the normalize
// package's alias table, so loosely structured result tables end up in
// the same canonical row schema as CSV input. A fetch failure is fatal
// for that source and always names the URL that failed.
package scraper
