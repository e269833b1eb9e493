// Package report renders ranked club statistics as a Markdown document
// with a Weekend Snapshot table and a Season-to-Date Rankings table.
package report
