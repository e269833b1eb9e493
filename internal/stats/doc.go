// Package stats aggregates tournament results into per-club statistics
// and produces deterministic rankings.
//
// Aggregation is order-independent: results inside a date window are
// grouped by club, wins and losses are summed, tournaments are counted by
// distinct name, and known finishes are collected for best/average finish.
// Ranking sorts by win percentage, then total wins, then average finish
// (clubs without finish data sort last), then club name, so ties can never
// produce nondeterministic output.
package stats
