// Package result provides the tournament result model for the club report generator.
//
// The result package handles result representation, date parsing, and the inclusive
// date windows (weekend and season) used to select results for aggregation. Weekend
// windows can be detected automatically from the dataset by locating the most recent
// Saturday/Sunday pair with recorded results.
package result
