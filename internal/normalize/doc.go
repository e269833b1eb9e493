// Package normalize converts raw tabular input into validated tournament results.
//
// The normalize package handles both CSV files and rows extracted from scraped
// HTML tables. Column headers are matched against an explicit, ordered alias
// table (e.g. "team" for club, "rank" for finish, or a combined "record" column
// holding "W-L"), so column detection stays deterministic and testable. Rows
// missing a date or club are skipped and counted rather than failing the run.
package normalize
