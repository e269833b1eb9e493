package normalize

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ntxvolley/club-report/internal/logger"
	"github.com/ntxvolley/club-report/internal/result"
)

// ErrNoUsableData indicates that no valid result rows survived
// normalization across all input sources.
var ErrNoUsableData = errors.New("no usable tournament results in input")

// Table is one raw tabular source: a header row plus data rows. Rows may
// be ragged; cells beyond the header width are ignored.
type Table struct {
	Header []string
	Rows   [][]string
}

// Outcome is the result of normalizing one or more tables. Results keeps
// input row order; Skipped counts rows dropped for missing a date or club.
type Outcome struct {
	Results []*result.Result
	Skipped int
}

// Merge appends another outcome, preserving order.
func (o *Outcome) Merge(other *Outcome) {
	o.Results = append(o.Results, other.Results...)
	o.Skipped += other.Skipped
}

// Normalize converts a raw table into validated results.
//
// Rows missing a date or club are skipped and counted, never fatal.
// A missing or unparseable finish means "finish unknown" (nil, not zero).
// Wins and losses default to 0 when missing or unparseable; a combined
// record column ("5-2") is split into wins and losses, with malformed
// values defaulting to 0-0.
func Normalize(t Table) *Outcome {
	columns := columnIndex(t.Header)
	out := &Outcome{}

	for i, row := range t.Rows {
		cell := func(field string) string {
			idx, ok := columns[field]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		club := cell(FieldClub)
		date := result.ParseDate(cell(FieldDate))
		if club == "" || date.IsZero() {
			out.Skipped++
			logger.IncrCounter("rows.skipped")
			logger.Debug("Skipping row without date or club", logger.Fields{
				"row":  i + 1,
				"club": club,
				"date": cell(FieldDate),
			})
			continue
		}

		wins, losses := parseGames(cell(FieldWins), cell(FieldLosses), cell(FieldRecord))
		finish := parseFinish(cell(FieldFinish))

		out.Results = append(out.Results, result.New(date, club, cell(FieldTournament), finish, wins, losses))
	}

	return out
}

// parseFinish parses a tournament placement. Empty, non-numeric, or
// non-positive values mean the finish is unknown.
func parseFinish(text string) *int {
	n, err := strconv.Atoi(text)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

// parseGames resolves wins and losses from dedicated columns when
// present, falling back to a combined "W-L" record column.
func parseGames(winsText, lossesText, recordText string) (int, int) {
	if winsText != "" || lossesText != "" {
		return parseCount(winsText), parseCount(lossesText)
	}
	if recordText != "" {
		return ParseRecord(recordText)
	}
	return 0, 0
}

// parseCount parses a non-negative game count, defaulting to 0.
func parseCount(text string) int {
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseRecord splits a combined "W-L" record such as "5-2" into wins and
// losses. Malformed records default to 0-0.
func ParseRecord(text string) (int, int) {
	parts := strings.SplitN(strings.TrimSpace(text), "-", 2)
	if len(parts) != 2 {
		return 0, 0
	}

	wins, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || wins < 0 {
		return 0, 0
	}
	losses, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || losses < 0 {
		return 0, 0
	}

	return wins, losses
}
