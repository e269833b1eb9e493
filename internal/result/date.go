package result

import "time"

// dateFormats lists the accepted input date layouts, tried in order.
// CSV input uses ISO 8601; scraped pages occasionally use US-style
// slash dates or spelled-out month names.
var dateFormats = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// ParseDate attempts to parse a date string into a UTC calendar date.
// Returns time.Time{} (zero value) if parsing fails.
func ParseDate(text string) time.Time {
	if text == "" {
		return time.Time{}
	}

	for _, format := range dateFormats {
		t, err := time.Parse(format, text)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}

	return time.Time{}
}
