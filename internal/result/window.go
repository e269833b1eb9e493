package result

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoWeekendData indicates that weekend auto-detection found no
// Saturday or Sunday dates anywhere in the dataset.
var ErrNoWeekendData = errors.New("no Saturday or Sunday results found in dataset")

// Window represents an inclusive date range. A nil bound is open:
// the season window typically has only Start set, and a fully open
// window matches every result.
type Window struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Contains checks whether a date falls within the window (inclusive on
// both bounds).
func (w Window) Contains(date time.Time) bool {
	if w.Start != nil && date.Before(*w.Start) {
		return false
	}
	if w.End != nil && date.After(*w.End) {
		return false
	}
	return true
}

// String returns a human-readable description of the window bounds.
func (w Window) String() string {
	switch {
	case w.Start != nil && w.End != nil:
		return fmt.Sprintf("%s to %s", w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
	case w.Start != nil:
		return fmt.Sprintf("%s onward", w.Start.Format("2006-01-02"))
	case w.End != nil:
		return fmt.Sprintf("through %s", w.End.Format("2006-01-02"))
	default:
		return "full dataset"
	}
}

// ResolveWeekend resolves the weekend window from explicit bounds or by
// auto-detection from the dataset.
//
// An explicit start without an end resolves to a two-day window. With
// neither bound set, the window is the most recent Saturday/Sunday pair
// that has at least one result recorded on either day; a dataset with
// no weekend dates at all is an error rather than an empty report.
func ResolveWeekend(start, end *time.Time, results []*Result) (Window, error) {
	if start != nil && end == nil {
		sunday := start.AddDate(0, 0, 1)
		end = &sunday
	}
	if start != nil {
		return Window{Start: start, End: end}, nil
	}

	return DetectWeekend(results)
}

// DetectWeekend finds the most recent weekend present in the dataset.
// Every Saturday result anchors its own weekend; a Sunday result
// anchors the weekend beginning the day before. The latest anchor wins.
func DetectWeekend(results []*Result) (Window, error) {
	var saturday time.Time
	found := false

	for _, r := range results {
		var anchor time.Time
		switch r.Date.Weekday() {
		case time.Saturday:
			anchor = r.Date
		case time.Sunday:
			anchor = r.Date.AddDate(0, 0, -1)
		default:
			continue
		}
		if !found || anchor.After(saturday) {
			saturday = anchor
			found = true
		}
	}

	if !found {
		return Window{}, ErrNoWeekendData
	}

	sunday := saturday.AddDate(0, 0, 1)
	return Window{Start: &saturday, End: &sunday}, nil
}
