package result

import "time"

// Result represents one club's outcome in one tournament on one date.
// A Result is immutable once constructed; the pipeline only filters
// results into aggregates, it never mutates or deletes them.
type Result struct {
	Date       time.Time `json:"date"`
	Club       string    `json:"club"`
	Tournament string    `json:"tournament"`
	Finish     *int      `json:"finish,omitempty"`
	Wins       int       `json:"wins"`
	Losses     int       `json:"losses"`
}

// New creates a Result. Finish may be nil when the placement is unknown;
// an unknown finish is excluded from best/average finish calculations
// rather than treated as zero.
func New(date time.Time, club, tournament string, finish *int, wins, losses int) *Result {
	return &Result{
		Date:       date,
		Club:       club,
		Tournament: tournament,
		Finish:     finish,
		Wins:       wins,
		Losses:     losses,
	}
}

// GamesPlayed returns the total number of games recorded for this result.
func (r *Result) GamesPlayed() int {
	return r.Wins + r.Losses
}
