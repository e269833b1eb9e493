package stats

import (
	"github.com/ntxvolley/club-report/internal/result"
)

// ClubStats accumulates one club's results within a report window.
type ClubStats struct {
	Club     string
	Wins     int
	Losses   int
	Finishes []int

	tournaments map[string]struct{}
}

func newClubStats(club string) *ClubStats {
	return &ClubStats{
		Club:        club,
		tournaments: make(map[string]struct{}),
	}
}

func (s *ClubStats) add(r *result.Result) {
	s.Wins += r.Wins
	s.Losses += r.Losses
	s.tournaments[r.Tournament] = struct{}{}
	if r.Finish != nil {
		s.Finishes = append(s.Finishes, *r.Finish)
	}
}

// TournamentCount returns the number of distinct tournament names the
// club played in. A club appearing twice under the same tournament name
// counts once.
func (s *ClubStats) TournamentCount() int {
	return len(s.tournaments)
}

// WinPct returns wins divided by games played, or 0 for a club with no
// recorded games.
func (s *ClubStats) WinPct() float64 {
	games := s.Wins + s.Losses
	if games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(games)
}

// BestFinish returns the club's best (lowest) known placement, or nil if
// no finishes were recorded.
func (s *ClubStats) BestFinish() *int {
	if len(s.Finishes) == 0 {
		return nil
	}
	best := s.Finishes[0]
	for _, f := range s.Finishes[1:] {
		if f < best {
			best = f
		}
	}
	return &best
}

// AvgFinish returns the mean of the club's known placements, or nil if
// no finishes were recorded.
func (s *ClubStats) AvgFinish() *float64 {
	if len(s.Finishes) == 0 {
		return nil
	}
	total := 0
	for _, f := range s.Finishes {
		total += f
	}
	avg := float64(total) / float64(len(s.Finishes))
	return &avg
}

// Summarize groups results whose dates fall inside the window and
// accumulates per-club statistics. Grouping is order-independent.
func Summarize(results []*result.Result, window result.Window) map[string]*ClubStats {
	clubs := make(map[string]*ClubStats)

	for _, r := range results {
		if !window.Contains(r.Date) {
			continue
		}
		s, ok := clubs[r.Club]
		if !ok {
			s = newClubStats(r.Club)
			clubs[r.Club] = s
		}
		s.add(r)
	}

	return clubs
}
