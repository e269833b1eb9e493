package stats

import "sort"

// Ranked pairs a club's statistics with its 1-based rank.
type Ranked struct {
	Rank  int
	Stats *ClubStats
}

// Rank orders club statistics into a ranking. Ranks are dense and
// sequential, assigned after the full ordering is fixed; even clubs tied
// on every key receive distinct ranks via the club-name tiebreak.
func Rank(clubs map[string]*ClubStats) []Ranked {
	entries := make([]*ClubStats, 0, len(clubs))
	for _, s := range clubs {
		entries = append(entries, s)
	}

	sort.Slice(entries, func(i, j int) bool {
		return rankedBefore(entries[i], entries[j])
	})

	ranked := make([]Ranked, len(entries))
	for i, s := range entries {
		ranked[i] = Ranked{Rank: i + 1, Stats: s}
	}
	return ranked
}

// rankedBefore reports whether club a ranks ahead of club b.
// Keys, in order: win percentage (desc), total wins (desc), average
// finish (asc, clubs without finish data after clubs with), club name (asc).
func rankedBefore(a, b *ClubStats) bool {
	if a.WinPct() != b.WinPct() {
		return a.WinPct() > b.WinPct()
	}
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}

	avgA, avgB := a.AvgFinish(), b.AvgFinish()
	switch {
	case avgA != nil && avgB != nil:
		if *avgA != *avgB {
			return *avgA < *avgB
		}
	case avgA != nil:
		return true
	case avgB != nil:
		return false
	}

	return a.Club < b.Club
}
