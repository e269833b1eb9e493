package stats

import (
	"testing"
	"time"

	"github.com/ntxvolley/club-report/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, text string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", text)
	require.NoError(t, err)
	return parsed
}

func dayPtr(t *testing.T, text string) *time.Time {
	t.Helper()
	d := day(t, text)
	return &d
}

func intPtr(n int) *int {
	return &n
}

func TestSummarizeGroupsByClub(t *testing.T) {
	results := []*result.Result{
		result.New(day(t, "2024-03-09"), "DFW Elite", "Spring Classic", intPtr(1), 5, 0),
		result.New(day(t, "2024-03-10"), "DFW Elite", "Spring Classic", nil, 2, 1),
		result.New(day(t, "2024-03-09"), "Lone Star Juniors", "Spring Classic", intPtr(3), 3, 2),
	}

	clubs := Summarize(results, result.Window{})
	require.Len(t, clubs, 2)

	dfw := clubs["DFW Elite"]
	require.NotNil(t, dfw)
	assert.Equal(t, 7, dfw.Wins)
	assert.Equal(t, 1, dfw.Losses)
	assert.InDelta(t, 0.875, dfw.WinPct(), 1e-9)
	assert.Equal(t, []int{1}, dfw.Finishes)

	lonestar := clubs["Lone Star Juniors"]
	require.NotNil(t, lonestar)
	assert.InDelta(t, 0.6, lonestar.WinPct(), 1e-9)
}

func TestSummarizeAppliesWindow(t *testing.T) {
	results := []*result.Result{
		result.New(day(t, "2024-02-24"), "DFW Elite", "February Frenzy", intPtr(5), 1, 3),
		result.New(day(t, "2024-03-09"), "DFW Elite", "Spring Classic", intPtr(1), 5, 0),
	}

	window := result.Window{Start: dayPtr(t, "2024-03-01")}
	clubs := Summarize(results, window)

	dfw := clubs["DFW Elite"]
	require.NotNil(t, dfw)
	assert.Equal(t, 5, dfw.Wins)
	assert.Equal(t, 0, dfw.Losses)
	assert.Equal(t, 1, dfw.TournamentCount())
}

func TestTournamentCountIsDistinct(t *testing.T) {
	// Two results under the same tournament name count once.
	results := []*result.Result{
		result.New(day(t, "2024-03-09"), "DFW Elite", "Spring Classic", nil, 2, 1),
		result.New(day(t, "2024-03-10"), "DFW Elite", "Spring Classic", nil, 3, 0),
		result.New(day(t, "2024-03-10"), "DFW Elite", "Crosstown Cup", nil, 1, 1),
	}

	clubs := Summarize(results, result.Window{})
	assert.Equal(t, 2, clubs["DFW Elite"].TournamentCount())
}

func TestWinPctNoGames(t *testing.T) {
	results := []*result.Result{
		result.New(day(t, "2024-03-09"), "DFW Elite", "Spring Classic", nil, 0, 0),
	}

	clubs := Summarize(results, result.Window{})
	assert.Equal(t, 0.0, clubs["DFW Elite"].WinPct())
}

func TestBestAndAvgFinish(t *testing.T) {
	results := []*result.Result{
		result.New(day(t, "2024-03-09"), "DFW Elite", "T1", intPtr(3), 1, 0),
		result.New(day(t, "2024-03-09"), "DFW Elite", "T2", intPtr(1), 1, 0),
		result.New(day(t, "2024-03-09"), "DFW Elite", "T3", nil, 1, 0),
		result.New(day(t, "2024-03-09"), "Lone Star Juniors", "T1", nil, 1, 0),
	}

	clubs := Summarize(results, result.Window{})

	dfw := clubs["DFW Elite"]
	require.NotNil(t, dfw.BestFinish())
	assert.Equal(t, 1, *dfw.BestFinish())
	require.NotNil(t, dfw.AvgFinish())
	assert.InDelta(t, 2.0, *dfw.AvgFinish(), 1e-9)

	// All finishes absent means absent aggregates, not zeros.
	lonestar := clubs["Lone Star Juniors"]
	assert.Nil(t, lonestar.BestFinish())
	assert.Nil(t, lonestar.AvgFinish())
}

func TestSummarizeConservesWinsAndLosses(t *testing.T) {
	results := []*result.Result{
		result.New(day(t, "2024-03-09"), "DFW Elite", "T1", intPtr(1), 5, 0),
		result.New(day(t, "2024-03-09"), "Lone Star Juniors", "T1", intPtr(3), 3, 2),
		result.New(day(t, "2024-03-10"), "Alamo City Attack", "T2", nil, 4, 1),
		result.New(day(t, "2024-03-10"), "DFW Elite", "T2", intPtr(2), 2, 2),
	}

	window := result.Window{}
	clubs := Summarize(results, window)

	var inputWins, inputLosses, clubWins, clubLosses int
	for _, r := range results {
		if window.Contains(r.Date) {
			inputWins += r.Wins
			inputLosses += r.Losses
		}
	}
	for _, s := range clubs {
		clubWins += s.Wins
		clubLosses += s.Losses
	}

	assert.Equal(t, inputWins, clubWins)
	assert.Equal(t, inputLosses, clubLosses)
}

func TestSummarizeOrderIndependent(t *testing.T) {
	a := result.New(day(t, "2024-03-09"), "DFW Elite", "T1", intPtr(1), 5, 0)
	b := result.New(day(t, "2024-03-10"), "DFW Elite", "T2", intPtr(2), 2, 2)
	c := result.New(day(t, "2024-03-09"), "Lone Star Juniors", "T1", intPtr(3), 3, 2)

	forward := Summarize([]*result.Result{a, b, c}, result.Window{})
	backward := Summarize([]*result.Result{c, b, a}, result.Window{})

	require.Len(t, backward, len(forward))
	for club, s := range forward {
		other := backward[club]
		require.NotNil(t, other)
		assert.Equal(t, s.Wins, other.Wins)
		assert.Equal(t, s.Losses, other.Losses)
		assert.Equal(t, s.TournamentCount(), other.TournamentCount())
	}
}
