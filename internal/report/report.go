package report

import (
	"fmt"
	"strings"

	"github.com/ntxvolley/club-report/internal/result"
	"github.com/ntxvolley/club-report/internal/stats"
)

// Title is the first line of every generated report.
const Title = "# North Texas Club Performance Report"

// missingFinish is rendered for best/average finish when a club has no
// recorded placements. Never a numeric zero.
const missingFinish = "—"

var tableHeaders = []string{"Rank", "Club", "Tournaments", "Wins", "Losses", "Win %", "Best Finish", "Avg Finish"}

// Render produces the full Markdown report from the ranked weekend and
// season aggregations and their resolved windows.
func Render(weekend, season []stats.Ranked, weekendWindow, seasonWindow result.Window) string {
	seasonDesc := "full dataset"
	if seasonWindow.Start != nil {
		seasonDesc = seasonWindow.Start.Format("2006-01-02")
	}

	lines := []string{
		Title,
		"",
		fmt.Sprintf("Weekend window: %s", weekendWindow),
		fmt.Sprintf("Season start: %s", seasonDesc),
		"",
		"## Weekend Snapshot",
		"Performance of all clubs that played during the selected weekend.",
		renderTable(weekend),
		"",
		"## Season-to-Date Rankings",
		"Ranking is by win percentage, then total wins, with average finish used as a tiebreaker.",
		renderTable(season),
	}
	return strings.Join(lines, "\n")
}

// renderTable formats one ranking as a Markdown table with the fixed
// column layout. Win percentage uses 3 decimal places, average finish 2.
func renderTable(entries []stats.Ranked) string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		s := entry.Stats

		best := missingFinish
		if b := s.BestFinish(); b != nil {
			best = fmt.Sprintf("%d", *b)
		}
		avg := missingFinish
		if a := s.AvgFinish(); a != nil {
			avg = fmt.Sprintf("%.2f", *a)
		}

		rows = append(rows, []string{
			fmt.Sprintf("#%d", entry.Rank),
			s.Club,
			fmt.Sprintf("%d", s.TournamentCount()),
			fmt.Sprintf("%d", s.Wins),
			fmt.Sprintf("%d", s.Losses),
			fmt.Sprintf("%.3f", s.WinPct()),
			best,
			avg,
		})
	}

	return markdownTable(tableHeaders, rows)
}

// markdownTable builds a pipe-delimited Markdown table.
func markdownTable(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")

	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = "---"
	}
	b.WriteString("| " + strings.Join(separators, " | ") + " |")

	for _, row := range rows {
		b.WriteString("\n| " + strings.Join(row, " | ") + " |")
	}

	return b.String()
}
