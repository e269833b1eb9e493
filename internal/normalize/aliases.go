package normalize

import "strings"

// Canonical field names recognized in input headers.
const (
	FieldDate       = "date"
	FieldClub       = "club"
	FieldTournament = "tournament"
	FieldFinish     = "finish"
	FieldWins       = "wins"
	FieldLosses     = "losses"
	FieldRecord     = "record"
)

// fieldAlias maps a canonical field to the header spellings that
// identify it.
type fieldAlias struct {
	canonical string
	names     []string
}

// aliasTable is the explicit, ordered list of accepted header aliases.
// Matching walks the table in order, so earlier fields claim contested
// headers deterministically.
var aliasTable = []fieldAlias{
	{FieldDate, []string{"date", "day", "played"}},
	{FieldClub, []string{"club", "team", "club name", "team name"}},
	{FieldTournament, []string{"tournament", "event", "tourney", "competition"}},
	{FieldFinish, []string{"finish", "rank", "place", "placement", "result"}},
	{FieldWins, []string{"wins", "w"}},
	{FieldLosses, []string{"losses", "l"}},
	{FieldRecord, []string{"record", "w-l", "win-loss", "win/loss"}},
}

// CanonicalField resolves a raw header cell to its canonical field name.
// Matching is case-insensitive; an exact match is tried first, then a
// normalized match with surrounding punctuation and extra whitespace
// stripped. Returns false for unrecognized headers.
func CanonicalField(header string) (string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(header))
	for _, fa := range aliasTable {
		for _, name := range fa.names {
			if lowered == name {
				return fa.canonical, true
			}
		}
	}

	normalized := normalizeHeader(header)
	for _, fa := range aliasTable {
		for _, name := range fa.names {
			if normalized == normalizeHeader(name) {
				return fa.canonical, true
			}
		}
	}

	return "", false
}

// normalizeHeader lowercases a header and reduces it to space-separated
// alphanumeric words, so "Club Name:" and "club_name" both match the
// "club name" alias.
func normalizeHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// columnIndex maps canonical fields to column positions for one table.
// The first header matching a field claims it; later duplicates are
// ignored.
func columnIndex(header []string) map[string]int {
	columns := make(map[string]int)
	for i, cell := range header {
		field, ok := CanonicalField(cell)
		if !ok {
			continue
		}
		if _, claimed := columns[field]; !claimed {
			columns[field] = i
		}
	}
	return columns
}
