package normalize

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV reads CSV input with a header row and normalizes it into
// results. The header is matched against the same alias table as scraped
// HTML tables, so `date,club,tournament,finish,wins,losses` and looser
// spellings both work.
func ReadCSV(r io.Reader) (*Outcome, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading csv: %w", ErrNoUsableData)
	}

	return Normalize(Table{Header: rows[0], Rows: rows[1:]}), nil
}
