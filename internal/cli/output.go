package cli

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeReport saves the rendered report, creating parent directories as
// needed.
func writeReport(path, body string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
