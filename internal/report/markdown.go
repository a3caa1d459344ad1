package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mbruckner/tourwatch/internal/tour"
)

// AppendChangeLog appends one run's delta section to the per-day markdown
// change log (CHANGES-YYYY-MM-DD.md under dir), creating the directory and
// file as needed. Returns the path written to.
func AppendChangeLog(dir string, delta *tour.Delta, runAt time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating changelog directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("CHANGES-%s.md", runAt.Format("2006-01-02")))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("opening changelog: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(FormatChangeLogEntry(delta, runAt)); err != nil {
		return "", fmt.Errorf("writing changelog: %w", err)
	}

	return path, nil
}

// FormatChangeLogEntry renders one run's delta as a markdown section.
func FormatChangeLogEntry(delta *tour.Delta, runAt time.Time) string {
	var b strings.Builder
	summary := delta.Summary()

	fmt.Fprintf(&b, "\n## %s\n", runAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Added: %d, Removed: %d, Modified: %d\n\n", summary.Added, summary.Removed, summary.Modified)

	if len(delta.Added) > 0 {
		b.WriteString("### Added\n")
		for _, t := range delta.Added {
			fmt.Fprintf(&b, "- %s · %s · %s\n", t.ID, t.DateRange(), t.Title)
		}
	}

	if len(delta.Removed) > 0 {
		b.WriteString("\n### Removed\n")
		for _, t := range delta.Removed {
			fmt.Fprintf(&b, "- %s · %s · %s\n", t.ID, t.DateRange(), t.Title)
		}
	}

	if len(delta.Modified) > 0 {
		b.WriteString("\n### Modified\n")
		for _, m := range delta.Modified {
			fmt.Fprintf(&b, "- %s · %s · %s\n", m.ID, m.Current.DateRange(), m.Current.Title)
			for _, field := range sortedFieldNames(m.ChangedFields) {
				change := m.ChangedFields[field]
				fmt.Fprintf(&b, "  - %s: '%s' → '%s'\n", field, derefOr(change.From, ""), derefOr(change.To, ""))
			}
		}
	}

	b.WriteString("\n---\n")
	return b.String()
}

// sortedFieldNames returns the changed field names in stable order.
func sortedFieldNames(changes map[string]tour.FieldChange) []string {
	names := make([]string, 0, len(changes))
	for name := range changes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
