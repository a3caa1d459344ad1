package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mbruckner/tourwatch/internal/tour"
)

var (
	addedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	removedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// WriteDelta writes a human-readable delta summary. With verbose set, each
// modified tour also lists its field-level changes.
func WriteDelta(w io.Writer, delta *tour.Delta, verbose bool) {
	if delta.Empty() {
		fmt.Fprintln(w, "No changes since last run.")
		return
	}

	summary := delta.Summary()
	fmt.Fprintf(w, "%s added, %s removed, %s modified\n",
		addedStyle.Render(fmt.Sprintf("%d", summary.Added)),
		removedStyle.Render(fmt.Sprintf("%d", summary.Removed)),
		modifiedStyle.Render(fmt.Sprintf("%d", summary.Modified)))

	if len(delta.Added) > 0 {
		fmt.Fprintf(w, "\n%s\n", addedStyle.Render("Added:"))
		for _, t := range delta.Added {
			writeTourLine(w, t)
		}
	}

	if len(delta.Removed) > 0 {
		fmt.Fprintf(w, "\n%s\n", removedStyle.Render("Removed:"))
		for _, t := range delta.Removed {
			writeTourLine(w, t)
		}
	}

	if len(delta.Modified) > 0 {
		fmt.Fprintf(w, "\n%s\n", modifiedStyle.Render("Modified:"))
		for _, m := range delta.Modified {
			writeTourLine(w, m.Current)
			if verbose {
				for _, field := range sortedFieldNames(m.ChangedFields) {
					change := m.ChangedFields[field]
					fmt.Fprintf(w, "      %s: %s → %s\n", field,
						dimStyle.Render(fmt.Sprintf("%q", derefOr(change.From, ""))),
						fmt.Sprintf("%q", derefOr(change.To, "")))
				}
			}
		}
	}
}

// WriteTours writes a plain tour listing, one tour per line.
func WriteTours(w io.Writer, tours []tour.Tour, verbose bool) {
	if len(tours) == 0 {
		fmt.Fprintln(w, "No tours found.")
		return
	}

	for _, t := range tours {
		writeTourLine(w, t)
		if verbose {
			if t.TourType != "" {
				fmt.Fprintf(w, "      Type: %s\n", t.TourType)
			}
			if t.LeaderFull != "" {
				fmt.Fprintf(w, "      Leader: %s\n", t.LeaderFull)
			}
			if t.RegistrationText != "" {
				fmt.Fprintf(w, "      Registration: %s\n", t.RegistrationText)
			}
			if t.URL != "" {
				fmt.Fprintf(w, "      %s\n", dimStyle.Render(t.URL))
			}
		}
	}
	fmt.Fprintf(w, "\nTotal: %d tours\n", len(tours))
}

func writeTourLine(w io.Writer, t tour.Tour) {
	fmt.Fprintf(w, "  %s %s %s\n", dimStyle.Render(t.ID), t.DateRange(), t.Title)
}
