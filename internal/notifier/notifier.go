package notifier

import (
	"fmt"
	"strings"

	"github.com/mbruckner/tourwatch/internal/tour"
)

// Notifier defines the interface for announcing newly listed tours.
type Notifier interface {
	// Notify posts one announcement per tour.
	Notify(added []tour.Tour) error
}

// formatMessage builds the announcement text for one tour.
func formatMessage(t tour.Tour) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Neue Tour: %s\n%s", t.DateRange(), t.Title)
	if t.TourType != "" {
		fmt.Fprintf(&b, "\n%s", t.TourType)
	}
	if t.RegistrationText != "" {
		fmt.Fprintf(&b, "\nAnmeldung: %s", t.RegistrationText)
	}
	if t.URL != "" {
		fmt.Fprintf(&b, "\n%s", t.URL)
	}
	return b.String()
}

// truncate shortens a message to max runes, keeping whole lines if possible.
func truncate(msg string, max int) string {
	runes := []rune(msg)
	if len(runes) <= max {
		return msg
	}
	cut := string(runes[:max-1])
	if i := strings.LastIndex(cut, "\n"); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
