package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/mbruckner/tourwatch/internal/tour"
)

// WriteICS writes the tours as an iCalendar file. Tours are all-day events
// spanning begin through end date; tours without a parseable begin date are
// skipped. Returns the number of events written.
func WriteICS(tours []tour.Tour, w io.Writer) (int, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		return 0, fmt.Errorf("could not load timezone: %w", err)
	}

	count := 0
	for _, t := range tours {
		begin := t.Begin()
		if begin.IsZero() {
			continue // Skip tours without a usable date
		}
		end := t.End()
		if end.IsZero() || end.Before(begin) {
			end = begin
		}

		start := time.Date(begin.Year(), begin.Month(), begin.Day(), 0, 0, 0, 0, loc)
		// iCalendar end dates are exclusive, so a one-day tour ends the next morning.
		finish := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)

		event := cal.AddEvent(fmt.Sprintf("%s@alpenverein-heidelberg.de", t.ID))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(start)
		event.SetEndAt(finish)
		event.SetSummary(t.Title)
		if t.Location != "" {
			event.SetLocation(t.Location)
		} else if t.MeetingPoint != "" {
			event.SetLocation(t.MeetingPoint)
		}
		event.SetDescription(icsDescription(t))

		count++
	}

	return count, cal.SerializeTo(w)
}

// icsDescription assembles the event description from the tour's details.
func icsDescription(t tour.Tour) string {
	lines := make([]string, 0, 4)
	if t.TourType != "" {
		lines = append(lines, fmt.Sprintf("Typ: %s", t.TourType))
	}
	if t.LeaderFull != "" {
		lines = append(lines, fmt.Sprintf("Leitung: %s", t.LeaderFull))
	}
	if t.Requirements != "" {
		lines = append(lines, fmt.Sprintf("Anforderungen: %s", t.Requirements))
	}
	if t.URL != "" {
		lines = append(lines, t.URL)
	}
	return strings.Join(lines, "\n")
}
