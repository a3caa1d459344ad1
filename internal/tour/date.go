package tour

import "time"

// dateLayout matches the listing's date format, e.g. "04.02.26".
const dateLayout = "02.01.06"

// ParseDate parses a listing date (DD.MM.YY) into a time.Time.
// Returns the zero value if parsing fails.
func ParseDate(text string) time.Time {
	if text == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, text)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Begin returns the tour's begin date, or the zero value if unparseable.
func (t Tour) Begin() time.Time {
	return ParseDate(t.BeginDate)
}

// End returns the tour's end date, or the zero value if unparseable.
func (t Tour) End() time.Time {
	return ParseDate(t.EndDate)
}

// IsUpcoming reports whether the tour has not ended yet.
// Returns true if the end date cannot be parsed (safer default).
func (t Tour) IsUpcoming() bool {
	end := t.End()
	if end.IsZero() {
		return true // Can't determine, include it
	}
	return !end.Before(time.Now().Truncate(24 * time.Hour))
}
