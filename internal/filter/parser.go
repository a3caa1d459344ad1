package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mbruckner/tourwatch/internal/tour"
)

// ParseDateRange parses a --from/--to style date range in the listing's
// date format.
//
// Supported formats:
//   - "01.03.26-15.03.26" - explicit range
//   - "01.03.26"          - single day (from == to)
//
// Returns (dateFrom, dateTo, error). The end of the range is inclusive.
func ParseDateRange(input string) (*time.Time, *time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, fmt.Errorf("date range cannot be empty")
	}

	parts := strings.SplitN(input, "-", 2)

	from := tour.ParseDate(strings.TrimSpace(parts[0]))
	if from.IsZero() {
		return nil, nil, fmt.Errorf("invalid date %q, expected DD.MM.YY", strings.TrimSpace(parts[0]))
	}

	to := from
	if len(parts) == 2 {
		to = tour.ParseDate(strings.TrimSpace(parts[1]))
		if to.IsZero() {
			return nil, nil, fmt.Errorf("invalid date %q, expected DD.MM.YY", strings.TrimSpace(parts[1]))
		}
	}

	if from.After(to) {
		return nil, nil, fmt.Errorf("start date must be before end date")
	}

	return &from, &to, nil
}

// ParseTerms splits a comma-separated flag value into trimmed terms.
func ParseTerms(input string) []string {
	terms := make([]string, 0)
	for _, term := range strings.Split(input, ",") {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}
