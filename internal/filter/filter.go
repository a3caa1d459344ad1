// Package filter provides tour filtering for the show and export commands.
//
// Filters narrow a tour list by:
//   - Date range (from/to, listing date format DD.MM.YY)
//   - Title terms (substring matching, case-insensitive)
//   - Tour types (substring matching, case-insensitive)
//   - Leaders (substring matching against the full leader line)
//   - Upcoming only (tours whose end date has not passed)
//
// An empty filter matches every tour.
package filter

import (
	"strings"
	"time"

	"github.com/mbruckner/tourwatch/internal/tour"
)

// Filter represents tour filtering criteria.
type Filter struct {
	// Date range filtering, inclusive on both ends.
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	// Title filtering (case-insensitive substring match).
	Titles []string `json:"titles,omitempty"`

	// Tour type filtering (case-insensitive substring match, e.g. "Skitour").
	Types []string `json:"types,omitempty"`

	// Leader filtering (case-insensitive substring match on the leader line).
	Leaders []string `json:"leaders,omitempty"`

	// UpcomingOnly drops tours whose end date has passed.
	UpcomingOnly bool `json:"upcoming_only,omitempty"`
}

// New creates an empty filter that matches all tours.
func New() *Filter {
	return &Filter{
		Titles:  []string{},
		Types:   []string{},
		Leaders: []string{},
	}
}

// IsEmpty checks if the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		len(f.Titles) == 0 &&
		len(f.Types) == 0 &&
		len(f.Leaders) == 0 &&
		!f.UpcomingOnly
}

// Matches checks if a tour passes all active criteria. Tours without a
// parseable begin date pass date-based criteria rather than disappearing.
func (f *Filter) Matches(t tour.Tour) bool {
	if f.IsEmpty() {
		return true
	}

	begin := t.Begin()

	if f.DateFrom != nil && !begin.IsZero() && begin.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && !begin.IsZero() && begin.After(*f.DateTo) {
		return false
	}
	if f.UpcomingOnly && !t.IsUpcoming() {
		return false
	}
	if len(f.Titles) > 0 && !containsAny(t.Title, f.Titles) {
		return false
	}
	if len(f.Types) > 0 && !containsAny(t.TourType, f.Types) {
		return false
	}
	if len(f.Leaders) > 0 && !containsAny(t.LeaderFull, f.Leaders) {
		return false
	}

	return true
}

// Apply returns the tours matching the filter. An empty filter returns the
// input unchanged.
func (f *Filter) Apply(tours []tour.Tour) []tour.Tour {
	if f.IsEmpty() {
		return tours
	}
	matched := make([]tour.Tour, 0, len(tours))
	for _, t := range tours {
		if f.Matches(t) {
			matched = append(matched, t)
		}
	}
	return matched
}

// containsAny reports whether value contains at least one of the terms,
// case-insensitively.
func containsAny(value string, terms []string) bool {
	valueLower := strings.ToLower(value)
	for _, term := range terms {
		if strings.Contains(valueLower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
