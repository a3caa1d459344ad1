// Package report renders computed deltas and tour lists for humans.
//
// Three renderers: an appending per-day markdown change log (the repo
// traceability format), a styled terminal summary, and an iCalendar export
// of the tour list.
package report
