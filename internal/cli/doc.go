// Package cli implements the tourwatch command line interface.
//
// Three commands: check fetches the listing, diffs it against the previous
// snapshot and persists the results; show prints the stored snapshot; export
// writes the stored tours as an iCalendar file. Exit code 2 from check means
// changes were found, which makes cron wrappers easy.
package cli
