// Package scraper provides HTTP fetching and HTML parsing for the
// Alpenverein Heidelberg tour listing.
//
// The scraper package fetches the public tour search results page and
// extracts tour entries. An entry starts at a header paragraph with a silver
// background, carries its id in a named anchor, and is followed by sibling
// paragraphs with leader and registration annotations plus a collapsible
// detail block (div id "b" + number) holding location, requirements, fees and
// the full description. Extraction never fails: malformed markup degrades to
// missing fields or skipped entries, never an error.
package scraper
