// Package tour provides the tour record model and change detection for
// Alpenverein Heidelberg guided tours.
//
// The tour package defines the record extracted from the tour listing page,
// the snapshot captured per run, and the delta engine that classifies tours
// as added, removed, or modified between two runs. Tours are identified by
// the anchor id from the listing page (e.g. "t7138"), which stays stable
// across runs and serves as the join key for diffing.
package tour
