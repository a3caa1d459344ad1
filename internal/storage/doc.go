// Package storage provides JSON-based persistence for tour snapshots and
// delta reports.
//
// The storage package manages the local data directory holding tours.json
// (the latest snapshot) and tours_delta.json (the changes computed against
// the previous run). Files are written atomically via a temp file and rename
// so a crashed run never leaves a half-written snapshot behind.
// The default location is ~/.local/share/tourwatch/.
package storage
