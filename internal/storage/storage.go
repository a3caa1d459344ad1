package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mbruckner/tourwatch/internal/tour"
)

const (
	snapshotFile = "tours.json"
	deltaFile    = "tours_delta.json"
)

// Storage handles persistence of tour snapshots and delta reports.
type Storage struct {
	dataDir string
}

// DeltaReport is the persisted form of a computed delta.
type DeltaReport struct {
	Timestamp         string       `json:"timestamp"`
	PreviousTimestamp string       `json:"previous_timestamp,omitempty"`
	Summary           tour.Summary `json:"summary"`
	Changes           *tour.Delta  `json:"changes"`
}

// New creates a Storage rooted at dataDir, creating it if necessary.
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// SnapshotPath returns the path of the snapshot file.
func (s *Storage) SnapshotPath() string {
	return filepath.Join(s.dataDir, snapshotFile)
}

// DeltaPath returns the path of the delta report file.
func (s *Storage) DeltaPath() string {
	return filepath.Join(s.dataDir, deltaFile)
}

// LoadSnapshot loads the previous run's snapshot from disk.
// A missing file is not an error: it returns nil, meaning first run.
func (s *Storage) LoadSnapshot() (*tour.Snapshot, error) {
	data, err := os.ReadFile(s.SnapshotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot tour.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	return &snapshot, nil
}

// SaveSnapshot persists a snapshot atomically.
func (s *Storage) SaveSnapshot(snapshot *tour.Snapshot) error {
	return s.writeJSON(s.SnapshotPath(), snapshot)
}

// SaveDelta persists a delta report atomically.
func (s *Storage) SaveDelta(report *DeltaReport) error {
	return s.writeJSON(s.DeltaPath(), report)
}

// writeJSON writes indented JSON to path via a temp file and rename.
func (s *Storage) writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(s.dataDir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}

	return os.Chmod(path, 0644)
}
