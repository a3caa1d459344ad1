package tour

import "time"

// Snapshot captures the complete tour listing for one run.
type Snapshot struct {
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	TourCount int    `json:"tour_count"`
	Tours     []Tour `json:"tours"`
}

// NewSnapshot creates a snapshot of the given tours taken at the given time.
func NewSnapshot(url string, tours []Tour, takenAt time.Time) *Snapshot {
	return &Snapshot{
		Timestamp: takenAt.Format(time.RFC3339),
		URL:       url,
		TourCount: len(tours),
		Tours:     tours,
	}
}

// Index builds an id → tour lookup from the snapshot's tour sequence.
// When the same id occurs more than once, the last occurrence wins, which
// also determines the copy that participates in diffing. A nil snapshot
// indexes to an empty map.
func (s *Snapshot) Index() map[string]Tour {
	index := make(map[string]Tour)
	if s == nil {
		return index
	}
	for _, t := range s.Tours {
		index[t.ID] = t
	}
	return index
}
