package tour

import (
	"regexp"
	"sort"
	"strings"
)

// Delta classifies the tours that changed between two runs.
type Delta struct {
	Added    []Tour         `json:"added"`
	Removed  []Tour         `json:"removed"`
	Modified []Modification `json:"modified"`
}

// Modification records one tour whose fields changed between runs, with the
// full previous and current records alongside the field-level changes.
type Modification struct {
	ID            string                 `json:"id"`
	ChangedFields map[string]FieldChange `json:"changed_fields"`
	Previous      Tour                   `json:"previous"`
	Current       Tour                   `json:"current"`
}

// FieldChange carries the raw previous and current value of one field.
// A nil side means the field was absent on that side.
type FieldChange struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

// Summary holds the per-partition counts of a delta.
type Summary struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
}

// Summary counts the entries in each partition.
func (d *Delta) Summary() Summary {
	return Summary{
		Added:    len(d.Added),
		Removed:  len(d.Removed),
		Modified: len(d.Modified),
	}
}

// Empty reports whether the delta contains no changes at all.
func (d *Delta) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Modified) == 0
}

// Diff compares the current tour sequence against the previous run's index.
//
// Current tours are keyed by id first (duplicate ids collapse, last wins).
// Ids missing from previous are added, ids missing from current are removed,
// and ids present on both sides with unequal records are modified, with
// field-level changes computed by changedFields. An empty or nil previous
// index classifies every current tour as added. Output slices are sorted by
// id so repeated runs produce identical files.
func Diff(previous map[string]Tour, current []Tour) *Delta {
	currentByID := make(map[string]Tour, len(current))
	for _, t := range current {
		currentByID[t.ID] = t
	}

	delta := &Delta{
		Added:    make([]Tour, 0),
		Removed:  make([]Tour, 0),
		Modified: make([]Modification, 0),
	}

	for id, cur := range currentByID {
		prev, exists := previous[id]
		if !exists {
			delta.Added = append(delta.Added, cur)
			continue
		}
		if prev != cur {
			delta.Modified = append(delta.Modified, Modification{
				ID:            id,
				ChangedFields: changedFields(prev, cur),
				Previous:      prev,
				Current:       cur,
			})
		}
	}

	for id, prev := range previous {
		if _, exists := currentByID[id]; !exists {
			delta.Removed = append(delta.Removed, prev)
		}
	}

	sort.Slice(delta.Added, func(i, j int) bool { return delta.Added[i].ID < delta.Added[j].ID })
	sort.Slice(delta.Removed, func(i, j int) bool { return delta.Removed[i].ID < delta.Removed[j].ID })
	sort.Slice(delta.Modified, func(i, j int) bool { return delta.Modified[i].ID < delta.Modified[j].ID })

	return delta
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalize collapses whitespace runs to a single space and trims the ends,
// so reformatting on the listing page does not count as a change.
func normalize(v string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(v, " "))
}

// changedFields compares two records field by field and returns the fields
// whose normalized values differ, carrying the raw values. A field present on
// only one side always counts as changed. The result may be empty when the
// records differ only in whitespace or in the undiffed detail markup.
func changedFields(prev, cur Tour) map[string]FieldChange {
	changes := make(map[string]FieldChange)
	for _, name := range fieldNames {
		pv, pok := prev.field(name)
		cv, cok := cur.field(name)
		if !pok && !cok {
			continue
		}
		if pok && cok && normalize(pv) == normalize(cv) {
			continue
		}
		var change FieldChange
		if pok {
			change.From = &pv
		}
		if cok {
			change.To = &cv
		}
		changes[name] = change
	}
	return changes
}
