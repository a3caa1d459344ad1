package tour

import (
	"testing"
	"time"
)

func TestDiffFirstRun(t *testing.T) {
	current := []Tour{
		{ID: "t1001", Title: "Tour 1"},
		{ID: "t1002", Title: "Tour 2"},
	}

	delta := Diff(map[string]Tour{}, current)

	if len(delta.Added) != 2 {
		t.Errorf("expected 2 added, got %d", len(delta.Added))
	}
	if len(delta.Removed) != 0 || len(delta.Modified) != 0 {
		t.Errorf("expected no removed/modified on first run, got %d/%d",
			len(delta.Removed), len(delta.Modified))
	}
}

func TestDiffReflexive(t *testing.T) {
	tours := []Tour{
		{ID: "t1001", Title: "Tour 1", BeginDate: "04.02.26", EndDate: "04.02.26"},
		{ID: "t1002", Title: "Tour 2", Leader: "Jürgen Müller"},
	}
	snapshot := NewSnapshot("https://example.com", tours, time.Now())

	delta := Diff(snapshot.Index(), tours)

	if !delta.Empty() {
		t.Errorf("diff of identical records should be empty, got %+v", delta.Summary())
	}
}

func TestDiffAdded(t *testing.T) {
	previous := map[string]Tour{
		"t1001": {ID: "t1001", Title: "Tour 1"},
	}
	current := []Tour{
		{ID: "t1001", Title: "Tour 1"},
		{ID: "t1002", Title: "Tour 2"},
		{ID: "t1003", Title: "Tour 3"},
	}

	delta := Diff(previous, current)

	if len(delta.Added) != 2 {
		t.Fatalf("expected 2 added, got %d", len(delta.Added))
	}
	// Output is sorted by id
	if delta.Added[0].ID != "t1002" || delta.Added[1].ID != "t1003" {
		t.Errorf("unexpected added ids: %s, %s", delta.Added[0].ID, delta.Added[1].ID)
	}
	if len(delta.Removed) != 0 || len(delta.Modified) != 0 {
		t.Errorf("expected no removed/modified, got %d/%d", len(delta.Removed), len(delta.Modified))
	}
}

func TestDiffRemoved(t *testing.T) {
	previous := map[string]Tour{
		"t1001": {ID: "t1001", Title: "Tour 1"},
		"t1002": {ID: "t1002", Title: "Tour 2"},
		"t1003": {ID: "t1003", Title: "Tour 3"},
	}
	current := []Tour{
		{ID: "t1001", Title: "Tour 1"},
	}

	delta := Diff(previous, current)

	if len(delta.Removed) != 2 {
		t.Fatalf("expected 2 removed, got %d", len(delta.Removed))
	}
	if delta.Removed[0].ID != "t1002" || delta.Removed[1].ID != "t1003" {
		t.Errorf("unexpected removed ids: %s, %s", delta.Removed[0].ID, delta.Removed[1].ID)
	}
	// Removed entries carry the full previous record
	if delta.Removed[0].Title != "Tour 2" {
		t.Errorf("removed entry should carry previous record, got title %q", delta.Removed[0].Title)
	}
}

func TestDiffModified(t *testing.T) {
	previous := map[string]Tour{
		"t1001": {ID: "t1001", Title: "Tour 1", RegistrationStatus: "gruen"},
		"t1002": {ID: "t1002", Title: "Tour 2", MaxParticipants: "5"},
	}
	current := []Tour{
		{ID: "t1001", Title: "Tour 1", RegistrationStatus: "rot"},
		{ID: "t1002", Title: "Tour 2", MaxParticipants: "5"},
	}

	delta := Diff(previous, current)

	if len(delta.Modified) != 1 {
		t.Fatalf("expected 1 modified, got %d", len(delta.Modified))
	}

	m := delta.Modified[0]
	if m.ID != "t1001" {
		t.Errorf("expected t1001 modified, got %s", m.ID)
	}
	if m.Previous.RegistrationStatus != "gruen" || m.Current.RegistrationStatus != "rot" {
		t.Errorf("modification should carry both records, got %q/%q",
			m.Previous.RegistrationStatus, m.Current.RegistrationStatus)
	}

	change, ok := m.ChangedFields["registration_status"]
	if !ok {
		t.Fatalf("expected registration_status in changed fields, got %v", m.ChangedFields)
	}
	if change.From == nil || *change.From != "gruen" {
		t.Errorf("expected from 'gruen', got %v", change.From)
	}
	if change.To == nil || *change.To != "rot" {
		t.Errorf("expected to 'rot', got %v", change.To)
	}
	if len(m.ChangedFields) != 1 {
		t.Errorf("expected exactly 1 changed field, got %v", m.ChangedFields)
	}
}

func TestDiffMixedChanges(t *testing.T) {
	previous := map[string]Tour{
		"t1001": {ID: "t1001", Title: "Tour 1", RegistrationStatus: "gruen"},
		"t1002": {ID: "t1002", Title: "Tour 2"},
		"t1003": {ID: "t1003", Title: "Tour 3"},
	}
	current := []Tour{
		{ID: "t1001", Title: "Tour 1", RegistrationStatus: "rot"},
		{ID: "t1002", Title: "Tour 2"},
		{ID: "t1004", Title: "Tour 4"},
	}

	delta := Diff(previous, current)

	summary := delta.Summary()
	if summary.Added != 1 || summary.Removed != 1 || summary.Modified != 1 {
		t.Fatalf("expected 1/1/1, got %d/%d/%d", summary.Added, summary.Removed, summary.Modified)
	}
	if delta.Added[0].ID != "t1004" {
		t.Errorf("expected t1004 added, got %s", delta.Added[0].ID)
	}
	if delta.Removed[0].ID != "t1003" {
		t.Errorf("expected t1003 removed, got %s", delta.Removed[0].ID)
	}
	if delta.Modified[0].ID != "t1001" {
		t.Errorf("expected t1001 modified, got %s", delta.Modified[0].ID)
	}
}

func TestDiffWhitespaceNormalization(t *testing.T) {
	t.Run("whitespace-only difference is not a field change", func(t *testing.T) {
		previous := map[string]Tour{
			"t1": {ID: "t1", Title: "Tour 1", Location: "Vereinsheim  DAV Heidelberg"},
		}
		current := []Tour{
			{ID: "t1", Title: "Tour 1", Location: "Vereinsheim DAV Heidelberg"},
		}

		delta := Diff(previous, current)

		// Records are unequal, so the tour is flagged modified, but the
		// whitespace-only difference produces no field-level entry.
		if len(delta.Modified) != 1 {
			t.Fatalf("expected 1 modified, got %d", len(delta.Modified))
		}
		if len(delta.Modified[0].ChangedFields) != 0 {
			t.Errorf("expected no changed fields, got %v", delta.Modified[0].ChangedFields)
		}
	})

	t.Run("normalization is per-field, not global", func(t *testing.T) {
		previous := map[string]Tour{
			"t1": {ID: "t1", Title: "Tour 1", Location: "a  b", RegistrationStatus: "gruen"},
		}
		current := []Tour{
			{ID: "t1", Title: "Tour 1", Location: "a b", RegistrationStatus: "rot"},
		}

		delta := Diff(previous, current)

		if len(delta.Modified) != 1 {
			t.Fatalf("expected 1 modified, got %d", len(delta.Modified))
		}
		changes := delta.Modified[0].ChangedFields
		if _, ok := changes["location"]; ok {
			t.Error("location should not be reported, difference is whitespace only")
		}
		if _, ok := changes["registration_status"]; !ok {
			t.Error("registration_status should be reported")
		}
	})
}

func TestDiffFieldPresentOnOneSide(t *testing.T) {
	previous := map[string]Tour{
		"t1": {ID: "t1", Title: "Tour 1", Equipment: "Schreibbedarf"},
	}
	current := []Tour{
		{ID: "t1", Title: "Tour 1", MeetingPoint: "Vereinsheim"},
	}

	delta := Diff(previous, current)

	if len(delta.Modified) != 1 {
		t.Fatalf("expected 1 modified, got %d", len(delta.Modified))
	}
	changes := delta.Modified[0].ChangedFields

	equip, ok := changes["equipment"]
	if !ok {
		t.Fatal("expected equipment change")
	}
	if equip.From == nil || *equip.From != "Schreibbedarf" {
		t.Errorf("expected from 'Schreibbedarf', got %v", equip.From)
	}
	if equip.To != nil {
		t.Errorf("expected nil to for dropped field, got %v", *equip.To)
	}

	meeting, ok := changes["meeting_point"]
	if !ok {
		t.Fatal("expected meeting_point change")
	}
	if meeting.From != nil {
		t.Errorf("expected nil from for new field, got %v", *meeting.From)
	}
	if meeting.To == nil || *meeting.To != "Vereinsheim" {
		t.Errorf("expected to 'Vereinsheim', got %v", meeting.To)
	}
}

func TestDiffDescriptionHTMLIgnored(t *testing.T) {
	previous := map[string]Tour{
		"t1": {ID: "t1", Title: "Tour 1", DescriptionHTML: "<div>old</div>"},
	}
	current := []Tour{
		{ID: "t1", Title: "Tour 1", DescriptionHTML: "<div>new</div>"},
	}

	delta := Diff(previous, current)

	// Still modified (records differ), but the markup never shows up as a field change.
	if len(delta.Modified) != 1 {
		t.Fatalf("expected 1 modified, got %d", len(delta.Modified))
	}
	if len(delta.Modified[0].ChangedFields) != 0 {
		t.Errorf("description_html must not appear in changed fields, got %v",
			delta.Modified[0].ChangedFields)
	}
}

func TestDiffDuplicateIDsLastWins(t *testing.T) {
	previous := map[string]Tour{
		"t1": {ID: "t1", Title: "Tour 1", RegistrationStatus: "gruen"},
	}
	current := []Tour{
		{ID: "t1", Title: "Tour 1", RegistrationStatus: "gruen"},
		{ID: "t1", Title: "Tour 1", RegistrationStatus: "rot"},
	}

	delta := Diff(previous, current)

	if len(delta.Modified) != 1 {
		t.Fatalf("expected the last duplicate to win and be modified, got %d modified", len(delta.Modified))
	}
	if delta.Modified[0].Current.RegistrationStatus != "rot" {
		t.Errorf("expected last occurrence to participate in diff, got %q",
			delta.Modified[0].Current.RegistrationStatus)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a  b", "a b"},
		{"  a b  ", "a b"},
		{"a\n\tb", "a b"},
		{"", ""},
		{"unchanged", "unchanged"},
	}

	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
