package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mbruckner/tourwatch/internal/tour"
)

func TestWriteDeltaEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteDelta(&buf, tour.Diff(map[string]tour.Tour{}, nil), false)

	if !strings.Contains(buf.String(), "No changes") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestWriteDelta(t *testing.T) {
	var buf bytes.Buffer
	WriteDelta(&buf, sampleDelta(), true)
	out := buf.String()

	for _, fragment := range []string{
		"Added:", "Removed:", "Modified:",
		"t1002", "Neue Tour",
		"t1003", "Entfallene Tour",
		"t1001",
		"registration_status",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, out)
		}
	}
}

func TestWriteTours(t *testing.T) {
	tours := []tour.Tour{
		{ID: "t7138", Title: "Skitouren Planung Theorie", BeginDate: "04.02.26", EndDate: "04.02.26"},
	}

	var buf bytes.Buffer
	WriteTours(&buf, tours, false)
	out := buf.String()

	if !strings.Contains(out, "t7138") || !strings.Contains(out, "Skitouren Planung Theorie") {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "Total: 1 tours") {
		t.Errorf("missing total line: %q", out)
	}
}

func TestWriteToursEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteTours(&buf, nil, false)

	if !strings.Contains(buf.String(), "No tours found.") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
