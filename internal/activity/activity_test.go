package activity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "depot.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}
	return path
}

func events(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Event)
	}
	return out
}

func TestRead(t *testing.T) {
	var lines []string
	for i := 1; i <= 6; i++ {
		lines = append(lines, fmt.Sprintf(`{"level":"info","ts":"2026-03-01T10:0%d:00Z","msg":"step %d","event":"e%d"}`, i, i, i))
		lines = append(lines, fmt.Sprintf(`{"level":"debug","ts":"2026-03-01T10:0%d:30Z","msg":"noise %d"}`, i, i))
	}
	lines = append(lines, "not json at all", `{"broken":`)
	path := writeLog(t, lines...)

	tests := []struct {
		name       string
		maxEntries int
		expected   []string
	}{
		{name: "zero", maxEntries: 0, expected: nil},
		{name: "negative", maxEntries: -1, expected: nil},
		{name: "partial", maxEntries: 3, expected: []string{"e6", "e5", "e4"}},
		{name: "exact", maxEntries: 6, expected: []string{"e6", "e5", "e4", "e3", "e2", "e1"}},
		{name: "more than exists", maxEntries: 20, expected: []string{"e6", "e5", "e4", "e3", "e2", "e1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(path, tt.maxEntries)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if tt.expected == nil {
				if got != nil {
					t.Fatalf("Read() = %v, want nil", got)
				}
				return
			}
			if diff := cmp.Diff(tt.expected, events(got)); diff != "" {
				t.Errorf("Read() events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRead_DecodesFields(t *testing.T) {
	path := writeLog(t, `{"level":"warn","ts":"2026-03-01T10:00:00Z","msg":"zone saturation high","event":"zone.saturation_high","zone":"Cold Storage"}`)

	got, err := Read(path, 5)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Read() returned %d entries, want 1", len(got))
	}
	e := got[0]
	if e.Level != "warn" || e.Message != "zone saturation high" || e.Zone != "Cold Storage" {
		t.Fatalf("entry = %+v", e)
	}
	if e.Time.IsZero() || e.Time.UTC().Hour() != 10 {
		t.Fatalf("Time = %v, want 10:00 UTC", e.Time)
	}
	if !strings.Contains(e.Summary(), "zone saturation high (Cold Storage)") {
		t.Fatalf("Summary = %q", e.Summary())
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Read() = %v, %v; want nil, nil", got, err)
	}
}

func TestSummary_NoTimeNoZone(t *testing.T) {
	if got := (Entry{Message: "catalog loaded"}).Summary(); got != "catalog loaded" {
		t.Fatalf("Summary = %q", got)
	}
}
