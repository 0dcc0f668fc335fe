package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/five82/depot/internal/activity"
	"github.com/five82/depot/internal/config"
	"github.com/five82/depot/internal/logging"
	"github.com/five82/depot/internal/state"
)

func newTestLogger(t *testing.T) (*zap.Logger, string) {
	t.Helper()
	logger, path, err := logging.New(t.TempDir(), false)
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	t.Cleanup(func() { _ = logger.Sync() })
	return logger, path
}

func events(t *testing.T, logger *zap.Logger, path string) []string {
	t.Helper()
	_ = logger.Sync()
	entries, err := activity.Read(path, 50)
	if err != nil {
		t.Fatalf("activity.Read: %v", err)
	}
	out := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i].Event)
	}
	return out
}

func TestLoaderLoadsDemoCatalog(t *testing.T) {
	logger, logPath := newTestLogger(t)
	store := &state.Store{}
	l := newLoader("", store, logger)

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	snap := store.Snapshot()
	if !snap.HasCatalog || len(snap.Zones) != 4 {
		t.Fatalf("snapshot = %+v, want 4 demo zones", snap)
	}
	if snap.Source != "demo" {
		t.Fatalf("Source = %q, want demo", snap.Source)
	}

	want := []string{"catalog.loaded", "zone.saturation_high"}
	if diff := cmp.Diff(want, events(t, logger, logPath)); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderReportsHighSaturationOnce(t *testing.T) {
	logger, logPath := newTestLogger(t)
	store := &state.Store{}
	l := newLoader("", store, logger)

	for i := 0; i < 2; i++ {
		if err := l.Load(context.Background()); err != nil {
			t.Fatalf("Load: %v", err)
		}
	}

	entries, err := activity.Read(logPath, 50)
	if err != nil {
		t.Fatalf("activity.Read: %v", err)
	}
	high := 0
	for _, e := range entries {
		if e.Event == "zone.saturation_high" {
			high++
			if e.Zone != "Cold Storage" {
				t.Fatalf("high saturation zone = %q, want Cold Storage", e.Zone)
			}
		}
	}
	if high != 1 {
		t.Fatalf("zone.saturation_high logged %d times, want 1", high)
	}
}

func TestLoaderKeepsZonesOnFailure(t *testing.T) {
	logger, logPath := newTestLogger(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "zones.toml")
	body := "[[zones]]\nid = \"a\"\nname = \"Aisle\"\nclassification = \"rack\"\nexternal_code = \"A-1\"\nweight_capacity = 100\nsaturation = 10\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	store := &state.Store{}
	l := newLoader(path, store, logger)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := os.WriteFile(path, []byte("[[zones]\n"), 0o644); err != nil {
		t.Fatalf("corrupt catalog: %v", err)
	}
	if err := l.Load(context.Background()); err == nil {
		t.Fatal("Load succeeded on invalid catalog")
	}

	snap := store.Snapshot()
	if snap.LastError == nil {
		t.Fatal("LastError not recorded")
	}
	if len(snap.Zones) != 1 || snap.Zones[0].Name != "Aisle" {
		t.Fatalf("zones = %+v, want previous catalog kept", snap.Zones)
	}

	got := events(t, logger, logPath)
	if got[len(got)-1] != "catalog.load_failed" {
		t.Fatalf("last event = %q, want catalog.load_failed", got[len(got)-1])
	}
}

func TestLoaderHonorsCancelledContext(t *testing.T) {
	logger, _ := newTestLogger(t)
	store := &state.Store{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newLoader("", store, logger).Load(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Load error = %v, want context.Canceled", err)
	}
	if store.Snapshot().HasCatalog {
		t.Fatal("store updated after cancellation")
	}
}

func TestZoneActionsLogEvents(t *testing.T) {
	logger, logPath := newTestLogger(t)
	store := &state.Store{}
	if err := newLoader("", store, logger).Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	actions := zoneActions(store, logger)

	zones := store.Snapshot().Zones
	if !actions.DoCreate() || !actions.DoEdit(zones[1]) || !actions.DoDelete(zones[0].ID) {
		t.Fatal("zone actions reported unavailable")
	}

	entries, err := activity.Read(logPath, 3)
	if err != nil {
		t.Fatalf("activity.Read: %v", err)
	}
	type row struct{ Event, Zone string }
	got := make([]row, 0, len(entries))
	for _, e := range entries {
		got = append(got, row{e.Event, e.Zone})
	}
	want := []row{
		{"zone.delete_requested", "Zone A"},
		{"zone.edit_requested", "Zone B"},
		{"zone.create_requested", ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("activity mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Config{CatalogPath: "/etc/zones.toml", Role: "driver"}
	applyOverrides(&cfg, Options{CatalogPath: " /tmp/z.toml ", Role: "Client"})
	if cfg.CatalogPath != "/tmp/z.toml" || cfg.Role != "client" {
		t.Fatalf("cfg = %+v", cfg)
	}

	applyOverrides(&cfg, Options{})
	if cfg.CatalogPath != "/tmp/z.toml" || cfg.Role != "client" {
		t.Fatalf("empty overrides changed cfg: %+v", cfg)
	}
}
