package state

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/five82/depot/internal/zone"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	zones := []zone.StorageZone{{ID: "1", Name: "Zone A"}, {ID: "2", Name: "Zone B"}}

	before := time.Now()
	s.Update(zones, "demo", 1, nil)

	snap := s.Snapshot()
	if !snap.HasCatalog || snap.Source != "demo" || snap.Warnings != 1 {
		t.Fatalf("snapshot = %+v, want demo catalog with 1 warning", snap)
	}
	if len(snap.Zones) != 2 || snap.Zones[0].ID != "1" {
		t.Fatalf("snapshot zones = %#v, want 2 zones", snap.Zones)
	}
	if snap.LastLoaded.Before(before) {
		t.Fatalf("LastLoaded = %v, want >= %v", snap.LastLoaded, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Neither the caller's slice nor a returned snapshot may alias the store.
	zones[0].Name = "mutated"
	snap.Zones[1].Name = "mutated"
	snap2 := s.Snapshot()
	if snap2.Zones[0].Name != "Zone A" || snap2.Zones[1].Name != "Zone B" {
		t.Fatalf("Snapshot should clone zones; got %#v", snap2.Zones)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update([]zone.StorageZone{{ID: "1"}}, "demo", 0, nil)

	origErr := errors.New("boom")
	s.Update(nil, "", 0, origErr)

	snap := s.Snapshot()
	if !snap.HasCatalog || snap.Source != "demo" {
		t.Fatalf("catalog metadata changed on error: %+v", snap)
	}
	if len(snap.Zones) != 1 || snap.Zones[0].ID != "1" {
		t.Fatalf("zones changed on error: %#v", snap.Zones)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("cloned error should wrap the original")
	}

	s.Update([]zone.StorageZone{{ID: "2"}}, "file.toml", 0, nil)
	if snap := s.Snapshot(); snap.LastError != nil || snap.Source != "file.toml" {
		t.Fatalf("successful update should clear error: %+v", snap)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	var s Store
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Update([]zone.StorageZone{{ID: "x"}}, "demo", 0, nil)
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
	if got := len(s.Snapshot().Zones); got != 1 {
		t.Fatalf("len(Zones) = %d, want 1", got)
	}
}
