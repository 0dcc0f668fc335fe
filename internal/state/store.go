package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/depot/internal/zone"
)

// Snapshot represents the latest catalog available to the UI.
type Snapshot struct {
	Zones      []zone.StorageZone
	Source     string
	HasCatalog bool
	Warnings   int
	LastLoaded time.Time
	LastError  error
}

// Store coordinates catalog reloads with UI reads.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored catalog. When err is non-nil the previous zones
// are kept but the error is recorded for visibility.
func (s *Store) Update(zones []zone.StorageZone, source string, warnings int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastLoaded = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		return
	}

	s.snapshot.Zones = cloneZones(zones)
	s.snapshot.Source = source
	s.snapshot.HasCatalog = true
	s.snapshot.Warnings = warnings
	s.snapshot.LastError = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Zones = cloneZones(s.snapshot.Zones)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneZones(zones []zone.StorageZone) []zone.StorageZone {
	if len(zones) == 0 {
		return nil
	}
	dup := make([]zone.StorageZone, len(zones))
	copy(dup, zones)
	return dup
}
