// Package state provides thread-safe catalog storage for the depot application.
//
// # Overview
//
// This package holds the latest storage zone catalog shared between catalog
// loading and the UI. Loading happens at startup and again whenever the user
// asks for a reload; the reload runs as a Bubble Tea command on its own
// goroutine while the UI keeps rendering the previous snapshot.
//
//	Producer (loader):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ catalog.Load() │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│                │  (mutex)   │      ↓          │
//	│                │            │  derive + render│
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
//	// Success: replace the zones and catalog metadata
//	store.Update(zones, source, warnings, nil)
//
//	// Failure: keep the previous zones, record the error
//	store.Update(nil, "", 0, err)
//
// LastLoaded is stamped in both cases so the header can show when the last
// attempt happened.
//
// # Defensive Copying
//
// Update and Snapshot both clone the zone slice, so a snapshot handed to the
// UI is an immutable view for one render cycle. List controllers derive their
// visible records from that snapshot and never write to it. Error values are
// wrapped rather than shared.
//
// # Testing Considerations
//
// The zero Store is ready to use. Snapshot returns a zero Snapshot
// (HasCatalog false) until the first successful Update.
package state
