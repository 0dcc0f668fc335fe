// Package activity reads the recent-activity feed out of depot's JSON log.
//
// # Overview
//
// depot logs every user-visible event (catalog loaded, zone created, zone
// deleted, high saturation) through zap with an "event" field. This package
// tails that log and returns the newest events for the overview screen.
//
// # Reading
//
// Read scans the file once and keeps a ring buffer of the last maxEntries
// events, so memory stays O(maxEntries) regardless of log size. Lines that
// are not JSON objects or lack an event field are ignored. Results are
// ordered newest first.
//
//	entries, err := activity.Read(cfg.LogPath(), 8)
//
// # Error Handling
//
// A missing log returns nil, nil. Other I/O errors are returned wrapped.
// Malformed lines never fail a read.
package activity
