// Package app is the composition root for depot.
//
// Run loads the config file, applies command-line overrides, opens the JSON
// activity log, reads user preferences and the zone catalog, then hands a
// shared state.Store to the TUI and blocks until the user quits.
//
// The catalog is read once at startup and again whenever the user presses
// reload. There is no background polling: the catalog is a local file and
// changes only when someone edits it. A failed load keeps the previous zones
// and records the error on the store so the header can show it.
//
// Every load writes a "catalog.loaded" event, and zones that newly enter the
// high saturation band write a "zone.saturation_high" warning. Zone create,
// edit and delete requests are recorded the same way. The overview screen
// reads these events back through the activity package.
//
// Fatal errors returned from Run are limited to an unreadable config file and
// a log directory that cannot be created.
package app
