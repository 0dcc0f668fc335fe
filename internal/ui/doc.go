// Package ui provides the depot terminal dashboard built on Bubble Tea.
//
// # Architecture Overview
//
// Model is the single Bubble Tea model. It owns presentation state only;
// the zone catalog lives in a state.Store and is pulled in through
// snapshotMsg, and list semantics (search, sort, view mode) are delegated to a
// listview.Controller. Rendering never mutates either.
//
// # Package Structure
//
//   - app.go: Options, Model, Init/Update/View, global keys, commands, Run
//   - picker.go: dashboard picker shown when no role is configured
//   - overview.go: metric cards, saturation chart, recent activity
//   - zones.go: zone grid and table, search box, selection, actions
//   - sidebar.go: navigation panel driven by dashboard.Sidebar
//   - header.go: status bar, command bar, screen dispatch
//   - visuals.go: band, classification and trend mapping tables
//   - theme.go, style_helpers.go, box.go: palettes and rendering helpers
//
// # Screens
//
// The sidebar route selects the screen. The role's base route shows the
// overview; "<base>/zones" shows zone management; other entries render a
// placeholder. With no role the picker replaces sidebar and content.
//
// # Selection
//
// The highlighted zone is tracked by id. After a sort change, a search edit or
// a reload the same zone stays highlighted if it is still visible; otherwise
// the row index is clamped.
//
// # Preferences
//
// Cycling the theme (T) or toggling the sidebar (b) writes prefs.toml. Sort,
// search and view mode last for the session only.
package ui
