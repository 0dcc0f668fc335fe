package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutAutoCollapseWidth is the width below which the sidebar is drawn
	// collapsed regardless of preference.
	LayoutAutoCollapseWidth = 80
)

// Pane sizes.
const (
	SidebarWidth          = 26
	SidebarCollapsedWidth = 6

	// ZoneCardWidth is the outer width of one grid card including borders.
	ZoneCardWidth = 34
	// ZoneCardHeight is the outer height of one grid card including borders.
	ZoneCardHeight = 8

	// MetricCardWidth is the outer width of one overview metric card.
	MetricCardWidth = 28
)

// ActivityLimit is the number of recent activity entries shown.
const ActivityLimit = 8
