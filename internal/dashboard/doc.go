// Package dashboard holds the role-dependent parts of the depot dashboard:
// roles, summary metric cards and the navigation sidebar.
//
// Cards are plain values built fresh for each render. A card's trend and its
// delta label are paired; Validate rejects one without the other.
//
// Sidebar is a small state machine over {expanded, collapsed} and the current
// route. An item is active when the route equals its href or sits below it,
// and Active picks the most specific match so "/admin/zones" highlights Zone
// Management rather than Dashboard.
package dashboard
