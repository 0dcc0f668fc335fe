package dashboard

import "strings"

// NavItem is one sidebar entry.
type NavItem struct {
	Name string
	Href string
}

// ZonesPath is the zone management route below a role's base route.
const ZonesPath = "/zones"

// NavigationFor returns the sidebar entries for a role. Unknown roles get the
// admin entries.
func NavigationFor(r Role) []NavItem {
	switch r.orAdmin() {
	case RoleModerator:
		return []NavItem{
			{Name: "Dashboard", Href: "/moderator"},
			{Name: "Client Orders", Href: "/moderator/orders"},
			{Name: "Driver Assignment", Href: "/moderator/drivers"},
			{Name: "Merchandise", Href: "/moderator/merchandise"},
			{Name: "Performance", Href: "/moderator/performance"},
			{Name: "Settings", Href: "/moderator/settings"},
		}
	case RoleDriver:
		return []NavItem{
			{Name: "Dashboard", Href: "/driver"},
			{Name: "Assigned Tasks", Href: "/driver/tasks"},
			{Name: "History", Href: "/driver/history"},
			{Name: "Performance", Href: "/driver/performance"},
			{Name: "Settings", Href: "/driver/settings"},
		}
	case RoleClient:
		return []NavItem{
			{Name: "Dashboard", Href: "/client"},
			{Name: "My Products", Href: "/client/products"},
			{Name: "Stocking Orders", Href: "/client/stocking"},
			{Name: "Destocking Orders", Href: "/client/destocking"},
			{Name: "Order Status", Href: "/client/status"},
			{Name: "Settings", Href: "/client/settings"},
		}
	default:
		return []NavItem{
			{Name: "Dashboard", Href: "/admin"},
			{Name: "Zone Management", Href: "/admin" + ZonesPath},
			{Name: "Reports", Href: "/admin/reports"},
			{Name: "Users", Href: "/admin/users"},
			{Name: "Merchandise", Href: "/admin/merchandise"},
			{Name: "Analytics", Href: "/admin/analytics"},
			{Name: "Settings", Href: "/admin/settings"},
		}
	}
}

// Sidebar tracks the navigation panel: expanded or collapsed, and the current
// route. The zero value is not usable; build one with NewSidebar.
type Sidebar struct {
	role      Role
	items     []NavItem
	route     string
	collapsed bool
}

// NewSidebar returns an expanded sidebar positioned on the role's base route.
func NewSidebar(r Role) Sidebar {
	r = r.orAdmin()
	return Sidebar{
		role:  r,
		items: NavigationFor(r),
		route: r.BaseRoute(),
	}
}

// Role returns the role the sidebar was built for.
func (s Sidebar) Role() Role { return s.role }

// Items returns a copy of the navigation entries.
func (s Sidebar) Items() []NavItem {
	out := make([]NavItem, len(s.items))
	copy(out, s.items)
	return out
}

// Route returns the current route.
func (s Sidebar) Route() string { return s.route }

// Collapsed reports whether only icons would be shown.
func (s Sidebar) Collapsed() bool { return s.collapsed }

// SetCollapsed forces the collapsed state.
func (s *Sidebar) SetCollapsed(collapsed bool) { s.collapsed = collapsed }

// Toggle flips between expanded and collapsed.
func (s *Sidebar) Toggle() { s.collapsed = !s.collapsed }

// Navigate moves to href. Empty routes are ignored.
func (s *Sidebar) Navigate(href string) {
	if strings.TrimSpace(href) == "" {
		return
	}
	s.route = href
}

// IsActive reports whether href is the current route or one of its parents.
func (s Sidebar) IsActive(href string) bool {
	return s.route == href || strings.HasPrefix(s.route, href+"/")
}

// Active returns the index of the most specific active item, or -1. Both the
// dashboard root and a child match a child route; the child wins.
func (s Sidebar) Active() int {
	best, bestLen := -1, -1
	for i, item := range s.items {
		if s.IsActive(item.Href) && len(item.Href) > bestLen {
			best, bestLen = i, len(item.Href)
		}
	}
	return best
}

// Next moves to the item after the active one, wrapping around.
func (s *Sidebar) Next() { s.step(1) }

// Prev moves to the item before the active one, wrapping around.
func (s *Sidebar) Prev() { s.step(-1) }

func (s *Sidebar) step(delta int) {
	if len(s.items) == 0 {
		return
	}
	idx := s.Active()
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + delta + len(s.items)) % len(s.items)
	}
	s.route = s.items[idx].Href
}
