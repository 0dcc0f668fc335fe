package dashboard

import (
	"errors"
	"fmt"
	"strings"
)

// Role selects which dashboard, metric preset and navigation a user sees.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleDriver    Role = "driver"
	RoleClient    Role = "client"
)

// ErrUnknownRole is returned by ParseRole for names outside the four roles.
var ErrUnknownRole = errors.New("unknown role")

// Roles returns every role in picker order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleModerator, RoleDriver, RoleClient}
}

// ParseRole resolves a role name case-insensitively.
func ParseRole(name string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(name)))
	switch r {
	case RoleAdmin, RoleModerator, RoleDriver, RoleClient:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// orAdmin maps unknown roles to the admin dashboard.
func (r Role) orAdmin() Role {
	if r.Valid() {
		return r
	}
	return RoleAdmin
}

// Title is the dashboard heading for the role.
func (r Role) Title() string {
	switch r.orAdmin() {
	case RoleModerator:
		return "Moderator Dashboard"
	case RoleDriver:
		return "Driver Dashboard"
	case RoleClient:
		return "Client Dashboard"
	default:
		return "Administrator Dashboard"
	}
}

// Description is the role's blurb on the dashboard picker.
func (r Role) Description() string {
	switch r.orAdmin() {
	case RoleModerator:
		return "Validate client orders, assign drivers and controllers, and monitor warehouse operations."
	case RoleDriver:
		return "View and manage assigned stocking and destocking tasks with real-time updates and scanning functionality."
	case RoleClient:
		return "Submit storage requests, track merchandise status, and manage stocking and destocking orders."
	default:
		return "Complete oversight and control of warehouse operations, zone management, and performance analytics."
	}
}

// BaseRoute is the landing route of the role's dashboard.
func (r Role) BaseRoute() string {
	return "/" + string(r.orAdmin())
}
