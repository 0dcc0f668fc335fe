package dashboard

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/depot/internal/zone"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "admin", want: RoleAdmin},
		{in: " Moderator ", want: RoleModerator},
		{in: "DRIVER", want: RoleDriver},
		{in: "client", want: RoleClient},
		{in: "controller", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownRole) {
				t.Errorf("ParseRole(%q) err = %v, want ErrUnknownRole", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseRole(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestRoleTitlesAndFallback(t *testing.T) {
	if got := RoleDriver.Title(); got != "Driver Dashboard" {
		t.Fatalf("Title = %q", got)
	}
	unknown := Role("ghost")
	if unknown.Title() != RoleAdmin.Title() || unknown.BaseRoute() != "/admin" {
		t.Fatalf("unknown role should fall back to admin: %q %q", unknown.Title(), unknown.BaseRoute())
	}
	for _, r := range Roles() {
		if r.Description() == "" {
			t.Errorf("%s has no description", r)
		}
	}
}

func TestCardValidate(t *testing.T) {
	tests := []struct {
		name    string
		card    Card
		wantErr bool
	}{
		{name: "no trend", card: NewCard("Zones", "4", "in catalog")},
		{name: "paired", card: NewCard("Zones", "4", "in catalog").WithTrend(TrendUp, "12%")},
		{name: "trend without delta", card: Card{Title: "x", Trend: TrendDown}, wantErr: true},
		{name: "delta without trend", card: Card{Title: "x", Delta: "3%"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.card.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnpairedTrend) {
				t.Fatalf("Validate() = %v, want ErrUnpairedTrend", err)
			}
		})
	}
}

func TestCardsFor(t *testing.T) {
	for _, r := range Roles() {
		cards := CardsFor(r)
		if len(cards) != 4 {
			t.Fatalf("%s: got %d cards, want 4", r, len(cards))
		}
		for _, c := range cards {
			if err := c.Validate(); err != nil {
				t.Errorf("%s: %v", r, err)
			}
		}
	}

	admin := CardsFor(RoleAdmin)
	if admin[0].Title != "Total Merchandise" || admin[0].Value != "1,247" || admin[0].Trend != TrendUp {
		t.Fatalf("admin first card = %+v", admin[0])
	}
	if diff := cmp.Diff(admin, CardsFor(Role("unknown"))); diff != "" {
		t.Fatalf("unknown role preset mismatch (-admin +got):\n%s", diff)
	}
}

func TestZoneCards(t *testing.T) {
	zones := []zone.StorageZone{
		{Name: "Zone A", WeightCapacity: 5000, Saturation: 75},
		{Name: "Zone B", WeightCapacity: 8000, Saturation: 45},
		{Name: "Cold Storage", WeightCapacity: 3000, Saturation: 90},
		{Name: "Heavy Items", WeightCapacity: 12000, Saturation: 60},
		{Name: "Broken", WeightCapacity: math.NaN(), Saturation: math.NaN()},
	}

	got := ZoneCards(zones)
	values := make([]string, len(got))
	for i, c := range got {
		values[i] = c.Value
	}
	// 75+45+90+60 = 270 / 4; NaN saturation bands high.
	want := []string{"5", "68%", "2", "28,000 kg"}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("ZoneCards values mismatch (-want +got):\n%s", diff)
	}
}

func TestZoneCards_Empty(t *testing.T) {
	got := ZoneCards(nil)
	if got[0].Value != "0" || got[1].Value != "n/a" || got[3].Value != "0 kg" {
		t.Fatalf("ZoneCards(nil) = %+v", got)
	}
}

func TestSidebarNavigation(t *testing.T) {
	s := NewSidebar(RoleAdmin)
	if s.Route() != "/admin" || s.Active() != 0 {
		t.Fatalf("initial route %q active %d", s.Route(), s.Active())
	}

	s.Navigate("/admin/zones")
	if !s.IsActive("/admin") || !s.IsActive("/admin/zones") {
		t.Fatal("both parent and child should be active")
	}
	if s.IsActive("/admin/zone") {
		t.Fatal("prefix without separator must not match")
	}
	if got := s.Items()[s.Active()].Name; got != "Zone Management" {
		t.Fatalf("Active = %q, want Zone Management", got)
	}

	s.Next()
	if s.Route() != "/admin/reports" {
		t.Fatalf("Next route = %q", s.Route())
	}
	s.Navigate("/admin")
	s.Prev()
	if s.Route() != "/admin/settings" {
		t.Fatalf("Prev should wrap, got %q", s.Route())
	}

	s.Navigate("")
	if s.Route() != "/admin/settings" {
		t.Fatalf("empty navigate changed route to %q", s.Route())
	}
}

func TestSidebarToggle(t *testing.T) {
	s := NewSidebar(RoleClient)
	if s.Collapsed() {
		t.Fatal("sidebar should start expanded")
	}
	s.Toggle()
	if !s.Collapsed() {
		t.Fatal("Toggle should collapse")
	}
	s.Toggle()
	if s.Collapsed() {
		t.Fatal("second Toggle should expand")
	}
}

func TestSidebarUnknownRouteActivatesNothing(t *testing.T) {
	s := NewSidebar(RoleDriver)
	s.Navigate("/admin/zones")
	if s.Active() != -1 {
		t.Fatalf("Active = %d, want -1", s.Active())
	}
	s.Next()
	if s.Route() != "/driver" {
		t.Fatalf("Next from unknown route = %q, want first item", s.Route())
	}
}

func TestNavigationFor(t *testing.T) {
	for _, r := range Roles() {
		items := NavigationFor(r)
		if items[0].Href != r.BaseRoute() {
			t.Errorf("%s: first item %q, want base route", r, items[0].Href)
		}
	}
}
