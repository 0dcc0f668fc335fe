package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestThemeNames(t *testing.T) {
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if diff := cmp.Diff(want, ThemeNames()); diff != "" {
		t.Fatalf("ThemeNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestNextTheme(t *testing.T) {
	tests := map[string]string{
		"Nightfox": "Kanagawa",
		"Kanagawa": "Slate",
		"Slate":    "Nightfox",
		"Unknown":  "Nightfox",
	}
	for current, want := range tests {
		if got := NextTheme(current); got != want {
			t.Errorf("NextTheme(%q) = %q, want %q", current, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, th.Name)
		}
		if th.Rack == "" || th.Bulk == "" || th.Danger == "" {
			t.Fatalf("theme %q is missing zone colors", name)
		}
	}
	if got := GetTheme("Unknown").Name; got != DefaultThemeName {
		t.Fatalf("GetTheme(Unknown).Name = %q, want %q", got, DefaultThemeName)
	}
}
