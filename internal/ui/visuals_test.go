package ui

import (
	"math"
	"testing"

	"github.com/five82/depot/internal/dashboard"
	"github.com/five82/depot/internal/listview"
	"github.com/five82/depot/internal/zone"
)

func TestBandVisualsCoverEveryBand(t *testing.T) {
	th := GetTheme(DefaultThemeName)
	seen := map[string]bool{}
	for _, b := range zone.Bands() {
		v := bandVisuals[b]
		if v.label == "" || v.glyph == "" || v.color == nil {
			t.Fatalf("band %s has no visual", b)
		}
		if seen[v.color(th)] {
			t.Fatalf("band %s shares a color", b)
		}
		seen[v.color(th)] = true
	}
	if got := bandFor(zone.BandFor(math.NaN())).label; got != "High" {
		t.Fatalf("NaN band label = %q, want High", got)
	}
	if got := bandFor(zone.Band(99)).label; got != "High" {
		t.Fatalf("out of range band label = %q, want High", got)
	}
}

func TestClassificationVisualsCoverEveryClassification(t *testing.T) {
	th := GetTheme(DefaultThemeName)
	for _, c := range zone.Classifications() {
		v := classificationVisuals[c]
		if v.label != c.String() || v.tag == "" || v.color == nil || v.color(th) == "" {
			t.Fatalf("classification %v visual = %+v", c, v)
		}
	}
	if got := classificationFor(zone.Classification(-1)).tag; got != "?" {
		t.Fatalf("unknown classification tag = %q", got)
	}
}

func TestTrendVisuals(t *testing.T) {
	for _, tr := range []dashboard.Trend{dashboard.TrendUp, dashboard.TrendDown, dashboard.TrendNeutral} {
		if _, ok := trendVisuals[tr]; !ok {
			t.Fatalf("trend %v has no visual", tr)
		}
	}
	if _, ok := trendVisuals[dashboard.TrendNone]; ok {
		t.Fatal("TrendNone must not render a glyph")
	}
}

func TestSortGlyph(t *testing.T) {
	tests := map[listview.Indicator]string{
		listview.IndicatorNone:       "↕",
		listview.IndicatorAscending:  "↑",
		listview.IndicatorDescending: "↓",
	}
	for ind, want := range tests {
		if got := sortGlyph(ind); got != want {
			t.Errorf("sortGlyph(%v) = %q, want %q", ind, got, want)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatWeight(12000); got != "12,000 kg" {
		t.Errorf("formatWeight = %q", got)
	}
	if got := formatPercent(math.NaN()); got != "n/a" {
		t.Errorf("formatPercent(NaN) = %q", got)
	}
	if got := formatRange(zone.Range{Min: 2, Max: 8}, "°C"); got != "2–8°C" {
		t.Errorf("formatRange = %q", got)
	}
	if got := truncate("Cold Storage Annex", 10); got != "Cold St..." {
		t.Errorf("truncate = %q", got)
	}
	if got := padLeft("5", 3); got != "  5" {
		t.Errorf("padLeft = %q", got)
	}
}
