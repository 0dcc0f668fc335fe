package ui

import (
	"github.com/five82/depot/internal/dashboard"
	"github.com/five82/depot/internal/listview"
	"github.com/five82/depot/internal/zone"
)

// bandVisual is the presentation of one saturation band.
type bandVisual struct {
	label string
	glyph string
	color func(Theme) string
}

// bandVisuals is indexed by zone.Band. Every band must have an entry.
var bandVisuals = [zone.BandCount]bandVisual{
	zone.BandLow:    {label: "Low", glyph: "●", color: func(t Theme) string { return t.Success }},
	zone.BandMedium: {label: "Medium", glyph: "◐", color: func(t Theme) string { return t.Warning }},
	zone.BandHigh:   {label: "High", glyph: "▲", color: func(t Theme) string { return t.Danger }},
}

// classificationVisual is the presentation of one zone classification.
type classificationVisual struct {
	label string
	tag   string
	color func(Theme) string
}

var classificationVisuals = [zone.ClassificationCount]classificationVisual{
	zone.RackStorage: {label: "Rack Storage", tag: "RACK", color: func(t Theme) string { return t.Rack }},
	zone.BulkStorage: {label: "Bulk Storage", tag: "BULK", color: func(t Theme) string { return t.Bulk }},
}

func bandFor(b zone.Band) bandVisual {
	if b < 0 || b >= zone.BandCount {
		return bandVisuals[zone.BandHigh]
	}
	return bandVisuals[b]
}

func classificationFor(c zone.Classification) classificationVisual {
	if c < 0 || c >= zone.ClassificationCount {
		return classificationVisual{label: c.String(), tag: "?", color: func(t Theme) string { return t.Muted }}
	}
	return classificationVisuals[c]
}

// trendVisual is the arrow and color for a metric card trend.
type trendVisual struct {
	glyph string
	color func(Theme) string
}

var trendVisuals = map[dashboard.Trend]trendVisual{
	dashboard.TrendUp:      {glyph: "↑", color: func(t Theme) string { return t.Success }},
	dashboard.TrendDown:    {glyph: "↓", color: func(t Theme) string { return t.Danger }},
	dashboard.TrendNeutral: {glyph: "→", color: func(t Theme) string { return t.Muted }},
}

// sortGlyph renders a column's sort indicator.
func sortGlyph(ind listview.Indicator) string {
	switch ind {
	case listview.IndicatorAscending:
		return "↑"
	case listview.IndicatorDescending:
		return "↓"
	default:
		return "↕"
	}
}
