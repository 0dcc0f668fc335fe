package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/depot/internal/zone"
)

// truncate shortens a string to the given display width, adding an ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if lipgloss.Width(value) <= limit {
		return value
	}
	runes := []rune(value)
	if limit <= 3 {
		return string(runes[:min(limit, len(runes))])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// padLeft right-aligns a string within the given display width.
func padLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// formatPercent renders a saturation value, or n/a when it is not a number.
func formatPercent(v float64) string {
	if !finite(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", v)
}

// formatWeight renders a capacity in kilograms with thousands separators.
func formatWeight(kg float64) string {
	if !finite(kg) {
		return "n/a"
	}
	return humanize.Comma(int64(math.Round(kg))) + " kg"
}

// formatRange renders a min/max pair with a unit suffix.
func formatRange(r zone.Range, unit string) string {
	return fmt.Sprintf("%g–%g%s", r.Min, r.Max, unit)
}
