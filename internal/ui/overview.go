package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/depot/internal/dashboard"
)

// renderOverview renders the role's landing screen: metric cards, the zone
// saturation chart for administrators, and recent activity.
func (m Model) renderOverview(width, height int) string {
	styles := m.theme.Styles()

	sections := []string{
		styles.Text.Bold(true).Render(m.role.Title()),
		m.renderCardRow(dashboard.CardsFor(m.role), width),
	}

	if m.role == dashboard.RoleAdmin {
		sections = append(sections, m.renderCardRow(dashboard.ZoneCards(m.snapshot.Zones), width))
		chartHeight := len(m.snapshot.Zones) + 3
		sections = append(sections, m.renderTitledBox("Zone Saturation",
			m.renderSaturationChart(width-4), width, max(chartHeight, 4), false))
	}

	used := 0
	for _, s := range sections {
		used += lipgloss.Height(s)
	}
	activityHeight := max(height-used, 4)
	sections = append(sections, m.renderTitledBox("Recent Activity",
		m.renderActivity(width-4), width, activityHeight, false))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCardRow lays out metric cards side by side, wrapping as needed.
func (m Model) renderCardRow(cards []dashboard.Card, width int) string {
	perRow := max(width/MetricCardWidth, 1)
	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		rendered := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			rendered = append(rendered, m.renderMetricCard(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderMetricCard renders one summary card. The trend line only appears
// when the card carries both a trend and a delta.
func (m Model) renderMetricCard(c dashboard.Card) string {
	styles := m.theme.Styles()
	inner := MetricCardWidth - 4

	lines := []string{
		styles.MutedText.Render(truncate(c.Title, inner)),
		styles.Text.Bold(true).Render(truncate(c.Value, inner)),
		styles.FaintText.Render(truncate(c.Description, inner)),
	}
	if c.HasTrend() {
		if tv, ok := trendVisuals[c.Trend]; ok {
			trendStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tv.color(m.theme)))
			lines = append(lines, trendStyle.Render(tv.glyph+" "+c.Delta)+" "+
				styles.FaintText.Render("vs last period"))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Width(MetricCardWidth - 2).
		Render(strings.Join(lines, "\n"))
}

// renderSaturationChart draws one bar per zone in catalog order.
func (m Model) renderSaturationChart(width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	if len(m.snapshot.Zones) == 0 {
		return styles.MutedText.Render("No zones in catalog")
	}

	const nameWidth = 16
	barWidth := max(width-nameWidth-10, 8)
	lines := make([]string, 0, len(m.snapshot.Zones))
	for _, z := range m.snapshot.Zones {
		band := bandFor(z.Band())
		pct := lipgloss.NewStyle().
			Foreground(lipgloss.Color(band.color(m.theme))).
			Background(lipgloss.Color(m.theme.SurfaceAlt)).
			Render(padLeft(formatPercent(z.Saturation), 5) + " " + band.glyph)
		lines = append(lines,
			styles.Text.Render(padRight(truncate(z.Name, nameWidth-1), nameWidth))+
				m.renderSaturationBar(z.Saturation, barWidth)+" "+pct)
	}
	return strings.Join(lines, "\n")
}

// renderActivity lists recent activity entries, newest first.
func (m Model) renderActivity(width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	if len(m.activity) == 0 {
		return styles.MutedText.Render("No recent activity")
	}
	lines := make([]string, 0, len(m.activity))
	for _, e := range m.activity {
		style := styles.Text
		switch e.Level {
		case "warn":
			style = styles.WarningText
		case "error":
			style = styles.DangerText
		}
		lines = append(lines, style.Render(truncate(e.Summary(), width)))
	}
	return strings.Join(lines, "\n")
}
