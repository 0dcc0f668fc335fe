package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/depot/internal/listview"
	"github.com/five82/depot/internal/zone"
)

// visibleZones returns the catalog filtered and sorted by the controller.
func (m Model) visibleZones() []zone.StorageZone {
	return m.controller.Visible(m.snapshot.Zones)
}

// selectedZone returns the highlighted zone, if any.
func (m Model) selectedZone() (zone.StorageZone, bool) {
	zones := m.visibleZones()
	if m.selectedRow < 0 || m.selectedRow >= len(zones) {
		return zone.StorageZone{}, false
	}
	return zones[m.selectedRow], true
}

// syncSelection keeps the highlighted zone stable across sort, search and
// catalog changes. When the zone disappears the row index is clamped.
func (m *Model) syncSelection() {
	zones := m.visibleZones()
	if len(zones) == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedID != "" {
		for i, z := range zones {
			if z.ID == m.selectedID {
				m.selectedRow = i
				return
			}
		}
	}
	m.selectedRow = min(max(m.selectedRow, 0), len(zones)-1)
	m.selectedID = zones[m.selectedRow].ID
}

// moveSelection moves the highlight by delta rows, clamped to the list.
func (m *Model) moveSelection(delta int) {
	zones := m.visibleZones()
	if len(zones) == 0 {
		return
	}
	m.selectedRow = min(max(m.selectedRow+delta, 0), len(zones)-1)
	m.selectedID = zones[m.selectedRow].ID
}

// gridColumns is the number of cards per grid row at the current width.
func (m Model) gridColumns() int {
	return max((m.contentWidth()-2)/ZoneCardWidth, 1)
}

// handleZonesKey processes keyboard input for the zones screen.
func (m Model) handleZonesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.controller.State()
	vertical := 1
	if state.ViewMode == listview.ViewGrid {
		vertical = m.gridColumns()
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Escape):
		if state.SearchQuery != "" {
			m.search.SetValue("")
			m.controller.SetSearch("")
			m.syncSelection()
		}

	case key.Matches(msg, m.keys.ToggleView):
		m.controller.SetViewMode(state.ViewMode.Toggle())

	case key.Matches(msg, m.keys.SortKeys):
		fields := m.controller.Schema().Fields()
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(fields) {
			m.controller.SetSort(fields[idx].Key)
			m.syncSelection()
		}

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(vertical)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-vertical)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Top):
		m.moveSelection(-len(m.snapshot.Zones))
	case key.Matches(msg, m.keys.Bottom):
		m.moveSelection(len(m.snapshot.Zones))

	case key.Matches(msg, m.keys.Create):
		if !m.actions.DoCreate() {
			m.flash = "Creating zones is not available"
			return m, nil
		}
		m.flash = "New zone requested"
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Edit):
		z, ok := m.selectedZone()
		if !ok {
			return m, nil
		}
		if !m.actions.DoEdit(z) {
			m.flash = "Editing zones is not available"
			return m, nil
		}
		m.flash = "Edit requested for " + z.Name
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Delete):
		z, ok := m.selectedZone()
		if !ok {
			return m, nil
		}
		if !m.actions.DoDelete(z.ID) {
			m.flash = "Deleting zones is not available"
			return m, nil
		}
		m.flash = "Delete requested for " + z.Name
		return m, m.refreshCmd()
	}

	return m, nil
}

// handleSearchKey feeds the focused search box and applies the query live.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.search.SetValue("")
		m.search.Blur()
		m.controller.SetSearch("")
		m.syncSelection()
		return m, nil
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.controller.SetSearch(m.search.Value())
	m.syncSelection()
	return m, cmd
}

// zonesTitle is "Zones (visible/total)" plus the active sort.
func (m Model) zonesTitle(visible int) string {
	state := m.controller.State()
	label := state.SortField
	if f, ok := m.controller.Schema().Field(state.SortField); ok {
		label = f.Label
	}
	return fmt.Sprintf("Zones (%d/%d) · %s %s · %s",
		visible, len(m.snapshot.Zones), label,
		sortGlyph(state.Indicator(state.SortField)), state.ViewMode)
}

// renderZones renders the zones screen: search line plus grid or table.
func (m Model) renderZones(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	zones := m.visibleZones()
	inner := width - 2

	var b strings.Builder
	if m.search.Focused() || m.controller.State().SearchQuery != "" {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(styles.FaintText.Render("/ search   v view   1-5 sort   n new   enter edit   x delete"))
	}
	b.WriteString("\n\n")

	bodyHeight := height - 4
	switch {
	case len(m.snapshot.Zones) == 0:
		b.WriteString(lipgloss.Place(inner, bodyHeight, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No zones in catalog")))
	case len(zones) == 0:
		b.WriteString(lipgloss.Place(inner, bodyHeight, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No zones match")))
	case m.controller.State().ViewMode == listview.ViewTable:
		b.WriteString(m.renderZoneTable(zones, inner, bodyHeight))
	default:
		b.WriteString(m.renderZoneGrid(zones, inner, bodyHeight))
	}

	return m.renderTitledBox(m.zonesTitle(len(zones)), b.String(), width, height, true)
}

// renderZoneGrid renders zones as cards, scrolled so the selection is visible.
func (m Model) renderZoneGrid(zones []zone.StorageZone, width, height int) string {
	cols := max(width/ZoneCardWidth, 1)
	rowsVisible := max(height/ZoneCardHeight, 1)
	selectedGridRow := m.selectedRow / cols
	firstRow := max(selectedGridRow-rowsVisible+1, 0)

	var rows []string
	for start := firstRow * cols; start < len(zones) && len(rows) < rowsVisible; start += cols {
		end := min(start+cols, len(zones))
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderZoneCard(zones[i], i == m.selectedRow))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderZoneCard renders one zone as a bordered card.
func (m Model) renderZoneCard(z zone.StorageZone, selected bool) string {
	styles := m.theme.Styles()
	inner := ZoneCardWidth - 4
	cls := classificationFor(z.Classification)
	band := bandFor(z.Band())

	tag := styles.Badge(cls.color(m.theme)).Render(cls.tag)
	name := styles.Text.Bold(true).Render(truncate(z.Name, inner-lipgloss.Width(tag)-1))
	header := padRight(name, inner-lipgloss.Width(tag)) + tag

	label := func(s string) string { return styles.MutedText.Render(padRight(s, 8)) }
	lines := []string{
		header,
		styles.FaintText.Render(z.ExternalCode),
		label("Capacity") + styles.Text.Render(formatWeight(z.WeightCapacity)),
		label("Temp") + styles.Text.Render(formatRange(z.Temperature, "°C")),
		label("Humidity") + styles.Text.Render(formatRange(z.Humidity, "%")),
		m.renderSaturationBar(z.Saturation, inner-6) + " " +
			lipgloss.NewStyle().Foreground(lipgloss.Color(band.color(m.theme))).Render(padLeft(formatPercent(z.Saturation), 5)),
	}

	border := lipgloss.Color(m.theme.Border)
	if selected {
		border = lipgloss.Color(m.theme.BorderFocus)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(ZoneCardWidth - 2).
		Render(strings.Join(lines, "\n"))
}

// renderSaturationBar draws a progress bar filled to the saturation and
// colored by its band. Non-finite values draw an empty bar.
func (m Model) renderSaturationBar(saturation float64, width int) string {
	band := bandFor(zone.BandFor(saturation))
	bar := progress.New(
		progress.WithSolidFill(band.color(m.theme)),
		progress.WithWidth(max(width, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = m.theme.BorderMuted
	ratio := 0.0
	if finite(saturation) {
		ratio = min(max(saturation/100, 0), 1)
	}
	return bar.ViewAs(ratio)
}

// zoneColumn is one table column bound to a schema field.
type zoneColumn struct {
	field string
	width int
	right bool
}

var zoneColumns = []zoneColumn{
	{field: zone.FieldName, width: 18},
	{field: zone.FieldExternalCode, width: 10},
	{field: zone.FieldClassification, width: 14},
	{field: zone.FieldWeightCapacity, width: 12, right: true},
	{field: zone.FieldSaturation, width: 22},
}

// renderZoneTable renders zones as rows with sortable column headers.
func (m Model) renderZoneTable(zones []zone.StorageZone, width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	state := m.controller.State()

	headers := make([]string, 0, len(zoneColumns))
	for i, col := range zoneColumns {
		label := col.field
		if f, ok := m.controller.Schema().Field(col.field); ok {
			label = f.Label
		}
		text := fmt.Sprintf("%d %s %s", i+1, label, sortGlyph(state.Indicator(col.field)))
		style := styles.MutedText
		if state.SortField == col.field {
			style = styles.AccentText.Bold(true)
		}
		headers = append(headers, style.Render(padRight(text, col.width)))
	}

	lines := []string{strings.Join(headers, " ")}
	rowsVisible := max(height-1, 1)
	first := max(m.selectedRow-rowsVisible+1, 0)
	for i := first; i < len(zones) && len(lines) <= rowsVisible; i++ {
		lines = append(lines, m.renderZoneRow(zones[i], width, i == m.selectedRow))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderZoneRow(z zone.StorageZone, width int, selected bool) string {
	cls := classificationFor(z.Classification)
	band := bandFor(z.Band())

	cells := []string{
		padRight(truncate(z.Name, zoneColumns[0].width), zoneColumns[0].width),
		padRight(truncate(z.ExternalCode, zoneColumns[1].width), zoneColumns[1].width),
		padRight(cls.label, zoneColumns[2].width),
		padLeft(formatWeight(z.WeightCapacity), zoneColumns[3].width),
	}

	if selected {
		sel := lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.SelectionBg)).
			Foreground(lipgloss.Color(m.theme.SelectionText))
		text := strings.Join(cells, " ") + " " + band.glyph + " " + formatPercent(z.Saturation)
		return sel.Width(width).Render(text)
	}

	styles := m.theme.Styles()
	cells[2] = lipgloss.NewStyle().Foreground(lipgloss.Color(cls.color(m.theme))).Render(cells[2])
	sat := m.renderSaturationBar(z.Saturation, 10) + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color(band.color(m.theme))).Render(band.glyph+" "+formatPercent(z.Saturation))
	return styles.Text.Render(strings.Join(cells, " ")) + " " + sat
}
