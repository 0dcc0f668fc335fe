package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders header, command bar, sidebar and the current screen.
func (m Model) renderMain() string {
	contentHeight := max(m.height-2, 1)

	var body string
	switch m.Screen() {
	case ScreenPicker:
		body = m.renderPicker(m.width, contentHeight)
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderSidebar(contentHeight),
			m.renderContent(m.contentWidth(), contentHeight))
	}

	return m.renderHeader() + "\n" + m.renderCommandBar() + "\n" + body
}

// renderContent renders the screen selected by the sidebar route.
func (m Model) renderContent(width, height int) string {
	switch m.Screen() {
	case ScreenOverview:
		return m.renderOverview(width, height)
	case ScreenZones:
		return m.renderZones(width, height)
	default:
		return m.renderPlaceholder(width, height)
	}
}

// renderPlaceholder fills sections that have no screen yet.
func (m Model) renderPlaceholder(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	title := "Section"
	if idx := m.sidebar.Active(); idx >= 0 {
		title = m.sidebar.Items()[idx].Name
	}
	msg := styles.MutedText.Render(title + " is not available in depot yet")
	return m.renderTitledBox(title,
		lipgloss.Place(width-2, height-2, lipgloss.Center, lipgloss.Center, msg),
		width, height, false)
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("depot", styles.Logo)}

	if m.picking {
		parts = append(parts, bg.Render("Choose a dashboard", styles.MutedText))
	} else {
		parts = append(parts, bg.Render(m.role.Title(), styles.Text.Bold(true)))
	}

	snap := m.snapshot
	if snap.HasCatalog {
		source := snap.Source
		if !compact {
			source = truncate(source, 40)
		} else {
			source = truncate(source, 16)
		}
		parts = append(parts,
			bg.Render("Zones:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(snap.Zones)), styles.Text),
			bg.Render("Catalog:", styles.MutedText)+bg.Space()+
				bg.Render(source, styles.Text))
	} else if snap.LastError == nil {
		parts = append(parts, bg.Render("Loading catalog...", styles.WarningText))
	}

	if snap.Warnings > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("⚠ %d warnings", snap.Warnings), styles.WarningText))
	}
	if snap.LastError != nil {
		parts = append(parts, bg.Render(truncate(snap.LastError.Error(), 50), styles.DangerText))
	}
	if !compact && !snap.LastLoaded.IsZero() {
		parts = append(parts, bg.Render("Loaded "+snap.LastLoaded.Format("15:04:05"), styles.FaintText))
	}
	if m.flash != "" {
		parts = append(parts, bg.Render(m.flash, styles.AccentText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the per-screen key hints.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.Screen() {
	case ScreenPicker:
		commands = []cmd{{"j/k", "Move"}, {"enter", "Open"}, {"1-4", "Pick"}}
	case ScreenZones:
		state := m.controller.State()
		commands = []cmd{
			{"/", "Search"},
			{"v", state.ViewMode.Toggle().String()},
			{"1-5", "Sort"},
			{"n", "New"},
			{"enter", "Edit"},
			{"x", "Delete"},
			{"r", "Reload"},
			{"tab", "Next"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"tab", "Next"},
			{"o", "Overview"},
			{"z", "Zones"},
			{"b", "Sidebar"},
			{"R", "Dashboards"},
			{"r", "Reload"},
			{"?", "More"},
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	if q := m.controller.State().SearchQuery; q != "" && m.Screen() == ScreenZones {
		segments = append(segments, bg.Render("/"+truncate(q, 18), styles.AccentText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
