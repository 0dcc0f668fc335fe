package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sidebarCollapsed reports whether the sidebar is drawn narrow, either by
// preference or because the terminal is too small.
func (m Model) sidebarCollapsed() bool {
	return m.sidebar.Collapsed() || m.width < LayoutAutoCollapseWidth
}

func (m Model) sidebarWidth() int {
	if m.picking {
		return 0
	}
	if m.sidebarCollapsed() {
		return SidebarCollapsedWidth
	}
	return SidebarWidth
}

// contentWidth is the width left of the sidebar.
func (m Model) contentWidth() int {
	return max(m.width-m.sidebarWidth(), 10)
}

// renderSidebar renders the navigation panel. Collapsed, only the first
// letters of each entry are shown.
func (m Model) renderSidebar(height int) string {
	width := m.sidebarWidth()
	bg := NewBgStyle(m.theme.Surface)
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	collapsed := m.sidebarCollapsed()

	var lines []string
	if collapsed {
		lines = append(lines, bg.Render(" ▣", styles.Logo))
	} else {
		lines = append(lines, bg.Render(" ▣ WMS", styles.Logo))
	}
	lines = append(lines, "")

	active := m.sidebar.Active()
	for i, item := range m.sidebar.Items() {
		label := " " + item.Name
		if collapsed {
			label = " " + strings.ToUpper(string([]rune(item.Name)[:min(2, len([]rune(item.Name)))]))
		}
		label = truncate(label, width-1)
		if i == active {
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.FocusBg)).
				Foreground(lipgloss.Color(m.theme.Accent)).
				Bold(true).
				Width(width).
				Render(label))
			continue
		}
		lines = append(lines, bg.FillLine(bg.Render(label, styles.Text), width))
	}

	toggle := " « b"
	if collapsed {
		toggle = " » b"
	}
	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, bg.Render(toggle, styles.FaintText))

	for i, line := range lines {
		lines[i] = bg.FillLine(line, width)
	}
	return strings.Join(lines[:min(len(lines), max(height, 1))], "\n")
}
