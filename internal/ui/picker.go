package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/depot/internal/dashboard"
	"github.com/five82/depot/internal/logging"
)

func roleIndex(r dashboard.Role) int {
	for i, candidate := range dashboard.Roles() {
		if candidate == r {
			return i
		}
	}
	return 0
}

// handlePickerKey processes keyboard input on the dashboard picker.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	roles := dashboard.Roles()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.pickerRow > 0 {
			m.pickerRow--
		}
	case key.Matches(msg, m.keys.Down):
		if m.pickerRow < len(roles)-1 {
			m.pickerRow++
		}
	case key.Matches(msg, m.keys.Top):
		m.pickerRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.pickerRow = len(roles) - 1
	case key.Matches(msg, m.keys.Confirm):
		m.chooseRole(roles[m.pickerRow])
	case key.Matches(msg, m.keys.Escape):
		if m.role.Valid() {
			m.picking = false
		}
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	default:
		s := msg.String()
		if len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(roles) {
			m.pickerRow = int(s[0] - '1')
			m.chooseRole(roles[m.pickerRow])
		}
	}
	return m, nil
}

func (m *Model) chooseRole(r dashboard.Role) {
	m.selectRole(r)
	m.logger.Info("dashboard opened",
		logging.Event("dashboard.opened"),
		zap.String("role", string(r)))
}

// renderPicker renders the dashboard picker.
func (m Model) renderPicker(width, height int) string {
	styles := m.theme.Styles()
	cardWidth := min(max(width-8, 30), 72)

	var blocks []string
	blocks = append(blocks,
		styles.Logo.Render("depot")+"  "+styles.MutedText.Render("Warehouse management"),
		styles.Text.Render("Choose a dashboard"),
		"",
	)

	for i, r := range dashboard.Roles() {
		selected := i == m.pickerRow
		border := lipgloss.Color(m.theme.Border)
		if selected {
			border = lipgloss.Color(m.theme.BorderFocus)
		}
		title := fmt.Sprintf("%d  %s", i+1, r.Title())
		titleStyle := styles.Text.Bold(true)
		if selected {
			titleStyle = styles.AccentText.Bold(true)
		}
		body := titleStyle.Render(title) + "\n" +
			styles.MutedText.Width(cardWidth-4).Render(r.Description())
		blocks = append(blocks, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(cardWidth).
			Render(body))
	}

	blocks = append(blocks, "", styles.FaintText.Render(strings.Join([]string{
		"j/k move", "enter open", "1-4 quick pick", "T theme", "e quit",
	}, "  ·  ")))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, blocks...))
}
