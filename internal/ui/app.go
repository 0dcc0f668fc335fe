package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/five82/depot/internal/activity"
	"github.com/five82/depot/internal/dashboard"
	"github.com/five82/depot/internal/listview"
	"github.com/five82/depot/internal/prefs"
	"github.com/five82/depot/internal/state"
	"github.com/five82/depot/internal/zone"
)

// Screen is the content shown next to the sidebar.
type Screen int

const (
	ScreenPicker Screen = iota
	ScreenOverview
	ScreenZones
	ScreenPlaceholder
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Store   *state.Store
	// Reload re-reads the catalog into Store. Nil disables the reload key.
	Reload  func(context.Context) error
	Actions listview.Actions[zone.StorageZone]
	Logger  *zap.Logger

	// Role selects the dashboard. Empty or unknown opens the picker.
	Role             string
	ThemeName        string
	SidebarCollapsed bool
	PrefsPath        string
	ActivityPath     string
	Locale           language.Tag
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	store        *state.Store
	reload       func(context.Context) error
	actions      listview.Actions[zone.StorageZone]
	logger       *zap.Logger
	prefsPath    string
	activityPath string
	keys         keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	flash    string

	// Dashboard state
	role       dashboard.Role
	picking    bool
	pickerRow  int
	sidebar    dashboard.Sidebar
	collapsed  bool
	activity   []activity.Entry
	snapshot   state.Snapshot
	controller *listview.Controller[zone.StorageZone]

	// Zones state
	search      textinput.Model
	selectedRow int
	selectedID  string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = DefaultThemeName
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Placeholder = "Search by name, code or type"
	search.Prompt = "/ "
	search.CharLimit = 64

	m := Model{
		ctx:          ctx,
		store:        opts.Store,
		reload:       opts.Reload,
		actions:      opts.Actions,
		logger:       logger,
		prefsPath:    prefsPath,
		activityPath: opts.ActivityPath,
		keys:         DefaultKeyMap(),
		theme:        GetTheme(themeName),
		collapsed:    opts.SidebarCollapsed,
		controller:   listview.NewController(zone.Schema(), opts.Locale),
		search:       search,
	}

	role, err := dashboard.ParseRole(opts.Role)
	if err != nil {
		if strings.TrimSpace(opts.Role) != "" {
			logger.Warn("ignoring unknown role", zap.String("role", opts.Role))
		}
		m.picking = true
		return m
	}
	m.selectRole(role)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.activityPath != "" {
		cmds = append(cmds, loadActivityCmd(m.activityPath))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(m.contentWidth()-8, 10)
		m.ready = true
		return m, nil

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.syncSelection()
		return m, nil

	case activityMsg:
		if msg.err != nil {
			m.logger.Debug("activity read failed", zap.Error(msg.err))
			return m, nil
		}
		m.activity = msg.entries
		return m, nil

	case reloadedMsg:
		if msg.err != nil {
			m.flash = "Reload failed: " + msg.err.Error()
		} else {
			m.flash = "Catalog reloaded"
		}
		return m, m.refreshCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// Screen reports which screen is showing.
func (m Model) Screen() Screen {
	if m.picking {
		return ScreenPicker
	}
	route := m.sidebar.Route()
	switch {
	case route == m.role.BaseRoute():
		return ScreenOverview
	case route == m.role.BaseRoute()+dashboard.ZonesPath:
		return ScreenZones
	default:
		return ScreenPlaceholder
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// The search box owns the keyboard while focused.
	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	m.flash = ""

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.picking {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSidebar):
		m.sidebar.Toggle()
		m.collapsed = m.sidebar.Collapsed()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.NextSection):
		m.sidebar.Next()
		return m, nil

	case key.Matches(msg, m.keys.PrevSection):
		m.sidebar.Prev()
		return m, nil

	case key.Matches(msg, m.keys.Overview):
		m.sidebar.Navigate(m.role.BaseRoute())
		return m, nil

	case key.Matches(msg, m.keys.Zones):
		if !m.hasRoute(m.role.BaseRoute() + dashboard.ZonesPath) {
			m.flash = "Zone management is not part of the " + m.role.Title()
			return m, nil
		}
		m.sidebar.Navigate(m.role.BaseRoute() + dashboard.ZonesPath)
		return m, nil

	case key.Matches(msg, m.keys.SwitchRole):
		m.picking = true
		m.pickerRow = roleIndex(m.role)
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.reload == nil {
			m.flash = "Reload is not available"
			return m, nil
		}
		m.flash = "Reloading catalog..."
		return m, reloadCmd(m.ctx, m.reload)
	}

	if m.Screen() == ScreenZones {
		return m.handleZonesKey(msg)
	}
	return m, nil
}

// selectRole switches the dashboard and resets navigation to its overview.
func (m *Model) selectRole(r dashboard.Role) {
	m.role = r
	m.picking = false
	m.sidebar = dashboard.NewSidebar(r)
	m.sidebar.SetCollapsed(m.collapsed)
}

func (m Model) hasRoute(href string) bool {
	for _, item := range m.sidebar.Items() {
		if item.Href == href {
			return true
		}
	}
	return false
}

// savePrefs persists theme and sidebar state. Failures are logged only.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, SidebarCollapsed: m.collapsed}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

// refreshCmd re-reads the store and the activity feed.
func (m Model) refreshCmd() tea.Cmd {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.activityPath != "" {
		cmds = append(cmds, loadActivityCmd(m.activityPath))
	}
	return tea.Batch(cmds...)
}

// Messages

type snapshotMsg state.Snapshot

type activityMsg struct {
	entries []activity.Entry
	err     error
}

type reloadedMsg struct{ err error }

// Commands

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := activity.Read(path, ActivityLimit)
		return activityMsg{entries: entries, err: err}
	}
}

func reloadCmd(ctx context.Context, reload func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		err := reload(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return reloadedMsg{err: err}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
