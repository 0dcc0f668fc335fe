package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/depot/internal/config"
	"github.com/five82/depot/internal/logging"
	"github.com/five82/depot/internal/prefs"
	"github.com/five82/depot/internal/state"
	"github.com/five82/depot/internal/ui"
)

// Options configure the depot application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/depot/prefs.toml
	CatalogPath string
	Role        string
	Verbose     bool
}

// Run boots the depot TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	logger, logPath, err := logging.New(cfg.LogDir, opts.Verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("prefs unreadable, using defaults", zap.Error(err))
	}

	store := &state.Store{}
	load := newLoader(cfg.CatalogPath, store, logger)

	// A failed initial load is shown in the header rather than aborting.
	_ = load.Load(ctx)

	logger.Debug("starting ui",
		zap.String("role", cfg.Role),
		zap.String("locale", cfg.Locale.String()),
		zap.String("theme", userPrefs.Theme))

	return ui.Run(ui.Options{
		Context:          ctx,
		Store:            store,
		Reload:           load.Load,
		Actions:          zoneActions(store, logger),
		Logger:           logger,
		Role:             cfg.Role,
		ThemeName:        userPrefs.Theme,
		SidebarCollapsed: userPrefs.SidebarCollapsed,
		PrefsPath:        opts.PrefsPath,
		ActivityPath:     logPath,
		Locale:           cfg.Locale,
	})
}

func applyOverrides(cfg *config.Config, opts Options) {
	if p := strings.TrimSpace(opts.CatalogPath); p != "" {
		cfg.CatalogPath = p
	}
	if r := strings.TrimSpace(opts.Role); r != "" {
		cfg.Role = strings.ToLower(r)
	}
}
