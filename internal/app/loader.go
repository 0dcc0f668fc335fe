package app

import (
	"context"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/five82/depot/internal/catalog"
	"github.com/five82/depot/internal/logging"
	"github.com/five82/depot/internal/state"
	"github.com/five82/depot/internal/zone"
)

// loader reads the catalog into the store and reports what changed through
// the activity log. It runs at startup and whenever the user reloads.
type loader struct {
	path   string
	store  *state.Store
	logger *zap.Logger

	mu sync.Mutex
	// high holds ids already reported in the high band, so a reload only
	// logs zones that newly crossed the threshold.
	high map[string]bool
}

func newLoader(path string, store *state.Store, logger *zap.Logger) *loader {
	return &loader{
		path:   path,
		store:  store,
		logger: logger,
		high:   make(map[string]bool),
	}
}

// Load reads the catalog once. Failures are recorded on the store so the
// UI can show them, and returned.
func (l *loader) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cat, err := catalog.Load(l.path)
	if err != nil {
		l.store.Update(nil, "", 0, err)
		l.logger.Error("catalog load failed",
			logging.Event("catalog.load_failed"),
			zap.String("path", l.path),
			zap.Error(err))
		return fmt.Errorf("load catalog: %w", err)
	}

	l.store.Update(cat.Zones, cat.Source, len(cat.Warnings), nil)
	for _, w := range cat.Warnings {
		l.logger.Warn("zone has invalid data", zap.Error(w))
	}
	l.logger.Info("catalog loaded",
		logging.Event("catalog.loaded"),
		zap.String("source", cat.Source),
		zap.Int("zones", len(cat.Zones)),
		zap.Int("warnings", len(cat.Warnings)))

	l.reportHighSaturation(cat.Zones)
	return nil
}

func (l *loader) reportHighSaturation(zones []zone.StorageZone) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := make(map[string]bool, len(zones))
	for _, z := range zones {
		if z.Band() != zone.BandHigh {
			continue
		}
		current[z.ID] = true
		if l.high[z.ID] {
			continue
		}
		l.logger.Warn(fmt.Sprintf("%s reached %s saturation", z.Name, formatSaturation(z.Saturation)),
			logging.Event("zone.saturation_high"),
			zap.String("zone", z.Name),
			zap.String("zone_id", z.ID),
			zap.Float64("saturation", z.Saturation))
	}
	l.high = current
}

func formatSaturation(v float64) string {
	if math.IsNaN(v) {
		return "unknown"
	}
	return fmt.Sprintf("%.0f%%", v)
}
