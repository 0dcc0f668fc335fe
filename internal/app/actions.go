package app

import (
	"go.uber.org/zap"

	"github.com/five82/depot/internal/listview"
	"github.com/five82/depot/internal/logging"
	"github.com/five82/depot/internal/state"
	"github.com/five82/depot/internal/zone"
)

// zoneActions records create, edit and delete requests in the activity log.
// Editing dialogs live outside depot; the catalog itself is never modified.
func zoneActions(store *state.Store, logger *zap.Logger) listview.Actions[zone.StorageZone] {
	return listview.Actions[zone.StorageZone]{
		Create: func() {
			logger.Info("zone creation requested", logging.Event("zone.create_requested"))
		},
		Edit: func(z zone.StorageZone) {
			logger.Info("zone edit requested",
				logging.Event("zone.edit_requested"),
				zap.String("zone", z.Name),
				zap.String("zone_id", z.ID))
		},
		Delete: func(id string) {
			name := id
			for _, z := range store.Snapshot().Zones {
				if z.ID == id {
					name = z.Name
					break
				}
			}
			logger.Info("zone deletion requested",
				logging.Event("zone.delete_requested"),
				zap.String("zone", name),
				zap.String("zone_id", id))
		},
	}
}
