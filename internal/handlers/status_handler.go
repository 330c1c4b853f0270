package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/common"
	"github.com/ternarybob/argus/internal/interfaces"
)

// StatusHandler reports store counts and catalog sizes
type StatusHandler struct {
	catalog *catalog.Catalog
	storage interfaces.StorageManager
	logger  arbor.ILogger
}

func NewStatusHandler(cat *catalog.Catalog, storage interfaces.StorageManager) *StatusHandler {
	return &StatusHandler{
		catalog: cat,
		storage: storage,
		logger:  common.GetLogger(),
	}
}

// GetStatusHandler returns application status
func (h *StatusHandler) GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	ctx := r.Context()
	items, err := h.storage.ItemStorage().CountItems(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to count items")
	}
	frames, err := h.storage.FrameStorage().CountFrames(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to count frames")
	}
	events, err := h.storage.ConflictStorage().CountConflictEvents(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to count conflict events")
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"version": common.GetVersion(),
		"counts": map[string]int{
			"items":           items,
			"frames":          frames,
			"conflict_events": events,
		},
		"catalog": map[string]int{
			"signals":   len(h.catalog.Signals),
			"conflicts": len(h.catalog.Conflicts),
			"alliances": len(h.catalog.Alliances),
			"scenarios": len(h.catalog.Scenarios),
		},
	})
}
