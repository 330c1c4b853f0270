package handlers

import (
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/argus/internal/catalog"
	"github.com/ternarybob/argus/internal/common"
	"github.com/ternarybob/argus/internal/interfaces"
	"github.com/ternarybob/argus/internal/models"
)

// StateHandler serves the computed state rows: conflict, theatre,
// alliance, and scenario. Read-only.
type StateHandler struct {
	catalog  *catalog.Catalog
	state    interfaces.StateStorage
	scenario interfaces.ScenarioStorage
	logger   arbor.ILogger
}

func NewStateHandler(cat *catalog.Catalog, state interfaces.StateStorage, scenario interfaces.ScenarioStorage) *StateHandler {
	return &StateHandler{
		catalog:  cat,
		state:    state,
		scenario: scenario,
		logger:   common.GetLogger(),
	}
}

// conflictView joins the reference row with its live state
type conflictView struct {
	Conflict *models.ConflictEntity    `json:"conflict"`
	State    *models.ConflictStateLive `json:"state,omitempty"`
}

// ListConflictsHandler returns every conflict with its live state
func (h *StateHandler) ListConflictsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	states, err := h.state.GetAllConflictStates(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to load conflict states")
		WriteError(w, http.StatusInternalServerError, "failed to load conflict states")
		return
	}
	byID := make(map[string]*models.ConflictStateLive, len(states))
	for _, st := range states {
		byID[st.ConflictID] = st
	}

	views := make([]conflictView, 0, len(h.catalog.Conflicts))
	for i := range h.catalog.Conflicts {
		conflict := &h.catalog.Conflicts[i]
		views = append(views, conflictView{
			Conflict: conflict,
			State:    byID[conflict.ID],
		})
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(views),
		"conflicts": views,
	})
}

// GetConflictHandler returns one conflict with its live state.
// Handles /api/conflicts/{id}.
func (h *StateHandler) GetConflictHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/conflicts/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, http.StatusBadRequest, "conflict id is required")
		return
	}

	var conflict *models.ConflictEntity
	for i := range h.catalog.Conflicts {
		if h.catalog.Conflicts[i].ID == id {
			conflict = &h.catalog.Conflicts[i]
			break
		}
	}
	if conflict == nil {
		WriteError(w, http.StatusNotFound, "conflict not found: "+id)
		return
	}

	state, err := h.state.GetConflictState(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Str("conflict_id", id).Msg("Failed to load conflict state")
		WriteError(w, http.StatusInternalServerError, "failed to load conflict state")
		return
	}
	WriteJSON(w, http.StatusOK, conflictView{Conflict: conflict, State: state})
}

// ListTheatresHandler returns every theatre rollup
func (h *StateHandler) ListTheatresHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	states, err := h.state.GetAllTheatreStates(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to load theatre states")
		WriteError(w, http.StatusInternalServerError, "failed to load theatre states")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(states),
		"theatres": states,
	})
}

// ListAlliancesHandler returns every alliance pressure rollup
func (h *StateHandler) ListAlliancesHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	pressures, err := h.state.GetAllAlliancePressures(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to load alliance pressures")
		WriteError(w, http.StatusInternalServerError, "failed to load alliance pressures")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(pressures),
		"alliances": pressures,
	})
}

// ListScenariosHandler returns the latest score for every scenario
func (h *StateHandler) ListScenariosHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	scores, err := h.scenario.GetAllScores(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to load scenario scores")
		WriteError(w, http.StatusInternalServerError, "failed to load scenario scores")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(scores),
		"scenarios": scores,
	})
}
