package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/argus/internal/common"
	"github.com/ternarybob/argus/internal/interfaces"
	"github.com/ternarybob/argus/internal/services/pipeline"
)

// CycleHandler exposes the administrative cycle triggers and status.
// Both cycles are idempotent, so triggering them more often than their
// scheduled cadence is safe.
type CycleHandler struct {
	pipeline  *pipeline.Service
	scheduler interfaces.SchedulerService
	logger    arbor.ILogger
}

func NewCycleHandler(pipelineService *pipeline.Service, schedulerService interfaces.SchedulerService) *CycleHandler {
	return &CycleHandler{
		pipeline:  pipelineService,
		scheduler: schedulerService,
		logger:    common.GetLogger(),
	}
}

// RunAggregationHandler triggers an aggregation cycle synchronously and
// returns its result
func (h *CycleHandler) RunAggregationHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	result, err := h.pipeline.RunAggregationCycle(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Aggregation cycle failed")
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// RunStateHandler triggers a state-update cycle synchronously and
// returns its result
func (h *CycleHandler) RunStateHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	result, err := h.pipeline.RunStateCycle(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("State cycle failed")
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// StatusHandler returns the latest cycle results and scheduler job
// statuses
func (h *CycleHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	status := h.pipeline.Status()
	response := map[string]interface{}{
		"last_aggregation": status.LastAggregation,
		"last_state":       status.LastState,
	}
	if h.scheduler != nil {
		response["scheduler_running"] = h.scheduler.IsRunning()
		response["jobs"] = h.scheduler.GetAllJobStatuses()
	}
	WriteJSON(w, http.StatusOK, response)
}
