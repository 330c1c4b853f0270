package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - Ingest
	mux.HandleFunc("/api/items", s.app.ItemHandler.IngestHandler) // POST - push a raw item

	// API routes - Cycles (administrative triggers + status)
	mux.HandleFunc("/api/cycles/aggregation", s.app.CycleHandler.RunAggregationHandler) // POST
	mux.HandleFunc("/api/cycles/state", s.app.CycleHandler.RunStateHandler)             // POST
	mux.HandleFunc("/api/cycles/status", s.app.CycleHandler.StatusHandler)              // GET

	// API routes - Computed state (read-only)
	mux.HandleFunc("/api/conflicts", s.app.StateHandler.ListConflictsHandler)
	mux.HandleFunc("/api/conflicts/", s.app.StateHandler.GetConflictHandler) // GET /{id}
	mux.HandleFunc("/api/theatres", s.app.StateHandler.ListTheatresHandler)
	mux.HandleFunc("/api/alliances", s.app.StateHandler.ListAlliancesHandler)
	mux.HandleFunc("/api/scenarios", s.app.StateHandler.ListScenariosHandler)

	// API routes - System
	mux.HandleFunc("/api/status", s.app.StatusHandler.GetStatusHandler)
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
