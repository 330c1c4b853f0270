package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/argus/internal/common"
	"github.com/ternarybob/argus/internal/interfaces"
	"github.com/ternarybob/argus/internal/models"
)

// ItemHandler is the ingest seam: collaborators push canonicalized news
// items here and the next aggregation cycle picks them up.
type ItemHandler struct {
	items  interfaces.ItemStorage
	logger arbor.ILogger
}

func NewItemHandler(items interfaces.ItemStorage) *ItemHandler {
	return &ItemHandler{
		items:  items,
		logger: common.GetLogger(),
	}
}

type ingestRequest struct {
	Title             string    `json:"title"`
	Summary           string    `json:"summary"`
	URL               string    `json:"url"`
	Source            string    `json:"source"`
	SourceReliability int       `json:"source_reliability"`
	PublishedAt       time.Time `json:"published_at"`
}

// IngestHandler accepts one raw item for the next aggregation cycle
func (h *ItemHandler) IngestHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Title == "" {
		WriteError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.URL == "" {
		WriteError(w, http.StatusBadRequest, "url is required")
		return
	}
	if req.SourceReliability < 1 || req.SourceReliability > 5 {
		req.SourceReliability = 3
	}
	if req.PublishedAt.IsZero() {
		req.PublishedAt = time.Now().UTC()
	}

	item := &models.RawItem{
		ID:                common.NewItemID(),
		Title:             req.Title,
		Summary:           req.Summary,
		URL:               req.URL,
		Source:            req.Source,
		SourceReliability: req.SourceReliability,
		PublishedAt:       req.PublishedAt,
		IngestedAt:        time.Now().UTC(),
	}
	if err := h.items.SaveItem(r.Context(), item); err != nil {
		h.logger.Error().Err(err).Msg("Failed to save item")
		WriteError(w, http.StatusInternalServerError, "failed to save item")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]string{
		"status": "accepted",
		"id":     item.ID,
	})
}
