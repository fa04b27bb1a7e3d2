package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/afzaalahmad/bookpal/internal/middleware"
	"github.com/afzaalahmad/bookpal/internal/models"
)

// ProgressStore persists per-week reading progress.
type ProgressStore interface {
	Upsert(ctx context.Context, p models.Progress) error
	ListByUser(ctx context.Context, userID string) ([]models.Progress, error)
}

// ProgressHandler handles reading progress requests.
type ProgressHandler struct {
	// Store persists the progress rows.
	Store ProgressStore
}

// progressRequest represents the JSON payload for recording progress.
type progressRequest struct {
	WeekNumber        int `json:"week_number"`
	CompletionPercent int `json:"completion_percent"`
}

// Record handles POST /progress. Recording the same week twice updates
// the stored completion rather than adding a row.
func (h *ProgressHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.WeekNumber < 1 || req.CompletionPercent < 0 || req.CompletionPercent > 100 {
		http.Error(w, "week_number must be positive and completion_percent within 0-100", http.StatusBadRequest)
		return
	}

	p := models.Progress{
		ID:                uuid.NewString(),
		UserID:            middleware.GetUserIDFromContext(r.Context()),
		WeekNumber:        req.WeekNumber,
		CompletionPercent: req.CompletionPercent,
	}
	if err := h.Store.Upsert(r.Context(), p); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// List handles GET /progress and returns the authenticated user's
// progress rows ordered by week.
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Store.ListByUser(r.Context(), middleware.GetUserIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}
