package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/afzaalahmad/bookpal/internal/middleware"
	"github.com/afzaalahmad/bookpal/internal/models"
)

// ActivityStore persists tracked user actions.
type ActivityStore interface {
	Insert(ctx context.Context, event models.ActivityEvent) (models.ActivityLog, error)
}

// ActivityHandler handles activity tracking requests.
type ActivityHandler struct {
	// Store persists the events.
	Store ActivityStore
}

// Track handles POST /activity/track. The event's user_id must match
// the authenticated user; a mismatch is a 403.
func (h *ActivityHandler) Track(w http.ResponseWriter, r *http.Request) {
	var event models.ActivityEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if event.UserID == "" || event.Action == "" {
		http.Error(w, "user_id and action are required", http.StatusBadRequest)
		return
	}
	if event.UserID != middleware.GetUserIDFromContext(r.Context()) {
		http.Error(w, "cannot track activity for another user", http.StatusForbidden)
		return
	}

	logged, err := h.Store.Insert(r.Context(), event)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(logged)
}
