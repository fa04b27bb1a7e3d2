package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/afzaalahmad/bookpal/internal/middleware"
	"github.com/afzaalahmad/bookpal/internal/models"
	"github.com/afzaalahmad/bookpal/internal/repository"
)

// NoteStore persists reader notes.
type NoteStore interface {
	Create(ctx context.Context, note models.Note) error
	ListByUser(ctx context.Context, userID string) ([]models.Note, error)
	Delete(ctx context.Context, userID, noteID string) error
}

// NoteHandler handles reader note requests.
type NoteHandler struct {
	// Store persists the notes.
	Store NoteStore
}

// noteRequest represents the JSON payload for creating a note.
type noteRequest struct {
	Content string `json:"content"`
}

// Create handles POST /notes. The note is owned by the authenticated
// user and gets a server-assigned id and timestamp.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	note := models.Note{
		ID:        uuid.NewString(),
		UserID:    middleware.GetUserIDFromContext(r.Context()),
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Store.Create(r.Context(), note); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(note)
}

// List handles GET /notes and returns the authenticated user's notes,
// newest first.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Store.ListByUser(r.Context(), middleware.GetUserIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(notes)
}

// Delete handles DELETE /notes/{id}. Deleting a note that does not
// exist, or that belongs to another user, is a 404.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")
	err := h.Store.Delete(r.Context(), middleware.GetUserIDFromContext(r.Context()), noteID)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
