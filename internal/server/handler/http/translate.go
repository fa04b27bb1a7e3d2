package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/afzaalahmad/bookpal/internal/service"
)

// TranslateService translates chapter content to Urdu.
type TranslateService interface {
	TranslateToUrdu(ctx context.Context, content string) (string, error)
}

// TranslateHandler handles chapter translation requests.
type TranslateHandler struct {
	// TranslateService performs the translation.
	TranslateService TranslateService
}

// translateRequest represents the JSON payload for a translation.
type translateRequest struct {
	Content string `json:"content"`
}

// translateResponse is the body returned for successful translations.
type translateResponse struct {
	TranslatedContent string `json:"translated_content"`
}

// Urdu handles POST /translate/urdu. Empty content is a 400; a service
// failure is a 500.
func (h *TranslateHandler) Urdu(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	translated, err := h.TranslateService.TranslateToUrdu(r.Context(), req.Content)
	if errors.Is(err, service.ErrEmptyContent) {
		http.Error(w, "content cannot be empty", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "translation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(translateResponse{TranslatedContent: translated})
}
