package http

import (
	"context"
	"encoding/json"
	"net/http"
)

// AnswerService answers reader questions from the book text.
type AnswerService interface {
	Answer(ctx context.Context, query string) (string, error)
}

// RagHandler handles book question requests.
type RagHandler struct {
	// AnswerService produces answers for queries.
	AnswerService AnswerService
}

// ragRequest represents the JSON payload for a question.
type ragRequest struct {
	QueryText string `json:"query_text"`
}

// ragResponse is the body returned for every answered question.
type ragResponse struct {
	Answer string `json:"answer"`
}

// Query handles POST /api/rag/query. The endpoint always responds 200
// with an answer; empty or unanswerable queries get fallback text from
// the service rather than an error status.
func (h *RagHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req ragRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	answer, err := h.AnswerService.Answer(r.Context(), req.QueryText)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ragResponse{Answer: answer})
}
