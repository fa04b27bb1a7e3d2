package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeAnswerService implements AnswerService for testing.
type fakeAnswerService struct {
	answer string
	err    error

	gotQuery string
}

func (f *fakeAnswerService) Answer(ctx context.Context, query string) (string, error) {
	f.gotQuery = query
	return f.answer, f.err
}

func TestRagHandler_Query(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeAnswerService
		expectedCode int
		expectedAns  string
	}{
		{
			name:         "invalid JSON",
			body:         `nope`,
			service:      &fakeAnswerService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "empty query still answers",
			body:         `{"query_text":""}`,
			service:      &fakeAnswerService{answer: "please rephrase"},
			expectedCode: http.StatusOK,
			expectedAns:  "please rephrase",
		},
		{
			name:         "service failure",
			body:         `{"query_text":"servos"}`,
			service:      &fakeAnswerService{err: errors.New("boom")},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "success",
			body:         `{"query_text":"how do servos work?"}`,
			service:      &fakeAnswerService{answer: "like this"},
			expectedCode: http.StatusOK,
			expectedAns:  "like this",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/rag/query", bytes.NewBufferString(tt.body))
			h := &RagHandler{AnswerService: tt.service}

			h.Query(rec, req)

			if rec.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.expectedAns != "" {
				var resp ragResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("invalid JSON response: %v", err)
				}
				if resp.Answer != tt.expectedAns {
					t.Errorf("expected answer %q, got %q", tt.expectedAns, resp.Answer)
				}
			}
		})
	}
}

func TestRagHandler_QueryPassesQueryText(t *testing.T) {
	svc := &fakeAnswerService{answer: "ok"}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/rag/query", bytes.NewBufferString(`{"query_text":"what is PWM?"}`))

	(&RagHandler{AnswerService: svc}).Query(rec, req)

	if svc.gotQuery != "what is PWM?" {
		t.Errorf("expected the query text to reach the service, got %q", svc.gotQuery)
	}
}
