package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/afzaalahmad/bookpal/internal/service"
)

// fakeTranslateService implements TranslateService for testing.
type fakeTranslateService struct {
	translated string
	err        error
}

func (f *fakeTranslateService) TranslateToUrdu(ctx context.Context, content string) (string, error) {
	return f.translated, f.err
}

func TestTranslateHandler_Urdu(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeTranslateService
		expectedCode int
	}{
		{
			name:         "invalid JSON",
			body:         `{`,
			service:      &fakeTranslateService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "empty content",
			body:         `{"content":""}`,
			service:      &fakeTranslateService{err: service.ErrEmptyContent},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "service failure",
			body:         `{"content":"# Chapter"}`,
			service:      &fakeTranslateService{err: errors.New("boom")},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "success",
			body:         `{"content":"# Chapter"}`,
			service:      &fakeTranslateService{translated: "## ترجمہ"},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/translate/urdu", bytes.NewBufferString(tt.body))
			h := &TranslateHandler{TranslateService: tt.service}

			h.Urdu(rec, req)

			if rec.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.expectedCode == http.StatusOK {
				var resp translateResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("invalid JSON response: %v", err)
				}
				if resp.TranslatedContent != "## ترجمہ" {
					t.Errorf("unexpected translated content %q", resp.TranslatedContent)
				}
			}
		})
	}
}
