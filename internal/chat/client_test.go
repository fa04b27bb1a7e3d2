package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient_Answer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/rag/query", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "hello", req["query_text"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"answer":"hi"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	answer, err := c.Answer(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "hi", answer)
}

func TestClient_AnswerErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
	}{
		{"http 500", http.StatusInternalServerError, `{"answer":"x"}`},
		{"missing answer field", http.StatusOK, `{"result":"x"}`},
		{"wrong-typed answer", http.StatusOK, `{"answer":42}`},
		{"not json", http.StatusOK, `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, 5*time.Second)
			_, err := c.Answer(context.Background(), "hello")
			require.Error(t, err)
		})
	}
}

func TestClient_AnswerTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	c := NewClient(srv.URL, time.Second)
	_, err := c.Answer(context.Background(), "hello")
	require.Error(t, err)
}
