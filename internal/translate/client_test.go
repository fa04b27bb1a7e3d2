package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient_TranslateToUrdu(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/translate/urdu", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "some content", req["content"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"translated_content":"urdu content"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	out, err := c.TranslateToUrdu(context.Background(), "some content")
	require.NoError(t, err)
	require.Equal(t, "urdu content", out)
}

func TestClient_TranslateToUrduErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"http 500", http.StatusInternalServerError, `{}`},
		{"http 400", http.StatusBadRequest, `{}`},
		{"missing field", http.StatusOK, `{"content":"x"}`},
		{"not json", http.StatusOK, `nope`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, 5*time.Second)
			_, err := c.TranslateToUrdu(context.Background(), "content")
			require.Error(t, err)
		})
	}
}
