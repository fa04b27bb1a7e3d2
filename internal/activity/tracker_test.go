package activity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/afzaalahmad/bookpal/internal/models"
)

func TestHTTPTracker_Track(t *testing.T) {
	var got models.ActivityEvent
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/activity/track", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := NewHTTPTracker(srv.URL, 5*time.Second, func() string { return "tok-1" })
	err := tr.Track(context.Background(), models.ActivityEvent{
		UserID:     "u1",
		Email:      "a@x.com",
		Action:     ActionTranslate,
		ResourceID: "week1/intro",
	})
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-1", auth)
	require.Equal(t, ActionTranslate, got.Action)
	require.Equal(t, "week1/intro", got.ResourceID)
}

func TestHTTPTracker_TrackFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	tr := NewHTTPTracker(srv.URL, 5*time.Second, func() string { return "" })
	err := tr.Track(context.Background(), models.ActivityEvent{Action: ActionTranslate})
	require.Error(t, err)
}
