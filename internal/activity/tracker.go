// Package activity reports user actions to the analytics collaborator.
// Tracking is best-effort everywhere it is used: callers log and swallow
// failures rather than blocking the action being tracked.
package activity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/afzaalahmad/bookpal/internal/models"
)

// ActionTranslate is the event tag for the per-page translation toggle.
const ActionTranslate = "translate_to_urdu"

// ActionOpenChapter is the event tag for opening a chapter in the reader.
const ActionOpenChapter = "open_chapter"

// Tracker records activity events.
type Tracker interface {
	Track(ctx context.Context, event models.ActivityEvent) error
}

// HTTPTracker posts events to POST {base}/activity/track with the
// session's bearer token. The response body is ignored.
type HTTPTracker struct {
	baseURL    string
	httpClient *http.Client
	// token returns the current bearer token; wired to the session store.
	token func() string
}

// NewHTTPTracker returns a tracker for the endpoint at baseURL. token
// supplies the bearer credential per request.
func NewHTTPTracker(baseURL string, timeout time.Duration, token func() string) *HTTPTracker {
	return &HTTPTracker{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
	}
}

// Track sends one event. The caller decides whether a failure matters;
// every current caller logs and moves on.
func (t *HTTPTracker) Track(ctx context.Context, event models.ActivityEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/activity/track", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.token != nil {
		if tok := t.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("track request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("track request failed: status %d", resp.StatusCode)
	}
	return nil
}
