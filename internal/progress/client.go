// Package progress is the client for the reading-progress endpoints.
package progress

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

// Client talks to the /progress endpoints with the session's bearer token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      func() string
}

// NewClient returns a progress client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration, token func() string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
	}
}

// Record upserts completion for one week of the book.
func (c *Client) Record(ctx context.Context, weekNumber, completionPercent int) (*models.Progress, error) {
	body, err := json.Marshal(models.Progress{
		WeekNumber:        weekNumber,
		CompletionPercent: completionPercent,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/progress", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("progress request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("progress request failed: status %d", resp.StatusCode)
	}
	var out models.Progress
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns the reader's progress rows ordered by week.
func (c *Client) List(ctx context.Context) ([]models.Progress, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/progress", nil)
	if err != nil {
		return nil, err
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("progress request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("progress request failed: status %d", resp.StatusCode)
	}
	var out []models.Progress
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
