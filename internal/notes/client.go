// Package notes is the client for the reader-notes endpoints.
package notes

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

// Client talks to the /notes endpoints with the session's bearer token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      func() string
}

// NewClient returns a notes client for the backend at baseURL. token
// supplies the bearer credential per request.
func NewClient(baseURL string, timeout time.Duration, token func() string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notes request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notes request failed: status %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Create stores a new note and returns it with its server-assigned id.
func (c *Client) Create(ctx context.Context, content string) (*models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodPost, "/notes", map[string]string{"content": content}, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// List returns the reader's notes, newest first.
func (c *Client) List(ctx context.Context) ([]models.Note, error) {
	var out []models.Note
	if err := c.do(ctx, http.MethodGet, "/notes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a note by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notes/"+id, nil, nil)
}
