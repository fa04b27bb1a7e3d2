package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client asks the answer service at POST {base}/api/rag/query. The
// request body carries the query under "query_text", matching the
// answer service's schema.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the answer service at baseURL.
// Requests time out after the given duration.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type queryRequest struct {
	QueryText string `json:"query_text"`
}

type queryResponse struct {
	// Answer is a pointer so a missing field is distinguishable from an
	// empty string; both the missing and wrong-typed cases are failures.
	Answer *string `json:"answer"`
}

// Answer sends one query and returns the answer text. Non-2xx statuses
// and malformed bodies are errors; the transcript turns them into the
// fixed fallback bubble.
func (c *Client) Answer(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(queryRequest{QueryText: query})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/rag/query", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("query request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("query request failed: status %d", resp.StatusCode)
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return "", fmt.Errorf("malformed answer body: %w", err)
	}
	if qr.Answer == nil {
		return "", fmt.Errorf("answer field missing from response")
	}
	return *qr.Answer, nil
}
