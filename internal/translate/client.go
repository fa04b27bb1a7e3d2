// Package translate swaps a page's rendered content with its Urdu
// translation and back.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// TranslationClient is the translation collaborator.
type TranslationClient interface {
	TranslateToUrdu(ctx context.Context, content string) (string, error)
}

// Client calls the translation service at POST {base}/translate/urdu.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the translation service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type translateRequest struct {
	Content string `json:"content"`
}

type translateResponse struct {
	TranslatedContent *string `json:"translated_content"`
}

// TranslateToUrdu submits the page content and returns the translated
// rendering.
func (c *Client) TranslateToUrdu(ctx context.Context, content string) (string, error) {
	body, err := json.Marshal(translateRequest{Content: content})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate/urdu", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("translation request failed: status %d", resp.StatusCode)
	}

	var tr translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("malformed translation body: %w", err)
	}
	if tr.TranslatedContent == nil {
		return "", fmt.Errorf("translated_content field missing from response")
	}
	return *tr.TranslatedContent, nil
}
