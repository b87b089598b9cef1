package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls the external video-matching model over HTTP. The model ranks
// clips against a prompt; this service never sees its internals.
type Client struct {
	Endpoint string
	APIKey   string
	HTTP     *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		Endpoint: endpoint,
		APIKey:   apiKey,
		HTTP: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Request is the full search payload forwarded to the model.
type Request struct {
	Prompt              string  `json:"prompt"`
	SimilarityThreshold float64 `json:"similarity_threshold"`
	MatchCount          int     `json:"match_count"`
}

// Match is one ranked result. StorageURL is the opaque locator of the stored
// asset; the gateway replaces it with a signed access URL before responding.
type Match struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	StorageURL string  `json:"s3_url"`
	Similarity float64 `json:"similarity"`
}

// Response mirrors the model's answer.
type Response struct {
	Matches   []Match `json:"matches"`
	Prompt    string  `json:"prompt"`
	Threshold float64 `json:"threshold"`
}

// Predict runs one synchronous inference call. Any transport failure or
// non-success status is a hard failure; there are no retries.
func (c *Client) Predict(ctx context.Context, req Request) (*Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.Endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Api-Key "+c.APIKey)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("inference error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var out Response
	if err := json.Unmarshal(bodyBytes, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &out, nil
}
