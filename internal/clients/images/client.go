package images

import (
	"context"
	"io"
	"net/http"
	"time"

	"newsmark/internal/config"
)

// Client fetches remote images with a bounded timeout. Image fetches are
// not retried: the frontend falls back to a placeholder on failure and a
// stale retry is worth less than a fast answer.
type Client struct {
	httpClient *http.Client
}

// NewClient creates an image fetch client from configuration.
func NewClient(cfg config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.UpstreamTimeoutSec) * time.Second,
		},
	}
}

// Fetch performs a single GET and returns the origin's status, declared
// content type and body bytes.
func (c *Client) Fetch(ctx context.Context, rawURL string) (int, string, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, "", nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", nil, err
	}

	return resp.StatusCode, resp.Header.Get("Content-Type"), body, nil
}
