package news

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"newsmark/internal/config"
	"newsmark/internal/services/news"

	"github.com/cenkalti/backoff/v4"
)

// Client implements news.Provider against a GNews-style HTTP API.
//
// Every call is an idempotent GET, so network-level failures and upstream
// 5xx responses are retried with capped exponential backoff. Logical 4xx
// responses are returned to the caller immediately, never retried.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	apiKey          string
	maxAttempts     int
	initialInterval time.Duration
	log             *slog.Logger
}

// NewClient creates a news API client from configuration.
func NewClient(cfg config.Config, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.UpstreamTimeoutSec) * time.Second,
		},
		baseURL:         strings.TrimRight(cfg.NewsAPIBaseURL, "/"),
		apiKey:          cfg.NewsAPIKey,
		maxAttempts:     cfg.UpstreamRetryMax,
		initialInterval: 500 * time.Millisecond,
		log:             log,
	}
}

// Get performs a GET against /{endpoint} with the given parameters plus the
// API token. The returned Result carries the upstream status and body
// verbatim; an error is returned only when no HTTP response was obtained at
// all within the attempt budget.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (*news.Result, error) {
	query := url.Values{}
	for k, vs := range params {
		query[k] = vs
	}
	query.Set("token", c.apiKey)

	requestURL := c.baseURL + "/" + endpoint + "?" + query.Encode()

	var last *news.Result

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Network-level failure, retryable.
			return err
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		last = &news.Result{
			StatusCode:  resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Body:        body,
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("upstream status %d", resp.StatusCode)
		}

		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialInterval

	policy := backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(c.maxAttempts-1)),
		ctx,
	)

	notify := func(err error, next time.Duration) {
		c.log.Warn("retrying news upstream call",
			"endpoint", endpoint, "error", err, "next_attempt_in", next)
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		if last != nil {
			// All attempts got an HTTP response (5xx); forward the last one
			// and let the handler relay the upstream status.
			return last, nil
		}
		return nil, err
	}

	return last, nil
}
