package news

import (
	"context"
	"net/url"
)

// Provider performs a single GET against the upstream news API endpoint.
// Implementations own authentication, timeouts and retry policy; the service
// only decides which endpoint to hit and with which parameters.
type Provider interface {
	Get(ctx context.Context, endpoint string, params url.Values) (*Result, error)
}
