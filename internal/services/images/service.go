package images

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
)

// ErrInvalidURL is returned for relay targets that are not http(s) URLs.
var ErrInvalidURL = errors.New("url must be an absolute http or https URL")

// ErrFetchFailed is the single outward error for any relay failure; the
// underlying cause is logged server-side only.
var ErrFetchFailed = errors.New("failed to fetch image")

// DefaultContentType is assumed when the origin does not declare one.
const DefaultContentType = "image/jpeg"

// Image is a fetched remote image: raw bytes plus the origin's content type.
type Image struct {
	ContentType string
	Body        []byte
}

// Fetcher retrieves a remote resource as raw bytes.
// StatusCode reflects the origin's HTTP status.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (statusCode int, contentType string, body []byte, err error)
}

// Service relays remote images so the browser never talks to the origin
// directly, sidestepping CORS and mixed-content restrictions.
type Service struct {
	fetcher Fetcher
	log     *slog.Logger
}

// NewService creates a new image relay service
func NewService(fetcher Fetcher, log *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		log:     log,
	}
}

// Relay fetches rawURL and returns its bytes and content type verbatim.
// Only http and https schemes are relayed.
func (s *Service) Relay(ctx context.Context, rawURL string) (*Image, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, ErrInvalidURL
	}

	status, contentType, body, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		s.log.Error("image fetch failed", "url", rawURL, "error", err)
		return nil, ErrFetchFailed
	}
	if status < 200 || status > 299 {
		s.log.Warn("image origin returned error status", "url", rawURL, "status", status)
		return nil, ErrFetchFailed
	}

	if contentType == "" {
		contentType = DefaultContentType
	}

	return &Image{
		ContentType: contentType,
		Body:        body,
	}, nil
}
