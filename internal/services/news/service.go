package news

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
)

// Service maps the internal query vocabulary onto provider parameters and
// relays the provider's response untouched.
type Service struct {
	provider Provider
	log      *slog.Logger
}

// NewService creates a new news service
func NewService(provider Provider, log *slog.Logger) *Service {
	return &Service{
		provider: provider,
		log:      log,
	}
}

// Fetch performs one upstream call selected by q.Mode.
//
// top-headlines attaches lang, country and topic (plus source when given).
// search requires a keyword and attaches lang, q and sortby; a date expands
// into a full-day UTC window (from=<date>T00:00:00Z, to=<date>T23:59:59Z).
func (s *Service) Fetch(ctx context.Context, q Query) (*Result, error) {
	q.applyDefaults()

	params := url.Values{}
	params.Set("lang", q.Language)

	var endpoint string
	switch q.Mode {
	case ModeSearch:
		if q.Keyword == "" {
			return nil, ErrKeywordRequired
		}
		endpoint = "search"
		params.Set("q", q.Keyword)
		params.Set("sortby", q.SortBy)
		if q.Date != "" {
			params.Set("from", q.Date+"T00:00:00Z")
			params.Set("to", q.Date+"T23:59:59Z")
		}
	default:
		endpoint = "top-headlines"
		params.Set("country", q.Country)
		params.Set("topic", q.Category)
		if q.Source != "" {
			params.Set("source", q.Source)
		}
	}

	result, err := s.provider.Get(ctx, endpoint, params)
	if err != nil {
		s.log.Error("news upstream call failed", "endpoint", endpoint, "error", err)
		return nil, ErrUpstream
	}

	return result, nil
}

// Ping probes the provider's top-headlines endpoint with a single-result
// request to report reachability.
func (s *Service) Ping(ctx context.Context) error {
	params := url.Values{}
	params.Set("lang", DefaultLanguage)
	params.Set("country", DefaultCountry)
	params.Set("topic", DefaultCategory)
	params.Set("max", "1")

	result, err := s.provider.Get(ctx, "top-headlines", params)
	if err != nil {
		return err
	}
	if result.StatusCode >= 400 {
		return fmt.Errorf("news provider returned status %d", result.StatusCode)
	}
	return nil
}
