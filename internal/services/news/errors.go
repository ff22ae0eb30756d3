package news

import "errors"

// ErrKeywordRequired is returned for search mode without a keyword.
// No upstream call is made in that case.
var ErrKeywordRequired = errors.New("keyword is required for search mode")

// ErrUpstream is returned when the provider could not be reached at all
// (network failure, timeout). Provider-level HTTP errors are forwarded with
// their status instead.
var ErrUpstream = errors.New("failed to fetch news")
