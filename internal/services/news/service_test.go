package news

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// MockProvider is a mock implementation of Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Get(ctx context.Context, endpoint string, params url.Values) (*Result, error) {
	args := m.Called(ctx, endpoint, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Result), args.Error(1)
}

func okResult() *Result {
	return &Result{StatusCode: 200, ContentType: "application/json", Body: []byte(`{"articles":[]}`)}
}

func TestService_Fetch_TopHeadlinesDefaults(t *testing.T) {
	provider := &MockProvider{}
	provider.On("Get", mock.Anything, "top-headlines", mock.MatchedBy(func(p url.Values) bool {
		return p.Get("lang") == "en" &&
			p.Get("country") == "in" &&
			p.Get("topic") == "general" &&
			!p.Has("source") &&
			!p.Has("q")
	})).Return(okResult(), nil)

	svc := NewService(provider, silentLogger)
	result, err := svc.Fetch(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, 200, result.StatusCode)
	provider.AssertExpectations(t)
}

func TestService_Fetch_TopHeadlinesWithSource(t *testing.T) {
	provider := &MockProvider{}
	provider.On("Get", mock.Anything, "top-headlines", mock.MatchedBy(func(p url.Values) bool {
		return p.Get("source") == "bbc" && p.Get("topic") == "technology" && p.Get("country") == "us"
	})).Return(okResult(), nil)

	svc := NewService(provider, silentLogger)
	_, err := svc.Fetch(context.Background(), Query{
		Mode:     ModeTopHeadlines,
		Category: "technology",
		Country:  "us",
		Source:   "bbc",
	})
	require.NoError(t, err)
	provider.AssertExpectations(t)
}

func TestService_Fetch_SearchRequiresKeyword(t *testing.T) {
	provider := &MockProvider{}

	svc := NewService(provider, silentLogger)
	_, err := svc.Fetch(context.Background(), Query{Mode: ModeSearch})

	require.ErrorIs(t, err, ErrKeywordRequired)
	// No outbound call may be made when the keyword is missing.
	provider.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Fetch_SearchParams(t *testing.T) {
	provider := &MockProvider{}
	provider.On("Get", mock.Anything, "search", mock.MatchedBy(func(p url.Values) bool {
		return p.Get("q") == "elections" &&
			p.Get("lang") == "en" &&
			p.Get("sortby") == "publishedAt" &&
			!p.Has("from") && !p.Has("to")
	})).Return(okResult(), nil)

	svc := NewService(provider, silentLogger)
	_, err := svc.Fetch(context.Background(), Query{Mode: ModeSearch, Keyword: "elections"})
	require.NoError(t, err)
	provider.AssertExpectations(t)
}

func TestService_Fetch_SearchDateExpandsToFullDayWindow(t *testing.T) {
	provider := &MockProvider{}
	provider.On("Get", mock.Anything, "search", mock.MatchedBy(func(p url.Values) bool {
		return p.Get("from") == "2024-01-01T00:00:00Z" && p.Get("to") == "2024-01-01T23:59:59Z"
	})).Return(okResult(), nil)

	svc := NewService(provider, silentLogger)
	_, err := svc.Fetch(context.Background(), Query{
		Mode:    ModeSearch,
		Keyword: "x",
		Date:    "2024-01-01",
	})
	require.NoError(t, err)
	provider.AssertExpectations(t)
}

func TestService_Fetch_UpstreamStatusForwarded(t *testing.T) {
	provider := &MockProvider{}
	provider.On("Get", mock.Anything, "top-headlines", mock.Anything).
		Return(&Result{StatusCode: 403, ContentType: "application/json", Body: []byte(`{"errors":["quota"]}`)}, nil)

	svc := NewService(provider, silentLogger)
	result, err := svc.Fetch(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, 403, result.StatusCode)
}

func TestService_Fetch_NetworkFailure(t *testing.T) {
	provider := &MockProvider{}
	provider.On("Get", mock.Anything, "top-headlines", mock.Anything).
		Return(nil, errors.New("dial tcp: connection refused"))

	svc := NewService(provider, silentLogger)
	_, err := svc.Fetch(context.Background(), Query{})
	require.ErrorIs(t, err, ErrUpstream)
}

func TestService_Ping(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		provider := &MockProvider{}
		provider.On("Get", mock.Anything, "top-headlines", mock.MatchedBy(func(p url.Values) bool {
			return p.Get("max") == "1"
		})).Return(okResult(), nil)

		svc := NewService(provider, silentLogger)
		require.NoError(t, svc.Ping(context.Background()))
	})

	t.Run("provider error status", func(t *testing.T) {
		provider := &MockProvider{}
		provider.On("Get", mock.Anything, "top-headlines", mock.Anything).
			Return(&Result{StatusCode: 401}, nil)

		svc := NewService(provider, silentLogger)
		require.Error(t, svc.Ping(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		provider := &MockProvider{}
		provider.On("Get", mock.Anything, "top-headlines", mock.Anything).
			Return(nil, errors.New("timeout"))

		svc := NewService(provider, silentLogger)
		require.Error(t, svc.Ping(context.Background()))
	})
}

func TestQuery_ApplyDefaults(t *testing.T) {
	q := Query{}
	q.applyDefaults()
	assert.Equal(t, ModeTopHeadlines, q.Mode)
	assert.Equal(t, DefaultCategory, q.Category)
	assert.Equal(t, DefaultLanguage, q.Language)
	assert.Equal(t, DefaultCountry, q.Country)
	assert.Equal(t, DefaultSortBy, q.SortBy)

	q = Query{Mode: ModeSearch, Language: "fr", Country: "fr", Category: "world", SortBy: "relevance"}
	q.applyDefaults()
	assert.Equal(t, ModeSearch, q.Mode)
	assert.Equal(t, "fr", q.Language)
	assert.Equal(t, "fr", q.Country)
	assert.Equal(t, "world", q.Category)
	assert.Equal(t, "relevance", q.SortBy)
}
