package news

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"newsmark/cmd/server/testutil"
	"newsmark/internal/services/news"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNewsService mocks the news service
type MockNewsService struct {
	mock.Mock
}

func (m *MockNewsService) Fetch(ctx context.Context, q news.Query) (*news.Result, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*news.Result), args.Error(1)
}

func (m *MockNewsService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func setupNewsTest(t *testing.T) (*MockNewsService, *fiber.App) {
	t.Helper()

	mockService := &MockNewsService{}
	app := testutil.CreateTestApp(t)
	v := testutil.CreateTestValidator(t)

	h := NewHandlers(mockService, v)

	api := app.Group("/api")
	api.Get("/news", h.News)
	api.Get("/ping", h.Ping)

	return mockService, app
}

func TestNews(t *testing.T) {
	t.Run("relays upstream body verbatim", func(t *testing.T) {
		svc, app := setupNewsTest(t)
		payload := `{"totalArticles":1,"articles":[{"title":"hello"}]}`
		svc.On("Fetch", mock.Anything, mock.AnythingOfType("news.Query")).
			Return(&news.Result{StatusCode: 200, ContentType: "application/json", Body: []byte(payload)}, nil)

		req := testutil.CreateJSONRequest(http.MethodGet, "/api/news?keyword=x", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, payload, string(body))
	})

	t.Run("query parameters reach the service", func(t *testing.T) {
		svc, app := setupNewsTest(t)
		svc.On("Fetch", mock.Anything, news.Query{
			Mode:     "search",
			Keyword:  "elections",
			Date:     "2024-01-01",
			Language: "fr",
		}).Return(&news.Result{StatusCode: 200, Body: []byte(`{}`)}, nil)

		req := testutil.CreateJSONRequest(http.MethodGet,
			"/api/news?mode=search&keyword=elections&date=2024-01-01&language=fr", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("missing keyword in search mode answers 400", func(t *testing.T) {
		svc, app := setupNewsTest(t)
		svc.On("Fetch", mock.Anything, mock.AnythingOfType("news.Query")).
			Return(nil, news.ErrKeywordRequired)

		req := testutil.CreateJSONRequest(http.MethodGet, "/api/news?mode=search", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Keyword is required for search mode", body["error"])
	})

	t.Run("invalid mode answers 400 before the service is called", func(t *testing.T) {
		svc, app := setupNewsTest(t)

		req := testutil.CreateJSONRequest(http.MethodGet, "/api/news?mode=firehose", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
	})

	t.Run("upstream error status forwarded with sanitized body", func(t *testing.T) {
		svc, app := setupNewsTest(t)
		svc.On("Fetch", mock.Anything, mock.AnythingOfType("news.Query")).
			Return(&news.Result{StatusCode: 429, ContentType: "application/json", Body: []byte(`{"errors":["rate limit, key k-123"]}`)}, nil)

		req := testutil.CreateJSONRequest(http.MethodGet, "/api/news", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "News provider error", body["error"], "upstream detail must not leak")
	})

	t.Run("unreachable upstream answers 500", func(t *testing.T) {
		svc, app := setupNewsTest(t)
		svc.On("Fetch", mock.Anything, mock.AnythingOfType("news.Query")).
			Return(nil, news.ErrUpstream)

		req := testutil.CreateJSONRequest(http.MethodGet, "/api/news", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Failed to fetch news", body["error"])
	})
}

func TestPing(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		svc, app := setupNewsTest(t)
		svc.On("Ping", mock.Anything).Return(nil)

		req := testutil.CreateJSONRequest(http.MethodGet, "/api/ping", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("unreachable reports detail", func(t *testing.T) {
		svc, app := setupNewsTest(t)
		svc.On("Ping", mock.Anything).Return(errors.New("news provider returned status 401"))

		req := testutil.CreateJSONRequest(http.MethodGet, "/api/ping", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "down", body["status"])
		assert.Contains(t, body["error"], "401")
	})
}
