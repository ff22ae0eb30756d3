package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsmark/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	}))
	defer srv.Close()

	c := NewClient(config.Config{UpstreamTimeoutSec: 2})

	status, contentType, body, err := c.Fetch(context.Background(), srv.URL+"/a.png")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, body)
}

func TestClient_Fetch_OriginError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(config.Config{UpstreamTimeoutSec: 2})

	status, _, _, err := c.Fetch(context.Background(), srv.URL+"/missing.png")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestClient_Fetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(config.Config{UpstreamTimeoutSec: 2})

	_, _, _, err := c.Fetch(context.Background(), srv.URL+"/a.png")
	require.Error(t, err)
}
