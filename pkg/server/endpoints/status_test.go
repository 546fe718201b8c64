package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleWelcome(t *testing.T) {
	t.Run("returns HTML welcome page", func(t *testing.T) {
		handler := handleWelcome()

		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "The install worked successfully!")
	})

	t.Run("returns JSON when Accept header is application/json", func(t *testing.T) {
		handler := handleWelcome()

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

		var res map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.NotEmpty(t, res["version"])
	})

	t.Run("returns JSON when format=json", func(t *testing.T) {
		handler := handleWelcome()

		req := httptest.NewRequest("GET", "/?format=json", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})
}

func TestHealth(t *testing.T) {
	health := &mockHealthStore{}
	srv, err := NewTestServer(newMockUserStore(), newMockSessionStore(), health)
	require.NoError(t, err)
	RegisterHealthEndpoint(srv)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "ok", res.Status)
	assert.Equal(t, "ok", res.Database)
}

func TestHealthDatabaseDown(t *testing.T) {
	health := &mockHealthStore{fail: true}
	srv, err := NewTestServer(newMockUserStore(), newMockSessionStore(), health)
	require.NoError(t, err)
	RegisterHealthEndpoint(srv)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var res HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "error", res.Status)
}

func TestDocs(t *testing.T) {
	srv, err := NewTestServer(newMockUserStore(), newMockSessionStore(), &mockHealthStore{})
	require.NoError(t, err)
	RegisterDocsEndpoints(srv)

	tests := []struct {
		path string
		want int
	}{
		{"/docs", http.StatusOK},
		{"/docs/settings", http.StatusOK},
		{"/docs/cli", http.StatusOK},
		{"/docs/api", http.StatusOK},
		{"/docs/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, req)
		assert.Equal(t, tt.want, rec.Code, tt.path)
		if tt.want == http.StatusOK {
			assert.Contains(t, rec.Body.String(), "<html>", tt.path)
		}
	}
}

func TestStaticFiles(t *testing.T) {
	srv, err := NewTestServer(newMockUserStore(), newMockSessionStore(), &mockHealthStore{})
	require.NoError(t, err)
	RegisterStaticFiles(srv)

	req := httptest.NewRequest(http.MethodGet, "/static/css/welcome-page.css", nil)
	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "body {"), "expected the bundled stylesheet body")
}
