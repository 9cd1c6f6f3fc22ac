package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pixelforge/thumbnailer/internal/event"
	"github.com/pixelforge/thumbnailer/internal/pipeline"
	"github.com/stretchr/testify/assert"
)

type stubProcessor struct{}

func (stubProcessor) Process(context.Context, *event.Batch) (*pipeline.Result, error) {
	return &pipeline.Result{StatusCode: 200, Body: "ok"}, nil
}

func preflight(router http.Handler, origin string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/notifications", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	router.ServeHTTP(w, req)
	return w
}

func TestNewRouterHealth(t *testing.T) {
	router := NewRouter(stubProcessor{}, []string{"*"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestNewRouterAllowsAnyOriginByDefault(t *testing.T) {
	router := NewRouter(stubProcessor{}, []string{"*"})

	w := preflight(router, "https://anything.example.com")
	assert.Equal(t, "https://anything.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouterRestrictsToConfiguredOrigins(t *testing.T) {
	router := NewRouter(stubProcessor{}, []string{"https://app.example.com"})

	allowed := preflight(router, "https://app.example.com")
	assert.Equal(t, "https://app.example.com", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := preflight(router, "https://evil.example.com")
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}

func TestNormalizeAllowedOrigins(t *testing.T) {
	parsed, allowAll := normalizeAllowedOrigins([]string{"https://a.example.com, https://b.example.com", ""})
	assert.False(t, allowAll)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, parsed)

	_, allowAll = normalizeAllowedOrigins([]string{"*"})
	assert.True(t, allowAll)
}
