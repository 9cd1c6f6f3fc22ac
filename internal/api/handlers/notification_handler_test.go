package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pixelforge/thumbnailer/internal/event"
	"github.com/pixelforge/thumbnailer/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProcessor struct {
	batch  *event.Batch
	result *pipeline.Result
	err    error
}

func (s *stubProcessor) Process(_ context.Context, batch *event.Batch) (*pipeline.Result, error) {
	s.batch = batch
	return s.result, s.err
}

func newTestRouter(proc BatchProcessor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/notifications", NewNotificationHandler(proc).HandleBatch)
	return router
}

func TestHandleBatchSuccess(t *testing.T) {
	proc := &stubProcessor{
		result: &pipeline.Result{StatusCode: 200, Body: "Image resized and metadata stored successfully."},
	}
	router := newTestRouter(proc)

	body := `{"Records":[{"s3":{"bucket":{"name":"uploads"},"object":{"key":"photos/cat.png"}}}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"statusCode":200,"body":"Image resized and metadata stored successfully."}`, w.Body.String())

	require.NotNil(t, proc.batch)
	require.Len(t, proc.batch.Records, 1)
	assert.Equal(t, "photos/cat.png", proc.batch.Records[0].Key())
}

func TestHandleBatchPipelineFailure(t *testing.T) {
	proc := &stubProcessor{err: errors.New("source object not found: uploads/missing.png")}
	router := newTestRouter(proc)

	body := `{"Records":[{"s3":{"object":{"key":"missing.png"}}}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "missing.png")
}

func TestHandleBatchInvalidJSON(t *testing.T) {
	proc := &stubProcessor{}
	router := newTestRouter(proc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, proc.batch)
}
