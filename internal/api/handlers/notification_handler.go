// internal/api/handlers/notification_handler.go
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelforge/thumbnailer/internal/event"
	"github.com/pixelforge/thumbnailer/internal/pipeline"
	"github.com/rs/zerolog/log"
)

// BatchProcessor is the pipeline contract the handler invokes.
type BatchProcessor interface {
	Process(ctx context.Context, batch *event.Batch) (*pipeline.Result, error)
}

type NotificationHandler struct {
	processor BatchProcessor
}

func NewNotificationHandler(processor BatchProcessor) *NotificationHandler {
	return &NotificationHandler{processor: processor}
}

// HandleBatch accepts a notification batch and runs the pipeline over it
// synchronously. Any record failure aborts the batch and surfaces here as a
// 500 with the error string; on success the pipeline's fixed payload is
// returned as-is.
func (h *NotificationHandler) HandleBatch(c *gin.Context) {
	var batch event.Batch
	if err := c.ShouldBindJSON(&batch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification batch"})
		return
	}

	result, err := h.processor.Process(c.Request.Context(), &batch)
	if err != nil {
		log.Error().Err(err).Int("records", len(batch.Records)).Msg("batch processing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(result.StatusCode, result)
}
