package repository

import (
	"context"

	"github.com/pixelforge/thumbnailer/internal/domain"
)

// MetadataRepository persists image metadata records. Insert-only: the
// pipeline never updates or deletes what it wrote.
type MetadataRepository interface {
	Insert(ctx context.Context, meta *domain.ImageMetadata) error
}
