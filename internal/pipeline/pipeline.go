// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/pixelforge/thumbnailer/internal/domain"
	"github.com/pixelforge/thumbnailer/internal/event"
	"github.com/pixelforge/thumbnailer/internal/repository"
	"github.com/pixelforge/thumbnailer/internal/storage"
	"github.com/pixelforge/thumbnailer/internal/thumbnail"
	"github.com/rs/zerolog/log"
)

// ResizedPrefix is the destination key prefix for derived objects. The
// derived key is always ResizedPrefix + basename(source key); source keys
// from different prefixes sharing a basename overwrite each other silently.
const ResizedPrefix = "resized/"

const successBody = "Image resized and metadata stored successfully."

// Result is the fixed success payload returned after a batch completes. It
// does not aggregate per-record outcomes.
type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Config names the buckets the pipeline reads from and writes to.
type Config struct {
	SourceBucket string
	DestBucket   string
}

// Pipeline turns uploaded images into bounded-size JPEG thumbnails and
// records one metadata row per processed notification record. It is
// stateless across invocations; the injected clients are the only
// process-wide state.
type Pipeline struct {
	store        storage.ObjectStorage
	meta         repository.MetadataRepository
	sourceBucket string
	destBucket   string
}

func New(store storage.ObjectStorage, meta repository.MetadataRepository, cfg Config) *Pipeline {
	return &Pipeline{
		store:        store,
		meta:         meta,
		sourceBucket: cfg.SourceBucket,
		destBucket:   cfg.DestBucket,
	}
}

// Process handles each record of the batch sequentially, in iteration
// order. The first failing record aborts the batch: later records are not
// attempted and anything already written for the failing record stays
// behind. On full success it returns the fixed success payload.
func (p *Pipeline) Process(ctx context.Context, batch *event.Batch) (*Result, error) {
	for _, rec := range batch.Records {
		if err := p.processRecord(ctx, rec); err != nil {
			return nil, err
		}
	}

	return &Result{StatusCode: 200, Body: successBody}, nil
}

func (p *Pipeline) processRecord(ctx context.Context, rec event.Record) error {
	key := rec.Key()
	imageID := uuid.NewString()

	data, err := p.store.GetObject(ctx, p.sourceBucket, key)
	if err != nil {
		return fmt.Errorf("%w: get %s/%s: %w", ErrSourceNotFound, p.sourceBucket, key, err)
	}

	thumb, width, height, err := thumbnail.Generate(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, key, err)
	}

	resizedKey := ResizedPrefix + path.Base(key)
	if err := p.store.PutObject(ctx, p.destBucket, resizedKey, thumb, thumbnail.ContentType); err != nil {
		return fmt.Errorf("%w: put %s/%s: %w", ErrWrite, p.destBucket, resizedKey, err)
	}

	meta := &domain.ImageMetadata{
		ImageID:      imageID,
		OriginalKey:  key,
		ResizedKey:   resizedKey,
		UploadTime:   time.Now().UTC().Format(time.RFC3339),
		SourceBucket: p.sourceBucket,
		DestBucket:   p.destBucket,
	}
	if err := p.meta.Insert(ctx, meta); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMetadataWrite, imageID, err)
	}

	log.Info().
		Str("image_id", imageID).
		Str("original_key", key).
		Str("resized_key", resizedKey).
		Int("width", width).
		Int("height", height).
		Msg("processed image")

	return nil
}
