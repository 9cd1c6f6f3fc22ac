package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/pixelforge/thumbnailer/internal/domain"
	"github.com/pixelforge/thumbnailer/internal/repository"
)

type metadataRepository struct {
	db    *DB
	table string
}

// NewMetadataRepository returns a repository writing to the given metadata
// table. The table name comes from configuration, so it is quoted rather
// than interpolated raw.
func NewMetadataRepository(db *DB, table string) *metadataRepository {
	return &metadataRepository{db: db, table: table}
}

func (r *metadataRepository) Insert(ctx context.Context, meta *domain.ImageMetadata) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query := fmt.Sprintf(`
			INSERT INTO %s (
				image_id, original_key, resized_key,
				upload_time, source_bucket, dest_bucket
			) VALUES ($1, $2, $3, $4, $5, $6)
		`, pq.QuoteIdentifier(r.table))

		_, err := tx.ExecContext(
			ctx,
			query,
			meta.ImageID,
			meta.OriginalKey,
			meta.ResizedKey,
			meta.UploadTime,
			meta.SourceBucket,
			meta.DestBucket,
		)
		if err != nil {
			return fmt.Errorf("failed to insert image metadata: %w", err)
		}

		return nil
	})
}

var _ repository.MetadataRepository = (*metadataRepository)(nil)
