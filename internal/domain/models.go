// internal/domain/models.go
package domain

// ImageMetadata links a source object to its resized derivative. One row is
// written per processed notification record; rows are never updated or
// deleted, so reprocessing the same key yields a new independent row.
type ImageMetadata struct {
	ImageID      string `json:"image_id" db:"image_id"`
	OriginalKey  string `json:"original_key" db:"original_key"`
	ResizedKey   string `json:"resized_key" db:"resized_key"`
	UploadTime   string `json:"upload_time" db:"upload_time"`
	SourceBucket string `json:"source_bucket" db:"source_bucket"`
	DestBucket   string `json:"dest_bucket" db:"dest_bucket"`
}
