package pipeline

import "errors"

// Failure taxonomy for a single record. All of these abort the batch: the
// pipeline performs no retries, no per-record isolation and no cleanup of
// partially written derivatives.
var (
	// ErrSourceNotFound reports that the source object is missing or unreadable.
	ErrSourceNotFound = errors.New("source object not found")

	// ErrDecode reports that the source bytes are not a decodable image.
	ErrDecode = errors.New("image decode failed")

	// ErrWrite reports a failed upload of the derived object.
	ErrWrite = errors.New("derived object write failed")

	// ErrMetadataWrite reports a failed metadata record insert.
	ErrMetadataWrite = errors.New("metadata write failed")
)
