// internal/thumbnail/thumbnail.go
package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// MaxDimension bounds the longest side of a generated thumbnail.
const MaxDimension = 300

// ContentType is the MIME type of every generated thumbnail.
const ContentType = "image/jpeg"

// Generate decodes data as an image, scales it to fit within a
// MaxDimension square preserving aspect ratio (never upscaling), and
// re-encodes it as JPEG. It returns the encoded bytes and the output
// dimensions.
func Generate(data []byte) ([]byte, int, int, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}

	// Fit keeps aspect ratio and leaves images already inside the box
	// untouched, matching the contain-within-bounding-box thumbnail policy.
	thumb := imaging.Fit(src, MaxDimension, MaxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, nil); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	bounds := thumb.Bounds()
	return buf.Bytes(), bounds.Dx(), bounds.Dy(), nil
}
