package imageutil

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	// MaxDimension bounds the longest edge of an uploaded photo.
	MaxDimension = 1600
	// JPEGQuality is the re-encode quality for compressed uploads.
	JPEGQuality = 80
)

// Compress decodes an uploaded image, shrinks it to fit MaxDimension and
// re-encodes it as JPEG. All application photos are stored as JPEG
// regardless of the uploaded format.
func Compress(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
