package imageutil_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"encore-backend/internal/imageutil"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 50, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCompress_ShrinksOversizedImage(t *testing.T) {
	data := encodePNG(t, 3200, 1600)

	out, err := imageutil.Compress(data)
	assert.NoError(t, err)

	decoded, err := imaging.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	bounds := decoded.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), imageutil.MaxDimension)
	assert.LessOrEqual(t, bounds.Dy(), imageutil.MaxDimension)
	// Aspect ratio survives the fit.
	assert.Equal(t, bounds.Dx(), bounds.Dy()*2)
}

func TestCompress_KeepsSmallImageDimensions(t *testing.T) {
	data := encodePNG(t, 640, 480)

	out, err := imageutil.Compress(data)
	assert.NoError(t, err)

	decoded, err := imaging.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, 640, decoded.Bounds().Dx())
	assert.Equal(t, 480, decoded.Bounds().Dy())

	// Output is always JPEG, whatever came in.
	_, format, err := image.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestCompress_RejectsGarbage(t *testing.T) {
	_, err := imageutil.Compress([]byte("not an image"))
	assert.Error(t, err)
}
