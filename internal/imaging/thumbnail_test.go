package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestProfileThumbnail_ResizesToSquarePNG(t *testing.T) {
	tests := []struct {
		name   string
		encode func(*bytes.Buffer, image.Image) error
	}{
		{"png", func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) }},
		{"jpeg", func(b *bytes.Buffer, img image.Image) error { return jpeg.Encode(b, img, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var src bytes.Buffer
			require.NoError(t, tt.encode(&src, solid(640, 480, color.RGBA{R: 200, G: 30, B: 30, A: 255})))

			encoded, err := ProfileThumbnail(src.Bytes())
			require.NoError(t, err)

			raw, err := base64.StdEncoding.DecodeString(encoded)
			require.NoError(t, err)
			out, format, err := image.Decode(bytes.NewReader(raw))
			require.NoError(t, err)

			assert.Equal(t, "png", format)
			assert.Equal(t, ProfilePhotoSize, out.Bounds().Dx())
			assert.Equal(t, ProfilePhotoSize, out.Bounds().Dy())
		})
	}
}

func TestProfileThumbnail_RejectsNonImage(t *testing.T) {
	_, err := ProfileThumbnail([]byte("definitely not an image"))
	assert.ErrorContains(t, err, "decode image")
}

func TestResize_Upscales(t *testing.T) {
	out := Resize(solid(10, 20, color.White), 200, 200)
	assert.Equal(t, image.Rect(0, 0, 200, 200), out.Bounds())
}
