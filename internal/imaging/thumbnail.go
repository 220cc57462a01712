// Package imaging turns uploaded profile pictures into fixed-size PNG thumbnails.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif" // register decoders
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ProfilePhotoSize is the edge length of stored profile photos.
const ProfilePhotoSize = 200

// Resize scales src to exactly width×height, ignoring aspect ratio.
func Resize(src image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// ProfileThumbnail decodes data (jpeg, png, gif or webp), resizes it to
// ProfilePhotoSize square and returns the PNG encoding as base64.
func ProfileThumbnail(data []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, Resize(src, ProfilePhotoSize, ProfilePhotoSize)); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
