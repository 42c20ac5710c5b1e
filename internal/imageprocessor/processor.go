package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// Receipt proofs are phone camera shots; cap the stored edge length so a
// 12MP upload does not land in storage at full size.
const (
	MaxEdge     = 1600
	JPEGQuality = 85
)

// Normalize decodes a proof image, downscales it to fit MaxEdge and
// re-encodes it. WebP input is converted to JPEG since the standard
// library cannot encode it; PNG stays PNG, everything else becomes JPEG.
// Returns the processed bytes and the content type they now have.
func Normalize(reader io.Reader, contentType string) (io.Reader, string, error) {
	var (
		img image.Image
		err error
	)

	switch contentType {
	case "image/webp":
		img, err = webp.Decode(reader)
	default:
		img, _, err = image.Decode(reader)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode proof image: %w", err)
	}

	img = downscale(img)

	var buf bytes.Buffer
	if contentType == "image/png" {
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("failed to encode PNG: %w", err)
		}
		return &buf, "image/png", nil
	}

	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, "", fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return &buf, "image/jpeg", nil
}

// downscale fits the image inside MaxEdge x MaxEdge, preserving aspect
// ratio. Images already small enough pass through untouched.
func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= MaxEdge && h <= MaxEdge {
		return img
	}

	scale := float64(MaxEdge) / float64(w)
	if h > w {
		scale = float64(MaxEdge) / float64(h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
