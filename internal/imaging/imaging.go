package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"strings"

	"golang.org/x/image/draw"
)

// MaxUploadSize is the largest accepted product image.
const MaxUploadSize = 5 << 20 // 5 MB

// MaxDimension is the maximum width or height for preview images.
const MaxDimension = 512

// JPEGQuality is the compression quality for JPEG output.
const JPEGQuality = 85

// ErrTooLarge is returned for uploads over MaxUploadSize.
var ErrTooLarge = errors.New("file size must be less than 5MB")

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Preview reads an uploaded image, enforces the size cap, validates the
// format by sniffing bytes, downscales to preview size, and returns the
// result as a data URI ready for inline display and submission.
func Preview(r io.Reader) (string, error) {
	// Read one byte past the cap so oversize uploads are detected without
	// buffering the whole file.
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("reading image data: %w", err)
	}
	if len(data) > MaxUploadSize {
		return "", ErrTooLarge
	}

	// Sniff actual MIME type from bytes (not trusting client headers).
	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return "", fmt.Errorf("unsupported image format: %s (only JPEG and PNG accepted)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return "", fmt.Errorf("encoding JPEG: %w", err)
	}

	return DataURI(buf.Bytes(), "image/jpeg"), nil
}

// DataURI encodes image bytes as a data URI.
func DataURI(data []byte, mime string) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// IsDataURI reports whether ref is an inline data URI rather than a
// server-relative image path.
func IsDataURI(ref string) bool {
	return strings.HasPrefix(ref, "data:")
}

// downscale resizes the image so neither dimension exceeds maxDim.
// Uses high-quality Catmull-Rom interpolation.
// Returns the original image if already within bounds.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	// Calculate new dimensions preserving aspect ratio.
	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}

	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func init() {
	// Register decoders (jpeg is registered by default, but be explicit).
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
