// Package imagecheck validates uploaded images before they are sent to a
// generation backend.
package imagecheck

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"
)

const (
	DefaultMaxBytes     = 5 * 1024 * 1024
	DefaultMaxDimension = 4096
)

var (
	ErrEmpty              = errors.New("image is empty")
	ErrTooLarge           = errors.New("image is too large")
	ErrUnsupportedFormat  = errors.New("unsupported image format")
	ErrCorrupted          = errors.New("image is corrupted")
	ErrDimensionsTooLarge = errors.New("image dimensions are too large")
)

// SupportedMIMETypes are the accepted image formats.
var SupportedMIMETypes = []string{"image/jpeg", "image/png", "image/webp"}

// Limits bounds accepted images. Zero values use the defaults.
type Limits struct {
	MaxBytes     int
	MaxDimension int
}

// Result describes a valid image.
type Result struct {
	MIMEType string
	Width    int
	Height   int
}

// Validate sniffs the content type from the bytes, ignoring any client-supplied
// type, and checks size and dimensions.
func Validate(data []byte, limits Limits) (Result, error) {
	if limits.MaxBytes <= 0 {
		limits.MaxBytes = DefaultMaxBytes
	}
	if limits.MaxDimension <= 0 {
		limits.MaxDimension = DefaultMaxDimension
	}

	if len(data) == 0 {
		return Result{}, ErrEmpty
	}
	if len(data) > limits.MaxBytes {
		return Result{}, fmt.Errorf("%w: %d bytes, max %d", ErrTooLarge, len(data), limits.MaxBytes)
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), SupportedMIMETypes...) {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mt.String())
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if cfg.Width > limits.MaxDimension || cfg.Height > limits.MaxDimension {
		return Result{}, fmt.Errorf("%w: %dx%d, max %d", ErrDimensionsTooLarge, cfg.Width, cfg.Height, limits.MaxDimension)
	}

	return Result{MIMEType: mt.String(), Width: cfg.Width, Height: cfg.Height}, nil
}
