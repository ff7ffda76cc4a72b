package images

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/trendoralabs/trendora-backend/pkg/config"
)

// Processor shrinks oversized product images. The products service treats
// this as an external collaborator; Resizer is the in-process default.
type Processor interface {
	Fit(data []byte) ([]byte, error)
}

// Resizer scales images down into a bounding box, preserving aspect
// ratio. Images already within bounds pass through untouched.
type Resizer struct {
	maxWidth  int
	maxHeight int
}

// NewResizer builds a Resizer from the media config.
func NewResizer(cfg config.MediaConfig) *Resizer {
	width := cfg.MaxImageWidth
	if width <= 0 {
		width = 800
	}
	height := cfg.MaxImageHeight
	if height <= 0 {
		height = 800
	}
	return &Resizer{maxWidth: width, maxHeight: height}
}

// Fit decodes, downscales when needed and re-encodes in the original
// format. Upscaling never happens.
func (r *Resizer) Fit(data []byte) ([]byte, error) {
	cfg, formatName, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= r.maxWidth && cfg.Height <= r.maxHeight {
		return data, nil
	}

	format, err := imaging.FormatFromExtension("." + formatName)
	if err != nil {
		return nil, fmt.Errorf("unsupported image format %q: %w", formatName, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized := imaging.Fit(img, r.maxWidth, r.maxHeight, imaging.Lanczos)

	var out bytes.Buffer
	if err := imaging.Encode(&out, resized, format); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return out.Bytes(), nil
}
