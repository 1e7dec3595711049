// Package render draws text labels onto codec images, for watermarking
// generated test files. Rendering uses golang.org/x/image/font with the
// embedded Go Regular face as fallback when no TTF path is given.
package render

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/pixelforge/gobmp/pkg/bmp"
)

// LabelOptions controls label placement and style. Zero values pick the
// defaults noted on each field.
type LabelOptions struct {
	FontPath string     // TTF file; empty uses the embedded Go Regular
	Size     float64    // point size; <=0 means 16
	Color    color.RGBA // zero value means opaque white
	Margin   int        // distance from the bottom-left corner; <=0 means 8
}

// Label draws a single line of text near the bottom-left corner of img.
// Text extending past the right edge is clipped by the drawer.
func Label(img *bmp.Image, text string, opts LabelOptions) error {
	if text == "" {
		return nil
	}
	if opts.Size <= 0 {
		opts.Size = 16
	}
	if opts.Color == (color.RGBA{}) {
		opts.Color = color.RGBA{255, 255, 255, 255}
	}
	if opts.Margin <= 0 {
		opts.Margin = 8
	}

	face, err := loadFace(opts.FontPath, opts.Size)
	if err != nil {
		return err
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opts.Color),
		Face: face,
		Dot:  fixed.P(opts.Margin, img.Height-opts.Margin),
	}
	d.DrawString(text)
	return nil
}

// loadFace parses the font at path (or the embedded fallback) and returns
// a face at the given point size, hinted for 72 DPI output.
func loadFace(path string, size float64) (font.Face, error) {
	data := goregular.TTF
	if path != "" {
		custom, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load font %s: %w", path, err)
		}
		data = custom
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
