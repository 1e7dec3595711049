// Package pattern generates simple test images for the codec: solid
// fills, gradients and checkerboards, as packed RGBA buffers ready for
// encoding.
package pattern

import (
	"crypto/rand"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/pixelforge/gobmp/pkg/bmp"
)

// ParseColor parses a color string. Accepts "#rrggbb", "random", or "".
// Empty string is treated as "random".
func ParseColor(s string) (color.RGBA, error) {
	if s == "" || s == "random" {
		buf := make([]byte, 3)
		if _, err := rand.Read(buf); err != nil {
			return color.RGBA{}, fmt.Errorf("random color: %w", err)
		}
		return color.RGBA{R: buf[0], G: buf[1], B: buf[2], A: 255}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected 6-char hex", s)
	}

	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid red channel in %q: %w", s, err)
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid green channel in %q: %w", s, err)
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid blue channel in %q: %w", s, err)
	}

	return color.RGBA{R: uint8(rv), G: uint8(gv), B: uint8(bv), A: 255}, nil
}

// Solid returns a uniform fill of the given color.
func Solid(width, height int, c color.RGBA) *bmp.Image {
	img := bmp.NewImage(width, height)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

// Gradient returns a horizontal red and vertical green ramp with a fixed
// blue component. Useful for spotting orientation and channel-order bugs:
// every pixel is distinct along both axes.
func Gradient(width, height int) *bmp.Image {
	img := bmp.NewImage(width, height)
	for y := 0; y < height; y++ {
		g := uint8(y * 255 / max(height-1, 1))
		for x := 0; x < width; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8(x * 255 / max(width-1, 1))
			img.Pix[i+1] = g
			img.Pix[i+2] = 128
			img.Pix[i+3] = 255
		}
	}
	return img
}

// Checkerboard returns alternating cells of colors a and b. cell is the
// square size in pixels; values below 1 are clamped to 1.
func Checkerboard(width, height, cell int, a, b color.RGBA) *bmp.Image {
	cell = max(cell, 1)
	img := bmp.NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			i := img.PixOffset(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}
