// decode.go - BMP to RGBA transcoding: header validation, bottom-up
// un-flipping, BGR(A) to RGBA channel reordering, row-padding removal.
package bmp

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// Decode parses a complete BMP file held in data and returns its pixels as
// a canonical top-down RGBA image. The input is never mutated or retained.
//
// 24-bit sources get an opaque alpha channel (0xFF); 32-bit sources keep
// their stored alpha. Bottom-up files (the BMP default) are flipped so the
// output is always top-down.
func Decode(data []byte) (*Image, error) {
	fh, ih, geo, err := parseHeaders(data)
	if err != nil {
		return nil, err
	}

	width := int(ih.width)
	out := NewImage(width, geo.absHeight)

	for y := 0; y < geo.absHeight; y++ {
		srcRow := y
		if !geo.topDown {
			srcRow = geo.absHeight - 1 - y
		}
		src := data[int(fh.dataOffset)+srcRow*geo.rowSize:]
		dst := out.Pix[y*width*4:]

		for x := 0; x < width; x++ {
			si := x * geo.bytesPerPixel
			di := x * 4
			dst[di+0] = src[si+2]
			dst[di+1] = src[si+1]
			dst[di+2] = src[si+0]
			if geo.bytesPerPixel == 4 {
				dst[di+3] = src[si+3]
			} else {
				dst[di+3] = 0xFF
			}
		}
	}

	return out, nil
}

// DecodeConfig returns the dimensions and color model of the BMP file in
// data without decoding pixel rows. It runs the same header validation as
// Decode, including the pixel-region bounds check.
func DecodeConfig(data []byte) (image.Config, error) {
	_, ih, geo, err := parseHeaders(data)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      int(ih.width),
		Height:     geo.absHeight,
	}, nil
}

func decodeReader(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bmp: read: %w", err)
	}
	return Decode(data)
}

func decodeConfigReader(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, fmt.Errorf("bmp: read: %w", err)
	}
	return DecodeConfig(data)
}

func init() {
	image.RegisterFormat("bmp", "BM", decodeReader, decodeConfigReader)
}
