// encode.go - RGBA to BMP transcoding. Output is always a 24-bit
// uncompressed bottom-up file, the layout every reader understands; the
// alpha channel of the input is dropped.
package bmp

import (
	"encoding/binary"
	"fmt"
)

// resolutionPPM is the horizontal and vertical resolution written into
// encoded headers: 2835 pixels per meter, the conventional 72 DPI.
const resolutionPPM = 2835

// Encode serializes img into a complete BMP file. The returned buffer is
// freshly allocated and owned by the caller; img is not modified.
//
// Validation happens before any byte is written: a Pix buffer shorter
// than Width×Height×4 fails with ErrBufferTooSmall and produces no output.
func Encode(img *Image) ([]byte, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, img.Width, img.Height)
	}
	if need := img.Width * img.Height * 4; len(img.Pix) < need {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrBufferTooSmall, len(img.Pix), need)
	}

	stride := rowSize(img.Width, 3)
	pixelDataSize := stride * img.Height
	fileSize := pixelDataOffset + pixelDataSize

	// Zero-initialized, so row padding bytes are 0 without a separate
	// fill pass.
	out := make([]byte, fileSize)

	out[0] = 'B'
	out[1] = 'M'
	binary.LittleEndian.PutUint32(out[2:6], uint32(fileSize))
	binary.LittleEndian.PutUint32(out[10:14], pixelDataOffset)

	binary.LittleEndian.PutUint32(out[14:18], infoHeaderSize)
	binary.LittleEndian.PutUint32(out[18:22], uint32(img.Width))
	binary.LittleEndian.PutUint32(out[22:26], uint32(img.Height)) // positive: bottom-up
	binary.LittleEndian.PutUint16(out[26:28], 1)                  // planes
	binary.LittleEndian.PutUint16(out[28:30], 24)                 // bpp
	binary.LittleEndian.PutUint32(out[34:38], uint32(pixelDataSize))
	binary.LittleEndian.PutUint32(out[38:42], resolutionPPM)
	binary.LittleEndian.PutUint32(out[42:46], resolutionPPM)

	for y := 0; y < img.Height; y++ {
		src := img.Pix[y*img.Width*4:]
		dst := out[pixelDataOffset+(img.Height-1-y)*stride:]

		for x := 0; x < img.Width; x++ {
			si := x * 4
			di := x * 3
			dst[di+0] = src[si+2]
			dst[di+1] = src[si+1]
			dst[di+2] = src[si+0]
			// src[si+3] (alpha) is discarded.
		}
	}

	return out, nil
}

// EncodeAnimated always fails with ErrUnsupportedOperation: the format has
// no animation concept. No partial output is produced.
func EncodeAnimated(frames []*Image, delayMS int) ([]byte, error) {
	return nil, fmt.Errorf("%w: format has no animation concept", ErrUnsupportedOperation)
}
