// Package bmp converts between uncompressed BMP files and tightly packed
// top-down RGBA pixel buffers.
//
// Only the common subset of the format is supported: a 14-byte file header
// followed by a 40-byte BITMAPINFOHEADER, no compression (BI_RGB), and 24-
// or 32-bit pixels. Both bottom-up (positive height) and top-down (negative
// height) row orders decode to the same canonical top-down layout. The
// encoder always emits 24-bit bottom-up files, the most widely readable
// variant.
//
// All operations are pure functions over byte slices: input buffers are
// never mutated or retained, and each call allocates exactly one output
// buffer whose ownership passes to the caller.
package bmp

const (
	fileHeaderSize = 14
	infoHeaderSize = 40

	// pixelDataOffset is where the encoder places pixel rows. Decoded
	// files may use a larger offset; the header's dataOffset field wins.
	pixelDataOffset = fileHeaderSize + infoHeaderSize
)

// rowSize returns the byte length of one pixel row including padding.
// The format requires every row to start on a 4-byte boundary.
func rowSize(width, bytesPerPixel int) int {
	return (width*bytesPerPixel + 3) / 4 * 4
}
