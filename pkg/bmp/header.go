// header.go - Parsing and validation of the BMP file header (14 bytes) and
// the BITMAPINFOHEADER DIB header (40 bytes). All fields are little-endian
// and read at explicit offsets; the file's byte layout is never aliased
// onto a Go struct.
package bmp

import (
	"encoding/binary"
	"fmt"
)

// fileHeader is the fixed 14-byte header at the start of every BMP file.
type fileHeader struct {
	fileSize   uint32 // informational only, not validated
	dataOffset uint32 // byte offset from file start to pixel rows
}

// infoHeader is the 40-byte BITMAPINFOHEADER that follows the file header.
type infoHeader struct {
	width           int32
	height          int32 // negative height means top-down row order
	planes          uint16
	bpp             uint16
	compression     uint32
	imageSize       uint32
	xPixelsPerM     int32
	yPixelsPerM     int32
	colorsUsed      uint32
	colorsImportant uint32
}

// geometry holds the pixel-layout values derived from a validated header.
type geometry struct {
	bytesPerPixel int
	absHeight     int
	topDown       bool
	rowSize       int
}

// parseHeaders reads and validates both headers at the start of data and
// derives the pixel geometry. The pixel region is bounds-checked against
// the buffer here, before any caller touches pixel bytes.
func parseHeaders(data []byte) (fileHeader, infoHeader, geometry, error) {
	var fh fileHeader
	var ih infoHeader
	var geo geometry

	if len(data) < fileHeaderSize+infoHeaderSize {
		return fh, ih, geo, fmt.Errorf("%w: got %d bytes, need %d",
			ErrTooSmall, len(data), fileHeaderSize+infoHeaderSize)
	}
	if data[0] != 'B' || data[1] != 'M' {
		return fh, ih, geo, fmt.Errorf("%w: got %q", ErrBadMagic, data[:2])
	}

	fh.fileSize = binary.LittleEndian.Uint32(data[2:6])
	fh.dataOffset = binary.LittleEndian.Uint32(data[10:14])

	headerSize := binary.LittleEndian.Uint32(data[14:18])
	if headerSize != infoHeaderSize {
		return fh, ih, geo, fmt.Errorf("%w: DIB header size %d", ErrUnsupportedHeader, headerSize)
	}

	ih.width = int32(binary.LittleEndian.Uint32(data[18:22]))
	ih.height = int32(binary.LittleEndian.Uint32(data[22:26]))
	ih.planes = binary.LittleEndian.Uint16(data[26:28])
	ih.bpp = binary.LittleEndian.Uint16(data[28:30])
	ih.compression = binary.LittleEndian.Uint32(data[30:34])
	ih.imageSize = binary.LittleEndian.Uint32(data[34:38])
	ih.xPixelsPerM = int32(binary.LittleEndian.Uint32(data[38:42]))
	ih.yPixelsPerM = int32(binary.LittleEndian.Uint32(data[42:46]))
	ih.colorsUsed = binary.LittleEndian.Uint32(data[46:50])
	ih.colorsImportant = binary.LittleEndian.Uint32(data[50:54])

	if ih.compression != 0 {
		return fh, ih, geo, fmt.Errorf("%w: compression %d", ErrUnsupportedCompression, ih.compression)
	}
	if ih.bpp != 24 && ih.bpp != 32 {
		return fh, ih, geo, fmt.Errorf("%w: %d bpp", ErrUnsupportedBitDepth, ih.bpp)
	}
	if ih.width <= 0 || ih.height == 0 {
		return fh, ih, geo, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, ih.width, ih.height)
	}

	geo.bytesPerPixel = int(ih.bpp) / 8
	geo.absHeight = int(ih.height)
	if ih.height < 0 {
		geo.topDown = true
		geo.absHeight = -geo.absHeight
	}
	geo.rowSize = rowSize(int(ih.width), geo.bytesPerPixel)

	// Divide rather than multiply so a hostile header cannot overflow
	// the bound (rowSize×absHeight may exceed int64).
	avail := int64(len(data)) - int64(fh.dataOffset)
	if avail < 0 || avail/int64(geo.absHeight) < int64(geo.rowSize) {
		return fh, ih, geo, fmt.Errorf("%w: %d rows of %d bytes at offset %d, buffer is %d bytes",
			ErrTruncatedPixelData, geo.absHeight, geo.rowSize, fh.dataOffset, len(data))
	}

	return fh, ih, geo, nil
}
