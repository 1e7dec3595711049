package bmp

import (
	"encoding/binary"
	"testing"
)

// buildFile assembles a BMP file from raw (already padded) pixel rows.
// rows are stored in file order, first stored row first.
func buildFile(t *testing.T, width, height int32, bpp uint16, rows []byte) []byte {
	t.Helper()

	file := make([]byte, pixelDataOffset+len(rows))
	file[0] = 'B'
	file[1] = 'M'
	binary.LittleEndian.PutUint32(file[2:6], uint32(len(file)))
	binary.LittleEndian.PutUint32(file[10:14], pixelDataOffset)

	binary.LittleEndian.PutUint32(file[14:18], infoHeaderSize)
	binary.LittleEndian.PutUint32(file[18:22], uint32(width))
	binary.LittleEndian.PutUint32(file[22:26], uint32(height))
	binary.LittleEndian.PutUint16(file[26:28], 1)
	binary.LittleEndian.PutUint16(file[28:30], bpp)
	copy(file[pixelDataOffset:], rows)

	return file
}
