package bmp

import "errors"

// The codec reports failures as one of a closed set of sentinel errors so
// callers can branch with errors.Is. Returned errors wrap these sentinels
// with the offending values.
var (
	// ErrTooSmall means the buffer cannot hold the two fixed headers.
	ErrTooSmall = errors.New("bmp: buffer smaller than file and DIB headers")

	// ErrBadMagic means the buffer does not start with the "BM" signature.
	ErrBadMagic = errors.New("bmp: missing BM signature")

	// ErrUnsupportedHeader means the DIB header is not a 40-byte
	// BITMAPINFOHEADER (BITMAPCOREHEADER, V4/V5 and OS/2 variants are
	// rejected).
	ErrUnsupportedHeader = errors.New("bmp: only BITMAPINFOHEADER supported")

	// ErrUnsupportedCompression means the compression field is not BI_RGB.
	ErrUnsupportedCompression = errors.New("bmp: only uncompressed (BI_RGB) supported")

	// ErrUnsupportedBitDepth means the bpp field is neither 24 nor 32.
	ErrUnsupportedBitDepth = errors.New("bmp: only 24-bit and 32-bit pixels supported")

	// ErrInvalidDimensions means width or height is outside the valid
	// range (width must be positive, height must be nonzero).
	ErrInvalidDimensions = errors.New("bmp: invalid image dimensions")

	// ErrTruncatedPixelData means the declared pixel region extends past
	// the end of the buffer.
	ErrTruncatedPixelData = errors.New("bmp: pixel data exceeds buffer")

	// ErrBufferTooSmall means an encode input's Pix buffer is shorter
	// than width×height×4.
	ErrBufferTooSmall = errors.New("bmp: RGBA buffer too small")

	// ErrUnsupportedOperation means the requested operation has no
	// meaning for this format.
	ErrUnsupportedOperation = errors.New("bmp: unsupported operation")
)
