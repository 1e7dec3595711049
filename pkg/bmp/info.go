package bmp

// Info summarizes the headers of a BMP file without decoding pixels.
type Info struct {
	Width        int
	Height       int // magnitude; see TopDown for row order
	BitsPerPixel int
	TopDown      bool
	RowSize      int // bytes per stored row, including padding
	DataOffset   int
	FileSize     int // the header's declared size, not the buffer length
	ImageSize    int // the header's image_size field, may be 0
	XPixelsPerM  int
	YPixelsPerM  int
}

// Inspect parses and validates the headers in data and returns their
// fields. It accepts exactly the files Decode accepts.
func Inspect(data []byte) (Info, error) {
	fh, ih, geo, err := parseHeaders(data)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Width:        int(ih.width),
		Height:       geo.absHeight,
		BitsPerPixel: int(ih.bpp),
		TopDown:      geo.topDown,
		RowSize:      geo.rowSize,
		DataOffset:   int(fh.dataOffset),
		FileSize:     int(fh.fileSize),
		ImageSize:    int(ih.imageSize),
		XPixelsPerM:  int(ih.xPixelsPerM),
		YPixelsPerM:  int(ih.yPixelsPerM),
	}, nil
}
