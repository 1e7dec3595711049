package bmp

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

func TestDecodeBottomUp2x2(t *testing.T) {
	// 2x2 24-bit, rowSize 8 (6 pixel bytes + 2 padding). Bottom-up, so
	// the first stored row is the image's bottom row.
	rows := []byte{
		255, 0, 0, 0, 255, 0, 0, 0, // bottom row: blue, green (BGR)
		0, 0, 255, 255, 255, 255, 0, 0, // top row: red, white (BGR)
	}
	file := buildFile(t, 2, 2, 24, rows)

	img, err := Decode(file)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("Decode() size = %dx%d, want 2x2", img.Width, img.Height)
	}

	want := []byte{
		255, 0, 0, 255, 255, 255, 255, 255, // decoded row 0 = file's last row
		0, 0, 255, 255, 0, 255, 0, 255, // decoded row 1 = file's first row
	}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("Decode() pix = %v, want %v", img.Pix, want)
	}
}

func TestDecodeTopDownMatchesBottomUp(t *testing.T) {
	// The same image stored both ways must decode identically.
	bottomUp := buildFile(t, 2, 2, 24, []byte{
		1, 2, 3, 4, 5, 6, 0, 0,
		7, 8, 9, 10, 11, 12, 0, 0,
	})
	topDown := buildFile(t, 2, -2, 24, []byte{
		7, 8, 9, 10, 11, 12, 0, 0,
		1, 2, 3, 4, 5, 6, 0, 0,
	})

	a, err := Decode(bottomUp)
	if err != nil {
		t.Fatalf("Decode(bottomUp) error = %v", err)
	}
	b, err := Decode(topDown)
	if err != nil {
		t.Fatalf("Decode(topDown) error = %v", err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Errorf("bottom-up pix = %v, top-down pix = %v", a.Pix, b.Pix)
	}
}

func TestDecode32BitKeepsAlpha(t *testing.T) {
	// 1x2 32-bit, no padding (rowSize = 4). Bottom-up.
	file := buildFile(t, 1, 2, 32, []byte{
		10, 20, 30, 40, // bottom row: BGRA
		50, 60, 70, 80, // top row
	})

	img, err := Decode(file)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []byte{
		70, 60, 50, 80,
		30, 20, 10, 40,
	}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("Decode() pix = %v, want %v", img.Pix, want)
	}
}

func TestDecodeIgnoresPaddingBytes(t *testing.T) {
	// Garbage in the padding bytes must not leak into the output.
	clean := buildFile(t, 1, 2, 24, []byte{
		1, 2, 3, 0, 0, 0, 0, 0,
	})
	dirty := buildFile(t, 1, 2, 24, []byte{
		1, 2, 3, 0xDE, 0xAD, 0xBE, 0, 0,
	})

	a, err := Decode(clean)
	if err != nil {
		t.Fatalf("Decode(clean) error = %v", err)
	}
	b, err := Decode(dirty)
	if err != nil {
		t.Fatalf("Decode(dirty) error = %v", err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Errorf("padding bytes leaked into output: %v vs %v", a.Pix, b.Pix)
	}
}

func TestDecodeSinglePixel(t *testing.T) {
	file := buildFile(t, 1, 1, 24, []byte{30, 20, 10, 0})

	img, err := Decode(file)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if want := []byte{10, 20, 30, 255}; !bytes.Equal(img.Pix, want) {
		t.Errorf("Decode() pix = %v, want %v", img.Pix, want)
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	file := buildFile(t, 1, 1, 24, make([]byte, 4))
	file[0], file[1] = 'X', 'X'

	img, err := Decode(file)
	if !errors.Is(err, ErrBadMagic) {
		t.Errorf("Decode() error = %v, want %v", err, ErrBadMagic)
	}
	if img != nil {
		t.Errorf("Decode() returned %+v on error, want nil", img)
	}
}

func TestDecodeConfig(t *testing.T) {
	file := buildFile(t, 3, -2, 32, make([]byte, 24))

	cfg, err := DecodeConfig(file)
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.Width != 3 || cfg.Height != 2 {
		t.Errorf("DecodeConfig() = %dx%d, want 3x2", cfg.Width, cfg.Height)
	}
}

func TestImageDecodeRegistration(t *testing.T) {
	file := buildFile(t, 1, 1, 24, []byte{30, 20, 10, 0})

	m, format, err := image.Decode(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("image.Decode() error = %v", err)
	}
	if format != "bmp" {
		t.Errorf("image.Decode() format = %q, want %q", format, "bmp")
	}
	if b := m.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("image.Decode() bounds = %v, want 1x1", b)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("image.DecodeConfig() error = %v", err)
	}
	if format != "bmp" || cfg.Width != 1 || cfg.Height != 1 {
		t.Errorf("image.DecodeConfig() = %q %dx%d, want bmp 1x1", format, cfg.Width, cfg.Height)
	}
}
