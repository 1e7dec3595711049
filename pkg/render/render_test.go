package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/pixelforge/gobmp/pkg/pattern"
)

func TestLabelChangesPixels(t *testing.T) {
	img := pattern.Solid(120, 40, color.RGBA{0, 0, 0, 255})
	before := bytes.Clone(img.Pix)

	err := Label(img, "hello", LabelOptions{})
	if err != nil {
		t.Fatalf("Label() error = %v", err)
	}
	if bytes.Equal(img.Pix, before) {
		t.Error("Label() drew nothing")
	}
}

func TestLabelEmptyTextIsNoop(t *testing.T) {
	img := pattern.Solid(32, 16, color.RGBA{40, 40, 40, 255})
	before := bytes.Clone(img.Pix)

	if err := Label(img, "", LabelOptions{}); err != nil {
		t.Fatalf("Label() error = %v", err)
	}
	if !bytes.Equal(img.Pix, before) {
		t.Error("Label(\"\") modified the image")
	}
}

func TestLabelMissingFontFile(t *testing.T) {
	img := pattern.Solid(32, 16, color.RGBA{})
	err := Label(img, "x", LabelOptions{FontPath: "does-not-exist.ttf"})
	if err == nil {
		t.Error("Label() with missing font file should fail")
	}
}
