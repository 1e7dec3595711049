// gobmp — BMP codec tooling.
//
// Usage:
//
//	gobmp info <file.bmp>
//	gobmp convert -o <out.bmp|out.png> <input> [--scale N]
//	gobmp generate -o <out.bmp> [options]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/pixelforge/gobmp/pkg/bmp"
	"github.com/pixelforge/gobmp/pkg/pattern"
	"github.com/pixelforge/gobmp/pkg/render"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "info":
		if err := runInfo(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "convert":
		if err := runConvert(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "generate":
		if err := runGenerate(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		printUsage()
		fatal(fmt.Errorf("unknown command %q", os.Args[1]))
	}
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("info requires exactly one file argument")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	info, err := bmp.Inspect(data)
	if err != nil {
		return err
	}

	order := "bottom-up"
	if info.TopDown {
		order = "top-down"
	}
	fmt.Printf("File:        %s\n", fs.Arg(0))
	fmt.Printf("Dimensions:  %dx%d px\n", info.Width, info.Height)
	fmt.Printf("Bit depth:   %d bpp\n", info.BitsPerPixel)
	fmt.Printf("Row order:   %s\n", order)
	fmt.Printf("Row size:    %d bytes\n", info.RowSize)
	fmt.Printf("Data offset: %d bytes\n", info.DataOffset)
	fmt.Printf("File size:   %d bytes (header field), %d bytes on disk\n", info.FileSize, len(data))
	if info.XPixelsPerM != 0 || info.YPixelsPerM != 0 {
		fmt.Printf("Resolution:  %dx%d px/m\n", info.XPixelsPerM, info.YPixelsPerM)
	}
	return nil
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)

	var output string
	var scale float64
	fs.StringVar(&output, "o", "", "Output file path (.bmp or .png)")
	fs.StringVar(&output, "output", "", "Output file path (.bmp or .png)")
	fs.Float64Var(&scale, "scale", 1, "Resample factor (e.g. 0.5 or 2)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if output == "" {
		return fmt.Errorf("output file is required (-o)")
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("convert requires exactly one input file")
	}
	if scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", scale)
	}

	img, err := readImage(fs.Arg(0))
	if err != nil {
		return err
	}

	if scale != 1 {
		img = resample(img, scale)
	}

	if err := writeImage(output, img); err != nil {
		return err
	}
	fmt.Printf("Done: %s (%dx%d)\n", output, img.Width, img.Height)
	return nil
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)

	var (
		output  string
		width   int
		height  int
		colorA  string
		colorB  string
		pat     string
		cell    int
		label   string
		fontTTF string
	)

	fs.StringVar(&output, "o", "", "Output file path (.bmp or .png)")
	fs.StringVar(&output, "output", "", "Output file path (.bmp or .png)")
	fs.IntVar(&width, "w", 320, "Width in pixels")
	fs.IntVar(&width, "width", 320, "Width in pixels")
	fs.IntVar(&height, "h", 240, "Height in pixels")
	fs.IntVar(&height, "height", 240, "Height in pixels")
	fs.StringVar(&colorA, "color", "random", "Fill color: hex or 'random'")
	fs.StringVar(&colorB, "color2", "#000000", "Second color (checker pattern)")
	fs.StringVar(&pat, "pattern", "solid", "Pattern: solid, gradient or checker")
	fs.IntVar(&cell, "cell", 16, "Checker cell size in pixels")
	fs.StringVar(&label, "label", "", "Text drawn onto the image")
	fs.StringVar(&fontTTF, "font", "", "TTF font for --label (default: embedded)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if output == "" {
		return fmt.Errorf("output file is required (-o)")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", width, height)
	}

	ca, err := pattern.ParseColor(colorA)
	if err != nil {
		return err
	}

	var img *bmp.Image
	switch pat {
	case "solid":
		img = pattern.Solid(width, height, ca)
	case "gradient":
		img = pattern.Gradient(width, height)
	case "checker":
		cb, err := pattern.ParseColor(colorB)
		if err != nil {
			return err
		}
		img = pattern.Checkerboard(width, height, cell, ca, cb)
	default:
		return fmt.Errorf("unknown pattern %q: use solid, gradient or checker", pat)
	}

	if label != "" {
		if err := render.Label(img, label, render.LabelOptions{FontPath: fontTTF}); err != nil {
			return err
		}
	}

	if err := writeImage(output, img); err != nil {
		return err
	}
	fmt.Printf("Done: %s (%dx%d)\n", output, width, height)
	return nil
}

// readImage loads a BMP through the codec, or anything else through the
// stdlib image registry, and returns the canonical RGBA buffer.
func readImage(path string) (*bmp.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return bmp.Decode(data)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return bmp.FromImage(m), nil
}

// writeImage saves img in the format named by the output extension.
func writeImage(path string, img *bmp.Image) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".bmp":
		data, err := bmp.Encode(img)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	case ".png":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("encode PNG: %w", err)
		}
		return f.Sync()
	default:
		return fmt.Errorf("unsupported output format %q: use .bmp or .png", ext)
	}
}

// resample scales img by factor using bilinear interpolation.
func resample(img *bmp.Image, factor float64) *bmp.Image {
	w := max(int(float64(img.Width)*factor), 1)
	h := max(int(float64(img.Height)*factor), 1)

	dst := bmp.NewImage(w, h)
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`gobmp — BMP ⇄ RGBA codec tooling

USAGE:
    gobmp info <file.bmp>
    gobmp convert -o <out.bmp|out.png> <input> [--scale N]
    gobmp generate -o <out.bmp|out.png> [options]

INFO:
    Prints the parsed header fields of a BMP file.

CONVERT:
    -o, --output <path>    Output file (.bmp or .png)
    --scale <factor>       Resample by factor (bilinear)

GENERATE:
    -o, --output <path>    Output file (.bmp or .png)
    -w, --width <px>       Width in pixels (default: 320)
    -h, --height <px>      Height in pixels (default: 240)
    --color <hex>          Fill color or 'random' (default: random)
    --pattern <name>       solid, gradient or checker (default: solid)
    --color2 <hex>         Second checker color (default: #000000)
    --cell <px>            Checker cell size (default: 16)
    --label <text>         Draw a text label onto the image
    --font <path>          TTF font for the label
`)
}
