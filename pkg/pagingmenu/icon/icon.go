// Package icon loads tab icons as image.Image values. SVG icons are
// rasterised with oksvg/rasterx at a requested height; PNG icons keep
// their natural size.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// LoadSVG rasterises an SVG document so that it is size pixels tall,
// keeping the view box aspect ratio.
func LoadSVG(r io.Reader, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}

	svg, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	w, h := size, size
	if svg.ViewBox.W > 0 && svg.ViewBox.H > 0 {
		w = int(math.Round(float64(size) * svg.ViewBox.W / svg.ViewBox.H))
	}

	svg.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	svg.Draw(rasterx.NewDasher(w, h, scanner), 1)

	return rgba, nil
}

// LoadPNG decodes a PNG icon.
func LoadPNG(r io.Reader) (image.Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}

// LoadFile loads an icon by extension: .svg files are rasterised at size,
// .png files are decoded as is.
func LoadFile(path string, size int) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read icon %s: %w", path, err)
	}

	var img image.Image
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		img, err = LoadSVG(bytes.NewReader(data), size)
	case ".png":
		img, err = LoadPNG(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("icon %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", path, err)
	}
	return img, nil
}
