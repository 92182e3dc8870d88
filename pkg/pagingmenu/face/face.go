// Package face provides cgo-free text measurement for menu items: OpenType
// and bitmap faces through golang.org/x/image, and terminal cells through
// go-runewidth. The SDL TTF face lives in the sdlrender package.
package face

import (
	"fmt"
	"os"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/constants"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// XImageFace measures text with a golang.org/x/image font face.
type XImageFace struct {
	face font.Face
}

func NewXImageFace(f font.Face) *XImageFace {
	return &XImageFace{face: f}
}

// Basic returns the 7x13 fixed bitmap face. Every glyph advances 7 pixels
// and lines are 13 pixels tall, which keeps sizes predictable.
func Basic() *XImageFace {
	return NewXImageFace(basicfont.Face7x13)
}

// Measure returns the advance width of text and the face's line height.
func (f *XImageFace) Measure(text string) (width, height float64) {
	return toFloat(font.MeasureString(f.face, text)), toFloat(f.face.Metrics().Height)
}

// Face exposes the underlying face, e.g. for drawing with font.Drawer.
func (f *XImageFace) Face() font.Face {
	return f.face
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// OpenTypeOptions sizes a parsed OpenType font. Zero values fall back to
// constants.DefaultFontSize and constants.DefaultFontDPI.
type OpenTypeOptions struct {
	Size float64
	DPI  float64
}

// ParseOpenType builds a face from TTF/OTF bytes.
func ParseOpenType(data []byte, opts OpenTypeOptions) (*XImageFace, error) {
	if opts.Size == 0 {
		opts.Size = constants.DefaultFontSize
	}
	if opts.DPI == 0 {
		opts.DPI = constants.DefaultFontDPI
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	f, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     opts.DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return NewXImageFace(f), nil
}

// LoadOpenType reads and parses a font file.
func LoadOpenType(path string, opts OpenTypeOptions) (*XImageFace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	f, err := ParseOpenType(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
