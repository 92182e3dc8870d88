// Package sdlrender measures and draws menu items with SDL2: titles through
// SDL_ttf and icons as textures. It is the on-device counterpart of termbar.
package sdlrender

import (
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/internal"
)

// TTFFace adapts an SDL_ttf font to pagingmenu.Face.
type TTFFace struct {
	font  *ttf.Font
	owned bool
}

// NewTTFFace wraps an already opened font. The caller keeps ownership.
func NewTTFFace(font *ttf.Font) *TTFFace {
	return &TTFFace{font: font}
}

// OpenTTFFace opens a font file at the given point size. ttf.Init must
// have been called.
func OpenTTFFace(path string, size int) (*TTFFace, error) {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, pagingmenu.NewInfrastructureError("open_font", err)
	}
	return &TTFFace{font: font, owned: true}, nil
}

// Measure returns the rendered size of text. An empty string is zero wide
// but keeps the font's line height.
func (f *TTFFace) Measure(text string) (width, height float64) {
	if text == "" {
		return 0, float64(f.font.Height())
	}

	w, h, err := f.font.SizeUTF8(text)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to measure text", "text", text, "error", err)
		return 0, float64(f.font.Height())
	}
	return float64(w), float64(h)
}

func (f *TTFFace) Font() *ttf.Font {
	return f.font
}

// Close releases fonts opened by OpenTTFFace.
func (f *TTFFace) Close() {
	if f.owned && f.font != nil {
		f.font.Close()
		f.font = nil
	}
}
