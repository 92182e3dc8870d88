package pagingmenu

import (
	"image/color"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/constants"
)

// MenuItemContent is the renderable unit inside an item view.
// PlainLabelContent and IconLabelContent implement it.
type MenuItemContent interface {
	// SetFocused applies the selected or unselected text style.
	SetFocused(selected bool, options Options)

	// Measure returns the size the content needs to show title in its
	// current style. It has no side effects.
	Measure(title string, options Options) Size

	Title() string
	TextColor() color.RGBA
	Face() Face

	// Alignment places the measured content horizontally inside the item.
	Alignment() constants.TextAlign
}

// textStyle is the mutable part shared by both content kinds.
type textStyle struct {
	title     string
	textColor color.RGBA
	face      Face
}

func newTextStyle(title string, options Options) textStyle {
	return textStyle{
		title:     title,
		textColor: options.TextColor,
		face:      options.Font,
	}
}

func (s *textStyle) focus(selected bool, options Options) {
	s.textColor, s.face = options.textStyleFor(selected)
}

func (s *textStyle) measureText(title string) Size {
	if s.face == nil {
		return Size{}
	}
	w, h := s.face.Measure(title)
	return Size{Width: w, Height: h}
}

func (s *textStyle) Title() string         { return s.title }
func (s *textStyle) TextColor() color.RGBA { return s.textColor }
func (s *textStyle) Face() Face            { return s.face }
