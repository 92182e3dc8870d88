package pagingmenu

import "github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/constants"

// PlainLabelContent shows a single centred line of text.
type PlainLabelContent struct {
	textStyle
}

// NewPlainLabelContent creates a text-only content in the unselected style.
func NewPlainLabelContent(title string, options Options) *PlainLabelContent {
	return &PlainLabelContent{textStyle: newTextStyle(title, options)}
}

func (c *PlainLabelContent) SetFocused(selected bool, options Options) {
	c.focus(selected, options)
}

// Measure returns the bounding box of title in the current face.
func (c *PlainLabelContent) Measure(title string, _ Options) Size {
	return c.measureText(title)
}

// Alignment is always centred; labels never wrap.
func (c *PlainLabelContent) Alignment() constants.TextAlign {
	return constants.TextAlignCenter
}
