package pagingmenu

import (
	"image"
	"math"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/constants"
)

// IconLabelContent lays out [icon] <spacing> [title] as one vertically
// centred unit.
type IconLabelContent struct {
	textStyle
	icon            image.Image
	highlightedIcon image.Image
	spacing         float64
	focused         bool
}

// NewIconLabelContent creates an icon+text content in the unselected style.
// A missing icon is a configuration error, never replaced by a placeholder.
func NewIconLabelContent(item IconTextMenuItem, options Options) (*IconLabelContent, error) {
	if item.Icon == nil || item.HighlightedIcon == nil {
		return nil, NewConfigurationError("new_icon_label_content", ErrMissingIcon)
	}
	if item.Spacing < 0 {
		return nil, NewConfigurationError("new_icon_label_content", ErrNegativeSpacing)
	}

	return &IconLabelContent{
		textStyle:       newTextStyle(item.Title, options),
		icon:            item.Icon,
		highlightedIcon: item.HighlightedIcon,
		spacing:         item.Spacing,
	}, nil
}

// Alignment is centred: icon and title move as one unit.
func (c *IconLabelContent) Alignment() constants.TextAlign {
	return constants.TextAlignCenter
}

func (c *IconLabelContent) SetFocused(selected bool, options Options) {
	c.focus(selected, options)
	c.focused = selected
}

// Measure returns the union of the icon and title frames. An empty title
// drops the spacing so no gap trails the icon.
func (c *IconLabelContent) Measure(title string, _ Options) Size {
	label := c.measureText(title)
	icon := c.IconSize()

	return Size{
		Width:  icon.Width + c.effectiveSpacing(label.Width) + label.Width,
		Height: math.Max(icon.Height, label.Height),
	}
}

// Icon returns the image for the current focus state.
func (c *IconLabelContent) Icon() image.Image {
	if c.focused {
		return c.highlightedIcon
	}
	return c.icon
}

// IconSize is the natural size of the unhighlighted icon.
func (c *IconLabelContent) IconSize() Size {
	b := c.icon.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *IconLabelContent) Spacing() float64 {
	return c.spacing
}

// Layout places the icon and title inside a content area of the given size.
// The icon is flush with the leading, top and bottom edges; the title follows
// the spacing and is centred vertically.
func (c *IconLabelContent) Layout(size Size) (icon, title Rect) {
	iconSize := c.IconSize()
	label := c.measureText(c.title)

	icon = Rect{X: 0, Y: 0, Width: iconSize.Width, Height: size.Height}

	x := iconSize.Width + c.effectiveSpacing(label.Width)
	title = Rect{
		X:      x,
		Y:      (size.Height - label.Height) / 2,
		Width:  math.Max(size.Width-x, 0),
		Height: label.Height,
	}
	return icon, title
}

func (c *IconLabelContent) effectiveSpacing(labelWidth float64) float64 {
	if labelWidth == 0 {
		return 0
	}
	return c.spacing
}
