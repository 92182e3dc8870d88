package pagingmenu

import (
	"image/color"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/constants"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/internal"
)

// Transparent is the background of every item in round-rect mode.
var Transparent = color.RGBA{}

// WidthMode decides whether an item's width follows its content.
type WidthMode interface {
	isWidthMode()
}

// Flexible sizes the item to its measured content, rounded up.
type Flexible struct{}

// Fixed gives every item the same width regardless of content.
type Fixed struct {
	Width float64
}

func (Flexible) isWidthMode() {}
func (Fixed) isWidthMode()    {}

// ScrollingMode controls how the container scrolls a Standard menu.
type ScrollingMode int

const (
	ScrollPagingEnabled ScrollingMode = iota // Menu pages together with the content
	ScrollEnabled                            // Menu scrolls freely
	ScrollDisabled                           // Menu does not scroll
)

// LayoutMode is the strategy deriving each item's width. It is one of
// Standard, SegmentedControl or Infinite.
type LayoutMode interface {
	isLayoutMode()
}

// Standard lays items out left to right in a scrolling row.
// CenterItem and Scrolling are read by the container only.
type Standard struct {
	WidthMode  WidthMode
	CenterItem bool
	Scrolling  ScrollingMode
}

// SegmentedControl divides the viewport width equally between all items.
type SegmentedControl struct{}

// Infinite lays items out in a looping row.
type Infinite struct {
	WidthMode WidthMode
}

func (Standard) isLayoutMode()         {}
func (SegmentedControl) isLayoutMode() {}
func (Infinite) isLayoutMode()         {}

// ItemShapeMode selects how the selected item is highlighted.
type ItemShapeMode int

const (
	ItemShapePlain     ItemShapeMode = iota // Selected item gets SelectedBackgroundColor
	ItemShapeRoundRect                      // Container draws a rounded highlight; items stay transparent
)

// Options is the read-only configuration shared by every item view of a menu.
type Options struct {
	TextColor               color.RGBA
	Font                    Face
	SelectedTextColor       color.RGBA
	SelectedFont            Face
	BackgroundColor         color.RGBA
	SelectedBackgroundColor color.RGBA
	ItemMargin              float64
	ItemShape               ItemShapeMode

	LayoutMode LayoutMode
	ItemCount  int
	Viewport   Size // Initial viewport; later changes arrive via UpdateForViewport

	MenuItems []MenuItem // Optional; when non-empty each view uses its entry
}

// DefaultOptions returns options coloured from the active theme with a
// flexible Standard layout. Fonts are left for the caller to supply.
func DefaultOptions(itemCount int) Options {
	theme := internal.GetTheme()

	return Options{
		TextColor:               theme.TextColor,
		SelectedTextColor:       theme.SelectedTextColor,
		BackgroundColor:         theme.BackgroundColor,
		SelectedBackgroundColor: theme.SelectedBackgroundColor,
		ItemMargin:              constants.DefaultItemMargin,
		ItemShape:               ItemShapePlain,
		LayoutMode:              Standard{WidthMode: Flexible{}, Scrolling: ScrollPagingEnabled},
		ItemCount:               itemCount,
	}
}

// Validate reports the first configuration problem found, if any.
func (o Options) Validate() error {
	const op = "validate_options"

	if o.ItemCount < 1 {
		return NewConfigurationError(op, ErrInvalidItemCount)
	}
	if o.ItemMargin < 0 {
		return NewConfigurationError(op, ErrInvalidMargin)
	}
	if o.Font == nil || o.SelectedFont == nil {
		return NewConfigurationError(op, ErrMissingFont)
	}

	switch mode := o.LayoutMode.(type) {
	case nil:
		return NewConfigurationError(op, ErrMissingLayoutMode)
	case Standard:
		return validateWidthMode(op, mode.WidthMode)
	case Infinite:
		return validateWidthMode(op, mode.WidthMode)
	case SegmentedControl:
		return nil
	default:
		// Pointer variants satisfy the interface too but are never matched
		// when sizing.
		return NewConfigurationError(op, ErrUnknownLayoutMode)
	}
}

func validateWidthMode(op string, mode WidthMode) error {
	switch mode := mode.(type) {
	case Flexible:
		return nil
	case Fixed:
		if mode.Width <= 0 {
			return NewConfigurationError(op, ErrInvalidFixedWidth)
		}
		return nil
	default:
		return NewConfigurationError(op, ErrUnknownWidthMode)
	}
}

// backgroundFor returns the item background for the given focus state.
func (o Options) backgroundFor(selected bool) color.RGBA {
	if o.ItemShape == ItemShapeRoundRect {
		return Transparent
	}
	if selected {
		return o.SelectedBackgroundColor
	}
	return o.BackgroundColor
}

// textStyleFor returns the text colour and face for the given focus state.
func (o Options) textStyleFor(selected bool) (color.RGBA, Face) {
	if selected {
		return o.SelectedTextColor, o.SelectedFont
	}
	return o.TextColor, o.Font
}

// horizontalMargin is the margin on each side of an item's content.
func (o Options) horizontalMargin() float64 {
	if _, ok := o.LayoutMode.(SegmentedControl); ok {
		return 0
	}
	return o.ItemMargin
}
