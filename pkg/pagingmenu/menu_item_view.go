package pagingmenu

import (
	"image/color"
	"math"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/internal"
)

// MenuItemView owns the content of one tab and computes the size the
// container should give it. It starts unfocused.
type MenuItemView struct {
	title     string
	itemIndex int
	options   Options
	content   MenuItemContent

	focused    bool
	background color.RGBA
	viewport   Size
	size       Size
	constraint *WidthConstraint
}

// NewMenuItemView creates the view for item itemIndex. When options carries
// menu items, the entry at itemIndex must exist and must be an icon item.
func NewMenuItemView(title string, itemIndex int, options Options) (*MenuItemView, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	content, err := newContent(title, itemIndex, options)
	if err != nil {
		return nil, err
	}

	v := &MenuItemView{
		title:      title,
		itemIndex:  itemIndex,
		options:    options,
		content:    content,
		background: options.backgroundFor(false),
		viewport:   options.Viewport,
	}
	v.applySize(v.RecomputeSize(v.viewport))

	return v, nil
}

// MustNewMenuItemView is like NewMenuItemView but panics on error.
func MustNewMenuItemView(title string, itemIndex int, options Options) *MenuItemView {
	v, err := NewMenuItemView(title, itemIndex, options)
	if err != nil {
		panic(err)
	}
	return v
}

func newContent(title string, itemIndex int, options Options) (MenuItemContent, error) {
	if len(options.MenuItems) == 0 {
		return NewPlainLabelContent(title, options), nil
	}

	if itemIndex < 0 || itemIndex >= len(options.MenuItems) {
		return nil, &IndexOutOfRangeError{Index: itemIndex, Len: len(options.MenuItems)}
	}

	item, ok := options.MenuItems[itemIndex].(IconTextMenuItem)
	if !ok {
		return nil, NewConfigurationError("new_menu_item_view", ErrMissingIcon)
	}
	content, err := NewIconLabelContent(item, options)
	if err != nil {
		return nil, err
	}
	return content, nil
}

// SetSelected switches between the focused and unfocused state and
// re-applies the width, since the selected font may measure differently.
func (v *MenuItemView) SetSelected(selected bool) {
	v.focused = selected
	v.background = v.options.backgroundFor(selected)
	v.content.SetFocused(selected, v.options)
	v.applySize(v.RecomputeSize(v.viewport))
}

// UpdateForViewport recomputes the width after a viewport change. Only
// SegmentedControl widths depend on the viewport, so other modes just
// remember the new size.
func (v *MenuItemView) UpdateForViewport(viewport Size) {
	v.viewport = viewport
	if _, ok := v.options.LayoutMode.(SegmentedControl); !ok {
		return
	}
	v.applySize(v.RecomputeSize(viewport))
}

// RecomputeSize returns the size the item needs under the active layout
// mode. It does not change the view.
func (v *MenuItemView) RecomputeSize(viewport Size) Size {
	measured := v.content.Measure(v.title, v.options)

	var width float64
	switch mode := v.options.LayoutMode.(type) {
	case Standard:
		width = contentWidth(measured, mode.WidthMode)
	case Infinite:
		width = contentWidth(measured, mode.WidthMode)
	case SegmentedControl:
		width = viewport.Width / float64(v.options.ItemCount)
	}

	return Size{
		Width:  width + v.options.horizontalMargin()*2,
		Height: math.Floor(measured.Height),
	}
}

func contentWidth(measured Size, mode WidthMode) float64 {
	if fixed, ok := mode.(Fixed); ok {
		return fixed.Width
	}
	return math.Ceil(measured.Width)
}

func (v *MenuItemView) applySize(size Size) {
	v.size = size
	v.constraint = replaceWidthConstraint(v.constraint, size.Width)

	internal.GetInternalLogger().Debug("Menu item resized",
		"index", v.itemIndex,
		"focused", v.focused,
		"width", size.Width,
		"height", size.Height)
}

// MeasuredSize is the size from the latest recomputation.
func (v *MenuItemView) MeasuredSize() Size {
	return v.size
}

func (v *MenuItemView) Background() color.RGBA {
	return v.background
}

func (v *MenuItemView) Focused() bool {
	return v.focused
}

func (v *MenuItemView) Content() MenuItemContent {
	return v.content
}

func (v *MenuItemView) Index() int {
	return v.itemIndex
}

func (v *MenuItemView) Title() string {
	return v.title
}

// WidthConstraint is the currently active width constraint.
func (v *MenuItemView) WidthConstraint() *WidthConstraint {
	return v.constraint
}

func (v *MenuItemView) Options() Options {
	return v.options
}
