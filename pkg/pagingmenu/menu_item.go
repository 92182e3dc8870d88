package pagingmenu

import "image"

// MenuItem is the data behind a single tab. It is either a TextMenuItem
// or an IconTextMenuItem.
type MenuItem interface {
	ItemTitle() string
	isMenuItem()
}

// TextMenuItem is a tab showing only its title.
type TextMenuItem struct {
	Title string
}

func (m TextMenuItem) ItemTitle() string { return m.Title }
func (TextMenuItem) isMenuItem()         {}

// IconTextMenuItem is a tab laid out as [icon] <spacing> [title].
// HighlightedIcon replaces Icon while the tab is focused.
type IconTextMenuItem struct {
	Title           string
	Icon            image.Image
	HighlightedIcon image.Image
	Spacing         float64
}

func (m IconTextMenuItem) ItemTitle() string { return m.Title }
func (IconTextMenuItem) isMenuItem()         {}

// NewTextMenuItem creates a plain title-only item.
func NewTextMenuItem(title string) TextMenuItem {
	return TextMenuItem{Title: title}
}

// NewIconTextMenuItem creates an icon item. Both icons are required and
// spacing must not be negative.
func NewIconTextMenuItem(title string, icon, highlightedIcon image.Image, spacing float64) (IconTextMenuItem, error) {
	if icon == nil || highlightedIcon == nil {
		return IconTextMenuItem{}, NewConfigurationError("new_icon_text_menu_item", ErrMissingIcon)
	}
	if spacing < 0 {
		return IconTextMenuItem{}, NewConfigurationError("new_icon_text_menu_item", ErrNegativeSpacing)
	}
	return IconTextMenuItem{
		Title:           title,
		Icon:            icon,
		HighlightedIcon: highlightedIcon,
		Spacing:         spacing,
	}, nil
}

// ItemFields holds the raw per-item values a caller collected, e.g. from a
// config file. Title is a pointer so "not supplied" differs from "empty".
type ItemFields struct {
	Title           *string
	Icon            image.Image
	HighlightedIcon image.Image
	Spacing         float64
}

// NewMenuItem builds the item variant matching the supplied fields: an
// IconTextMenuItem when any icon is present, a TextMenuItem otherwise.
// Icon items are checked like NewIconTextMenuItem.
func NewMenuItem(fields ItemFields) (MenuItem, error) {
	if fields.Title == nil {
		return nil, NewConfigurationError("new_menu_item", ErrMissingTitle)
	}

	if fields.Icon == nil && fields.HighlightedIcon == nil {
		return NewTextMenuItem(*fields.Title), nil
	}

	item, err := NewIconTextMenuItem(*fields.Title, fields.Icon, fields.HighlightedIcon, fields.Spacing)
	if err != nil {
		return nil, err
	}
	return item, nil
}
