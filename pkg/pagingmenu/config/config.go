// Package config reads a menu description from TOML and turns it into
// pagingmenu.Options plus the per-item titles a container passes to
// NewMenuItemView.
package config

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/constants"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/icon"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/internal"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/locale"
)

// File mirrors the TOML layout of a menu description.
type File struct {
	Layout     string   `toml:"layout"`      // standard, segmented or infinite
	WidthMode  string   `toml:"width_mode"`  // flexible or fixed
	FixedWidth *float64 `toml:"fixed_width"` // required by width_mode = "fixed"
	CenterItem bool     `toml:"center_item"`
	Scrolling  string   `toml:"scrolling"` // paging, free or disabled
	ItemMargin *float64 `toml:"item_margin"`
	ItemShape  string   `toml:"item_shape"` // plain or round_rect
	ItemCount  int      `toml:"item_count"` // must match the number of items when set

	Colors   Colors   `toml:"colors"`
	Viewport Viewport `toml:"viewport"`
	Items    []Item   `toml:"items"`
}

// Colors are "#RRGGBB" or "#RRGGBBAA". Empty values keep the theme colour.
type Colors struct {
	Text               string `toml:"text"`
	SelectedText       string `toml:"selected_text"`
	Background         string `toml:"background"`
	SelectedBackground string `toml:"selected_background"`
}

type Viewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Item describes one tab. Icon paths are relative to the config file.
type Item struct {
	Title           *string  `toml:"title"`
	TitleID         string   `toml:"title_id"` // message ID looked up through the localizer
	Icon            string   `toml:"icon"`
	HighlightedIcon string   `toml:"highlighted_icon"`
	IconSize        int      `toml:"icon_size"`
	Spacing         *float64 `toml:"spacing"`
}

// Load reads and decodes a menu description. Unknown keys are an error.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// Parse decodes a menu description held in memory.
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("parse menu: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("parse menu: %w", err)
	}
	return &f, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}

	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
}

// BuildOptions supplies what a TOML file cannot hold.
type BuildOptions struct {
	Font         pagingmenu.Face
	SelectedFont pagingmenu.Face // defaults to Font
	Localizer    *locale.Localizer
	BaseDir      string // icon paths are resolved against it
}

// Menu is a ready-to-use menu: shared options and one title per item.
type Menu struct {
	Options pagingmenu.Options
	Titles  []string
}

// Build converts the file into validated options. Icon files are loaded
// eagerly so a broken item fails here, before any view exists.
func (f *File) Build(opts BuildOptions) (*Menu, error) {
	itemCount := f.ItemCount
	if itemCount == 0 {
		itemCount = len(f.Items)
	}
	if len(f.Items) > 0 && itemCount != len(f.Items) {
		return nil, pagingmenu.NewConfigurationError("build_menu",
			fmt.Errorf("item_count %d with %d items: %w", itemCount, len(f.Items), pagingmenu.ErrInvalidItemCount))
	}

	options := pagingmenu.DefaultOptions(itemCount)
	options.Font = opts.Font
	options.SelectedFont = opts.SelectedFont
	if options.SelectedFont == nil {
		options.SelectedFont = opts.Font
	}
	options.Viewport = pagingmenu.Size{Width: f.Viewport.Width, Height: f.Viewport.Height}

	if f.ItemMargin != nil {
		options.ItemMargin = *f.ItemMargin
	}

	shape, err := parseItemShape(f.ItemShape)
	if err != nil {
		return nil, err
	}
	options.ItemShape = shape

	layout, err := f.layoutMode()
	if err != nil {
		return nil, err
	}
	options.LayoutMode = layout

	if err := f.Colors.apply(&options); err != nil {
		return nil, err
	}

	menu := &Menu{Titles: make([]string, len(f.Items))}
	items, err := f.menuItems(opts, menu.Titles)
	if err != nil {
		return nil, err
	}
	options.MenuItems = items

	if err := options.Validate(); err != nil {
		return nil, err
	}
	menu.Options = options
	return menu, nil
}

func (f *File) layoutMode() (pagingmenu.LayoutMode, error) {
	width, err := f.widthMode()
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(f.Layout) {
	case "", "standard":
		scrolling, err := parseScrolling(f.Scrolling)
		if err != nil {
			return nil, err
		}
		return pagingmenu.Standard{WidthMode: width, CenterItem: f.CenterItem, Scrolling: scrolling}, nil
	case "segmented", "segmented_control":
		return pagingmenu.SegmentedControl{}, nil
	case "infinite":
		return pagingmenu.Infinite{WidthMode: width}, nil
	default:
		return nil, fmt.Errorf("unknown layout %q", f.Layout)
	}
}

func (f *File) widthMode() (pagingmenu.WidthMode, error) {
	switch strings.ToLower(f.WidthMode) {
	case "", "flexible":
		return pagingmenu.Flexible{}, nil
	case "fixed":
		if f.FixedWidth == nil {
			return nil, pagingmenu.NewConfigurationError("build_menu",
				fmt.Errorf("width_mode = \"fixed\" requires fixed_width: %w", pagingmenu.ErrInvalidFixedWidth))
		}
		return pagingmenu.Fixed{Width: *f.FixedWidth}, nil
	default:
		return nil, fmt.Errorf("unknown width_mode %q", f.WidthMode)
	}
}

func parseScrolling(s string) (pagingmenu.ScrollingMode, error) {
	switch strings.ToLower(s) {
	case "", "paging":
		return pagingmenu.ScrollPagingEnabled, nil
	case "free":
		return pagingmenu.ScrollEnabled, nil
	case "disabled":
		return pagingmenu.ScrollDisabled, nil
	default:
		return 0, fmt.Errorf("unknown scrolling %q", s)
	}
}

func parseItemShape(s string) (pagingmenu.ItemShapeMode, error) {
	switch strings.ToLower(s) {
	case "", "plain":
		return pagingmenu.ItemShapePlain, nil
	case "round_rect", "roundrect":
		return pagingmenu.ItemShapeRoundRect, nil
	default:
		return 0, fmt.Errorf("unknown item_shape %q", s)
	}
}

func (c Colors) apply(options *pagingmenu.Options) error {
	fields := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"text", c.Text, &options.TextColor},
		{"selected_text", c.SelectedText, &options.SelectedTextColor},
		{"background", c.Background, &options.BackgroundColor},
		{"selected_background", c.SelectedBackground, &options.SelectedBackgroundColor},
	}

	for _, field := range fields {
		if field.value == "" {
			continue
		}
		parsed, err := internal.ParseHexColor(field.value)
		if err != nil {
			return fmt.Errorf("colors.%s: %w", field.name, err)
		}
		*field.dst = parsed
	}
	return nil
}

// menuItems resolves titles into titles and, when the menu uses icons,
// returns one IconTextMenuItem per entry. A menu either has icons on every
// item or on none.
func (f *File) menuItems(opts BuildOptions, titles []string) ([]pagingmenu.MenuItem, error) {
	withIcons := 0
	for _, item := range f.Items {
		if item.Icon != "" || item.HighlightedIcon != "" {
			withIcons++
		}
	}
	if withIcons > 0 && withIcons != len(f.Items) {
		return nil, pagingmenu.NewConfigurationError("build_menu", pagingmenu.ErrMissingIcon)
	}

	var items []pagingmenu.MenuItem
	for i, item := range f.Items {
		fields, err := item.fields(opts)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}

		built, err := pagingmenu.NewMenuItem(fields)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		titles[i] = built.ItemTitle()

		if withIcons > 0 {
			items = append(items, built)
		}
	}
	return items, nil
}

func (it Item) fields(opts BuildOptions) (pagingmenu.ItemFields, error) {
	fields := pagingmenu.ItemFields{Spacing: constants.DefaultIconSpacing}
	if it.Spacing != nil {
		fields.Spacing = *it.Spacing
	}

	switch {
	case it.TitleID != "":
		fallback := it.TitleID
		if it.Title != nil {
			fallback = *it.Title
		}
		title := opts.Localizer.Title(it.TitleID, fallback)
		fields.Title = &title
	case it.Title != nil:
		title := *it.Title
		fields.Title = &title
	}

	if it.Icon == "" && it.HighlightedIcon == "" {
		return fields, nil
	}
	if it.Icon == "" || it.HighlightedIcon == "" {
		return fields, pagingmenu.NewConfigurationError("build_menu_item", pagingmenu.ErrMissingIcon)
	}

	size := it.IconSize
	if size == 0 {
		size = constants.DefaultIconSize
	}

	var err error
	if fields.Icon, err = icon.LoadFile(resolve(opts.BaseDir, it.Icon), size); err != nil {
		return fields, pagingmenu.NewInfrastructureError("load_icon", err)
	}
	if fields.HighlightedIcon, err = icon.LoadFile(resolve(opts.BaseDir, it.HighlightedIcon), size); err != nil {
		return fields, pagingmenu.NewInfrastructureError("load_icon", err)
	}
	return fields, nil
}

func resolve(base, path string) string {
	if base == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
