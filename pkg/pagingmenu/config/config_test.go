package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/face"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/locale"
)

const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10" fill="#000"/></svg>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_segmented(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "menu.toml", `
layout = "segmented"
item_margin = 8

[colors]
text = "#808080"
selected_background = "#112233"

[viewport]
width = 320
height = 480

[[items]]
title = "Home"
[[items]]
title = "Search"
[[items]]
title = "Inbox"
[[items]]
title = "Profile"
`)

	f, err := Load(path)
	require.NoError(t, err)

	menu, err := f.Build(BuildOptions{Font: face.Basic()})
	require.NoError(t, err)

	assert.Equal(t, []string{"Home", "Search", "Inbox", "Profile"}, menu.Titles)
	assert.Equal(t, pagingmenu.SegmentedControl{}, menu.Options.LayoutMode)
	assert.Equal(t, 4, menu.Options.ItemCount)
	assert.Equal(t, pagingmenu.Size{Width: 320, Height: 480}, menu.Options.Viewport)
	assert.Equal(t, color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}, menu.Options.TextColor)
	assert.Equal(t, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}, menu.Options.SelectedBackgroundColor)
	assert.Nil(t, menu.Options.MenuItems)
	assert.NotNil(t, menu.Options.SelectedFont, "selected font defaults to font")

	for i, title := range menu.Titles {
		v, err := pagingmenu.NewMenuItemView(title, i, menu.Options)
		require.NoError(t, err)
		assert.Equal(t, float64(80), v.MeasuredSize().Width)
	}
}

func TestBuild_iconItems(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "home.svg", squareSVG)
	writeFile(t, dir, "home_on.svg", squareSVG)

	f, err := Parse([]byte(`
layout = "infinite"
width_mode = "fixed"
fixed_width = 90
item_shape = "round_rect"

[[items]]
title = "Home"
icon = "home.svg"
highlighted_icon = "home_on.svg"
icon_size = 20
spacing = 4
`))
	require.NoError(t, err)

	menu, err := f.Build(BuildOptions{Font: face.Basic(), BaseDir: dir})
	require.NoError(t, err)

	assert.Equal(t, pagingmenu.Infinite{WidthMode: pagingmenu.Fixed{Width: 90}}, menu.Options.LayoutMode)
	assert.Equal(t, pagingmenu.ItemShapeRoundRect, menu.Options.ItemShape)
	require.Len(t, menu.Options.MenuItems, 1)

	item, ok := menu.Options.MenuItems[0].(pagingmenu.IconTextMenuItem)
	require.True(t, ok)
	assert.Equal(t, "Home", item.Title)
	assert.Equal(t, float64(4), item.Spacing)
	assert.Equal(t, 20, item.Icon.Bounds().Dx())
	assert.Equal(t, 20, item.HighlightedIcon.Bounds().Dy())
}

func TestBuild_localizedTitles(t *testing.T) {
	catalog := locale.NewCatalog()
	require.NoError(t, catalog.ParseBytes([]byte(`home = "Inicio"`), "active.es.toml"))

	f, err := Parse([]byte(`
[[items]]
title_id = "home"
title = "Home"
[[items]]
title_id = "unknown"
title = "Other"
`))
	require.NoError(t, err)

	menu, err := f.Build(BuildOptions{Font: face.Basic(), Localizer: catalog.Localizer("es")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Inicio", "Other"}, menu.Titles)
}

func TestBuild_errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "home.svg", squareSVG)

	tests := []struct {
		name   string
		toml   string
		config bool
	}{
		{
			name:   "mixed icon and text items",
			toml:   "[[items]]\ntitle = \"A\"\nicon = \"home.svg\"\nhighlighted_icon = \"home.svg\"\n[[items]]\ntitle = \"B\"\n",
			config: true,
		},
		{
			name:   "icon without highlighted icon",
			toml:   "[[items]]\ntitle = \"A\"\nicon = \"home.svg\"\n",
			config: true,
		},
		{
			name:   "missing title",
			toml:   "[[items]]\nspacing = 2\n",
			config: true,
		},
		{
			name:   "no items",
			toml:   "layout = \"standard\"\n",
			config: true,
		},
		{
			name:   "fixed width mode without fixed_width",
			toml:   "width_mode = \"fixed\"\n[[items]]\ntitle = \"A\"\n",
			config: true,
		},
		{
			name:   "zero fixed_width",
			toml:   "width_mode = \"fixed\"\nfixed_width = 0\n[[items]]\ntitle = \"A\"\n",
			config: true,
		},
		{
			name:   "item_count larger than items",
			toml:   "item_count = 3\n[[items]]\ntitle = \"A\"\nicon = \"home.svg\"\nhighlighted_icon = \"home.svg\"\n",
			config: true,
		},
		{
			name:   "item_count smaller than items",
			toml:   "item_count = 1\n[[items]]\ntitle = \"A\"\n[[items]]\ntitle = \"B\"\n",
			config: true,
		},
		{
			name: "unknown layout",
			toml: "layout = \"grid\"\n[[items]]\ntitle = \"A\"\n",
		},
		{
			name: "bad colour",
			toml: "[colors]\ntext = \"red\"\n[[items]]\ntitle = \"A\"\n",
		},
		{
			name: "missing icon file",
			toml: "[[items]]\ntitle = \"A\"\nicon = \"nope.svg\"\nhighlighted_icon = \"nope.svg\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.toml))
			require.NoError(t, err)

			_, err = f.Build(BuildOptions{Font: face.Basic(), BaseDir: dir})
			require.Error(t, err)
			assert.Equal(t, tt.config, pagingmenu.IsConfigurationError(err), err.Error())
		})
	}
}

func TestParse_unknownKey(t *testing.T) {
	_, err := Parse([]byte("layuot = \"standard\"\n"))
	assert.ErrorContains(t, err, "layuot")
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
