package termbar

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/constants"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/face"
)

func newViews(t *testing.T, opts pagingmenu.Options, titles ...string) []*pagingmenu.MenuItemView {
	t.Helper()
	views := make([]*pagingmenu.MenuItemView, len(titles))
	for i, title := range titles {
		v, err := pagingmenu.NewMenuItemView(title, i, opts)
		require.NoError(t, err)
		views[i] = v
	}
	return views
}

func TestRender_flexible(t *testing.T) {
	opts := pagingmenu.DefaultOptions(3)
	opts.Font = face.NewCellFace(false)
	opts.SelectedFont = opts.Font
	opts.ItemMargin = 1

	views := newViews(t, opts, "Home", "Search", "Me")
	views[1].SetSelected(true)

	out, bounds := Render(views)

	assert.Equal(t, []Bounds{{X: 0, W: 6}, {X: 6, W: 8}, {X: 14, W: 4}}, bounds)
	assert.Equal(t, 18, lipgloss.Width(out))
	assert.Equal(t, 1, lipgloss.Height(out))
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "Search")
}

func TestRender_segmented(t *testing.T) {
	opts := pagingmenu.DefaultOptions(4)
	opts.Font = face.NewCellFace(false)
	opts.SelectedFont = opts.Font
	opts.LayoutMode = pagingmenu.SegmentedControl{}
	opts.ItemShape = pagingmenu.ItemShapeRoundRect
	opts.Viewport = pagingmenu.Size{Width: 80, Height: 24}

	views := newViews(t, opts, "A", "B", "C", "D")
	views[0].SetSelected(true)

	out, bounds := Render(views)
	for i, b := range bounds {
		assert.Equal(t, Bounds{X: i * 20, W: 20}, b)
	}
	assert.Equal(t, 80, lipgloss.Width(out))
}

func TestRender_segmentedFractionalWidths(t *testing.T) {
	opts := pagingmenu.DefaultOptions(3)
	opts.Font = face.NewCellFace(false)
	opts.SelectedFont = opts.Font
	opts.LayoutMode = pagingmenu.SegmentedControl{}
	opts.Viewport = pagingmenu.Size{Width: 80, Height: 24}

	views := newViews(t, opts, "A", "B", "C")

	out, bounds := Render(views)
	assert.Equal(t, []Bounds{{X: 0, W: 27}, {X: 27, W: 26}, {X: 53, W: 27}}, bounds)
	assert.Equal(t, 80, lipgloss.Width(out))
}

func TestPosition(t *testing.T) {
	assert.Equal(t, lipgloss.Left, position(constants.TextAlignLeft))
	assert.Equal(t, lipgloss.Center, position(constants.TextAlignCenter))
	assert.Equal(t, lipgloss.Right, position(constants.TextAlignRight))
}

func TestRender_empty(t *testing.T) {
	out, bounds := Render(nil)
	assert.Empty(t, out)
	assert.Nil(t, bounds)
}
