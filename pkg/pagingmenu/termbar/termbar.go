// Package termbar draws a row of menu item views as a terminal tab bar.
// It plays the container's part: items sit side by side at their measured
// widths and, in round-rect mode, the focused item gets the theme highlight.
package termbar

import (
	"image/color"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/constants"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/internal"
)

// Bounds is the column span of a rendered item.
type Bounds struct {
	X, W int
}

// Render lays the views out left to right and returns the bar together
// with each item's bounds, for hit testing and scrolling.
func Render(views []*pagingmenu.MenuItemView) (string, []Bounds) {
	if len(views) == 0 {
		return "", nil
	}

	cells := make([]string, len(views))
	bounds := make([]Bounds, len(views))
	// Edges are rounded from the running total so fractional widths
	// never add up to more columns than the row has.
	x, end := 0, 0.0
	for i, v := range views {
		end += v.MeasuredSize().Width
		w := int(math.Round(end)) - x
		cells[i] = itemStyle(v, w).Render(v.Content().Title())
		bounds[i] = Bounds{X: x, W: w}
		x += w
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...), bounds
}

func itemStyle(v *pagingmenu.MenuItemView, width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		Align(position(v.Content().Alignment())).
		Foreground(toLipgloss(v.Content().TextColor())).
		Bold(v.Focused())

	bg := v.Background()
	if v.Focused() && v.Options().ItemShape == pagingmenu.ItemShapeRoundRect {
		bg = pagingmenu.HighlightColor()
	}
	if bg.A != 0 {
		style = style.Background(toLipgloss(bg))
	}
	return style
}

func position(align constants.TextAlign) lipgloss.Position {
	switch align {
	case constants.TextAlignLeft:
		return lipgloss.Left
	case constants.TextAlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

func toLipgloss(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(internal.ColorToHex(c))
}
