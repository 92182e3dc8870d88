package pagingmenu

import (
	"image"
	"image/color"
	"unicode/utf8"
)

// stubFace gives every rune the same advance.
type stubFace struct {
	advance float64
	height  float64
}

func (f stubFace) Measure(text string) (float64, float64) {
	return f.advance * float64(utf8.RuneCountInString(text)), f.height
}

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
	grey  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	blue  = color.RGBA{B: 255, A: 255}

	regular = stubFace{advance: 10, height: 17}
	bold    = stubFace{advance: 12, height: 19}
)

func testOptions(mode LayoutMode) Options {
	return Options{
		TextColor:               grey,
		Font:                    regular,
		SelectedTextColor:       white,
		SelectedFont:            bold,
		BackgroundColor:         black,
		SelectedBackgroundColor: blue,
		ItemMargin:              8,
		ItemShape:               ItemShapePlain,
		LayoutMode:              mode,
		ItemCount:               4,
		Viewport:                Size{Width: 320, Height: 568},
	}
}

func testIcon(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func testIconItem(title string, spacing float64) IconTextMenuItem {
	return IconTextMenuItem{
		Title:           title,
		Icon:            testIcon(20, 24),
		HighlightedIcon: testIcon(20, 24),
		Spacing:         spacing,
	}
}
