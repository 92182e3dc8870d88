package sdlrender

import (
	"errors"
	"image/color"
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/constants"
)

// ErrUnsupportedFace is returned when a view's face is not a TTFFace.
var ErrUnsupportedFace = errors.New("face cannot be drawn with SDL_ttf")

// Renderer draws menu item views onto an SDL renderer.
type Renderer struct {
	renderer     *sdl.Renderer
	icons        *iconCache
	CornerRadius int32 // Radius of the round-rect highlight
}

func NewRenderer(renderer *sdl.Renderer) *Renderer {
	return &Renderer{
		renderer:     renderer,
		icons:        newIconCache(defaultMaxIcons),
		CornerRadius: 12,
	}
}

// DrawRow draws views left to right starting at (x, y), each as tall as
// rowHeight, and returns the x after the last item. In round-rect mode the
// focused item gets the theme highlight behind it.
func (r *Renderer) DrawRow(views []*pagingmenu.MenuItemView, x, y, rowHeight int32) (int32, error) {
	end := float64(x)
	for _, v := range views {
		end += v.MeasuredSize().Width
		width := int32(math.Round(end)) - x
		rect := sdl.Rect{X: x, Y: y, W: width, H: rowHeight}

		if v.Focused() && v.Options().ItemShape == pagingmenu.ItemShapeRoundRect {
			r.fillRoundedRect(rect, r.CornerRadius, pagingmenu.HighlightColor())
		}

		if err := r.DrawItem(v, rect); err != nil {
			return x, err
		}
		x += width
	}
	return x, nil
}

// DrawItem draws one view's background and its content, aligned
// horizontally as the content asks and centred vertically in rect.
func (r *Renderer) DrawItem(v *pagingmenu.MenuItemView, rect sdl.Rect) error {
	if bg := v.Background(); bg.A != 0 {
		r.setDrawColor(bg)
		if err := r.renderer.FillRect(&rect); err != nil {
			return pagingmenu.NewInfrastructureError("draw_item", err)
		}
	}

	content := v.Content()
	face, ok := content.Face().(*TTFFace)
	if !ok {
		return pagingmenu.NewInfrastructureError("draw_item", ErrUnsupportedFace)
	}

	size := content.Measure(content.Title(), v.Options())
	origin := sdl.Point{
		X: rect.X + alignX(content.Alignment(), rect.W, int32(math.Ceil(size.Width))),
		Y: rect.Y + (rect.H-int32(math.Floor(size.Height)))/2,
	}

	switch c := content.(type) {
	case *pagingmenu.IconLabelContent:
		iconFrame, titleFrame := c.Layout(size)
		if err := r.drawIcon(c, offset(origin, iconFrame)); err != nil {
			return err
		}
		return r.drawText(face, c.Title(), c.TextColor(), offset(origin, titleFrame))
	default:
		return r.drawText(face, content.Title(), content.TextColor(), offset(origin, pagingmenu.Rect{
			Width:  size.Width,
			Height: size.Height,
		}))
	}
}

func (r *Renderer) drawText(face *TTFFace, text string, c color.RGBA, dst sdl.Rect) error {
	if text == "" {
		return nil
	}

	surface, err := face.Font().RenderUTF8Blended(text, toSDL(c))
	if err != nil {
		return pagingmenu.NewInfrastructureError("render_text", err)
	}
	defer surface.Free()

	texture, err := r.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return pagingmenu.NewInfrastructureError("render_text", err)
	}
	defer texture.Destroy()

	dst.W, dst.H = surface.W, surface.H
	return r.renderer.Copy(texture, nil, &dst)
}

func (r *Renderer) drawIcon(c *pagingmenu.IconLabelContent, frame sdl.Rect) error {
	icon := c.Icon()
	texture, err := r.icons.texture(r.renderer, icon)
	if err != nil {
		return pagingmenu.NewInfrastructureError("draw_icon", err)
	}

	// The frame spans the content height; keep the icon's own height, centred.
	b := icon.Bounds()
	dst := sdl.Rect{
		X: frame.X,
		Y: frame.Y + (frame.H-int32(b.Dy()))/2,
		W: int32(b.Dx()),
		H: int32(b.Dy()),
	}
	return r.renderer.Copy(texture, nil, &dst)
}

// fillRoundedRect fills rect with rounded corners, one scanline at a time.
func (r *Renderer) fillRoundedRect(rect sdl.Rect, radius int32, c color.RGBA) {
	radius = min(radius, rect.W/2, rect.H/2)
	r.setDrawColor(c)

	for dy := int32(0); dy < rect.H; dy++ {
		inset := int32(0)
		switch {
		case dy < radius:
			inset = cornerInset(radius, radius-dy)
		case dy >= rect.H-radius:
			inset = cornerInset(radius, dy-(rect.H-radius)+1)
		}
		r.renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + dy, W: rect.W - 2*inset, H: 1})
	}
}

// cornerInset is how far a scanline dist rows into a corner of the given
// radius starts from the straight edge.
func cornerInset(radius, dist int32) int32 {
	r := float64(radius)
	d := float64(dist) - 0.5
	return int32(math.Round(r - math.Sqrt(r*r-d*d)))
}

func (r *Renderer) setDrawColor(c color.RGBA) {
	r.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	r.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

// Destroy releases cached icon textures.
func (r *Renderer) Destroy() {
	r.icons.destroy()
}

// alignX is the content's x offset inside an item of the given width.
func alignX(align constants.TextAlign, itemWidth, contentWidth int32) int32 {
	switch align {
	case constants.TextAlignLeft:
		return 0
	case constants.TextAlignRight:
		return itemWidth - contentWidth
	default:
		return (itemWidth - contentWidth) / 2
	}
}

func toSDL(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func offset(origin sdl.Point, frame pagingmenu.Rect) sdl.Rect {
	return sdl.Rect{
		X: origin.X + int32(math.Round(frame.X)),
		Y: origin.Y + int32(math.Round(frame.Y)),
		W: int32(math.Round(frame.Width)),
		H: int32(math.Round(frame.Height)),
	}
}
