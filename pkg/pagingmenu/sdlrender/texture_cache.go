package sdlrender

import (
	"fmt"
	"image"
	"image/draw"
	"reflect"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// Two icons per tab on a typical five tab bar.
const defaultMaxIcons = 10

// iconCache keeps icon textures in least-recently-used order, keyed by
// the icon value itself.
type iconCache struct {
	textures map[image.Image]*sdl.Texture
	order    []image.Image // oldest first
	maxSize  int
}

func newIconCache(maxSize int) *iconCache {
	return &iconCache{
		textures: make(map[image.Image]*sdl.Texture),
		order:    make([]image.Image, 0, maxSize),
		maxSize:  maxSize,
	}
}

// checkIconKey rejects icons that cannot key a map. Every decoder returns
// pointers; a struct value holding a pixel slice would panic on lookup.
func checkIconKey(img image.Image) error {
	if img == nil {
		return fmt.Errorf("nil icon")
	}
	if t := reflect.TypeOf(img); !t.Comparable() {
		return fmt.Errorf("icon type %s cannot be cached; pass a pointer", t)
	}
	return nil
}

// texture returns the cached texture for img, uploading it on first use.
func (c *iconCache) texture(renderer *sdl.Renderer, img image.Image) (*sdl.Texture, error) {
	if err := checkIconKey(img); err != nil {
		return nil, err
	}

	key := img
	if tex, ok := c.textures[key]; ok {
		c.touch(key)
		return tex, nil
	}

	tex, err := uploadImage(renderer, img)
	if err != nil {
		return nil, err
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = tex
	c.order = append(c.order, key)
	return tex, nil
}

func (c *iconCache) touch(key image.Image) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *iconCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]
	if tex, ok := c.textures[oldest]; ok {
		tex.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *iconCache) destroy() {
	for _, tex := range c.textures {
		tex.Destroy()
	}
	c.textures = make(map[image.Image]*sdl.Texture)
	c.order = c.order[:0]
}

func uploadImage(renderer *sdl.Renderer, img image.Image) (*sdl.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty icon")
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("icon surface: %w", err)
	}
	defer surface.Free()

	tex, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("icon texture: %w", err)
	}
	return tex, nil
}
