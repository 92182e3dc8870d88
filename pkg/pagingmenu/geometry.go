package pagingmenu

// Size is a width/height pair in points.
type Size struct {
	Width  float64
	Height float64
}

// Rect is a frame relative to its parent's origin.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Face measures a single line of text.
// Implementations live in the face and sdlrender packages.
type Face interface {
	Measure(text string) (width, height float64)
}
