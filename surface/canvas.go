package surface

import (
	"image/color"

	"github.com/automoto/netfx/gamemath"
)

// Canvas is a 2D raster surface the particle field renders onto.
// Coordinates are in surface pixels with the origin at the top-left.
type Canvas interface {
	// Resize changes the surface dimensions. Existing content may be lost.
	Resize(width, height int)
	Size() (width, height int)
	Clear()
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
}

// Factory creates a canvas of the given size
type Factory func(width, height int) Canvas

// WithOpacity returns c with its alpha replaced by opacity (0..1), premultiplied
func WithOpacity(c color.RGBA, opacity float64) color.RGBA {
	opacity = gamemath.Clamp(opacity, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R)*opacity + 0.5),
		G: uint8(float64(c.G)*opacity + 0.5),
		B: uint8(float64(c.B)*opacity + 0.5),
		A: uint8(255*opacity + 0.5),
	}
}
