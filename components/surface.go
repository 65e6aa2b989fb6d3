package components

import (
	"github.com/automoto/netfx/surface"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SurfaceData is the mounted drawing surface the field renders onto
type SurfaceData struct {
	Width, Height int
	Canvas        surface.Canvas

	Alpha float64      // current composite opacity
	Fade  *gween.Tween // fade-in toward the configured opacity; nil once finished
}

var Surface = donburi.NewComponentType[SurfaceData]()
