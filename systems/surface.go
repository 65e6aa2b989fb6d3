package systems

import (
	"github.com/automoto/netfx/archetypes"
	"github.com/automoto/netfx/components"
	cfg "github.com/automoto/netfx/config"
	"github.com/automoto/netfx/surface"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// MountSurface creates the drawing surface at the given viewport size.
// The surface fades in over the configured number of frames.
func MountSurface(e *ecs.ECS, width, height int, newCanvas surface.Factory) *components.SurfaceData {
	entry, ok := components.Surface.First(e.World)
	if !ok {
		entry = archetypes.Surface.Spawn(e)
	}

	data := components.SurfaceData{
		Width:  width,
		Height: height,
		Canvas: newCanvas(width, height),
		Alpha:  cfg.Surface.Opacity,
	}
	if cfg.Surface.FadeInFrames > 0 {
		data.Alpha = 0
		data.Fade = gween.New(0, float32(cfg.Surface.Opacity), float32(cfg.Surface.FadeInFrames), ease.OutQuad)
	}
	components.Surface.SetValue(entry, data)
	return components.Surface.Get(entry)
}

// GetSurface returns the mounted surface, if any
func GetSurface(e *ecs.ECS) (*components.SurfaceData, bool) {
	entry, ok := components.Surface.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Surface.Get(entry), true
}

// SurfaceReady reports whether a surface is mounted with a drawable size
func SurfaceReady(e *ecs.ECS) bool {
	s, ok := GetSurface(e)
	return ok && s.Canvas != nil && s.Width > 0 && s.Height > 0
}

// ResizeSurface matches the surface to the viewport. Particles are untouched.
func ResizeSurface(e *ecs.ECS, width, height int) {
	s, ok := GetSurface(e)
	if !ok {
		return
	}
	s.Width = width
	s.Height = height
	if s.Canvas != nil {
		s.Canvas.Resize(width, height)
	}
}

// UnmountSurface releases the canvas and removes the surface entity
func UnmountSurface(e *ecs.ECS) {
	entry, ok := components.Surface.First(e.World)
	if !ok {
		return
	}
	s := components.Surface.Get(entry)
	if d, ok := s.Canvas.(interface{ Dispose() }); ok {
		d.Dispose()
	}
	entry.Remove()
}

// UpdateSurfaceFade advances the fade-in tween by one frame
func UpdateSurfaceFade(e *ecs.ECS) {
	s, ok := GetSurface(e)
	if !ok || s.Fade == nil {
		return
	}
	alpha, finished := s.Fade.Update(1)
	s.Alpha = float64(alpha)
	if finished {
		s.Alpha = cfg.Surface.Opacity
		s.Fade = nil
	}
}
