package systems

import (
	"github.com/automoto/netfx/components"
	cfg "github.com/automoto/netfx/config"
	"github.com/automoto/netfx/gamemath"
	"github.com/automoto/netfx/surface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawField renders the particle network onto the mounted surface.
// The surface is cleared every frame, even before the first pointer move.
func DrawField(e *ecs.ECS) {
	s, ok := GetSurface(e)
	if !ok || s.Canvas == nil {
		return
	}
	s.Canvas.Clear()

	particles := collectParticles(e)
	if len(particles) == 0 {
		return
	}
	drawEdges(s.Canvas, particles)
	drawNodes(s.Canvas, particles)
}

// drawEdges connects every unordered pair closer than EdgeDistance, fading
// the line out as the pair separates
func drawEdges(c surface.Canvas, particles []*components.ParticleData) {
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			a, b := particles[i], particles[j]
			dist := gamemath.Distance(a.X, a.Y, b.X, b.Y)
			if dist >= cfg.Render.EdgeDistance {
				continue
			}
			c.StrokeLine(a.X, a.Y, b.X, b.Y, cfg.Render.EdgeWidth,
				surface.WithOpacity(cfg.Render.Accent, EdgeOpacity(dist)))
		}
	}
}

func drawNodes(c surface.Canvas, particles []*components.ParticleData) {
	clr := surface.WithOpacity(cfg.Render.Accent, cfg.Render.NodeOpacity)
	for _, p := range particles {
		c.FillCircle(p.X, p.Y, cfg.Render.NodeRadius, clr)
	}
}

// EdgeOpacity returns the line opacity for a pair at the given distance, or 0
// when the pair is too far apart to be connected
func EdgeOpacity(dist float64) float64 {
	if dist >= cfg.Render.EdgeDistance {
		return 0
	}
	return (1 - dist/cfg.Render.EdgeDistance) * cfg.Render.EdgeMaxOpacity
}

// DrawSurface composites the rendered surface onto the screen behind the page
func DrawSurface(e *ecs.ECS, screen *ebiten.Image) {
	s, ok := GetSurface(e)
	if !ok {
		return
	}
	if img, ok := s.Canvas.(*surface.Image); ok {
		img.Composite(screen, s.Alpha)
	}
}
