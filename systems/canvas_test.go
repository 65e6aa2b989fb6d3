package systems

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/automoto/netfx/archetypes"
	"github.com/automoto/netfx/components"
	"github.com/automoto/netfx/surface"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type strokeCall struct {
	x0, y0, x1, y1 float64
	clr            color.RGBA
}

type recordingCanvas struct {
	width, height int
	clears        int
	strokes       []strokeCall
	circles       int
	disposed      bool
}

func (c *recordingCanvas) Resize(width, height int) { c.width, c.height = width, height }
func (c *recordingCanvas) Size() (int, int)         { return c.width, c.height }
func (c *recordingCanvas) Dispose()                 { c.disposed = true }

func (c *recordingCanvas) Clear() {
	c.clears++
	c.strokes = nil
	c.circles = 0
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c.strokes = append(c.strokes, strokeCall{x0, y0, x1, y1, color.RGBAModel.Convert(clr).(color.RGBA)})
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	c.circles++
}

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func recordingFactory(out **recordingCanvas) surface.Factory {
	return func(w, h int) surface.Canvas {
		c := &recordingCanvas{width: w, height: h}
		*out = c
		return c
	}
}

// spawnParticles places particles at exact positions with zero velocity
func spawnParticles(t *testing.T, e *ecs.ECS, points ...[2]float64) {
	t.Helper()
	for _, pt := range points {
		entry := archetypes.Particle.Spawn(e)
		components.Particle.SetValue(entry, components.ParticleData{X: pt[0], Y: pt[1]})
	}
}
