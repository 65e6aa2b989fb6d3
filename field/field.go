// Package field runs the pointer-following particle network: a small swarm of
// nodes that is pulled toward the cursor, pushes itself apart at short range
// and is drawn with proximity edges on a surface behind the page.
//
// A Field is either Active or Inactive. Entering Active attaches the pointer
// and resize listeners, mounts the surface and schedules the first frame.
// Entering Inactive cancels the pending frame, detaches both listeners and
// discards particles, cursor and surface. Nothing else changes state.
package field

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/netfx/components"
	cfg "github.com/automoto/netfx/config"
	"github.com/automoto/netfx/frame"
	"github.com/automoto/netfx/input"
	"github.com/automoto/netfx/surface"
	"github.com/automoto/netfx/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// State is the lifecycle state of a Field
type State int

const (
	Inactive State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "inactive"
}

// Viewport reports the current viewport size in pixels
type Viewport interface {
	Viewport() (width, height int)
}

// Options wires a Field to its collaborators. Scheduler and Input are
// required; the rest fall back to defaults.
type Options struct {
	Scheduler frame.Scheduler
	Input     input.Source
	Viewport  Viewport

	// Store holds the persisted toggle. nil keeps the preference in memory only.
	Store systems.ItemStore

	// NewCanvas creates the drawing surface. Defaults to an offscreen ebiten image.
	NewCanvas surface.Factory

	// Rand drives particle seeding. Defaults to a time-seeded source, or
	// config.Debug.Seed when set.
	Rand *rand.Rand
}

// Field owns the particle network and its on/off preference
type Field struct {
	ecs *ecs.ECS

	scheduler frame.Scheduler
	input     input.Source
	viewport  Viewport
	store     systems.ItemStore
	newCanvas surface.Factory
	rng       *rand.Rand

	state   State
	enabled bool
	frameID frame.ID

	detachPointer func()
	detachResize  func()
}

// New creates an inactive field
func New(opts Options) *Field {
	f := &Field{
		scheduler: opts.Scheduler,
		input:     opts.Input,
		viewport:  opts.Viewport,
		store:     opts.Store,
		newCanvas: opts.NewCanvas,
		rng:       opts.Rand,
		enabled:   cfg.Preferences.NetworkEffectDefault,
	}
	if f.newCanvas == nil {
		f.newCanvas = surface.NewImage
	}
	if f.rng == nil {
		seed := cfg.Debug.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		f.rng = rand.New(rand.NewSource(seed))
	}

	f.ecs = ecs.NewECS(donburi.NewWorld())
	f.ecs.AddSystem(systems.UpdateField)
	f.ecs.AddSystem(systems.UpdateSurfaceFade)
	f.ecs.AddRenderer(cfg.Default, systems.DrawSurface)

	return f
}

// Activate reads the persisted preference and starts the animation if it is on
func (f *Field) Activate() {
	f.enabled = systems.LoadNetworkEffect(f.store)
	if f.enabled {
		f.enter(Active)
	} else {
		f.enter(Inactive)
	}
}

// Deactivate stops the animation and removes the surface. The preference is
// left as it is.
func (f *Field) Deactivate() {
	f.enter(Inactive)
}

// Toggle flips and persists the preference, then starts or stops the
// animation to match. A failed write keeps the new value for this session.
func (f *Field) Toggle() {
	f.enabled = !f.enabled
	_ = systems.SaveNetworkEffect(f.store, f.enabled)

	if f.enabled {
		f.enter(Active)
	} else {
		f.enter(Inactive)
	}
}

// Enabled reports the current preference
func (f *Field) Enabled() bool {
	return f.enabled
}

// State reports whether the animation is running
func (f *Field) State() State {
	return f.state
}

// Label is the toggle control text for the current preference
func (f *Field) Label() string {
	if f.enabled {
		return cfg.Toggle.LabelOn
	}
	return cfg.Toggle.LabelOff
}

// SurfaceMounted reports whether a drawing surface is present
func (f *Field) SurfaceMounted() bool {
	_, ok := systems.GetSurface(f.ecs)
	return ok
}

// Particles returns a copy of the particle set in update order
func (f *Field) Particles() []components.ParticleData {
	var out []components.ParticleData
	components.Particle.Each(f.ecs.World, func(entry *donburi.Entry) {
		out = append(out, *components.Particle.Get(entry))
	})
	return out
}

// Cursor returns the last pointer position seen while active
func (f *Field) Cursor() (x, y float64, ok bool) {
	entry, ok := components.Cursor.First(f.ecs.World)
	if !ok {
		return 0, 0, false
	}
	c := components.Cursor.Get(entry)
	return c.X, c.Y, true
}

// DebugStatus describes the field for the debug overlay. It is available in
// both states.
func (f *Field) DebugStatus() string {
	return fmt.Sprintf("field: %s\n%s", f.state, systems.DebugStatus(f.ecs))
}

// Draw composites the surface onto screen. Draws nothing while inactive.
func (f *Field) Draw(screen *ebiten.Image) {
	if f.state != Active {
		return
	}
	f.ecs.Draw(screen)
}

func (f *Field) enter(s State) {
	if s == f.state {
		return
	}
	switch s {
	case Active:
		f.start()
	case Inactive:
		f.stop()
	}
	f.state = s
}

func (f *Field) start() {
	f.detachPointer = f.input.OnPointerMove(f.handlePointerMove)
	f.detachResize = f.input.OnResize(f.handleResize)

	var width, height int
	if f.viewport != nil {
		width, height = f.viewport.Viewport()
	}
	systems.MountSurface(f.ecs, width, height, f.newCanvas)

	f.frameID = f.scheduler.Request(f.step)
}

func (f *Field) stop() {
	f.scheduler.Cancel(f.frameID)
	f.frameID = 0

	if f.detachPointer != nil {
		f.detachPointer()
		f.detachPointer = nil
	}
	if f.detachResize != nil {
		f.detachResize()
		f.detachResize = nil
	}

	systems.ClearParticles(f.ecs)
	systems.RemoveCursor(f.ecs)
	systems.UnmountSurface(f.ecs)
}

// step is the per-frame callback: update, render, schedule the next frame.
// Until the surface has a drawable size the frame is skipped.
func (f *Field) step() {
	if systems.SurfaceReady(f.ecs) {
		f.ecs.Update()
		systems.DrawField(f.ecs)
	}
	f.frameID = f.scheduler.Request(f.step)
}

func (f *Field) handlePointerMove(x, y float64) {
	systems.HandlePointerMove(f.ecs, x, y, f.rng)
}

func (f *Field) handleResize(width, height int) {
	systems.ResizeSurface(f.ecs, width, height)
}
