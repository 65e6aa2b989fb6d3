package field

import (
	"errors"
	"image/color"
	"math"
	"math/rand"
	"strings"
	"testing"

	cfg "github.com/automoto/netfx/config"
	"github.com/automoto/netfx/frame"
	"github.com/automoto/netfx/input"
	"github.com/automoto/netfx/surface"
)

type memoryStore struct {
	items   map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: map[string][]byte{}}
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memoryStore) SaveItem(key string, data []byte) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

type recordingCanvas struct {
	width, height int
	clears        int
	lines         int
	circles       int
	disposed      bool
}

func (c *recordingCanvas) Resize(width, height int) { c.width, c.height = width, height }
func (c *recordingCanvas) Size() (int, int)         { return c.width, c.height }
func (c *recordingCanvas) Clear()                   { c.clears++; c.lines, c.circles = 0, 0 }
func (c *recordingCanvas) Dispose()                 { c.disposed = true }

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) { c.lines++ }
func (c *recordingCanvas) FillCircle(cx, cy, r float64, clr color.Color)             { c.circles++ }

type harness struct {
	field    *Field
	loop     *frame.Loop
	hub      *input.Hub
	store    *memoryStore
	canvases []*recordingCanvas
}

func newHarness(t *testing.T, width, height int) *harness {
	t.Helper()
	h := &harness{
		loop:  frame.NewLoop(),
		hub:   input.NewHub(),
		store: newMemoryStore(),
	}
	h.hub.SetViewport(width, height)
	h.field = New(Options{
		Scheduler: h.loop,
		Input:     h.hub,
		Viewport:  h.hub,
		Store:     h.store,
		NewCanvas: func(w, hh int) surface.Canvas {
			c := &recordingCanvas{width: w, height: hh}
			h.canvases = append(h.canvases, c)
			return c
		},
		Rand: rand.New(rand.NewSource(1)),
	})
	return h
}

func (h *harness) canvas() *recordingCanvas {
	if len(h.canvases) == 0 {
		return nil
	}
	return h.canvases[len(h.canvases)-1]
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.loop.Tick()
	}
}

func (h *harness) stored() string {
	return string(h.store.items[cfg.Preferences.NetworkEffectKey])
}

func TestActivateDefaultsToEnabled(t *testing.T) {
	h := newHarness(t, 800, 600)
	h.field.Activate()

	if h.field.State() != Active {
		t.Fatalf("expected active field, got %v", h.field.State())
	}
	if !h.field.SurfaceMounted() {
		t.Error("expected a mounted surface")
	}
	if got := h.field.Label(); got != "fx: on" {
		t.Errorf("expected label fx: on, got %q", got)
	}
	if h.loop.Pending() != 1 {
		t.Errorf("expected one scheduled frame, got %d", h.loop.Pending())
	}
	if p, r := h.hub.ListenerCount(); p != 1 || r != 1 {
		t.Errorf("expected one pointer and one resize listener, got %d and %d", p, r)
	}
	if w, hh := h.canvas().Size(); w != 800 || hh != 600 {
		t.Errorf("expected 800x600 surface, got %dx%d", w, hh)
	}
}

func TestActivateWithStoredPreference(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   State
		label  string
	}{
		{name: "true", stored: "true", want: Active, label: "fx: on"},
		{name: "false", stored: "false", want: Inactive, label: "fx: off"},
		{name: "garbage", stored: "yes", want: Inactive, label: "fx: off"},
		{name: "cleared", stored: "", want: Active, label: "fx: on"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 800, 600)
			h.store.items[cfg.Preferences.NetworkEffectKey] = []byte(tt.stored)
			h.field.Activate()

			if h.field.State() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, h.field.State())
			}
			if h.field.SurfaceMounted() != (tt.want == Active) {
				t.Errorf("surface mounted=%v does not match state %v", h.field.SurfaceMounted(), tt.want)
			}
			if got := h.field.Label(); got != tt.label {
				t.Errorf("expected label %q, got %q", tt.label, got)
			}
		})
	}
}

func TestDisabledOnLoadHasNoSurfaceOrListeners(t *testing.T) {
	h := newHarness(t, 800, 600)
	h.store.items[cfg.Preferences.NetworkEffectKey] = []byte("false")
	h.field.Activate()

	h.hub.MovePointer(100, 100)
	h.ticks(5)

	if h.field.SurfaceMounted() {
		t.Error("disabled field must not mount a surface")
	}
	if len(h.canvases) != 0 {
		t.Errorf("no canvas should be created, got %d", len(h.canvases))
	}
	if n := len(h.field.Particles()); n != 0 {
		t.Errorf("expected no particles, got %d", n)
	}
	if p, r := h.hub.ListenerCount(); p != 0 || r != 0 {
		t.Errorf("expected no listeners, got %d and %d", p, r)
	}
	if h.loop.Pending() != 0 {
		t.Errorf("expected no scheduled frames, got %d", h.loop.Pending())
	}
}

func TestSeedOnFirstPointerMove(t *testing.T) {
	h := newHarness(t, 800, 600)
	h.field.Activate()

	h.ticks(3)
	if n := len(h.field.Particles()); n != 0 {
		t.Fatalf("expected empty set before pointer movement, got %d", n)
	}
	if _, _, ok := h.field.Cursor(); ok {
		t.Fatal("cursor must not exist before pointer movement")
	}
	if h.loop.Pending() != 1 {
		t.Fatalf("frame loop stalled with empty set: %d pending", h.loop.Pending())
	}

	h.hub.MovePointer(400, 300)
	particles := h.field.Particles()
	if len(particles) != cfg.Field.ParticleCount {
		t.Fatalf("expected %d particles, got %d", cfg.Field.ParticleCount, len(particles))
	}
	for i, p := range particles {
		if d := math.Hypot(p.X-400, p.Y-300); d >= cfg.Field.SpawnRadius {
			t.Errorf("particle %d spawned %.2f from cursor", i, d)
		}
		if math.Abs(p.VX) > cfg.Field.InitialSpeed || math.Abs(p.VY) > cfg.Field.InitialSpeed {
			t.Errorf("particle %d initial velocity (%.3f, %.3f) out of range", i, p.VX, p.VY)
		}
	}

	h.hub.MovePointer(10, 10)
	if n := len(h.field.Particles()); n != cfg.Field.ParticleCount {
		t.Errorf("later pointer moves must not reseed, got %d particles", n)
	}
	if x, y, _ := h.field.Cursor(); x != 10 || y != 10 {
		t.Errorf("expected cursor (10, 10), got (%v, %v)", x, y)
	}
}

func TestFramesRenderAfterSeeding(t *testing.T) {
	h := newHarness(t, 800, 600)
	h.field.Activate()

	h.ticks(1)
	c := h.canvas()
	if c.clears != 1 || c.circles != 0 {
		t.Fatalf("empty frame should only clear: clears=%d circles=%d", c.clears, c.circles)
	}

	h.hub.MovePointer(400, 300)
	h.ticks(1)
	if c.circles != cfg.Field.ParticleCount {
		t.Errorf("expected %d nodes drawn, got %d", cfg.Field.ParticleCount, c.circles)
	}
}

func TestToggleRoundTrip(t *testing.T) {
	for _, initial := range []string{"", "true", "false"} {
		t.Run("stored="+initial, func(t *testing.T) {
			h := newHarness(t, 800, 600)
			if initial != "" {
				h.store.items[cfg.Preferences.NetworkEffectKey] = []byte(initial)
			}
			h.field.Activate()
			startEnabled := h.field.Enabled()

			h.field.Toggle()
			if h.field.Enabled() == startEnabled {
				t.Fatal("toggle did not flip the preference")
			}
			if h.field.SurfaceMounted() != h.field.Enabled() {
				t.Errorf("after first toggle surface=%v enabled=%v", h.field.SurfaceMounted(), h.field.Enabled())
			}
			if h.stored() != boolString(h.field.Enabled()) {
				t.Errorf("stored %q after first toggle", h.stored())
			}

			h.field.Toggle()
			if h.field.Enabled() != startEnabled {
				t.Error("two toggles must restore the preference")
			}
			if h.field.SurfaceMounted() != h.field.Enabled() {
				t.Errorf("after second toggle surface=%v enabled=%v", h.field.SurfaceMounted(), h.field.Enabled())
			}
			if h.stored() != boolString(startEnabled) {
				t.Errorf("stored %q after second toggle, want %q", h.stored(), boolString(startEnabled))
			}
		})
	}
}

func TestDeactivateFreezesState(t *testing.T) {
	h := newHarness(t, 800, 600)
	h.field.Activate()
	h.hub.MovePointer(400, 300)
	h.ticks(10)

	c := h.canvas()
	clears := c.clears
	h.field.Deactivate()

	if h.field.State() != Inactive {
		t.Fatalf("expected inactive field, got %v", h.field.State())
	}
	if !c.disposed {
		t.Error("surface canvas was not released")
	}
	if h.loop.Pending() != 0 {
		t.Errorf("pending frame was not cancelled: %d", h.loop.Pending())
	}

	h.hub.MovePointer(50, 50)
	h.hub.SetViewport(1024, 768)
	h.ticks(10)

	if c.clears != clears {
		t.Errorf("canvas drawn after deactivation: %d clears, was %d", c.clears, clears)
	}
	if n := len(h.field.Particles()); n != 0 {
		t.Errorf("particles survived deactivation: %d", n)
	}
	if _, _, ok := h.field.Cursor(); ok {
		t.Error("cursor survived deactivation")
	}
	if c.width != 800 || c.height != 600 {
		t.Errorf("resize listener fired after deactivation: %dx%d", c.width, c.height)
	}
	if !h.field.Enabled() || h.stored() != "" {
		t.Error("deactivation must not change the preference")
	}
}

func TestReenableStartsOver(t *testing.T) {
	h := newHarness(t, 800, 600)
	h.field.Activate()
	h.hub.MovePointer(400, 300)
	h.ticks(5)

	h.field.Toggle()
	h.field.Toggle()

	if n := len(h.field.Particles()); n != 0 {
		t.Fatalf("re-enabled field must start empty, got %d particles", n)
	}
	h.ticks(3)
	if n := len(h.field.Particles()); n != 0 {
		t.Fatalf("particles appeared without pointer movement: %d", n)
	}

	h.hub.MovePointer(200, 200)
	particles := h.field.Particles()
	if len(particles) != cfg.Field.ParticleCount {
		t.Fatalf("expected reseed on next move, got %d particles", len(particles))
	}
	for i, p := range particles {
		if d := math.Hypot(p.X-200, p.Y-200); d >= cfg.Field.SpawnRadius {
			t.Errorf("particle %d seeded %.2f from new cursor", i, d)
		}
	}
}

func TestResizeKeepsParticles(t *testing.T) {
	h := newHarness(t, 800, 600)
	h.field.Activate()
	h.hub.MovePointer(400, 300)
	h.ticks(5)

	before := h.field.Particles()
	h.hub.SetViewport(320, 200)
	after := h.field.Particles()

	if len(before) != len(after) {
		t.Fatalf("particle count changed on resize: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("particle %d changed on resize: %+v -> %+v", i, before[i], after[i])
		}
	}
	if w, hh := h.canvas().Size(); w != 320 || hh != 200 {
		t.Errorf("expected 320x200 surface, got %dx%d", w, hh)
	}
}

func TestUnmountedSurfaceSkipsFrames(t *testing.T) {
	h := newHarness(t, 0, 0)
	h.field.Activate()
	h.hub.MovePointer(100, 100)

	before := h.field.Particles()
	h.ticks(5)
	after := h.field.Particles()

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("particle %d moved without a drawable surface", i)
		}
	}
	if h.canvas().clears != 0 {
		t.Fatalf("canvas drawn without a drawable surface")
	}
	if h.loop.Pending() != 1 {
		t.Fatalf("frame loop must keep polling, got %d pending", h.loop.Pending())
	}

	h.hub.SetViewport(640, 480)
	h.ticks(1)
	if h.canvas().clears != 1 {
		t.Errorf("expected drawing once the surface has a size, got %d clears", h.canvas().clears)
	}
}

func TestSwarmConvergesOnStationaryCursor(t *testing.T) {
	h := newHarness(t, 800, 600)
	h.field.Activate()
	h.hub.MovePointer(100, 100)

	maxSpeed := 0.0
	for i := 0; i < 1500; i++ {
		h.loop.Tick()
		if i < 1000 {
			continue
		}
		for _, p := range h.field.Particles() {
			maxSpeed = math.Max(maxSpeed, math.Hypot(p.VX, p.VY))
		}
	}

	particles := h.field.Particles()
	var cx, cy float64
	for _, p := range particles {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			t.Fatalf("non-finite particle position %+v", p)
		}
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(particles))
	cy /= float64(len(particles))

	if d := math.Hypot(cx-100, cy-100); d > 40 {
		t.Errorf("swarm centroid (%.1f, %.1f) is %.1f from the cursor", cx, cy, d)
	}
	if maxSpeed > 50 {
		t.Errorf("velocity grew without bound: max speed %.2f", maxSpeed)
	}
}

func TestStoreFailuresFallBackToMemory(t *testing.T) {
	h := newHarness(t, 800, 600)
	h.store.loadErr = errors.New("storage unavailable")
	h.store.saveErr = errors.New("quota exceeded")

	h.field.Activate()
	if h.field.State() != Active {
		t.Fatal("unreadable preference must default to enabled")
	}

	h.field.Toggle()
	if h.field.Enabled() || h.field.State() != Inactive {
		t.Error("toggle must take effect for the session even when the write fails")
	}
	if h.store.saves != 1 {
		t.Errorf("expected one save attempt, got %d", h.store.saves)
	}
}

func TestNilStoreKeepsPreferenceInMemory(t *testing.T) {
	loop, hub := frame.NewLoop(), input.NewHub()
	hub.SetViewport(800, 600)
	f := New(Options{
		Scheduler: loop,
		Input:     hub,
		Viewport:  hub,
		NewCanvas: func(w, h int) surface.Canvas { return &recordingCanvas{width: w, height: h} },
	})

	f.Activate()
	if !f.Enabled() {
		t.Fatal("expected default enabled without a store")
	}
	f.Toggle()
	if f.Enabled() || f.Label() != "fx: off" {
		t.Errorf("expected disabled after toggle, label %q", f.Label())
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func TestDebugStatusWhileInactive(t *testing.T) {
	h := newHarness(t, 800, 600)
	h.field.Activate()
	h.hub.MovePointer(400, 300)
	if got := h.field.DebugStatus(); !strings.Contains(got, "field: active") || !strings.Contains(got, "particles: 20") {
		t.Errorf("unexpected active status %q", got)
	}

	h.field.Toggle()
	got := h.field.DebugStatus()
	for _, want := range []string{"field: inactive", "particles: 0", "surface: unmounted"} {
		if !strings.Contains(got, want) {
			t.Errorf("inactive status %q missing %q", got, want)
		}
	}
}
