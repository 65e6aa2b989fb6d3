package input

// PointerFunc receives pointer positions in surface pixels
type PointerFunc func(x, y float64)

// ResizeFunc receives the new viewport size in pixels
type ResizeFunc func(width, height int)

// Source delivers pointer-move and viewport-resize notifications.
// The returned functions detach the listener; calling them again is a no-op.
type Source interface {
	OnPointerMove(fn PointerFunc) (remove func())
	OnResize(fn ResizeFunc) (remove func())
}

type pointerListener struct{ fn PointerFunc }
type resizeListener struct{ fn ResizeFunc }

// Hub fans out polled input to registered listeners.
//
// Listeners are invoked in registration order on the goroutine that calls
// Poll or SetViewport. Hub only reports changes: a pointer that has not
// moved and a viewport that keeps its size produce no notifications.
type Hub struct {
	pointer []*pointerListener
	resize  []*resizeListener

	primed bool
	px, py int

	width, height int
}

// NewHub creates a hub with no listeners
func NewHub() *Hub {
	return &Hub{}
}

func (h *Hub) OnPointerMove(fn PointerFunc) func() {
	l := &pointerListener{fn: fn}
	h.pointer = append(h.pointer, l)
	return func() {
		for i, other := range h.pointer {
			if other == l {
				h.pointer = append(h.pointer[:i], h.pointer[i+1:]...)
				return
			}
		}
	}
}

func (h *Hub) OnResize(fn ResizeFunc) func() {
	l := &resizeListener{fn: fn}
	h.resize = append(h.resize, l)
	return func() {
		for i, other := range h.resize {
			if other == l {
				h.resize = append(h.resize[:i], h.resize[i+1:]...)
				return
			}
		}
	}
}

// Poll records the current cursor position and notifies pointer listeners if
// it moved. The first observation only primes the hub.
func (h *Hub) Poll(x, y int) {
	if !h.primed {
		h.primed = true
		h.px, h.py = x, y
		return
	}
	if x == h.px && y == h.py {
		return
	}
	h.px, h.py = x, y
	h.MovePointer(float64(x), float64(y))
}

// MovePointer notifies pointer listeners unconditionally
func (h *Hub) MovePointer(x, y float64) {
	// Copy so listeners may detach themselves while being notified
	listeners := append([]*pointerListener(nil), h.pointer...)
	for _, l := range listeners {
		l.fn(x, y)
	}
}

// SetViewport records the viewport size and notifies resize listeners if it changed
func (h *Hub) SetViewport(width, height int) {
	if width == h.width && height == h.height {
		return
	}
	h.width, h.height = width, height
	listeners := append([]*resizeListener(nil), h.resize...)
	for _, l := range listeners {
		l.fn(width, height)
	}
}

// Viewport returns the last recorded viewport size
func (h *Hub) Viewport() (int, int) {
	return h.width, h.height
}

// ListenerCount returns the number of attached pointer and resize listeners
func (h *Hub) ListenerCount() (pointer, resize int) {
	return len(h.pointer), len(h.resize)
}
