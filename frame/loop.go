package frame

// ID identifies a requested frame callback. The zero ID is never issued.
type ID uint64

// Scheduler runs callbacks on the next display frame
type Scheduler interface {
	// Request schedules fn to run once on the next frame
	Request(fn func()) ID
	// Cancel drops a pending callback. Unknown or already-run IDs are ignored.
	Cancel(id ID)
}

type request struct {
	id ID
	fn func()
}

// Loop is a Scheduler pumped by the game loop.
//
// Callbacks requested while a tick is running are queued for the following
// tick, so a callback that re-requests itself runs exactly once per tick.
// Loop is not safe for concurrent use; it lives on the update goroutine.
type Loop struct {
	next    ID
	pending []request
	running []request
	frame   uint64
}

// NewLoop creates an empty frame loop
func NewLoop() *Loop {
	return &Loop{}
}

func (l *Loop) Request(fn func()) ID {
	l.next++
	l.pending = append(l.pending, request{id: l.next, fn: fn})
	return l.next
}

func (l *Loop) Cancel(id ID) {
	for i, r := range l.pending {
		if r.id == id {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
	for i := range l.running {
		if l.running[i].id == id {
			l.running[i].fn = nil
			return
		}
	}
}

// Tick runs every callback that was pending when the tick started.
// Must be called once per ebiten Update.
func (l *Loop) Tick() {
	l.frame++
	if len(l.pending) == 0 {
		return
	}

	l.running = l.pending
	l.pending = nil
	for i := range l.running {
		// An earlier callback in this tick may have cancelled this one
		fn := l.running[i].fn
		if fn == nil {
			continue
		}
		l.running[i].fn = nil
		fn()
	}
	l.running = nil
}

// Pending returns the number of callbacks waiting for the next tick
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Frame returns the number of ticks run so far
func (l *Loop) Frame() uint64 {
	return l.frame
}
