// Package frame provides the per-frame callback scheduler that drives animation.
package frame

import "time"

// TickID identifies a requested frame callback; zero is never issued
type TickID uint64

// Scheduler is the host's per-frame callback primitive
type Scheduler interface {
	// RequestTick schedules fn to run once on the next frame
	RequestTick(fn func()) TickID

	// CancelTick drops a pending callback; unknown or already-run ids are ignored
	CancelTick(id TickID)
}

type pendingTick struct {
	id TickID
	fn func()
}

// Loop is a Scheduler whose frames are run explicitly by the owner of the execution context
// Callbacks requested while a frame runs are deferred to the following frame
type Loop struct {
	clock   Clock
	nextID  TickID
	pending []pendingTick

	// running is the batch of the frame in progress; ids cancelled from it are skipped
	running   []pendingTick
	cancelled map[TickID]struct{}

	frames    uint64
	lastFrame time.Time
	interval  time.Duration
}

// NewLoop creates a loop reading time from clock; nil uses the system clock
func NewLoop(clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		clock:   clock,
		pending: make([]pendingTick, 0, 4),
	}
}

// RequestTick implements Scheduler
func (l *Loop) RequestTick(fn func()) TickID {
	if fn == nil {
		return 0
	}
	l.nextID++
	l.pending = append(l.pending, pendingTick{id: l.nextID, fn: fn})
	return l.nextID
}

// CancelTick implements Scheduler
// Cancelling a callback of the running frame stops it if it has not run yet
func (l *Loop) CancelTick(id TickID) {
	for i, p := range l.pending {
		if p.id == id {
			l.pending = append(l.pending[:i:i], l.pending[i+1:]...)
			return
		}
	}
	for _, p := range l.running {
		if p.id == id {
			if l.cancelled == nil {
				l.cancelled = make(map[TickID]struct{})
			}
			l.cancelled[id] = struct{}{}
			return
		}
	}
}

// RunFrame runs every callback pending at frame start, in request order
// Returns the number of callbacks run
func (l *Loop) RunFrame() int {
	now := l.clock.Now()
	if l.frames > 0 {
		l.interval = now.Sub(l.lastFrame)
	}
	l.frames++
	l.lastFrame = now

	if len(l.pending) == 0 {
		return 0
	}
	l.running = l.pending
	l.pending = make([]pendingTick, 0, cap(l.running))

	ran := 0
	for _, p := range l.running {
		if _, skip := l.cancelled[p.id]; skip {
			continue
		}
		p.fn()
		ran++
	}
	l.running = nil
	clear(l.cancelled)
	return ran
}

// Pending returns the number of callbacks waiting for the next frame
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Frames returns how many frames have run
func (l *Loop) Frames() uint64 {
	return l.frames
}

// LastFrame returns the clock reading at the start of the most recent frame
func (l *Loop) LastFrame() time.Time {
	return l.lastFrame
}

// Interval returns the time between the two most recent frames, zero before the second
func (l *Loop) Interval() time.Duration {
	return l.interval
}
