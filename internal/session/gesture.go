package session

import (
	"time"

	"github.com/example/quizdraw/internal/geom"
)

const (
	// TapSlop is how far a press may wander and still count as a tap or long
	// press.
	TapSlop = 8.0
	// DoubleTapSlop is how far apart the two taps of a double tap may be.
	DoubleTapSlop = 24.0
	// LongPressDelay is how long a still press must be held to become a long
	// press.
	LongPressDelay = 500 * time.Millisecond
	// DoubleTapWindow is how long a tap waits for a second tap before it is
	// delivered as a single tap.
	DoubleTapWindow = 300 * time.Millisecond
)

// PointerKind identifies a raw pointer transition.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	}
	return "unknown"
}

// PointerEvent is one raw pointer transition in canvas coordinates.
type PointerEvent struct {
	Kind PointerKind
	ID   int
	Pos  geom.Point
	Time time.Time
}

// Handler receives recognised gestures. Pointer carries the raw stream used
// for strokes; a press that turns out to be a tap is closed with
// PointerCancel rather than PointerUp.
type Handler interface {
	Pointer(kind PointerKind, p geom.Point)
	Tap(p geom.Point)
	DoubleTap(p geom.Point)
	LongPressBegan(p geom.Point)
	LongPressEnded(p geom.Point)
	PanChanged(delta geom.Point)
	PanEnded()
}

type tapCandidate struct {
	pos geom.Point
	at  time.Time
	// second is set while a follow-up press that may complete a double tap
	// is held down.
	second bool
}

// Recognizer turns a single-pointer event stream and a clock into gestures.
// Only the pointer that started the current press is tracked.
type Recognizer struct {
	h Handler

	tapSlop         float64
	longPressDelay  time.Duration
	doubleTapWindow time.Duration

	active    bool
	id        int
	downPos   geom.Point
	lastPos   geom.Point
	downAt    time.Time
	longPress bool
	panning   bool

	candidate *tapCandidate
}

// RecognizerOption configures a Recognizer.
type RecognizerOption func(*Recognizer)

// WithTapSlop overrides TapSlop.
func WithTapSlop(d float64) RecognizerOption {
	return func(r *Recognizer) { r.tapSlop = d }
}

// WithLongPressDelay overrides LongPressDelay.
func WithLongPressDelay(d time.Duration) RecognizerOption {
	return func(r *Recognizer) { r.longPressDelay = d }
}

// WithDoubleTapWindow overrides DoubleTapWindow.
func WithDoubleTapWindow(d time.Duration) RecognizerOption {
	return func(r *Recognizer) { r.doubleTapWindow = d }
}

// NewRecognizer returns a recognizer delivering to h.
func NewRecognizer(h Handler, opts ...RecognizerOption) *Recognizer {
	r := &Recognizer{
		h:               h,
		tapSlop:         TapSlop,
		longPressDelay:  LongPressDelay,
		doubleTapWindow: DoubleTapWindow,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Handle feeds one pointer event. Events from a second pointer while one is
// already pressed are ignored.
func (r *Recognizer) Handle(ev PointerEvent) {
	r.Tick(ev.Time)
	switch ev.Kind {
	case PointerDown:
		if r.active {
			return
		}
		r.active = true
		r.id = ev.ID
		r.downPos, r.lastPos = ev.Pos, ev.Pos
		r.downAt = ev.Time
		r.longPress, r.panning = false, false
		if r.candidate != nil {
			r.candidate.second = true
		}
		r.h.Pointer(PointerDown, ev.Pos)
	case PointerMove:
		if !r.active || ev.ID != r.id {
			return
		}
		if r.longPress {
			r.pan(ev.Pos)
			return
		}
		if !r.panning && ev.Pos.Dist(r.downPos) > r.tapSlop {
			r.flushCandidate()
			r.panning = true
		}
		r.h.Pointer(PointerMove, ev.Pos)
		if r.panning {
			r.pan(ev.Pos)
		}
		r.lastPos = ev.Pos
	case PointerUp:
		if !r.active || ev.ID != r.id {
			return
		}
		r.release(ev.Pos, ev.Time, false)
	case PointerCancel:
		if !r.active || ev.ID != r.id {
			return
		}
		r.release(ev.Pos, ev.Time, true)
	}
}

func (r *Recognizer) pan(p geom.Point) {
	d := p.Sub(r.lastPos)
	r.lastPos = p
	if d == (geom.Point{}) {
		return
	}
	r.h.PanChanged(d)
}

func (r *Recognizer) release(p geom.Point, now time.Time, cancelled bool) {
	r.active = false
	switch {
	case r.longPress:
		r.h.Pointer(PointerCancel, p)
		r.h.PanEnded()
		r.h.LongPressEnded(p)
	case r.panning:
		if cancelled {
			r.h.Pointer(PointerCancel, p)
		} else {
			r.h.Pointer(PointerUp, p)
		}
		r.h.PanEnded()
	case cancelled:
		r.h.Pointer(PointerCancel, p)
		r.flushCandidate()
	default:
		r.h.Pointer(PointerCancel, p)
		if c := r.candidate; c != nil && c.second && p.Dist(c.pos) <= DoubleTapSlop {
			r.candidate = nil
			r.h.DoubleTap(p)
			return
		}
		r.flushCandidate()
		r.candidate = &tapCandidate{pos: p, at: now}
	}
}

func (r *Recognizer) flushCandidate() {
	if r.candidate == nil {
		return
	}
	c := r.candidate
	r.candidate = nil
	r.h.Tap(c.pos)
}

// Tick advances the clock, firing a pending long press or a single tap whose
// double tap window has passed.
func (r *Recognizer) Tick(now time.Time) {
	if c := r.candidate; c != nil && !c.second && now.Sub(c.at) >= r.doubleTapWindow {
		r.flushCandidate()
	}
	if r.active && !r.longPress && !r.panning && now.Sub(r.downAt) >= r.longPressDelay {
		r.flushCandidate()
		r.longPress = true
		r.lastPos = r.downPos
		r.h.LongPressBegan(r.downPos)
	}
}

// NextDeadline returns the earliest time at which Tick would fire something.
func (r *Recognizer) NextDeadline() (time.Time, bool) {
	var next time.Time
	ok := false
	if r.active && !r.longPress && !r.panning {
		next, ok = r.downAt.Add(r.longPressDelay), true
	}
	if c := r.candidate; c != nil && !c.second {
		t := c.at.Add(r.doubleTapWindow)
		if !ok || t.Before(next) {
			next, ok = t, true
		}
	}
	return next, ok
}

// Active reports whether a press is being tracked.
func (r *Recognizer) Active() bool { return r.active }
