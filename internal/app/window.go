// Package app hosts a drawing session in a desktop window.
package app

import (
	"image"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/quizdraw/internal/drawing"
	"github.com/example/quizdraw/internal/geom"
	"github.com/example/quizdraw/internal/session"
	"github.com/example/quizdraw/internal/theme"
)

// tickEvent wakes the event loop when a gesture deadline passes.
type tickEvent struct{}

// clearMessageEvent removes a transient status message.
type clearMessageEvent struct{ seq int }

// CopyFunc places a snapshot on the clipboard.
type CopyFunc func(img image.Image) error

// Window shows a drawing canvas and turns mouse input into session pointer
// events.
type Window struct {
	canvas *drawing.Canvas
	ctrl   *session.Controller
	theme  *theme.Theme
	log    *zap.Logger
	title  string
	copy   CopyFunc

	win     screen.Window
	size    image.Point
	menu    *session.Menu
	hover   int
	pressed bool
	message string
	msgSeq  int
	timer   *time.Timer
}

// Option configures a Window.
type Option func(*Window)

// WithTheme sets the colours used to paint the window.
func WithTheme(t *theme.Theme) Option {
	return func(w *Window) {
		if t != nil {
			w.theme = t
		}
	}
}

// WithLogger sets the window logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Window) {
		if l != nil {
			w.log = l
		}
	}
}

// WithTitle sets the window title shown in the status bar.
func WithTitle(title string) Option {
	return func(w *Window) { w.title = title }
}

// WithCopy enables copying the snapshot with the c key.
func WithCopy(fn CopyFunc) Option {
	return func(w *Window) { w.copy = fn }
}

// New prepares a window for a session over canvas. onEnd is called once when
// the window closes.
func New(canvas *drawing.Canvas, onEnd session.EndFunc, opts ...Option) *Window {
	w := &Window{
		canvas: canvas,
		theme:  theme.Default(),
		log:    zap.NewNop(),
		title:  "quizdraw",
		hover:  -1,
	}
	for _, o := range opts {
		o(w)
	}
	w.ctrl = session.NewController(canvas, w, onEnd, session.WithLogger(w.log))
	cs := canvas.Size()
	w.size = image.Pt(cs.X, cs.Y+statusHeight)
	return w
}

// Controller returns the session controller driven by the window.
func (w *Window) Controller() *session.Controller { return w.ctrl }

// Present implements session.Presenter.
func (w *Window) Present(m session.Menu) {
	w.menu = &m
	w.hover = -1
	w.repaint()
}

// Dismiss implements session.Presenter.
func (w *Window) Dismiss() {
	w.menu = nil
	w.hover = -1
	w.repaint()
}

// Run starts the platform driver and blocks until the window is closed.
func (w *Window) Run(existing *drawing.Drawing) {
	driver.Main(func(s screen.Screen) {
		if err := w.Main(s, existing); err != nil {
			w.log.Error("window", zap.Error(err))
		}
	})
}

// Main runs the event loop on s.
func (w *Window) Main(s screen.Screen, existing *drawing.Drawing) error {
	win, err := s.NewWindow(&screen.NewWindowOptions{Width: w.size.X, Height: w.size.Y, Title: w.title})
	if err != nil {
		return err
	}
	defer win.Release()
	defer func() {
		if w.timer != nil {
			w.timer.Stop()
		}
	}()
	w.win = win
	w.ctrl.Begin(existing)
	defer w.ctrl.End()

	for {
		switch e := win.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}
		case size.Event:
			w.size = e.Size()
			area := canvasRect(w.size)
			w.canvas.Resize(area.Dx(), area.Dy())
		case paint.Event:
			if err := w.drawFrame(s); err != nil {
				w.log.Warn("paint", zap.Error(err))
			}
		case mouse.Event:
			w.handleMouse(e)
		case key.Event:
			if w.handleKey(e) {
				return nil
			}
		case tickEvent:
			w.ctrl.Tick(time.Now())
		case clearMessageEvent:
			if e.seq == w.msgSeq {
				w.message = ""
				w.repaint()
			}
		case error:
			w.log.Warn("window event", zap.Error(e))
		}
		w.schedule()
	}
}

func (w *Window) repaint() {
	if w.win != nil {
		w.win.Send(paint.Event{})
	}
}

// schedule arms a timer for the controller's next gesture deadline.
func (w *Window) schedule() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	at, ok := w.ctrl.NextDeadline()
	if !ok || w.win == nil {
		return
	}
	win := w.win
	w.timer = time.AfterFunc(time.Until(at), func() { win.Send(tickEvent{}) })
}

func (w *Window) setMessage(msg string) {
	w.message = msg
	w.msgSeq++
	seq, win := w.msgSeq, w.win
	if win != nil {
		time.AfterFunc(messageTimeout, func() { win.Send(clearMessageEvent{seq: seq}) })
	}
	w.repaint()
}

func (w *Window) drawFrame(s screen.Screen) error {
	if w.size.X <= 0 || w.size.Y <= 0 {
		return nil
	}
	b, err := s.NewBuffer(w.size)
	if err != nil {
		return err
	}
	defer b.Release()
	paintFrame(b.RGBA(), w.frame())
	w.win.Upload(image.Point{}, b, b.Bounds())
	w.win.Publish()
	return nil
}

func (w *Window) frame() frame {
	return frame{
		size:    w.size,
		canvas:  w.canvas,
		theme:   w.theme,
		title:   w.title,
		menu:    w.menu,
		hover:   w.hover,
		message: w.message,
	}
}

// pointerFor converts a mouse event into a canvas pointer event. ok is false
// for events that are not part of a primary-button gesture.
func pointerFor(e mouse.Event, pressed bool, now time.Time) (session.PointerEvent, bool) {
	ev := session.PointerEvent{Pos: geom.Pt(float64(e.X), float64(e.Y)), Time: now}
	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return ev, false
		}
		ev.Kind = session.PointerDown
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft || !pressed {
			return ev, false
		}
		ev.Kind = session.PointerUp
	case mouse.DirNone:
		if !pressed {
			return ev, false
		}
		ev.Kind = session.PointerMove
	default:
		return ev, false
	}
	return ev, true
}

func (w *Window) handleMouse(e mouse.Event) {
	if w.menu != nil {
		w.handleMenuMouse(e)
		return
	}
	ev, ok := pointerFor(e, w.pressed, time.Now())
	if !ok {
		return
	}
	switch ev.Kind {
	case session.PointerDown:
		w.pressed = true
	case session.PointerUp:
		w.pressed = false
	}
	w.ctrl.HandlePointer(ev)
	w.repaint()
}

func (w *Window) handleMenuMouse(e mouse.Event) {
	l := layoutMenu(*w.menu, canvasRect(w.size))
	p := image.Pt(int(e.X), int(e.Y))
	switch e.Direction {
	case mouse.DirNone:
		if h := l.itemAt(p); h != w.hover {
			w.hover = h
			w.repaint()
		}
	case mouse.DirRelease:
		if w.pressed {
			// Release of the press that opened the menu.
			w.pressed = false
			w.ctrl.HandlePointer(session.PointerEvent{Kind: session.PointerUp, Pos: geom.Pt(float64(e.X), float64(e.Y)), Time: time.Now()})
			return
		}
		if i := l.itemAt(p); i >= 0 {
			w.ctrl.Choose(i)
		} else if !p.In(l.panel) {
			w.ctrl.DismissMenu()
		}
	}
}

// handleKey reports whether the window should close.
func (w *Window) handleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	switch {
	case e.Code == key.CodeEscape:
		if w.menu != nil {
			w.ctrl.DismissMenu()
			return false
		}
		if w.pressed {
			w.pressed = false
			w.ctrl.HandlePointer(session.PointerEvent{Kind: session.PointerCancel, Time: time.Now()})
			w.repaint()
			return false
		}
		return true
	case e.Rune == 'q' && e.Modifiers&key.ModControl != 0:
		return true
	case e.Rune == 'c' || e.Code == key.CodeC && e.Modifiers&key.ModControl != 0:
		w.copySnapshot()
	}
	return false
}

func (w *Window) copySnapshot() {
	if w.copy == nil {
		return
	}
	if w.canvas.Len() == 0 {
		w.setMessage("nothing to copy")
		return
	}
	if err := w.copy(w.canvas.RenderSnapshot()); err != nil {
		w.log.Warn("copy snapshot", zap.Error(err))
		w.setMessage("copy failed: " + err.Error())
		return
	}
	w.setMessage("copied drawing to clipboard")
}
