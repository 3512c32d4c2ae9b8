// Package session drives one drawing editing session: it recognises gestures
// from raw pointer input, applies them to a drawing.Canvas and raises the
// contextual menus.
package session

import (
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/example/quizdraw/internal/drawing"
	"github.com/example/quizdraw/internal/geom"
)

// EndFunc receives the result of a session. snapshot is nil when the drawing
// is empty.
type EndFunc func(d drawing.Drawing, snapshot image.Image)

// Controller maps gestures to canvas operations.
type Controller struct {
	canvas    *drawing.Canvas
	presenter Presenter
	onEnd     EndFunc
	log       *zap.Logger

	recognizer *Recognizer
	menu       *Menu
	longPress  bool
	ended      bool
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger used for gesture decisions.
func WithLogger(l *zap.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithRecognizerOptions tunes the gesture timings.
func WithRecognizerOptions(opts ...RecognizerOption) ControllerOption {
	return func(c *Controller) {
		c.recognizer = NewRecognizer(c, opts...)
	}
}

// NewController returns a controller for cv. presenter may be nil when the
// host polls Menu instead.
func NewController(cv *drawing.Canvas, presenter Presenter, onEnd EndFunc, opts ...ControllerOption) *Controller {
	c := &Controller{
		canvas:    cv,
		presenter: presenter,
		onEnd:     onEnd,
		log:       zap.NewNop(),
	}
	c.recognizer = NewRecognizer(c)
	for _, o := range opts {
		o(c)
	}
	return c
}

// Canvas returns the canvas being edited.
func (c *Controller) Canvas() *drawing.Canvas { return c.canvas }

// Begin starts the session, loading existing when it is not nil.
func (c *Controller) Begin(existing *drawing.Drawing) {
	if existing != nil {
		c.canvas.LoadDrawing(*existing)
		c.log.Debug("session loaded", zap.Int("lines", len(existing.Lines)))
	}
}

// End finishes the session and reports the drawing to the EndFunc. Only the
// first call has any effect.
func (c *Controller) End() {
	if c.ended {
		return
	}
	c.ended = true
	if c.menu != nil {
		c.menu = nil
		if c.presenter != nil {
			c.presenter.Dismiss()
		}
	}
	c.canvas.AbortStroke()
	d := c.canvas.ExportDrawing()
	c.log.Debug("session ended", zap.Int("lines", len(d.Lines)))
	if c.onEnd == nil {
		return
	}
	if d.Empty() {
		c.onEnd(d, nil)
		return
	}
	c.onEnd(d, c.canvas.RenderSnapshot())
}

// Ended reports whether End has run.
func (c *Controller) Ended() bool { return c.ended }

// HandlePointer feeds a raw pointer event through gesture recognition.
func (c *Controller) HandlePointer(ev PointerEvent) {
	if c.ended {
		return
	}
	c.recognizer.Handle(ev)
}

// Tick advances gesture timers.
func (c *Controller) Tick(now time.Time) {
	if c.ended {
		return
	}
	c.recognizer.Tick(now)
}

// NextDeadline reports when Tick should next be called.
func (c *Controller) NextDeadline() (time.Time, bool) {
	return c.recognizer.NextDeadline()
}

// Menu returns the open menu.
func (c *Controller) Menu() (Menu, bool) {
	if c.menu == nil {
		return Menu{}, false
	}
	return *c.menu, true
}

// Choose runs item i of the open menu and closes it.
func (c *Controller) Choose(i int) {
	if c.menu == nil || i < 0 || i >= len(c.menu.Items) {
		return
	}
	item := c.menu.Items[i]
	c.log.Debug("menu choice", zap.String("menu", c.menu.Title), zap.String("item", item.Title))
	c.closeMenu()
	if item.Action != nil {
		item.Action()
	}
}

// DismissMenu closes the open menu without running any item.
func (c *Controller) DismissMenu() {
	if c.menu == nil {
		return
	}
	c.log.Debug("menu dismissed", zap.String("menu", c.menu.Title))
	c.closeMenu()
}

func (c *Controller) openMenu(m Menu) {
	if c.menu != nil && c.presenter != nil {
		c.presenter.Dismiss()
	}
	c.menu = &m
	c.canvas.SetSuppressed(true)
	if c.presenter != nil {
		c.presenter.Present(m)
	}
}

func (c *Controller) closeMenu() {
	c.menu = nil
	if c.presenter != nil {
		c.presenter.Dismiss()
	}
	if !c.longPress {
		c.canvas.SetSuppressed(false)
	}
}

func (c *Controller) lineMenu(i int, at geom.Point) Menu {
	items := []MenuItem{{
		Title: "Delete Line",
		Role:  RoleDestructive,
		Action: func() {
			c.canvas.DeleteLine(i)
			c.canvas.ClearSelection()
		},
	}}
	for _, pc := range drawing.PenColors {
		items = append(items, MenuItem{
			Title:  pc.DisplayName(),
			Action: func() { c.canvas.RecolorLine(i, pc) },
		})
	}
	items = append(items, MenuItem{Title: "Cancel", Role: RoleCancel})
	return Menu{Title: "Line", Style: ActionSheet, Anchor: at, Items: items}
}

func (c *Controller) penMenu(at geom.Point) Menu {
	var items []MenuItem
	for _, pc := range drawing.PenColors {
		items = append(items, MenuItem{
			Title:  pc.DisplayName(),
			Action: func() { c.canvas.SetPenColor(pc) },
		})
	}
	items = append(items, MenuItem{Title: "Cancel", Role: RoleCancel})
	return Menu{Title: "Pen Color", Style: ActionSheet, Anchor: at, Items: items}
}

func (c *Controller) clearMenu(at geom.Point) Menu {
	return Menu{
		Title:   "Clear Drawing?",
		Message: "Delete all lines?",
		Style:   Alert,
		Anchor:  at,
		Items: []MenuItem{
			{Title: "Cancel", Role: RoleCancel},
			{Title: "Delete", Role: RoleDestructive, Action: c.canvas.ClearAll},
		},
	}
}

// Pointer applies the raw stroke stream.
func (c *Controller) Pointer(kind PointerKind, p geom.Point) {
	_, moving := c.canvas.Moving()
	switch kind {
	case PointerDown:
		if !c.canvas.Suppressed() && !moving {
			c.canvas.BeginStroke(p)
		}
	case PointerMove:
		if _, drawingStroke := c.canvas.CurrentLine(); drawingStroke && !c.canvas.Suppressed() && !moving {
			c.canvas.ExtendStroke(p)
		}
	case PointerUp:
		if !c.canvas.Suppressed() && !moving {
			c.canvas.CommitStroke()
		}
	case PointerCancel:
		c.canvas.AbortStroke()
	}
}

// Tap selects the line under p and offers line actions.
func (c *Controller) Tap(p geom.Point) {
	if c.canvas.Suppressed() {
		c.log.Debug("tap ignored while suppressed")
		return
	}
	i, ok := c.canvas.HitTest(p)
	if !ok {
		c.log.Debug("tap missed", zap.Float64("x", p.X), zap.Float64("y", p.Y))
		c.canvas.ClearSelection()
		return
	}
	c.log.Debug("tap hit", zap.Int("line", i))
	c.canvas.Select(i)
	c.openMenu(c.lineMenu(i, p))
}

// DoubleTap asks before clearing the drawing.
func (c *Controller) DoubleTap(p geom.Point) {
	c.log.Debug("double tap")
	c.openMenu(c.clearMenu(p))
}

// LongPressBegan picks up the line under p, or offers pen colours.
func (c *Controller) LongPressBegan(p geom.Point) {
	c.longPress = true
	c.canvas.SetSuppressed(true)
	if i, ok := c.canvas.HitTest(p); ok {
		c.log.Debug("long press move", zap.Int("line", i))
		c.canvas.Select(i)
		c.canvas.BeginMove(i)
		return
	}
	c.log.Debug("long press pen menu")
	c.openMenu(c.penMenu(p))
}

// LongPressEnded drops a moved line and lifts suppression unless a menu is
// still open.
func (c *Controller) LongPressEnded(geom.Point) {
	c.longPress = false
	c.canvas.EndMove()
	if c.menu == nil {
		c.canvas.SetSuppressed(false)
	}
}

// PanChanged drags the moving line by delta.
func (c *Controller) PanChanged(delta geom.Point) {
	if i, ok := c.canvas.Moving(); ok {
		c.canvas.TranslateLine(i, delta.X, delta.Y)
	}
}

// PanEnded finishes a drag.
func (c *Controller) PanEnded() {
	if _, ok := c.canvas.Moving(); ok {
		c.canvas.EndMove()
	}
}
