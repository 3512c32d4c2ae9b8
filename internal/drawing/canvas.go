package drawing

import (
	"image"
	"image/color"

	"github.com/example/quizdraw/internal/geom"
)

const (
	// HitRadius is how close a point must be to a line to hit it.
	HitRadius = 22.0
	// StrokeWidth is the painted width of every line.
	StrokeWidth = 4.0
	// HighlightWidth and HighlightAlpha describe the selection overlay.
	HighlightWidth = 7.0
	HighlightAlpha = 0.6
)

// State is the interaction state reported by Canvas.State.
type State int

const (
	StateIdle State = iota
	StateDrawing
	StateMoving
	StateSuppressed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StateMoving:
		return "moving"
	case StateSuppressed:
		return "suppressed"
	}
	return "unknown"
}

// Canvas owns the lines of one editing session together with the stroke in
// progress, the selection and the line being moved. Index arguments are
// bounds-checked and out of range values are ignored.
type Canvas struct {
	lines    []Line
	current  *Line
	selected int
	moving   int

	suppressed bool
	pen        PenColor
	dirty      bool

	size       image.Point
	scale      float64
	background color.Color
	onChange   func()
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithPenColor sets the colour of new strokes.
func WithPenColor(c PenColor) Option {
	return func(cv *Canvas) {
		if c.Valid() {
			cv.pen = c
		}
	}
}

// WithSize sets the logical canvas size used for snapshots.
func WithSize(w, h int) Option {
	return func(cv *Canvas) {
		if w > 0 && h > 0 {
			cv.size = image.Pt(w, h)
		}
	}
}

// WithSnapshotScale multiplies the snapshot resolution.
func WithSnapshotScale(s float64) Option {
	return func(cv *Canvas) {
		if s > 0 {
			cv.scale = s
		}
	}
}

// WithBackground sets the opaque colour behind snapshot lines.
func WithBackground(c color.Color) Option {
	return func(cv *Canvas) {
		if c != nil {
			cv.background = c
		}
	}
}

// WithOnChange registers fn to run after every mutation.
func WithOnChange(fn func()) Option {
	return func(cv *Canvas) { cv.onChange = fn }
}

// NewCanvas returns an empty canvas in the idle state.
func NewCanvas(opts ...Option) *Canvas {
	cv := &Canvas{
		selected:   -1,
		moving:     -1,
		pen:        Black,
		size:       image.Pt(800, 600),
		scale:      1,
		background: color.White,
	}
	for _, o := range opts {
		o(cv)
	}
	return cv
}

func (cv *Canvas) changed() {
	cv.dirty = true
	if cv.onChange != nil {
		cv.onChange()
	}
}

func (cv *Canvas) valid(i int) bool { return i >= 0 && i < len(cv.lines) }

// State reports the current interaction state. A move in progress reports
// Moving even while input is suppressed.
func (cv *Canvas) State() State {
	switch {
	case cv.moving >= 0:
		return StateMoving
	case cv.suppressed:
		return StateSuppressed
	case cv.current != nil:
		return StateDrawing
	}
	return StateIdle
}

// Dirty reports whether the canvas changed since the last MarkClean.
func (cv *Canvas) Dirty() bool { return cv.dirty }

// MarkClean resets the dirty flag, normally after a paint.
func (cv *Canvas) MarkClean() { cv.dirty = false }

// Size returns the logical canvas size.
func (cv *Canvas) Size() image.Point { return cv.size }

// Resize changes the logical canvas size.
func (cv *Canvas) Resize(w, h int) {
	if w <= 0 || h <= 0 || cv.size == image.Pt(w, h) {
		return
	}
	cv.size = image.Pt(w, h)
	cv.changed()
}

// Len returns the number of committed lines.
func (cv *Canvas) Len() int { return len(cv.lines) }

// Line returns the committed line at i.
func (cv *Canvas) Line(i int) (Line, bool) {
	if !cv.valid(i) {
		return Line{}, false
	}
	return cv.lines[i], true
}

// CurrentLine returns the stroke in progress, if any.
func (cv *Canvas) CurrentLine() (Line, bool) {
	if cv.current == nil {
		return Line{}, false
	}
	return *cv.current, true
}

// Suppressed reports whether input is currently rejected.
func (cv *Canvas) Suppressed() bool { return cv.suppressed }

// BeginStroke starts a new zero-length stroke at p in the current pen colour.
func (cv *Canvas) BeginStroke(p geom.Point) bool {
	if cv.suppressed || cv.moving >= 0 {
		return false
	}
	cv.current = &Line{Start: p, End: p, Color: cv.pen}
	cv.changed()
	return true
}

// ExtendStroke moves the free end of the stroke in progress to p.
func (cv *Canvas) ExtendStroke(p geom.Point) bool {
	if cv.suppressed || cv.moving >= 0 || cv.current == nil {
		return false
	}
	cv.current.End = p
	cv.changed()
	return true
}

// CommitStroke appends the stroke in progress to the committed lines.
func (cv *Canvas) CommitStroke() bool {
	if cv.suppressed || cv.moving >= 0 {
		return false
	}
	if cv.current == nil {
		return false
	}
	cv.lines = append(cv.lines, *cv.current)
	cv.current = nil
	cv.changed()
	return true
}

// AbortStroke discards the stroke in progress.
func (cv *Canvas) AbortStroke() {
	if cv.current == nil {
		return
	}
	cv.current = nil
	cv.changed()
}

// HitTest returns the index of the topmost line closer to p than HitRadius.
func (cv *Canvas) HitTest(p geom.Point) (int, bool) {
	for i := len(cv.lines) - 1; i >= 0; i-- {
		if geom.DistanceToSegment(p, cv.lines[i].Segment()) < HitRadius {
			return i, true
		}
	}
	return -1, false
}

// Select highlights line i.
func (cv *Canvas) Select(i int) {
	if !cv.valid(i) || cv.selected == i {
		return
	}
	cv.selected = i
	cv.changed()
}

// ClearSelection removes the highlight.
func (cv *Canvas) ClearSelection() {
	if cv.selected < 0 {
		return
	}
	cv.selected = -1
	cv.changed()
}

// Selection returns the selected line index.
func (cv *Canvas) Selection() (int, bool) {
	return cv.selected, cv.selected >= 0
}

// BeginMove marks line i as being dragged. Any stroke in progress is
// discarded. The selection is left alone.
func (cv *Canvas) BeginMove(i int) {
	if !cv.valid(i) {
		return
	}
	cv.current = nil
	cv.moving = i
	cv.changed()
}

// Moving returns the index of the line being dragged.
func (cv *Canvas) Moving() (int, bool) {
	return cv.moving, cv.moving >= 0
}

// TranslateLine shifts both endpoints of line i by (dx, dy).
func (cv *Canvas) TranslateLine(i int, dx, dy float64) {
	if !cv.valid(i) {
		return
	}
	cv.lines[i] = cv.lines[i].Translate(dx, dy)
	cv.changed()
}

// EndMove finishes a drag, keeping the last translation.
func (cv *Canvas) EndMove() {
	if cv.moving < 0 {
		return
	}
	cv.moving = -1
	cv.changed()
}

// ClearAll removes every line and resets the stroke, selection and move.
func (cv *Canvas) ClearAll() {
	cv.lines = nil
	cv.current = nil
	cv.selected = -1
	cv.moving = -1
	cv.changed()
}

// SetSuppressed gates input. Enabling suppression discards the stroke in
// progress.
func (cv *Canvas) SetSuppressed(v bool) {
	if v {
		cv.current = nil
	}
	cv.suppressed = v
	cv.changed()
}

// DeleteLine removes line i. Selection and move indices that pointed at it
// are cleared and those above it follow the shift.
func (cv *Canvas) DeleteLine(i int) {
	if !cv.valid(i) {
		return
	}
	cv.lines = append(cv.lines[:i], cv.lines[i+1:]...)
	cv.selected = shiftIndex(cv.selected, i)
	cv.moving = shiftIndex(cv.moving, i)
	cv.changed()
}

func shiftIndex(idx, removed int) int {
	switch {
	case idx == removed:
		return -1
	case idx > removed:
		return idx - 1
	}
	return idx
}

// RecolorLine changes the colour of line i.
func (cv *Canvas) RecolorLine(i int, c PenColor) {
	if !cv.valid(i) || !c.Valid() {
		return
	}
	cv.lines[i].Color = c
	cv.changed()
}

// SetPenColor sets the colour used by future strokes.
func (cv *Canvas) SetPenColor(c PenColor) {
	if !c.Valid() || cv.pen == c {
		return
	}
	cv.pen = c
	cv.changed()
}

// PenColor returns the colour used by future strokes.
func (cv *Canvas) PenColor() PenColor { return cv.pen }

// ExportDrawing returns a copy of the committed lines.
func (cv *Canvas) ExportDrawing() Drawing {
	return Drawing{Lines: cv.lines}.Clone()
}

// LoadDrawing replaces the committed lines with a copy of d.
func (cv *Canvas) LoadDrawing(d Drawing) {
	cv.lines = d.Clone().Lines
	cv.current = nil
	if !cv.valid(cv.selected) {
		cv.selected = -1
	}
	if !cv.valid(cv.moving) {
		cv.moving = -1
	}
	cv.changed()
}
