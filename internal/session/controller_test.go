package session

import (
	"image"
	"testing"

	"github.com/example/quizdraw/internal/drawing"
	"github.com/example/quizdraw/internal/geom"
)

type fakePresenter struct {
	shown     []Menu
	dismissed int
}

func (f *fakePresenter) Present(m Menu) { f.shown = append(f.shown, m) }
func (f *fakePresenter) Dismiss()       { f.dismissed++ }

func newTestController(lines ...drawing.Line) (*Controller, *fakePresenter) {
	p := &fakePresenter{}
	c := NewController(drawing.NewCanvas(drawing.WithSize(200, 200)), p, nil)
	if len(lines) > 0 {
		c.Begin(&drawing.Drawing{Lines: lines})
	}
	return c, p
}

func hline(y float64) drawing.Line {
	return drawing.Line{Start: geom.Pt(0, y), End: geom.Pt(100, y), Color: drawing.Black}
}

func itemIndex(t *testing.T, m Menu, title string) int {
	t.Helper()
	for i, it := range m.Items {
		if it.Title == title {
			return i
		}
	}
	t.Fatalf("menu %q has no item %q", m.Title, title)
	return -1
}

func TestTapOnLineOpensLineMenu(t *testing.T) {
	c, p := newTestController(hline(50))
	c.Tap(geom.Pt(40, 55))
	m, ok := c.Menu()
	if !ok || m.Title != "Line" || m.Style != ActionSheet {
		t.Fatalf("menu = %+v, %v", m, ok)
	}
	titles := []string{}
	for _, it := range m.Items {
		titles = append(titles, it.Title)
	}
	want := []string{"Delete Line", "Black", "Red", "Green", "Blue", "Cancel"}
	if len(titles) != len(want) {
		t.Fatalf("items = %q", titles)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("items = %q, want %q", titles, want)
		}
	}
	if m.Items[0].Role != RoleDestructive || m.Items[5].Role != RoleCancel {
		t.Fatalf("unexpected roles")
	}
	if sel, ok := c.Canvas().Selection(); !ok || sel != 0 {
		t.Fatalf("selection = %d, %v", sel, ok)
	}
	if !c.Canvas().Suppressed() {
		t.Fatalf("canvas not suppressed while menu open")
	}
	if len(p.shown) != 1 {
		t.Fatalf("presenter saw %d menus", len(p.shown))
	}

	c.Choose(itemIndex(t, m, "Green"))
	if l, _ := c.Canvas().Line(0); l.Color != drawing.Green {
		t.Fatalf("recolor failed: %v", l.Color)
	}
	if c.Canvas().Suppressed() {
		t.Fatalf("suppression not lifted after choice")
	}
	if _, ok := c.Menu(); ok {
		t.Fatalf("menu still open")
	}
}

func TestDeleteLineFromMenu(t *testing.T) {
	c, _ := newTestController(hline(20), hline(120))
	c.Tap(geom.Pt(10, 118))
	m, _ := c.Menu()
	c.Choose(itemIndex(t, m, "Delete Line"))
	if c.Canvas().Len() != 1 {
		t.Fatalf("Len = %d", c.Canvas().Len())
	}
	if _, ok := c.Canvas().Selection(); ok {
		t.Fatalf("selection kept after delete")
	}
}

func TestTapMissClearsSelection(t *testing.T) {
	c, _ := newTestController(hline(50))
	c.Canvas().Select(0)
	c.Tap(geom.Pt(150, 150))
	if _, ok := c.Canvas().Selection(); ok {
		t.Fatalf("selection kept after miss")
	}
	if _, ok := c.Menu(); ok {
		t.Fatalf("menu opened on miss")
	}
}

func TestTapIgnoredWhileSuppressed(t *testing.T) {
	c, _ := newTestController(hline(50))
	c.Canvas().SetSuppressed(true)
	c.Tap(geom.Pt(50, 50))
	if _, ok := c.Menu(); ok {
		t.Fatalf("menu opened while suppressed")
	}
}

func TestDoubleTapConfirmsClear(t *testing.T) {
	c, _ := newTestController(hline(50), hline(90))
	c.DoubleTap(geom.Pt(0, 0))
	m, ok := c.Menu()
	if !ok || m.Title != "Clear Drawing?" || m.Message != "Delete all lines?" || m.Style != Alert {
		t.Fatalf("menu = %+v", m)
	}
	c.Choose(itemIndex(t, m, "Cancel"))
	if c.Canvas().Len() != 2 {
		t.Fatalf("cancel cleared the drawing")
	}
	c.DoubleTap(geom.Pt(0, 0))
	m, _ = c.Menu()
	c.Choose(itemIndex(t, m, "Delete"))
	if c.Canvas().Len() != 0 {
		t.Fatalf("Len = %d after delete", c.Canvas().Len())
	}
}

func TestLongPressMovesLine(t *testing.T) {
	c, _ := newTestController(hline(50))
	c.Pointer(PointerDown, geom.Pt(30, 52))
	c.LongPressBegan(geom.Pt(30, 52))
	if _, ok := c.Canvas().CurrentLine(); ok {
		t.Fatalf("stroke survived long press")
	}
	if i, ok := c.Canvas().Moving(); !ok || i != 0 {
		t.Fatalf("Moving = %d, %v", i, ok)
	}
	c.PanChanged(geom.Pt(5, 0))
	c.PanChanged(geom.Pt(0, 10))
	c.Pointer(PointerCancel, geom.Pt(35, 62))
	c.PanEnded()
	c.LongPressEnded(geom.Pt(35, 62))
	l, _ := c.Canvas().Line(0)
	if l.Start != geom.Pt(5, 60) || l.End != geom.Pt(105, 60) {
		t.Fatalf("line = %+v", l)
	}
	if c.Canvas().State() != drawing.StateIdle {
		t.Fatalf("state = %v", c.Canvas().State())
	}
}

func TestLongPressMissOpensPenMenu(t *testing.T) {
	c, _ := newTestController(hline(50))
	c.LongPressBegan(geom.Pt(150, 150))
	m, ok := c.Menu()
	if !ok || m.Title != "Pen Color" {
		t.Fatalf("menu = %+v, %v", m, ok)
	}
	c.LongPressEnded(geom.Pt(150, 150))
	if !c.Canvas().Suppressed() {
		t.Fatalf("suppression lifted while menu open")
	}
	c.Choose(itemIndex(t, m, "Blue"))
	if c.Canvas().PenColor() != drawing.Blue {
		t.Fatalf("pen = %v", c.Canvas().PenColor())
	}
	if c.Canvas().Suppressed() {
		t.Fatalf("suppression kept after choice")
	}
}

func TestTapNeverCommitsLine(t *testing.T) {
	c, _ := newTestController()
	c.HandlePointer(ev(PointerDown, 10, 10, 0))
	c.HandlePointer(ev(PointerUp, 10, 10, 40))
	c.Tick(at(1000))
	if c.Canvas().Len() != 0 {
		t.Fatalf("tap committed a line")
	}
	c.HandlePointer(ev(PointerDown, 10, 10, 2000))
	c.HandlePointer(ev(PointerMove, 60, 10, 2050))
	c.HandlePointer(ev(PointerUp, 80, 10, 2100))
	if c.Canvas().Len() != 1 {
		t.Fatalf("Len = %d after drag", c.Canvas().Len())
	}
	l, _ := c.Canvas().Line(0)
	if l.Start != geom.Pt(10, 10) || l.End != geom.Pt(60, 10) {
		t.Fatalf("line = %+v", l)
	}
}

func TestEndReportsEmptyOnce(t *testing.T) {
	calls := 0
	var snap image.Image = image.NewRGBA(image.Rect(0, 0, 1, 1))
	c := NewController(drawing.NewCanvas(), nil, func(d drawing.Drawing, s image.Image) {
		calls++
		if !d.Empty() {
			t.Fatalf("expected empty drawing")
		}
		snap = s
	})
	c.Begin(nil)
	c.End()
	c.End()
	if calls != 1 {
		t.Fatalf("EndFunc called %d times", calls)
	}
	if snap != nil {
		t.Fatalf("snapshot produced for empty drawing")
	}
}

func TestEndReportsSnapshot(t *testing.T) {
	var got drawing.Drawing
	var snap image.Image
	cv := drawing.NewCanvas(drawing.WithSize(40, 30))
	c := NewController(cv, nil, func(d drawing.Drawing, s image.Image) {
		got, snap = d, s
	})
	c.Begin(&drawing.Drawing{Lines: []drawing.Line{hline(10)}})
	c.Pointer(PointerDown, geom.Pt(1, 1))
	c.End()
	if len(got.Lines) != 1 {
		t.Fatalf("lines = %d", len(got.Lines))
	}
	if snap == nil || snap.Bounds().Size() != image.Pt(40, 30) {
		t.Fatalf("snapshot = %v", snap)
	}
	c.HandlePointer(ev(PointerDown, 5, 5, 0))
	if _, ok := cv.CurrentLine(); ok {
		t.Fatalf("input accepted after End")
	}
}
