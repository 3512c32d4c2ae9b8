package session

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/example/quizdraw/internal/geom"
)

type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) Pointer(kind PointerKind, p geom.Point) { r.add("%s %v,%v", kind, p.X, p.Y) }
func (r *recorder) Tap(p geom.Point)                       { r.add("tap %v,%v", p.X, p.Y) }
func (r *recorder) DoubleTap(p geom.Point)                 { r.add("double %v,%v", p.X, p.Y) }
func (r *recorder) LongPressBegan(p geom.Point)            { r.add("long-began %v,%v", p.X, p.Y) }
func (r *recorder) LongPressEnded(p geom.Point)            { r.add("long-ended") }
func (r *recorder) PanChanged(d geom.Point)                { r.add("pan %v,%v", d.X, d.Y) }
func (r *recorder) PanEnded()                              { r.add("pan-ended") }

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

func ev(kind PointerKind, x, y float64, ms int) PointerEvent {
	return PointerEvent{Kind: kind, Pos: geom.Pt(x, y), Time: at(ms)}
}

func expectEvents(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("events:\n got %q\nwant %q", got, want)
	}
}

func TestSingleTapWaitsForWindow(t *testing.T) {
	rec := &recorder{}
	r := NewRecognizer(rec)
	r.Handle(ev(PointerDown, 10, 10, 0))
	r.Handle(ev(PointerUp, 11, 10, 80))
	expectEvents(t, rec.events, []string{"down 10,10", "cancel 11,10"})
	deadline, ok := r.NextDeadline()
	if !ok || !deadline.Equal(at(380)) {
		t.Fatalf("NextDeadline = %v, %v", deadline, ok)
	}
	r.Tick(at(300))
	if len(rec.events) != 2 {
		t.Fatalf("tap fired early: %q", rec.events)
	}
	r.Tick(at(380))
	expectEvents(t, rec.events, []string{"down 10,10", "cancel 11,10", "tap 11,10"})
	if _, ok := r.NextDeadline(); ok {
		t.Fatalf("deadline still pending")
	}
}

func TestDoubleTapSuppressesTap(t *testing.T) {
	rec := &recorder{}
	r := NewRecognizer(rec)
	r.Handle(ev(PointerDown, 10, 10, 0))
	r.Handle(ev(PointerUp, 10, 10, 50))
	r.Handle(ev(PointerDown, 12, 10, 200))
	r.Handle(ev(PointerUp, 12, 10, 260))
	r.Tick(at(2000))
	expectEvents(t, rec.events, []string{
		"down 10,10", "cancel 10,10",
		"down 12,10", "cancel 12,10",
		"double 12,10",
	})
}

func TestSlowSecondTapIsTwoTaps(t *testing.T) {
	rec := &recorder{}
	r := NewRecognizer(rec)
	r.Handle(ev(PointerDown, 10, 10, 0))
	r.Handle(ev(PointerUp, 10, 10, 50))
	r.Handle(ev(PointerDown, 10, 10, 400))
	r.Handle(ev(PointerUp, 10, 10, 450))
	r.Tick(at(800))
	expectEvents(t, rec.events, []string{
		"down 10,10", "cancel 10,10",
		"tap 10,10",
		"down 10,10", "cancel 10,10",
		"tap 10,10",
	})
}

func TestLongPressWithPan(t *testing.T) {
	rec := &recorder{}
	r := NewRecognizer(rec)
	r.Handle(ev(PointerDown, 50, 50, 0))
	if d, ok := r.NextDeadline(); !ok || !d.Equal(at(500)) {
		t.Fatalf("NextDeadline = %v, %v", d, ok)
	}
	r.Tick(at(500))
	r.Handle(ev(PointerMove, 60, 50, 600))
	r.Handle(ev(PointerMove, 60, 45, 650))
	r.Handle(ev(PointerUp, 60, 45, 700))
	expectEvents(t, rec.events, []string{
		"down 50,50",
		"long-began 50,50",
		"pan 10,0",
		"pan 0,-5",
		"cancel 60,45",
		"pan-ended",
		"long-ended",
	})
}

func TestDragIsStrokeNotTap(t *testing.T) {
	rec := &recorder{}
	r := NewRecognizer(rec)
	r.Handle(ev(PointerDown, 0, 0, 0))
	r.Handle(ev(PointerMove, 4, 0, 20))
	r.Handle(ev(PointerMove, 30, 0, 40))
	r.Handle(ev(PointerUp, 30, 0, 60))
	r.Tick(at(5000))
	expectEvents(t, rec.events, []string{
		"down 0,0",
		"move 4,0",
		"move 30,0",
		"pan 26,0",
		"up 30,0",
		"pan-ended",
	})
}

func TestSecondPointerIgnored(t *testing.T) {
	rec := &recorder{}
	r := NewRecognizer(rec)
	r.Handle(PointerEvent{Kind: PointerDown, ID: 1, Pos: geom.Pt(0, 0), Time: at(0)})
	r.Handle(PointerEvent{Kind: PointerDown, ID: 2, Pos: geom.Pt(90, 90), Time: at(10)})
	r.Handle(PointerEvent{Kind: PointerMove, ID: 2, Pos: geom.Pt(99, 99), Time: at(20)})
	r.Handle(PointerEvent{Kind: PointerUp, ID: 2, Pos: geom.Pt(99, 99), Time: at(30)})
	if !r.Active() {
		t.Fatalf("first pointer released by second")
	}
	expectEvents(t, rec.events, []string{"down 0,0"})
}
