package geom

import (
	"math"
	"testing"
)

func TestDistanceToSegment(t *testing.T) {
	seg := Segment{Start: Pt(0, 0), End: Pt(10, 0)}
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"on segment", Pt(5, 0), 0},
		{"above middle", Pt(5, 3), 3},
		{"before start", Pt(-3, 4), 5},
		{"past end", Pt(13, 4), 5},
		{"at end", Pt(10, 0), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DistanceToSegment(tc.p, seg); math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("DistanceToSegment(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestDistanceToDegenerateSegment(t *testing.T) {
	s := Pt(2.5, -7.25)
	seg := Segment{Start: s, End: s}
	for _, p := range []Point{Pt(0, 0), Pt(2.5, -7.25), Pt(-100, 40.5), Pt(1e6, -1e6)} {
		got := DistanceToSegment(p, seg)
		want := math.Hypot(p.X-s.X, p.Y-s.Y)
		if got != want {
			t.Fatalf("DistanceToSegment(%v) = %v, want %v", p, got, want)
		}
		if math.IsNaN(got) {
			t.Fatalf("NaN distance for %v", p)
		}
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2).Add(Pt(3, 4))
	if p != Pt(4, 6) {
		t.Fatalf("Add = %v", p)
	}
	if d := Pt(4, 6).Sub(Pt(1, 2)); d != Pt(3, 4) {
		t.Fatalf("Sub = %v", d)
	}
	if d := Pt(0, 0).Dist(Pt(3, 4)); d != 5 {
		t.Fatalf("Dist = %v", d)
	}
}
