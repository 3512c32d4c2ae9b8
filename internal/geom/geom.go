// Package geom holds the small amount of plane geometry the drawing canvas
// needs for hit-testing.
package geom

import "math"

// Point is a position in canvas-local coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Segment is a straight line between two points. Start may equal End.
type Segment struct {
	Start, End Point
}

// Degenerate reports whether the segment has zero length.
func (s Segment) Degenerate() bool { return s.Start == s.End }

// DistanceToSegment returns the shortest distance from p to s. A degenerate
// segment is treated as the single point s.Start.
func DistanceToSegment(p Point, s Segment) float64 {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y
	if dx == 0 && dy == 0 {
		return p.Dist(s.Start)
	}
	t := ((p.X-s.Start.X)*dx + (p.Y-s.Start.Y)*dy) / (dx*dx + dy*dy)
	switch {
	case t < 0:
		return p.Dist(s.Start)
	case t > 1:
		return p.Dist(s.End)
	}
	return p.Dist(Point{s.Start.X + t*dx, s.Start.Y + t*dy})
}
