package drawing

import (
	"encoding/json"
	"errors"

	"github.com/example/quizdraw/internal/geom"
)

// Line is one committed or in-progress stroke.
type Line struct {
	Start geom.Point
	End   geom.Point
	Color PenColor
}

// Segment returns the geometric extent of the line.
func (l Line) Segment() geom.Segment { return geom.Segment{Start: l.Start, End: l.End} }

// Translate returns l with both endpoints shifted by (dx, dy).
func (l Line) Translate(dx, dy float64) Line {
	d := geom.Pt(dx, dy)
	l.Start = l.Start.Add(d)
	l.End = l.End.Add(d)
	return l
}

type lineRecord struct {
	StartX *float64  `json:"startX"`
	StartY *float64  `json:"startY"`
	EndX   *float64  `json:"endX"`
	EndY   *float64  `json:"endY"`
	Color  *PenColor `json:"color"`
}

var errIncompleteLine = errors.New("line record is missing a field")

func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineRecord{
		StartX: &l.Start.X,
		StartY: &l.Start.Y,
		EndX:   &l.End.X,
		EndY:   &l.End.Y,
		Color:  &l.Color,
	})
}

func (l *Line) UnmarshalJSON(b []byte) error {
	var r lineRecord
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	if r.StartX == nil || r.StartY == nil || r.EndX == nil || r.EndY == nil || r.Color == nil {
		return errIncompleteLine
	}
	*l = Line{
		Start: geom.Pt(*r.StartX, *r.StartY),
		End:   geom.Pt(*r.EndX, *r.EndY),
		Color: *r.Color,
	}
	return nil
}
