package app

import (
	"image"

	"github.com/example/quizdraw/internal/render"
	"github.com/example/quizdraw/internal/session"
)

const (
	statusHeight = 24
	menuWidth    = 220
	itemHeight   = 32
	menuPad      = 8
	titleSize    = 13
	itemSize     = 16
)

// menuLayout is where an open menu sits in the window.
type menuLayout struct {
	panel   image.Rectangle
	header  image.Rectangle
	items   []image.Rectangle
	overlay bool
}

// itemAt returns the index of the item containing p.
func (l menuLayout) itemAt(p image.Point) int {
	for i, r := range l.items {
		if p.In(r) {
			return i
		}
	}
	return -1
}

func headerHeight(m session.Menu) int {
	h := 0
	if m.Title != "" {
		_, th, _ := render.MeasureText(m.Title, titleSize)
		h += th + menuPad
	}
	if m.Message != "" {
		_, mh, _ := render.MeasureText(m.Message, titleSize)
		h += mh + menuPad
	}
	if h > 0 {
		h += menuPad
	}
	return h
}

// layoutMenu places m inside area. Alerts are centred; action sheets open at
// their anchor and are pushed back inside area when they would overflow.
func layoutMenu(m session.Menu, area image.Rectangle) menuLayout {
	width := menuWidth
	for _, it := range m.Items {
		if w, _, _ := render.MeasureText(it.Title, itemSize); w+4*menuPad > width {
			width = w + 4*menuPad
		}
	}
	hh := headerHeight(m)
	height := hh + len(m.Items)*itemHeight
	var origin image.Point
	switch m.Style {
	case session.Alert:
		origin = image.Pt(area.Min.X+(area.Dx()-width)/2, area.Min.Y+(area.Dy()-height)/2)
	default:
		origin = image.Pt(area.Min.X+int(m.Anchor.X), area.Min.Y+int(m.Anchor.Y))
	}
	panel := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(width, height))}
	if panel.Max.X > area.Max.X {
		panel = panel.Sub(image.Pt(panel.Max.X-area.Max.X, 0))
	}
	if panel.Max.Y > area.Max.Y {
		panel = panel.Sub(image.Pt(0, panel.Max.Y-area.Max.Y))
	}
	if panel.Min.X < area.Min.X {
		panel = panel.Add(image.Pt(area.Min.X-panel.Min.X, 0))
	}
	if panel.Min.Y < area.Min.Y {
		panel = panel.Add(image.Pt(0, area.Min.Y-panel.Min.Y))
	}
	l := menuLayout{
		panel:   panel,
		header:  image.Rect(panel.Min.X, panel.Min.Y, panel.Max.X, panel.Min.Y+hh),
		overlay: m.Style == session.Alert,
	}
	y := panel.Min.Y + hh
	for range m.Items {
		l.items = append(l.items, image.Rect(panel.Min.X, y, panel.Max.X, y+itemHeight))
		y += itemHeight
	}
	return l
}
