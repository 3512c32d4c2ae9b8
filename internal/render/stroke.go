// Package render paints the vector primitives used by quizdraw onto RGBA
// images: anti-aliased strokes for drawing lines and the text and panels used
// by the interactive window.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Painter strokes line segments with round caps onto a destination image.
// Coordinates are multiplied by Scale and shifted by Offset before painting.
type Painter struct {
	Scale  float64
	Offset image.Point

	dst    draw.Image
	dasher *rasterx.Dasher
	filler *rasterx.Filler
}

// NewPainter prepares a painter for dst. The destination is clipped to its
// own bounds.
func NewPainter(dst draw.Image) *Painter {
	b := dst.Bounds()
	w, h := b.Max.X, b.Max.Y
	scanner := rasterx.NewScannerGV(w, h, dst, b)
	return &Painter{
		Scale:  1,
		dst:    dst,
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
	}
}

func (p *Painter) project(x, y float64) (float64, float64) {
	s := p.Scale
	if s <= 0 {
		s = 1
	}
	return x*s + float64(p.Offset.X), y*s + float64(p.Offset.Y)
}

// Segment strokes the segment (x0,y0)-(x1,y1) with the given width. A
// zero-length segment paints a round dot of the same diameter so that single
// taps remain visible.
func (p *Painter) Segment(x0, y0, x1, y1, width float64, col color.Color) {
	if width <= 0 {
		return
	}
	ax, ay := p.project(x0, y0)
	bx, by := p.project(x1, y1)
	s := p.Scale
	if s <= 0 {
		s = 1
	}
	w := width * s
	if ax == bx && ay == by {
		p.filler.Clear()
		rasterx.AddCircle(ax, ay, w/2, p.filler)
		p.filler.SetColor(col)
		p.filler.Draw()
		p.filler.Clear()
		return
	}
	p.dasher.Clear()
	p.dasher.SetStroke(fixed.Int26_6(w*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	p.dasher.SetColor(col)
	p.dasher.Start(rasterx.ToFixedP(ax, ay))
	p.dasher.Line(rasterx.ToFixedP(bx, by))
	p.dasher.Stop(false)
	p.dasher.Draw()
	p.dasher.Clear()
}

// WithAlpha returns c with its alpha replaced by a in [0,1].
func WithAlpha(c color.RGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}

// Fill paints the whole of dst with col.
func Fill(dst draw.Image, col color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRect paints rect with col, blending when col is translucent.
func FillRect(dst draw.Image, rect image.Rectangle, col color.Color) {
	draw.Draw(dst, rect, image.NewUniform(col), image.Point{}, draw.Over)
}

// StrokeRect outlines rect with a border of the given thickness.
func StrokeRect(dst draw.Image, rect image.Rectangle, col color.Color, thick int) {
	if thick <= 0 {
		return
	}
	u := image.NewUniform(col)
	draw.Draw(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+thick), u, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(rect.Min.X, rect.Max.Y-thick, rect.Max.X, rect.Max.Y), u, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(rect.Min.X, rect.Min.Y+thick, rect.Min.X+thick, rect.Max.Y-thick), u, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(rect.Max.X-thick, rect.Min.Y+thick, rect.Max.X, rect.Max.Y-thick), u, image.Point{}, draw.Over)
}
