package drawing

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/example/quizdraw/internal/render"
)

func paintLine(p *render.Painter, l Line, width float64, alpha float64) {
	col := render.WithAlpha(l.Color.RGBA(), alpha)
	p.Segment(l.Start.X, l.Start.Y, l.End.X, l.End.Y, width, col)
}

// Render paints the committed lines in order, then the stroke in progress and
// finally the selection highlight. dst is not cleared first.
func (cv *Canvas) Render(dst draw.Image) {
	cv.RenderAt(dst, image.Point{}, 1)
}

// RenderAt is Render with canvas coordinates scaled and then offset into dst.
func (cv *Canvas) RenderAt(dst draw.Image, offset image.Point, scale float64) {
	p := render.NewPainter(dst)
	p.Offset = offset
	p.Scale = scale
	for _, l := range cv.lines {
		paintLine(p, l, StrokeWidth, 1)
	}
	if cv.current != nil {
		paintLine(p, *cv.current, StrokeWidth, 1)
	}
	if cv.valid(cv.selected) {
		paintLine(p, cv.lines[cv.selected], HighlightWidth, HighlightAlpha)
	}
}

// RenderSnapshot paints only the committed lines on an opaque background. The
// image is the canvas size multiplied by the snapshot scale.
func (cv *Canvas) RenderSnapshot() *image.RGBA {
	return Snapshot(cv.lines, cv.size, cv.scale, cv.background)
}

// Snapshot renders lines the way Canvas.RenderSnapshot does without needing a
// canvas.
func Snapshot(lines []Line, size image.Point, scale float64, bg color.Color) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Round(float64(size.X) * scale))
	h := int(math.Round(float64(size.Y) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	render.Fill(img, bg)
	p := render.NewPainter(img)
	p.Scale = scale
	for _, l := range lines {
		paintLine(p, l, StrokeWidth, 1)
	}
	return img
}
