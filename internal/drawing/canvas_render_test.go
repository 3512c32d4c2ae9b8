package drawing

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/example/quizdraw/internal/geom"
)

func TestSnapshotSizeAndBackground(t *testing.T) {
	bg := color.RGBA{10, 20, 30, 255}
	cv := NewCanvas(WithSize(100, 50), WithSnapshotScale(2), WithBackground(bg))
	img := cv.RenderSnapshot()
	if got := img.Bounds().Size(); got != image.Pt(200, 100) {
		t.Fatalf("size = %v", got)
	}
	if got := img.RGBAAt(150, 80); got != bg {
		t.Fatalf("background = %v, want %v", got, bg)
	}
}

func TestSnapshotPaintsCommittedLinesOnly(t *testing.T) {
	cv := NewCanvas(WithSize(100, 100))
	cv.LoadDrawing(Drawing{Lines: []Line{{Start: geom.Pt(10, 10), End: geom.Pt(90, 10), Color: Red}}})
	cv.Select(0)
	cv.BeginStroke(geom.Pt(10, 60))
	cv.ExtendStroke(geom.Pt(90, 60))
	img := cv.RenderSnapshot()
	on := img.RGBAAt(50, 10)
	if on.R < 200 || on.G > 120 {
		t.Fatalf("expected red at line, got %v", on)
	}
	if got := img.RGBAAt(50, 60); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("stroke in progress leaked into snapshot: %v", got)
	}
	if got := img.RGBAAt(50, 13); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("highlight leaked into snapshot: %v", got)
	}
}

func TestSnapshotDeterministic(t *testing.T) {
	cv := NewCanvas(WithSize(64, 64))
	cv.LoadDrawing(Drawing{Lines: []Line{
		{Start: geom.Pt(3, 3), End: geom.Pt(60, 41.5), Color: Blue},
		{Start: geom.Pt(30, 30), End: geom.Pt(30, 30), Color: Green},
	}})
	a := cv.RenderSnapshot()
	b := cv.RenderSnapshot()
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("snapshots differ")
	}
	if a.RGBAAt(30, 30) == (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("zero length line not painted")
	}
}

func TestRenderHighlightOnTop(t *testing.T) {
	cv := NewCanvas()
	cv.LoadDrawing(Drawing{Lines: []Line{{Start: geom.Pt(0, 20), End: geom.Pt(100, 20), Color: Black}}})
	plain := image.NewRGBA(image.Rect(0, 0, 100, 40))
	cv.Render(plain)
	if plain.RGBAAt(50, 23).A != 0 {
		t.Fatalf("unselected line painted outside its width")
	}
	cv.Select(0)
	hl := image.NewRGBA(image.Rect(0, 0, 100, 40))
	cv.Render(hl)
	if hl.RGBAAt(50, 23).A == 0 {
		t.Fatalf("highlight not painted")
	}
}
