package render

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce sync.Once
	goFont   *opentype.Font
	faces    sync.Map // map[float64]font.Face
)

func loadFont() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("parse font: %v", err)
		return
	}
	goFont = f
}

// Face returns a Go Regular face of the given point size, falling back to the
// fixed 7x13 face when the embedded font cannot be parsed.
func Face(size float64) font.Face {
	fontOnce.Do(loadFont)
	if size <= 0 {
		size = 13
	}
	size = math.Round(size*4) / 4
	if face, ok := faces.Load(size); ok {
		return face.(font.Face)
	}
	if goFont == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(goFont, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	actual, _ := faces.LoadOrStore(size, face)
	return actual.(font.Face)
}

// MeasureText returns the width and height of text at size, and the offset
// of the baseline from the top of the box.
func MeasureText(text string, size float64) (width, height, baseline int) {
	face := Face(size)
	d := &font.Drawer{Face: face}
	m := face.Metrics()
	return d.MeasureString(text).Ceil(), m.Ascent.Ceil() + m.Descent.Ceil(), m.Ascent.Ceil()
}

// DrawText renders text with its top-left corner at (x, y).
func DrawText(dst draw.Image, x, y int, text string, col color.Color, size float64) {
	face := Face(size)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
