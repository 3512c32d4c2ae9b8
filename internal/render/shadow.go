package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions describes the drop shadow drawn behind an exported snapshot.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions returns the shadow used by snapshot -shadow.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{Radius: 12, Offset: image.Pt(8, 8), Opacity: 0.45}
}

// DropShadow returns img on a transparent card grown to hold a blurred
// shadow of its opaque area. The second result is where img's top-left
// corner landed. With zero opacity img is returned as is.
func DropShadow(img *image.RGBA, opts ShadowOptions) (*image.RGBA, image.Point) {
	if img == nil || img.Bounds().Empty() || opts.Opacity <= 0 {
		return img, image.Point{}
	}
	opacity := min(opts.Opacity, 1)
	radius := max(opts.Radius, 0)

	src := img.Bounds()
	shadow := src.Inset(-radius).Add(opts.Offset)
	card := src.Union(shadow)
	origin := src.Min.Sub(card.Min)

	mask := image.NewAlpha(shadow.Sub(shadow.Min))
	inner := image.Rect(radius, radius, radius+src.Dx(), radius+src.Dy())
	draw.Draw(mask, inner, img, src.Min, draw.Src)
	boxBlur(mask, radius)

	out := image.NewRGBA(card.Sub(card.Min))
	tint := image.NewUniform(color.NRGBA{A: uint8(opacity*255 + 0.5)})
	draw.DrawMask(out, mask.Bounds().Add(shadow.Min.Sub(card.Min)), tint, image.Point{}, mask, image.Point{}, draw.Over)
	draw.Draw(out, src.Sub(card.Min), img, src.Min, draw.Over)
	return out, origin
}

// boxBlur blurs the alpha channel in place with a horizontal then vertical
// running-sum pass.
func boxBlur(m *image.Alpha, radius int) {
	if radius <= 0 {
		return
	}
	w, h := m.Bounds().Dx(), m.Bounds().Dy()
	line := make([]uint8, max(w, h))
	blurLine := func(get func(int) uint8, set func(int, uint8), n int) {
		for i := 0; i < n; i++ {
			line[i] = get(i)
		}
		sum := 0
		for i := 0; i <= radius && i < n; i++ {
			sum += int(line[i])
		}
		for i := 0; i < n; i++ {
			lo, hi := max(i-radius, 0), min(i+radius, n-1)
			set(i, uint8(sum/(hi-lo+1)))
			if next := i + radius + 1; next < n {
				sum += int(line[next])
			}
			if i-radius >= 0 {
				sum -= int(line[i-radius])
			}
		}
	}
	for y := 0; y < h; y++ {
		row := m.Pix[y*m.Stride:]
		blurLine(func(x int) uint8 { return row[x] }, func(x int, v uint8) { row[x] = v }, w)
	}
	for x := 0; x < w; x++ {
		blurLine(func(y int) uint8 { return m.Pix[y*m.Stride+x] }, func(y int, v uint8) { m.Pix[y*m.Stride+x] = v }, h)
	}
}
