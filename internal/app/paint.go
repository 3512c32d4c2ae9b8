package app

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/example/quizdraw/internal/drawing"
	"github.com/example/quizdraw/internal/render"
	"github.com/example/quizdraw/internal/session"
	"github.com/example/quizdraw/internal/theme"
)

// frame is everything one paint needs.
type frame struct {
	size    image.Point
	canvas  *drawing.Canvas
	theme   *theme.Theme
	title   string
	menu    *session.Menu
	hover   int
	message string
}

func canvasRect(size image.Point) image.Rectangle {
	h := size.Y - statusHeight
	if h < 0 {
		h = 0
	}
	return image.Rect(0, 0, size.X, h)
}

func paintFrame(dst *image.RGBA, f frame) {
	t := f.theme
	render.Fill(dst, t.Background)
	area := canvasRect(f.size)
	render.FillRect(dst, area, t.CanvasBackground)
	f.canvas.RenderAt(dst, area.Min, 1)
	render.StrokeRect(dst, area, t.CanvasBorder, 1)
	paintStatus(dst, f)
	if f.menu != nil {
		paintMenu(dst, *f.menu, layoutMenu(*f.menu, area), f.hover, t)
	}
}

func statusText(f frame) string {
	if f.message != "" {
		return f.message
	}
	state := f.canvas.State()
	return fmt.Sprintf("%s  |  pen: %s  |  lines: %d  |  %s",
		f.title, f.canvas.PenColor().DisplayName(), f.canvas.Len(), state)
}

func paintStatus(dst *image.RGBA, f frame) {
	t := f.theme
	bar := image.Rect(0, f.size.Y-statusHeight, f.size.X, f.size.Y)
	render.FillRect(dst, bar, t.StatusBackground)
	swatch := image.Rect(bar.Min.X+6, bar.Min.Y+6, bar.Min.X+18, bar.Max.Y-6)
	render.FillRect(dst, swatch, f.canvas.PenColor().RGBA())
	_, h, _ := render.MeasureText("Ag", titleSize)
	render.DrawText(dst, swatch.Max.X+8, bar.Min.Y+(statusHeight-h)/2, statusText(f), t.Foreground, titleSize)
}

func paintMenu(dst *image.RGBA, m session.Menu, l menuLayout, hover int, t *theme.Theme) {
	if l.overlay {
		render.FillRect(dst, dst.Bounds(), t.MenuOverlay)
	}
	draw.Draw(dst, l.panel, image.NewUniform(t.MenuBackground), image.Point{}, draw.Src)
	render.StrokeRect(dst, l.panel, t.MenuBorder, 1)
	y := l.header.Min.Y + menuPad
	for _, line := range []string{m.Title, m.Message} {
		if line == "" {
			continue
		}
		w, h, _ := render.MeasureText(line, titleSize)
		render.DrawText(dst, l.header.Min.X+(l.header.Dx()-w)/2, y, line, t.MenuTitle, titleSize)
		y += h + menuPad
	}
	for i, it := range m.Items {
		r := l.items[i]
		if i == hover {
			render.FillRect(dst, r, t.MenuHover)
		}
		render.FillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), t.MenuBorder)
		col := t.MenuText
		if it.Role == session.RoleDestructive {
			col = t.MenuDestructive
		}
		w, h, _ := render.MeasureText(it.Title, itemSize)
		render.DrawText(dst, r.Min.X+(r.Dx()-w)/2, r.Min.Y+(r.Dy()-h)/2, it.Title, col, itemSize)
	}
}

// messageTimeout is how long a status message replaces the status line.
const messageTimeout = 3 * time.Second
