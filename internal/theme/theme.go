package theme

import (
	"image/color"
)

// Theme defines the colours of the drawing window, its menus and the saved
// snapshot.
type Theme struct {
	Name string

	// General
	Background       color.RGBA // Window area outside the canvas
	Foreground       color.RGBA // Status bar text
	StatusBackground color.RGBA

	// Canvas
	CanvasBackground   color.RGBA
	CanvasBorder       color.RGBA
	SnapshotBackground color.RGBA // Opaque fill behind saved snapshots

	// Menus
	MenuBackground  color.RGBA
	MenuTitle       color.RGBA
	MenuText        color.RGBA
	MenuHover       color.RGBA
	MenuDestructive color.RGBA
	MenuBorder      color.RGBA
	MenuOverlay     color.RGBA // Dims the canvas while an alert is shown
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:               "Default",
		Background:         color.RGBA{220, 220, 220, 255},
		Foreground:         color.RGBA{0, 0, 0, 255},
		StatusBackground:   color.RGBA{235, 235, 235, 255},
		CanvasBackground:   color.RGBA{255, 255, 255, 255},
		CanvasBorder:       color.RGBA{160, 160, 160, 255},
		SnapshotBackground: color.RGBA{255, 255, 255, 255},
		MenuBackground:     color.RGBA{248, 248, 248, 255},
		MenuTitle:          color.RGBA{110, 110, 110, 255},
		MenuText:           color.RGBA{0, 122, 255, 255},
		MenuHover:          color.RGBA{225, 225, 230, 255},
		MenuDestructive:    color.RGBA{255, 59, 48, 255},
		MenuBorder:         color.RGBA{200, 200, 200, 255},
		MenuOverlay:        color.RGBA{0, 0, 0, 80},
	}
}
