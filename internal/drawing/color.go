package drawing

import (
	"fmt"
	"image/color"
)

// PenColor names one of the fixed stroke colours. Its text form is the
// lowercase name and is part of the persisted format.
type PenColor string

const (
	Black PenColor = "black"
	Red   PenColor = "red"
	Green PenColor = "green"
	Blue  PenColor = "blue"
)

// PenColors lists every pen colour in menu order.
var PenColors = []PenColor{Black, Red, Green, Blue}

var penRGBA = map[PenColor]color.RGBA{
	Black: {0, 0, 0, 255},
	Red:   {255, 59, 48, 255},
	Green: {52, 199, 89, 255},
	Blue:  {0, 122, 255, 255},
}

var penNames = map[PenColor]string{
	Black: "Black",
	Red:   "Red",
	Green: "Green",
	Blue:  "Blue",
}

// Valid reports whether c is one of PenColors.
func (c PenColor) Valid() bool {
	_, ok := penRGBA[c]
	return ok
}

// DisplayName returns the human readable name used in menus.
func (c PenColor) DisplayName() string {
	if n, ok := penNames[c]; ok {
		return n
	}
	return string(c)
}

// RGBA returns the colour lines of this pen are painted with. Unknown values
// paint black.
func (c PenColor) RGBA() color.RGBA {
	if v, ok := penRGBA[c]; ok {
		return v
	}
	return penRGBA[Black]
}

func (c PenColor) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown pen color %q", string(c))
	}
	return []byte(c), nil
}

func (c *PenColor) UnmarshalText(b []byte) error {
	v := PenColor(b)
	if !v.Valid() {
		return fmt.Errorf("unknown pen color %q", string(b))
	}
	*c = v
	return nil
}

// ParsePenColor converts a lowercase colour name to a PenColor.
func ParsePenColor(s string) (PenColor, error) {
	var c PenColor
	if err := c.UnmarshalText([]byte(s)); err != nil {
		return "", err
	}
	return c, nil
}
