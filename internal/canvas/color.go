package canvas

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied RGBA colour.
type Color struct {
	R, G, B, A uint8
}

var (
	Black     = RGB(0, 0, 0)
	White     = RGB(255, 255, 255)
	Gray      = RGB(100, 100, 100)
	LightGray = RGB(150, 150, 150)
	DarkGray  = RGB(50, 50, 50)
	Blue      = RGB(100, 150, 255)
	Green     = RGB(100, 255, 100)
	Red       = RGB(255, 100, 100)
	Purple    = RGB(255, 100, 255)
)

func RGB(r, g, b uint8) Color { return Color{r, g, b, 255} }

// Gray8 returns an opaque grey with all channels set to v, clamped to 0..255.
func Gray8(v int) Color {
	b := clampByte(v)
	return Color{b, b, b, 255}
}

func (c Color) WithAlpha(a int) Color {
	c.A = clampByte(a)
	return c
}

func (c Color) NRGBA() color.NRGBA { return color.NRGBA{c.R, c.G, c.B, c.A} }

func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// HSV builds an opaque colour from hue in degrees and saturation/value in 0..1.
func HSV(h, s, v float64) Color {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return RGB(r, g, b)
}

func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// Luminance returns the perceived brightness in 0..1.
func (c Color) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
