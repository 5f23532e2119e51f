package canvas

import (
	"image"
	"strings"

	"github.com/muesli/termenv"
)

const upperHalf = "▀"

// HalfBlock renders an image as rows of "▀" cells, the foreground taking
// the upper pixel and the background the lower one. The image is sampled
// to cols x rows*2 pixels. Adjacent cells with the same colours share one
// escape sequence.
func HalfBlock(img *image.RGBA, cols, rows int, p termenv.Profile) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	bounds := img.Bounds()
	sample := func(x, y int) Color {
		px := bounds.Min.X + x*bounds.Dx()/cols
		py := bounds.Min.Y + y*bounds.Dy()/(rows*2)
		return FromColor(img.RGBAAt(px, py))
	}

	var s strings.Builder
	s.Grow(cols * rows * 4)
	for row := 0; row < rows; row++ {
		var run strings.Builder
		var top, bot Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if p == termenv.Ascii {
				s.WriteString(run.String())
			} else {
				s.WriteString(termenv.String(run.String()).
					Foreground(p.Color(top.Hex())).
					Background(p.Color(bot.Hex())).String())
			}
			run.Reset()
		}
		for col := 0; col < cols; col++ {
			t, b := sample(col, row*2), sample(col, row*2+1)
			if run.Len() > 0 && (t != top || b != bot) {
				flush()
			}
			top, bot = t, b
			if p == termenv.Ascii {
				run.WriteString(asciiShade(t, b))
			} else {
				run.WriteString(upperHalf)
			}
		}
		flush()
		if row < rows-1 {
			s.WriteByte('\n')
		}
	}
	return s.String()
}

var shades = []string{" ", ".", ":", "*", "#"}

func asciiShade(t, b Color) string {
	l := (t.Luminance() + b.Luminance()) / 2
	i := int(l * float64(len(shades)))
	if i >= len(shades) {
		i = len(shades) - 1
	}
	return shades[i]
}
