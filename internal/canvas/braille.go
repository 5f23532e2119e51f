package canvas

import (
	"image"
	"strings"

	"github.com/muesli/termenv"
)

// Braille patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Braille is a monochrome dot grid. Its sub-pixel resolution is
// (Width*2) x (Height*4).
type Braille struct {
	Width, Height int
	Grid          [][]rune
	fg            [][]Color
}

func NewBraille(w, h int) *Braille {
	b := &Braille{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		fg:     make([][]Color, h),
	}
	for i := range b.Grid {
		b.Grid[i] = make([]rune, w)
		b.fg[i] = make([]Color, w)
	}
	b.Clear()
	return b
}

// Set lights the dot at sub-pixel (x, y).
func (b *Braille) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= b.Width || row >= b.Height {
		return
	}
	b.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (b *Braille) Clear() {
	for i := range b.Grid {
		for j := range b.Grid[i] {
			b.Grid[i][j] = brailleBlank
			b.fg[i][j] = Color{}
		}
	}
}

// Load thresholds an image onto the grid. A dot is lit when the pixel's
// luminance exceeds threshold; each cell keeps the brightest lit colour.
// The image is sampled at the grid's sub-pixel resolution.
func (b *Braille) Load(img *image.RGBA, threshold float64) {
	b.Clear()
	bounds := img.Bounds()
	sw, sh := b.Width*2, b.Height*4
	for y := 0; y < sh; y++ {
		py := bounds.Min.Y + y*bounds.Dy()/sh
		for x := 0; x < sw; x++ {
			px := bounds.Min.X + x*bounds.Dx()/sw
			c := FromColor(img.RGBAAt(px, py))
			l := c.Luminance()
			if l <= threshold {
				continue
			}
			b.Set(x, y)
			cell := &b.fg[y/4][x/2]
			if l > cell.Luminance() {
				*cell = c
			}
		}
	}
}

// String renders the grid without colour.
func (b *Braille) String() string {
	var s strings.Builder
	for _, row := range b.Grid {
		s.WriteString(string(row) + "\n")
	}
	return s.String()
}

// Render renders the grid, colouring every non-blank cell in the given
// profile. Ascii profiles degrade to String.
func (b *Braille) Render(p termenv.Profile) string {
	if p == termenv.Ascii {
		return b.String()
	}
	var s strings.Builder
	for i, row := range b.Grid {
		for j, r := range row {
			if r == brailleBlank {
				s.WriteRune(r)
				continue
			}
			s.WriteString(termenv.String(string(r)).Foreground(p.Color(b.fg[i][j].Hex())).String())
		}
		s.WriteByte('\n')
	}
	return s.String()
}
