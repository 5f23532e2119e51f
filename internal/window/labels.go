package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/saverium/internal/canvas"
)

type align int

const (
	alignStart align = iota
	alignCenter
	alignEnd
)

// labels caches strings rendered white in basicfont. Colour and scale are
// applied when drawing, so one image serves every use of a string.
type labels struct {
	face   font.Face
	height int
	cache  map[string]*ebiten.Image
}

func newLabels() *labels {
	f := basicfont.Face7x13
	return &labels{face: f, height: f.Height, cache: make(map[string]*ebiten.Image)}
}

func (l *labels) image(s string) *ebiten.Image {
	if img, ok := l.cache[s]; ok {
		return img
	}
	w := max(font.MeasureString(l.face, s).Ceil(), 1)
	rgba := image.NewRGBA(image.Rect(0, 0, w, l.height))
	d := &font.Drawer{
		Dst:  rgba,
		Src:  image.White,
		Face: l.face,
		Dot:  fixed.P(0, l.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
	img := ebiten.NewImageFromImage(rgba)
	l.cache[s] = img
	return img
}

// offset is how far left of x a string of width w starts.
func offset(w float64, a align) float64 {
	switch a {
	case alignCenter:
		return w / 2
	case alignEnd:
		return w
	}
	return 0
}

func (l *labels) draw(dst *ebiten.Image, s string, x, y, scale float64, c canvas.Color, a align) {
	if s == "" {
		return
	}
	img := l.image(s)
	w := float64(img.Bounds().Dx()) * scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-offset(w, a), y)
	op.ColorScale.ScaleWithColor(c.NRGBA())
	dst.DrawImage(img, op)
}
