package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/saverium/internal/canvas"
)

// fillSrc is the solid source for polygon triangles; the subimage avoids
// sampling the texture edge.
var fillSrc = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Surface draws world coordinates onto an ebiten image.
type Surface struct {
	img            *ebiten.Image
	worldW, worldH float64
	sx, sy         float32
}

func NewSurface(img *ebiten.Image, worldW, worldH float64) *Surface {
	s := &Surface{worldW: worldW, worldH: worldH}
	s.Target(img)
	return s
}

// Target points the surface at img, rescaling to its bounds.
func (s *Surface) Target(img *ebiten.Image) {
	s.img = img
	b := img.Bounds()
	s.sx = float32(float64(b.Dx()) / s.worldW)
	s.sy = float32(float64(b.Dy()) / s.worldH)
}

func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Size() (float64, float64) { return s.worldW, s.worldH }

func (s *Surface) Fill(c canvas.Color) { s.img.Fill(c.NRGBA()) }

func (s *Surface) pt(p canvas.Point) (float32, float32) {
	return float32(p.X) * s.sx, float32(p.Y) * s.sy
}

func (s *Surface) stroke(w float64) float32 {
	return max(float32(w)*s.sx, 1)
}

func (s *Surface) Circle(center canvas.Point, radius, width float64, c canvas.Color) {
	if radius <= 0 {
		return
	}
	x, y := s.pt(center)
	r := float32(radius) * s.sx
	if width <= 0 {
		vector.DrawFilledCircle(s.img, x, y, r, c.NRGBA(), true)
		return
	}
	vector.StrokeCircle(s.img, x, y, r, s.stroke(width), c.NRGBA(), true)
}

func (s *Surface) Line(a, b canvas.Point, width float64, c canvas.Color) {
	x0, y0 := s.pt(a)
	x1, y1 := s.pt(b)
	vector.StrokeLine(s.img, x0, y0, x1, y1, s.stroke(width), c.NRGBA(), true)
}

func (s *Surface) Polyline(pts []canvas.Point, closed bool, width float64, c canvas.Color) {
	for i := 1; i < len(pts); i++ {
		s.Line(pts[i-1], pts[i], width, c)
	}
	if closed && len(pts) > 2 {
		s.Line(pts[len(pts)-1], pts[0], width, c)
	}
}

func (s *Surface) Rect(x, y, w, h, width float64, c canvas.Color) {
	px, py := s.pt(canvas.Pt(x, y))
	pw, ph := float32(w)*s.sx, float32(h)*s.sy
	if width <= 0 {
		vector.DrawFilledRect(s.img, px, py, pw, ph, c.NRGBA(), true)
		return
	}
	vector.StrokeRect(s.img, px, py, pw, ph, s.stroke(width), c.NRGBA(), true)
}

func (s *Surface) Polygon(pts []canvas.Point, width float64, c canvas.Color) {
	if len(pts) < 3 {
		return
	}
	if width > 0 {
		s.Polyline(pts, true, width, c)
		return
	}
	var path vector.Path
	x, y := s.pt(pts[0])
	path.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = s.pt(p)
		path.LineTo(x, y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := vertexColor(c)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.NonZero, AntiAlias: true}
	s.img.DrawTriangles(vs, is, fillSrc, op)
}

// vertexColor scales c to the 0..1 straight-alpha channels DrawTriangles
// expects by default.
func vertexColor(c canvas.Color) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
