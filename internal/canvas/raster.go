package canvas

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Raster is a software Surface backed by an RGBA image. World coordinates
// are scaled independently on each axis onto the pixel grid.
type Raster struct {
	img            *image.RGBA
	z              *vector.Rasterizer
	worldW, worldH float64
	sx, sy         float64
}

func NewRaster(pw, ph int, worldW, worldH float64) *Raster {
	r := &Raster{z: vector.NewRasterizer(1, 1), worldW: worldW, worldH: worldH}
	r.Resize(pw, ph)
	return r
}

// Resize reallocates the pixel buffer. Non-positive sizes are clamped to 1.
func (r *Raster) Resize(pw, ph int) {
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}
	if r.img != nil && r.img.Rect.Dx() == pw && r.img.Rect.Dy() == ph {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, pw, ph))
	r.sx = float64(pw) / r.worldW
	r.sy = float64(ph) / r.worldH
}

func (r *Raster) Image() *image.RGBA { return r.img }

// Snapshot returns a copy of the current pixels.
func (r *Raster) Snapshot() *image.RGBA {
	c := image.NewRGBA(r.img.Rect)
	copy(c.Pix, r.img.Pix)
	return c
}

func (r *Raster) Size() (float64, float64) { return r.worldW, r.worldH }

func (r *Raster) Fill(c Color) {
	draw.Draw(r.img, r.img.Rect, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

func (r *Raster) Circle(center Point, radius, width float64, c Color) {
	if radius <= 0 {
		return
	}
	outer := r.ellipse(center, radius, false)
	if width <= 0 || width >= radius {
		r.fill(c, outer)
		return
	}
	r.fill(c, outer, r.ellipse(center, radius-width, true))
}

func (r *Raster) Line(a, b Point, width float64, c Color) {
	r.fill(c, r.segment(r.device(a), r.device(b), width))
}

func (r *Raster) Polyline(pts []Point, closed bool, width float64, c Color) {
	if len(pts) < 2 {
		return
	}
	paths := make([][]Point, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		paths = append(paths, r.segment(r.device(pts[i-1]), r.device(pts[i]), width))
	}
	if closed && len(pts) > 2 {
		paths = append(paths, r.segment(r.device(pts[len(pts)-1]), r.device(pts[0]), width))
	}
	// Each segment is filled on its own so overlapping joints do not cancel.
	for _, p := range paths {
		r.fill(c, p)
	}
}

func (r *Raster) Rect(x, y, w, h, width float64, c Color) {
	pts := []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	r.Polygon(pts, width, c)
}

func (r *Raster) Polygon(pts []Point, width float64, c Color) {
	if len(pts) < 3 {
		return
	}
	if width > 0 {
		r.Polyline(pts, true, width, c)
		return
	}
	dev := make([]Point, len(pts))
	for i, p := range pts {
		dev[i] = r.device(p)
	}
	r.fill(c, dev)
}

func (r *Raster) device(p Point) Point { return Point{p.X * r.sx, p.Y * r.sy} }

// ellipse returns the device-space outline of a world circle. Reversed
// outlines cut holes when filled together with a forward outline.
func (r *Raster) ellipse(center Point, radius float64, reverse bool) []Point {
	c := r.device(center)
	rx, ry := radius*r.sx, radius*r.sy
	n := int(math.Max(rx, ry) * 1.5)
	if n < 12 {
		n = 12
	}
	if n > 96 {
		n = 96
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			a = -a
		}
		pts[i] = Point{c.X + rx*math.Cos(a), c.Y + ry*math.Sin(a)}
	}
	return pts
}

// segment returns the device-space quad covering a stroked line. The
// stroke is never thinner than one pixel.
func (r *Raster) segment(a, b Point, width float64) []Point {
	w := width * math.Min(r.sx, r.sy)
	if w < 1 {
		w = 1
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		h := w / 2
		return []Point{{a.X - h, a.Y - h}, {a.X + h, a.Y - h}, {a.X + h, a.Y + h}, {a.X - h, a.Y + h}}
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	return []Point{{a.X + nx, a.Y + ny}, {b.X + nx, b.Y + ny}, {b.X - nx, b.Y - ny}, {a.X - nx, a.Y - ny}}
}

// fill rasterizes device-space paths into the image using a rasterizer
// sized to the clipped bounding box of the paths.
func (r *Raster) fill(c Color, paths ...[]Point) {
	if c.A == 0 {
		return
	}
	b := r.img.Rect
	clipped := make([][]Point, 0, len(paths))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range paths {
		p = clipPolygon(p, float64(b.Dx()), float64(b.Dy()))
		if len(p) < 3 {
			continue
		}
		for _, q := range p {
			minX, maxX = math.Min(minX, q.X), math.Max(maxX, q.X)
			minY, maxY = math.Min(minY, q.Y), math.Max(maxY, q.Y)
		}
		clipped = append(clipped, p)
	}
	if len(clipped) == 0 {
		return
	}

	x0, y0 := int(math.Floor(minX)), int(math.Floor(minY))
	w := int(math.Ceil(maxX)) - x0 + 2
	h := int(math.Ceil(maxY)) - y0 + 2
	r.z.Reset(w, h)
	r.z.DrawOp = draw.Over
	for _, p := range clipped {
		r.z.MoveTo(float32(p[0].X-float64(x0)), float32(p[0].Y-float64(y0)))
		for _, q := range p[1:] {
			r.z.LineTo(float32(q.X-float64(x0)), float32(q.Y-float64(y0)))
		}
		r.z.ClosePath()
	}
	dst := image.Rect(x0, y0, x0+w, y0+h).Intersect(b)
	if dst.Empty() {
		return
	}
	r.z.Draw(r.img, dst, image.NewUniform(c.NRGBA()), image.Point{})
}
