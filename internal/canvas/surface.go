package canvas

import "math"

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{x, y} }

func (p Point) Add(o Point) Point       { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point       { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Scale(s float64) Point   { return Point{p.X * s, p.Y * s} }
func (p Point) Dist(o Point) float64    { return math.Hypot(p.X-o.X, p.Y-o.Y) }
func Polar(c Point, r, a float64) Point { return Point{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)} }

// Surface is a mutable 2D drawing target addressed in world coordinates.
type Surface interface {
	// Size reports the world extent the surface maps onto its pixels.
	Size() (w, h float64)
	Fill(c Color)
	Circle(center Point, radius, width float64, c Color)
	Line(a, b Point, width float64, c Color)
	Polyline(pts []Point, closed bool, width float64, c Color)
	Rect(x, y, w, h, width float64, c Color)
	Polygon(pts []Point, width float64, c Color)
}
