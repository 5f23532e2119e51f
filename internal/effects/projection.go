package effects

import (
	"math"

	"github.com/san-kum/saverium/internal/canvas"
)

type vec3 struct{ X, Y, Z float64 }

func (v vec3) Scale(s float64) vec3 { return vec3{v.X * s, v.Y * s, v.Z * s} }

type vec4 struct{ X, Y, Z, W float64 }

// camera projects 3D points onto the world plane with a simple pinhole
// model looking down -Z.
type camera struct {
	RotX, RotY, RotZ float64
	Distance         float64
	Zoom             float64
}

func newCamera() *camera { return &camera{Distance: 5, Zoom: 1} }

// rotate rotates a point around the camera's axes.
func (c *camera) rotate(p vec3) vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// project maps p to a point around center. unit is the world size of one
// model unit at the focal plane. The depth is returned for sorting; ok is
// false for points behind the camera.
func (c *camera) project(p vec3, center canvas.Point, unit float64) (canvas.Point, float64, bool) {
	r := c.rotate(p).Scale(c.Zoom)
	if r.Z >= c.Distance-0.1 {
		return canvas.Point{}, 0, false
	}
	scale := c.Distance / (c.Distance - r.Z)
	return canvas.Pt(center.X+r.X*scale*unit, center.Y-r.Y*scale*unit), r.Z, true
}

// rotate4 rotates in the XW and ZW planes.
func rotate4(p vec4, xw, zw float64) vec4 {
	c, s := math.Cos(xw), math.Sin(xw)
	p.X, p.W = p.X*c-p.W*s, p.X*s+p.W*c
	c, s = math.Cos(zw), math.Sin(zw)
	p.Z, p.W = p.Z*c-p.W*s, p.Z*s+p.W*c
	return p
}

// to3 applies a perspective projection from 4D along W.
func to3(p vec4, dist float64) vec3 {
	k := 1 / (dist - p.W)
	return vec3{p.X * k, p.Y * k, p.Z * k}
}
