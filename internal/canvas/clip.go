package canvas

// clipPolygon clips a polygon to the rectangle [0,w]x[0,h] with the
// Sutherland-Hodgman algorithm.
func clipPolygon(pts []Point, w, h float64) []Point {
	inside := func(p Point) bool { return p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h }
	all := true
	for _, p := range pts {
		if !inside(p) {
			all = false
			break
		}
	}
	if all {
		return pts
	}

	edges := []struct {
		in    func(Point) bool
		cross func(a, b Point) Point
	}{
		{func(p Point) bool { return p.X >= 0 }, func(a, b Point) Point { return lerpX(a, b, 0) }},
		{func(p Point) bool { return p.X <= w }, func(a, b Point) Point { return lerpX(a, b, w) }},
		{func(p Point) bool { return p.Y >= 0 }, func(a, b Point) Point { return lerpY(a, b, 0) }},
		{func(p Point) bool { return p.Y <= h }, func(a, b Point) Point { return lerpY(a, b, h) }},
	}

	out := pts
	for _, e := range edges {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]Point, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.in(cur) && e.in(prev):
				out = append(out, cur)
			case e.in(cur):
				out = append(out, e.cross(prev, cur), cur)
			case e.in(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func lerpX(a, b Point, x float64) Point {
	t := (x - a.X) / (b.X - a.X)
	return Point{x, a.Y + t*(b.Y-a.Y)}
}

func lerpY(a, b Point, y float64) Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return Point{a.X + t*(b.X-a.X), y}
}
