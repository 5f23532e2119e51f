// Package gallery lays out effect thumbnails and the settings panel
// independently of any drawing back end.
package gallery

import "image"

// Grid places Count cells row-major, Columns per row.
type Grid struct {
	OriginX, OriginY int
	Columns          int
	CellW, CellH     int
	PadX, PadY       int
	Count            int
}

// DefaultGrid is the window layout: six 180x120 thumbnails per row.
func DefaultGrid(count int) Grid {
	return Grid{OriginX: 30, OriginY: 120, Columns: 6, CellW: 180, CellH: 120, PadX: 15, PadY: 15, Count: count}
}

func (g Grid) PositionOf(i int) image.Point {
	col, row := i%g.Columns, i/g.Columns
	return image.Pt(g.OriginX+col*(g.CellW+g.PadX), g.OriginY+row*(g.CellH+g.PadY))
}

// Rect is the drawn area of cell i. IndexAt also accepts its right and
// bottom edges.
func (g Grid) Rect(i int) image.Rectangle {
	p := g.PositionOf(i)
	return image.Rect(p.X, p.Y, p.X+g.CellW, p.Y+g.CellH)
}

// IndexAt returns the cell containing (x, y), or -1. Edges are
// inclusive; the padding between cells belongs to none.
func (g Grid) IndexAt(x, y int) int {
	if g.Columns <= 0 || x < g.OriginX || y < g.OriginY {
		return -1
	}
	sx, sy := g.CellW+g.PadX, g.CellH+g.PadY
	col, row := (x-g.OriginX)/sx, (y-g.OriginY)/sy
	if col >= g.Columns || (x-g.OriginX)%sx > g.CellW || (y-g.OriginY)%sy > g.CellH {
		return -1
	}
	i := row*g.Columns + col
	if i >= g.Count {
		return -1
	}
	return i
}

func (g Grid) Rows() int {
	if g.Columns <= 0 {
		return 0
	}
	return (g.Count + g.Columns - 1) / g.Columns
}
