package gallery

// Browser is a keyboard cursor over Count items shown Columns x Rows at a
// time.
type Browser struct {
	Columns, Rows int
	count         int
	cursor        int
}

func NewBrowser(count, cols, rows int) *Browser {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Browser{Columns: cols, Rows: rows, count: count}
}

func (b *Browser) Count() int  { return b.count }
func (b *Browser) Cursor() int { return b.cursor }
func (b *Browser) PageSize() int {
	return b.Columns * b.Rows
}

func (b *Browser) Page() int { return b.cursor / b.PageSize() }

func (b *Browser) Pages() int {
	if b.count == 0 {
		return 1
	}
	return (b.count + b.PageSize() - 1) / b.PageSize()
}

// Visible returns the half-open range of items on the cursor's page.
func (b *Browser) Visible() (start, end int) {
	start = b.Page() * b.PageSize()
	end = min(start+b.PageSize(), b.count)
	return start, end
}

// Resize changes the page shape, keeping the cursor.
func (b *Browser) Resize(cols, rows int) {
	b.Columns, b.Rows = max(cols, 1), max(rows, 1)
}

func (b *Browser) SetCursor(i int) {
	if b.count == 0 {
		b.cursor = 0
		return
	}
	b.cursor = min(max(i, 0), b.count-1)
}

// Move shifts the cursor by whole cells. Horizontal moves flow across row
// ends; vertical moves stop at the first and last rows.
func (b *Browser) Move(dx, dy int) {
	if dy != 0 {
		next := b.cursor + dy*b.Columns
		if next < 0 || next >= b.count {
			return
		}
		b.cursor = next
	}
	b.SetCursor(b.cursor + dx)
}

func (b *Browser) PageDown() { b.SetCursor(b.cursor + b.PageSize()) }
func (b *Browser) PageUp()   { b.SetCursor(b.cursor - b.PageSize()) }
func (b *Browser) Home()     { b.SetCursor(0) }
func (b *Browser) End()      { b.SetCursor(b.count - 1) }
