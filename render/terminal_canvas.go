package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"honnef.co/go/curve"
)

// TerminalCanvas rasterizes surface pixels onto a rectangle of terminal cells
type TerminalCanvas struct {
	screen     tcell.Screen
	originCol  int
	originRow  int
	cols, rows int
	cellWidth  float64
	cellHeight float64
}

// NewTerminalCanvas covers cols x rows cells starting at (originCol, originRow)
func NewTerminalCanvas(screen tcell.Screen, originCol, originRow, cols, rows int, cellWidth, cellHeight float64) *TerminalCanvas {
	return &TerminalCanvas{
		screen:     screen,
		originCol:  originCol,
		originRow:  originRow,
		cols:       cols,
		rows:       rows,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// Resize changes the covered cell rectangle
func (t *TerminalCanvas) Resize(cols, rows int) {
	t.cols, t.rows = cols, rows
}

func (t *TerminalCanvas) Size() (float64, float64) {
	return float64(t.cols) * t.cellWidth, float64(t.rows) * t.cellHeight
}

func (t *TerminalCanvas) Clear() {
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			t.screen.SetContent(t.originCol+col, t.originRow+row, ' ', nil, tcell.StyleDefault)
		}
	}
}

// Line draws with Bresenham over cells, picking a glyph from the segment's slope
func (t *TerminalCanvas) Line(a, b curve.Point, style Style) {
	c0, r0 := t.cell(a)
	c1, r1 := t.cell(b)
	glyph := lineGlyph(b.X-a.X, b.Y-a.Y, t.cellWidth, t.cellHeight, style.Width)
	st := t.style(style)

	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc, sr := sign(c1-c0), sign(r1-r0)
	e := dc + dr
	for {
		t.set(c0, r0, glyph, st)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

func (t *TerminalCanvas) Circle(center curve.Point, radius float64, style Style) {
	glyph := '·'
	if style.Bold {
		glyph = '●'
	}
	st := t.style(style)

	steps := max(16, int(2*math.Pi*radius/min(t.cellWidth, t.cellHeight))*2)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		col, row := t.cell(curve.Pt(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a)))
		t.set(col, row, glyph, st)
	}
}

func (t *TerminalCanvas) FillCircle(center curve.Point, radius float64, style Style) {
	st := t.style(style)
	c0, r0 := t.cell(curve.Pt(center.X-radius, center.Y-radius))
	c1, r1 := t.cell(curve.Pt(center.X+radius, center.Y+radius))

	filled := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			mid := curve.Pt((float64(col)+0.5)*t.cellWidth, (float64(row)+0.5)*t.cellHeight)
			if mid.Distance(center) <= radius {
				t.set(col, row, '█', st)
				filled = true
			}
		}
	}
	if !filled {
		col, row := t.cell(center)
		t.set(col, row, '•', st)
	}
}

func (t *TerminalCanvas) Rect(r curve.Rect, style Style) {
	st := t.style(style)
	c0, r0 := t.cell(curve.Pt(r.MinX(), r.MinY()))
	c1, r1 := t.cell(curve.Pt(r.MaxX(), r.MaxY()))

	for col := c0 + 1; col < c1; col++ {
		t.set(col, r0, '─', st)
		t.set(col, r1, '─', st)
	}
	for row := r0 + 1; row < r1; row++ {
		t.set(c0, row, '│', st)
		t.set(c1, row, '│', st)
	}
	t.set(c0, r0, '┌', st)
	t.set(c1, r0, '┐', st)
	t.set(c0, r1, '└', st)
	t.set(c1, r1, '┘', st)
}

func (t *TerminalCanvas) Text(at curve.Point, text string, style Style) {
	col, row := t.cell(at)
	st := t.style(style)
	for _, r := range text {
		t.set(col, row, r, st)
		col++
	}
}

func (t *TerminalCanvas) TextWidth(text string) float64 {
	return float64(len([]rune(text))) * t.cellWidth
}

func (t *TerminalCanvas) cell(p curve.Point) (int, int) {
	return int(math.Floor(p.X / t.cellWidth)), int(math.Floor(p.Y / t.cellHeight))
}

// set clips to the canvas rectangle
func (t *TerminalCanvas) set(col, row int, r rune, st tcell.Style) {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return
	}
	t.screen.SetContent(t.originCol+col, t.originRow+row, r, nil, st)
}

func (t *TerminalCanvas) style(s Style) tcell.Style {
	r, g, b := s.Color.RGB()
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b))).
		Bold(s.Bold)
}

// lineGlyph picks a box-drawing rune by the segment's on-screen slope
func lineGlyph(dx, dy, cellWidth, cellHeight, width float64) rune {
	if width >= 4 {
		return '┃'
	}
	cx, cy := dx/cellWidth, dy/cellHeight
	switch {
	case math.Abs(cy) <= math.Abs(cx)*0.4:
		return '─'
	case math.Abs(cx) <= math.Abs(cy)*0.4:
		return '│'
	case (cx > 0) == (cy > 0):
		return '╲'
	}
	return '╱'
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
