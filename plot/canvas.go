package plot

import (
	"math"
	"strings"
)

// Canvas is a character grid holding one rendered view. Each cell records
// the kind of the last thing drawn on it.
type Canvas struct {
	W, H  int
	runes [][]rune
	kinds [][]Kind
	set   [][]bool
}

var glyphs = map[Kind]rune{
	Axis:          '·',
	VelocityLine:  '●',
	YawLine:       '+',
	DamageLine:    'x',
	CollisionLine: '#',
}

// cellAspect is how many columns make up the height of one row on a
// typical terminal font.
const cellAspect = 2.0

// Render draws the axes, the bounding circle and lines for view v into a
// w x h grid.
func Render(v View, lines []Line, w, h int) *Canvas {
	c := newCanvas(w, h)
	if w < 3 || h < 3 {
		return c
	}

	half := AxisLength / 2
	c.line(-half, 0, half, 0, Axis, '─')
	c.line(0, -half, 0, half, Axis, '│')
	for i := range 360 {
		a := float64(i) * math.Pi / 180
		c.plot(math.Cos(a)*half, math.Sin(a)*half, Axis, glyphs[Axis])
	}

	hl, vl := v.Axes()
	cx, cy := c.toCell(0, 0)
	c.text(w-len(hl), cy-1, hl)
	c.text(cx+1, 0, vl)

	for _, l := range lines {
		x, y := v.Project(l.End)
		c.line(0, 0, x, y, l.Kind, glyphs[l.Kind])
	}
	return c
}

func newCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{W: w, H: h}
	c.runes = make([][]rune, h)
	c.kinds = make([][]Kind, h)
	c.set = make([][]bool, h)
	for i := range h {
		c.runes[i] = []rune(strings.Repeat(" ", w))
		c.kinds[i] = make([]Kind, w)
		c.set[i] = make([]bool, w)
	}
	return c
}

// scale returns scene units per column and per row so the circle fits with
// square proportions.
func (c *Canvas) scale() (sx, sy float64) {
	cols := float64(c.W - 1)
	rows := float64(c.H - 1)
	// Fit the axis into whichever dimension is tighter.
	unit := math.Max(AxisLength/cols, AxisLength/(rows*cellAspect))
	return unit, unit * cellAspect
}

func (c *Canvas) toCell(x, y float64) (col, row int) {
	sx, sy := c.scale()
	col = int(math.Round(x/sx)) + (c.W-1)/2
	row = int(math.Round(y/sy)) + (c.H-1)/2
	return col, row
}

func (c *Canvas) plot(x, y float64, k Kind, r rune) {
	col, row := c.toCell(x, y)
	c.put(col, row, k, r)
}

func (c *Canvas) put(col, row int, k Kind, r rune) {
	if col < 0 || col >= c.W || row < 0 || row >= c.H {
		return
	}
	c.runes[row][col] = r
	c.kinds[row][col] = k
	c.set[row][col] = true
}

// line draws from (x0, y0) to (x1, y1) in scene units with Bresenham's algorithm.
func (c *Canvas) line(x0, y0, x1, y1 float64, k Kind, r rune) {
	c0, r0 := c.toCell(x0, y0)
	c1, r1 := c.toCell(x1, y1)
	dx := abs(c1 - c0)
	dy := -abs(r1 - r0)
	sx, sy := 1, 1
	if c0 > c1 {
		sx = -1
	}
	if r0 > r1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.put(c0, r0, k, r)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			c0 += sx
		}
		if e2 <= dx {
			e += dx
			r0 += sy
		}
	}
}

func (c *Canvas) text(col, row int, text string) {
	for i, r := range []rune(text) {
		c.put(col+i, row, Axis, r)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Rune returns the glyph at (col, row) and the kind that drew it. ok is
// false for empty or out-of-range cells.
func (c *Canvas) Rune(col, row int) (r rune, k Kind, ok bool) {
	if col < 0 || col >= c.W || row < 0 || row >= c.H || !c.set[row][col] {
		return ' ', Axis, false
	}
	return c.runes[row][col], c.kinds[row][col], true
}

// Lines returns the grid as text, one string per row.
func (c *Canvas) Lines() []string {
	out := make([]string, c.H)
	for i := range c.runes {
		out[i] = string(c.runes[i])
	}
	return out
}

// String joins Lines with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}
