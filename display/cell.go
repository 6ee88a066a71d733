// Package display turns resolved frames into table cells: text, colours and
// emphasis for each column. Everything here is a pure function of a Frame
// and a Projector.
package display

import (
	"strconv"

	"github.com/andareed/tasview/frames"
)

// Color is a named cell colour. The zero value means "use the default".
type Color int

const (
	NoColor Color = iota
	White
	Black
	Gray
	DarkGray
	Red
	Blue
	DarkBlue
	Green
	Cyan
	Magenta
	Yellow
	DarkYellow
	Brown
	Peach
)

var colorHex = map[Color]string{
	White:      "#ffffff",
	Black:      "#000000",
	Gray:       "#a0a0a4",
	DarkGray:   "#808080",
	Red:        "#ff0000",
	Blue:       "#0000ff",
	DarkBlue:   "#000080",
	Green:      "#00ff00",
	Cyan:       "#00ffff",
	Magenta:    "#ff00ff",
	Yellow:     "#ffff00",
	DarkYellow: "#808000",
	Brown:      "#7d3a13",
	Peach:      "#ffe9ba",
}

// Hex returns the colour as "#rrggbb", or "" for NoColor.
func (c Color) Hex() string {
	return colorHex[c]
}

// Cell is one projected table cell.
type Cell struct {
	Text string
	FG   Color
	BG   Color
	Bold bool
	// Flag marks values affected by base or pull velocity.
	Flag bool
	// NoData is set when the cell is empty because the row has no command frame.
	NoData bool
}

// AnglemodUnit is the size of one anglemod unit in degrees.
const AnglemodUnit = 360.0 / 65536

// FlagPrefix is prepended to values affected by base or pull velocity.
const FlagPrefix = "*"

// Projector formats frames under one display mode. Build it once per
// render pass; it is not updated when the mode changes.
type Projector struct {
	Mode frames.DisplayMode
	// CommonFrameTime and CommonMsec are blanked when Mode.HideCommon is set.
	CommonFrameTime float64
	CommonMsec      int
	// NoData fills cells of rows without a command frame. Empty leaves them blank.
	NoData string
}

// NewProjector captures the store's mode and, when needed, its most common values.
func NewProjector(s *frames.Store, noData string) Projector {
	p := Projector{Mode: s.Mode(), NoData: noData}
	if p.Mode.HideCommon {
		p.CommonFrameTime = s.MostCommonFrameTime()
		p.CommonMsec = s.MostCommonCommandDuration()
	}
	return p
}

// Cell projects one column of f.
func (p Projector) Cell(id ColumnID, f frames.Frame) Cell {
	c, ok := columnByID[id]
	if !ok {
		return Cell{}
	}
	if c.needsCommand && !f.HasCommand() {
		return Cell{Text: p.NoData, NoData: true}
	}
	return c.cell(p, f)
}

// Row projects every column of f in catalogue order.
func (p Projector) Row(f frames.Frame) []Cell {
	out := make([]Cell, len(catalogue))
	for i, c := range catalogue {
		out[i] = p.Cell(c.ID, f)
	}
	return out
}

// Texts projects every column of f and keeps only the text.
func (p Projector) Texts(f frames.Frame) []string {
	cells := p.Row(f)
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Text
	}
	return out
}

// Angle formats an angle in degrees or, with anglemod set, as "<n>u".
func Angle(deg float64, anglemod bool) string {
	if anglemod {
		return Float(deg/AnglemodUnit) + "u"
	}
	return Float(deg)
}

// Float formats v with the fewest digits that round-trip at single precision,
// which matches how the game stores these values. Negative zero prints as "0".
func Float(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(float64(float32(v)), 'g', -1, 32)
}

// Speed formats a speed with up to six significant digits.
func Speed(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Degrees formats an angle with a degree sign.
func Degrees(v float64) string {
	return Float(v) + "°"
}
