package frames

import "strings"

// DisplayMode is the set of view toggles that affect every row. It is a
// value type; the With methods return modified copies.
type DisplayMode struct {
	// PrePM selects the player state before movement processing instead of after.
	PrePM bool
	// Anglemod shows angles in units of 360/65536 degrees.
	Anglemod bool
	// HideCommon blanks the most frequent frame time and command duration.
	HideCommon bool
	// FSUValues shows forward/side/up move values instead of direction letters.
	FSUValues bool
	// Grid draws separators between cells.
	Grid bool
}

func (m DisplayMode) WithPrePM(v bool) DisplayMode      { m.PrePM = v; return m }
func (m DisplayMode) WithAnglemod(v bool) DisplayMode   { m.Anglemod = v; return m }
func (m DisplayMode) WithHideCommon(v bool) DisplayMode { m.HideCommon = v; return m }
func (m DisplayMode) WithFSUValues(v bool) DisplayMode  { m.FSUValues = v; return m }
func (m DisplayMode) WithGrid(v bool) DisplayMode       { m.Grid = v; return m }

// String renders the active toggles for the footer, e.g. "post-pm anglemod".
func (m DisplayMode) String() string {
	parts := make([]string, 0, 5)
	if m.PrePM {
		parts = append(parts, "pre-pm")
	} else {
		parts = append(parts, "post-pm")
	}
	if m.Anglemod {
		parts = append(parts, "anglemod")
	}
	if m.HideCommon {
		parts = append(parts, "hide-common")
	}
	if m.FSUValues {
		parts = append(parts, "fsu")
	}
	if m.Grid {
		parts = append(parts, "grid")
	}
	return strings.Join(parts, " ")
}
