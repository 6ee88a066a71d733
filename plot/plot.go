// Package plot draws the player's velocity, view yaw, damage directions and
// collision normals for one row as lines from the origin, seen from above,
// the front and the side.
package plot

import (
	"math"

	"github.com/andareed/tasview/frames"
	"github.com/andareed/tasview/taslog"
)

const (
	// AxisLength is the full length of each axis in scene units.
	AxisLength = 300.0
	// LineLength is the length of every plotted line.
	LineLength = AxisLength / 2
)

// Kind says what a line represents.
type Kind int

const (
	Axis Kind = iota
	VelocityLine
	YawLine
	DamageLine
	CollisionLine
)

func (k Kind) String() string {
	switch k {
	case Axis:
		return "axis"
	case VelocityLine:
		return "velocity"
	case YawLine:
		return "yaw"
	case DamageLine:
		return "damage"
	case CollisionLine:
		return "collision"
	default:
		return "unknown"
	}
}

// Line runs from the origin to End in world coordinates.
type Line struct {
	Kind Kind
	End  taslog.Vec3
}

// Lines computes every line for f. A row without a command frame has none.
func Lines(f frames.Frame) []Line {
	cf, ok := f.Command()
	if !ok {
		return nil
	}
	st, _ := f.PlayerState()

	var out []Line
	if !st.Velocity.IsZero() {
		out = append(out, Line{Kind: VelocityLine, End: scaleTo(st.Velocity, LineLength)})
	}

	yaw := cf.Viewangles[0] * math.Pi / 180
	out = append(out, Line{Kind: YawLine, End: taslog.Vec3{math.Cos(yaw) * LineLength, math.Sin(yaw) * LineLength, 0}})

	for _, d := range f.Physics.Damages {
		if d.Direction.IsZero() {
			continue
		}
		out = append(out, Line{Kind: DamageLine, End: scaleTo(d.Direction, LineLength)})
	}
	for _, c := range cf.Collisions {
		if c.Normal.IsZero() {
			continue
		}
		n := c.Normal
		out = append(out, Line{Kind: CollisionLine, End: taslog.Vec3{n[0] * LineLength, n[1] * LineLength, n[2] * LineLength}})
	}
	return out
}

func scaleTo(v taslog.Vec3, length float64) taslog.Vec3 {
	s := length / math.Sqrt(v[0]*v[0]+v[1]*v[1]+v[2]*v[2])
	return taslog.Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// View is a projection plane.
type View int

const (
	Plan View = iota
	Front
	Side
)

func (v View) String() string {
	switch v {
	case Plan:
		return "plan"
	case Front:
		return "front"
	case Side:
		return "side"
	default:
		return "unknown"
	}
}

// Axes returns the horizontal and vertical axis labels of v.
func (v View) Axes() (h, vert string) {
	switch v {
	case Front:
		return "X", "Z"
	case Side:
		return "Y", "Z"
	default:
		return "X", "Y"
	}
}

// Project maps a world point to scene coordinates for v. Scene y grows downward.
func (v View) Project(p taslog.Vec3) (x, y float64) {
	switch v {
	case Front:
		return p[0], -p[2]
	case Side:
		return p[1], -p[2]
	default:
		return p[0], -p[1]
	}
}
