// Package inspect builds the detailed per-row views shown by the frame
// inspector: angles, velocity, damage, collisions, object moves, console
// prints and the command buffer.
package inspect

import (
	"math"
	"strconv"
	"strings"

	"github.com/andareed/tasview/display"
	"github.com/andareed/tasview/frames"
	"github.com/andareed/tasview/taslog"
)

// NotApplicable is shown for values that do not exist for the row.
const NotApplicable = "N/A"

// Tab is one inspector page.
type Tab int

const (
	ViewTab Tab = iota
	DamageTab
	CollisionTab
	ObjectTab
	VelocityTab
	ConsoleTab
	CommandBufferTab
)

var tabNames = []string{"View", "Dmg", "Col", "Obj", "Vel", "Con", "Cbuf"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "?"
	}
	return tabNames[t]
}

// Tabs lists every tab in order.
func Tabs() []Tab {
	out := make([]Tab, len(tabNames))
	for i := range out {
		out[i] = Tab(i)
	}
	return out
}

// Next cycles forward through the tabs.
func (t Tab) Next() Tab { return Tab((int(t) + 1) % len(tabNames)) }

// Prev cycles backward through the tabs.
func (t Tab) Prev() Tab { return Tab((int(t) + len(tabNames) - 1) % len(tabNames)) }

// Field is a labelled value.
type Field struct {
	Label string
	Value string
}

// Section is a group of fields, e.g. one damage event.
type Section struct {
	Title  string
	Fields []Field
}

// Page is the content of one tab for one row.
type Page struct {
	Tab      Tab
	Sections []Section
	// Lines holds free text for the console and command buffer tabs.
	Lines []string
}

// Build assembles the page for tab. anglemod selects the angle unit for the
// view tab.
func Build(tab Tab, f frames.Frame, anglemod bool) Page {
	p := Page{Tab: tab}
	switch tab {
	case ViewTab:
		p.Sections = []Section{ViewAngles(f, anglemod)}
	case DamageTab:
		p.Sections = Damages(f.Physics.Damages)
	case CollisionTab:
		cf, _ := f.Command()
		p.Sections = Collisions(cf)
	case ObjectTab:
		p.Sections = ObjectMoves(f.Physics.ObjectMoves)
	case VelocityTab:
		st, _ := f.PlayerState()
		p.Sections = []Section{Velocity(st)}
	case ConsoleTab:
		p.Lines = ConsolePrints(f.Physics.ConsolePrints)
	case CommandBufferTab:
		p.Lines = []string{CommandBuffer(f.Physics.CommandBuffer)}
	}
	return p
}

// ViewAngles lists view and punch angles. Without a command frame every value is N/A.
func ViewAngles(f frames.Frame, anglemod bool) Section {
	labels := []string{"Yaw", "Pitch", "Roll", "Punch yaw", "Punch pitch", "Punch roll"}
	s := Section{Title: "View angles", Fields: make([]Field, len(labels))}
	cf, ok := f.Command()
	for i, l := range labels {
		v := NotApplicable
		if ok {
			if i < 3 {
				v = display.Angle(cf.Viewangles[i], anglemod)
			} else {
				v = display.Angle(cf.Punchangles[i-3], anglemod)
			}
		}
		s.Fields[i] = Field{Label: l, Value: v}
	}
	return s
}

// Velocity lists the player velocity, its magnitudes and pitch, and the base velocity.
func Velocity(st *taslog.PlayerState) Section {
	labels := []string{"X", "Y", "Z", "Horizontal", "3D", "Pitch", "Base X", "Base Y", "Base Z"}
	s := Section{Title: "Velocity", Fields: make([]Field, len(labels))}
	for i, l := range labels {
		s.Fields[i] = Field{Label: l, Value: NotApplicable}
	}
	if st == nil {
		return s
	}

	v := st.Velocity
	s.Fields[0].Value = display.Float(v[0])
	s.Fields[1].Value = display.Float(v[1])
	s.Fields[2].Value = display.Float(v[2])
	s.Fields[3].Value = display.Float(math.Hypot(v[0], v[1]))
	s.Fields[4].Value = display.Float(Length(v))
	if p, ok := Pitch(v); ok {
		s.Fields[5].Value = display.Degrees(p)
	}
	s.Fields[6].Value = display.Float(st.BaseVelocity[0])
	s.Fields[7].Value = display.Float(st.BaseVelocity[1])
	s.Fields[8].Value = display.Float(st.BaseVelocity[2])
	return s
}

// Damages describes each damage event. An empty list gives one all-N/A section.
func Damages(dmgs []taslog.Damage) []Section {
	if len(dmgs) == 0 {
		return []Section{{Title: "Damage", Fields: []Field{
			{"Amount", NotApplicable},
			{"Type", NotApplicable},
			{"Direction yaw", NotApplicable},
			{"Direction pitch", NotApplicable},
		}}}
	}
	out := make([]Section, len(dmgs))
	for i, d := range dmgs {
		yaw, pitch := NotApplicable, NotApplicable
		if y, ok := Yaw(d.Direction); ok {
			yaw = display.Degrees(y)
		}
		if p, ok := Pitch(d.Direction); ok {
			pitch = display.Degrees(p)
		}
		out[i] = Section{Title: "Damage " + strconv.Itoa(i+1), Fields: []Field{
			{"Amount", display.Float(d.Amount)},
			{"Type", taslog.DamageTypeString(d.DamageBits)},
			{"Direction yaw", yaw},
			{"Direction pitch", pitch},
		}}
	}
	return out
}

// Collisions describes each collision of cf. A nil command frame or an empty
// list gives one all-N/A section.
func Collisions(cf *taslog.CommandFrame) []Section {
	if cf == nil || len(cf.Collisions) == 0 {
		return []Section{{Title: "Collision", Fields: []Field{
			{"Entity", NotApplicable},
			{"Normal yaw", NotApplicable},
			{"Normal pitch", NotApplicable},
			{"Impact angle", NotApplicable},
		}}}
	}
	out := make([]Section, len(cf.Collisions))
	for i, c := range cf.Collisions {
		ent := strconv.Itoa(c.Entity)
		if c.Entity == 0 {
			ent = "worldspawn"
		}
		yaw, impact := NotApplicable, NotApplicable
		if y, ok := Yaw(c.Normal); ok {
			yaw = display.Degrees(y)
		}
		if a, ok := ImpactAngle(c.ImpactVelocity, c.Normal); ok {
			impact = display.Degrees(a)
		}
		pitch := -math.Asin(c.Normal[2]) * 180 / math.Pi
		out[i] = Section{Title: "Collision " + strconv.Itoa(i+1), Fields: []Field{
			{"Entity", ent},
			{"Normal yaw", yaw},
			{"Normal pitch", display.Degrees(pitch)},
			{"Impact angle", impact},
		}}
	}
	return out
}

// ObjectMoves describes each pushed or pulled object. An empty list gives
// one all-N/A section.
func ObjectMoves(objs []taslog.ObjectMove) []Section {
	labels := []string{"Type", "Velocity X", "Velocity Y", "Velocity Z", "Horizontal", "Yaw", "Position X", "Position Y", "Position Z"}
	if len(objs) == 0 {
		s := Section{Title: "Object", Fields: make([]Field, len(labels))}
		for i, l := range labels {
			s.Fields[i] = Field{l, NotApplicable}
		}
		return []Section{s}
	}
	out := make([]Section, len(objs))
	for i, o := range objs {
		kind := "Push"
		if o.Pull {
			kind = "Pull"
		}
		yaw := NotApplicable
		if y, ok := Yaw(o.Velocity); ok {
			yaw = display.Degrees(y)
		}
		values := []string{
			kind,
			display.Float(o.Velocity[0]),
			display.Float(o.Velocity[1]),
			display.Float(o.Velocity[2]),
			display.Float(math.Hypot(o.Velocity[0], o.Velocity[1])),
			yaw,
			display.Float(o.Position[0]),
			display.Float(o.Position[1]),
			display.Float(o.Position[2]),
		}
		s := Section{Title: "Object " + strconv.Itoa(i+1), Fields: make([]Field, len(labels))}
		for j, l := range labels {
			s.Fields[j] = Field{l, values[j]}
		}
		out[i] = s
	}
	return out
}

// ConsolePrints returns each print with surrounding whitespace removed.
func ConsolePrints(prints []string) []string {
	out := make([]string, len(prints))
	for i, p := range prints {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// CommandBuffer returns the buffer text, or a placeholder when it is empty.
func CommandBuffer(cbuf string) string {
	if cbuf == "" {
		return "Command buffer is empty"
	}
	return cbuf
}

// Length is the euclidean length of v.
func Length(v taslog.Vec3) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Yaw is the horizontal direction of v in degrees. ok is false when the
// horizontal part is zero.
func Yaw(v taslog.Vec3) (deg float64, ok bool) {
	if v.IsZero2D() {
		return 0, false
	}
	return math.Atan2(v[1], v[0]) * 180 / math.Pi, true
}

// Pitch is the elevation of v in degrees, positive when pointing down as in
// the game's view angles. ok is false for the zero vector.
func Pitch(v taslog.Vec3) (deg float64, ok bool) {
	if v.IsZero() {
		return 0, false
	}
	return -math.Asin(v[2]/Length(v)) * 180 / math.Pi, true
}

// ImpactAngle is the angle between the reversed impact velocity and the
// surface normal in degrees. ok is false when the impact velocity is zero.
func ImpactAngle(impact, normal taslog.Vec3) (deg float64, ok bool) {
	if impact.IsZero() {
		return 0, false
	}
	dot := -impact[0]*normal[0] - impact[1]*normal[1] - impact[2]*normal[2]
	c := dot / Length(impact)
	c = min(max(c, -1), 1)
	return math.Acos(c) * 180 / math.Pi, true
}
