package display

import (
	"math"
	"strconv"

	"github.com/andareed/tasview/frames"
	"github.com/andareed/tasview/taslog"
)

// ColumnID identifies a table column.
type ColumnID int

const (
	FrameTimeCol ColumnID = iota
	MsecCol
	FramebulkCol
	HorizontalSpeedCol
	VerticalSpeedCol
	OnGroundCol
	DuckStateCol
	JumpCol
	DuckCol
	ForwardMoveCol
	SideMoveCol
	UpMoveCol
	YawCol
	PitchCol
	HealthCol
	ArmorCol
	UseCol
	AttackCol
	Attack2Col
	ReloadCol
	OnLadderCol
	WaterLevelCol
	ClientStateCol
	EntityFrictionCol
	EntityGravityCol
	SharedSeedCol
	FrameTimeRemainderCol
	PositionZCol
	PositionXCol
	PositionYCol
)

// Column describes one table column.
type Column struct {
	ID      ColumnID
	Title   string
	Tooltip string
	// Width is the preferred terminal width in cells.
	Width int

	needsCommand bool
	cell         func(p Projector, f frames.Frame) Cell
}

var catalogue = []Column{
	{FrameTimeCol, "pf", "Physics frame time", 9, false, frameTimeCell},
	{MsecCol, "ms", "Command frame duration (msec)", 3, true, msecCell},
	{FramebulkCol, "bid", "Framebulk ID", 5, true, framebulkCell},
	{HorizontalSpeedCol, "hspd", "Horizontal speed", 9, true, horizontalSpeedCell},
	{VerticalSpeedCol, "vspd", "Vertical speed", 9, true, verticalSpeedCell},
	{OnGroundCol, "og", "On ground", 2, true, onGroundCell},
	{DuckStateCol, "ds", "Duck state", 3, true, duckStateCell},
	{JumpCol, "j", "Jump", 1, true, buttonCell(taslog.InJump, "j", Cyan)},
	{DuckCol, "d", "Duck", 1, true, buttonCell(taslog.InDuckButton, "d", Magenta)},
	{ForwardMoveCol, "f", "Forward move", 1, true, moveCell(0, "F", "B")},
	{SideMoveCol, "s", "Side move", 1, true, moveCell(1, "R", "L")},
	{UpMoveCol, "u", "Up move", 1, true, moveCell(2, "U", "D")},
	{YawCol, "yaw", "Yaw", 10, true, angleCell(0)},
	{PitchCol, "pitch", "Pitch", 10, true, angleCell(1)},
	{HealthCol, "hp", "Health", 4, true, healthCell(func(cf *taslog.CommandFrame) int { return cf.Health })},
	{ArmorCol, "ap", "Armor", 4, true, healthCell(func(cf *taslog.CommandFrame) int { return cf.Armor })},
	{UseCol, "use", "Use", 3, true, buttonCell(taslog.InUse, "use", DarkYellow)},
	{AttackCol, "a1", "Attack", 2, true, buttonCell(taslog.InAttack, "a1", DarkYellow)},
	{Attack2Col, "a2", "Attack 2", 2, true, buttonCell(taslog.InAttack2, "a2", DarkYellow)},
	{ReloadCol, "rl", "Reload", 2, true, buttonCell(taslog.InReload, "rl", DarkYellow)},
	{OnLadderCol, "lad", "On ladder", 3, true, onLadderCell},
	{WaterLevelCol, "wl", "Water level", 2, true, waterLevelCell},
	{ClientStateCol, "cls", "Client state", 3, false, clientStateCell},
	{EntityFrictionCol, "efric", "Entity friction", 5, true, entityFactorCell(func(cf *taslog.CommandFrame) float64 { return cf.EntFriction })},
	{EntityGravityCol, "egrav", "Entity gravity", 5, true, entityFactorCell(func(cf *taslog.CommandFrame) float64 { return cf.EntGravity })},
	{SharedSeedCol, "seed", "Shared seed", 10, true, sharedSeedCell},
	{FrameTimeRemainderCol, "ftr", "Frame time remainder", 10, true, remainderCell},
	{PositionZCol, "z", "Position Z", 10, true, positionCell(2)},
	{PositionXCol, "x", "Position X", 10, true, positionCell(0)},
	{PositionYCol, "y", "Position Y", 10, true, positionCell(1)},
}

var columnByID = func() map[ColumnID]Column {
	m := make(map[ColumnID]Column, len(catalogue))
	for _, c := range catalogue {
		m[c.ID] = c
	}
	return m
}()

// Columns returns the column catalogue in display order.
func Columns() []Column {
	out := make([]Column, len(catalogue))
	copy(out, catalogue)
	return out
}

// Titles returns the column titles in display order.
func Titles() []string {
	out := make([]string, len(catalogue))
	for i, c := range catalogue {
		out[i] = c.Title
	}
	return out
}

// command and state are only called from cells whose column needs a
// command frame, so both are present.
func command(f frames.Frame) *taslog.CommandFrame {
	cf, _ := f.Command()
	return cf
}

func state(f frames.Frame) *taslog.PlayerState {
	st, _ := f.PlayerState()
	return st
}

func frameTimeCell(p Projector, f frames.Frame) Cell {
	c := Cell{FG: DarkGray}
	if len(f.Physics.ConsolePrints) > 0 {
		c.FG, c.BG = White, DarkGray
	}
	if p.Mode.HideCommon && f.Physics.FrameTime == p.CommonFrameTime {
		return c
	}
	c.Text = Float(f.Physics.FrameTime)
	return c
}

func msecCell(p Projector, f frames.Frame) Cell {
	cf := command(f)
	c := Cell{FG: DarkGray}
	if p.Mode.HideCommon && cf.Msec == p.CommonMsec {
		return c
	}
	c.Text = strconv.Itoa(cf.Msec)
	return c
}

func framebulkCell(_ Projector, f frames.Frame) Cell {
	return Cell{Text: strconv.Itoa(command(f).FramebulkID), FG: DarkGray}
}

func collisionBG(f frames.Frame) Color {
	if len(command(f).Collisions) > 0 {
		return Peach
	}
	return NoColor
}

func horizontalSpeedCell(_ Projector, f frames.Frame) Cell {
	st := state(f)
	c := Cell{BG: collisionBG(f)}
	if len(f.Physics.ObjectMoves) > 0 {
		c.FG, c.Bold, c.Flag = Blue, true, true
	}
	if !st.BaseVelocity.IsZero2D() {
		c.Flag = true
	}
	speed := math.Hypot(st.Velocity[0], st.Velocity[1])
	if speed == 0 {
		return c
	}
	c.Text = Speed(speed)
	if c.Flag {
		c.Text = FlagPrefix + c.Text
	}
	return c
}

func verticalSpeedCell(_ Projector, f frames.Frame) Cell {
	st := state(f)
	c := Cell{BG: collisionBG(f), Flag: st.BaseVelocity[2] != 0}
	vz := st.Velocity[2]
	if vz == 0 {
		return c
	}
	if vz > 0 {
		c.FG = Blue
	} else {
		c.FG = Red
	}
	c.Text = Speed(vz)
	if c.Flag {
		c.Text = FlagPrefix + c.Text
	}
	return c
}

func onGroundCell(_ Projector, f frames.Frame) Cell {
	if !state(f).OnGround {
		return Cell{}
	}
	return Cell{Text: "og", BG: Green, FG: Black}
}

func duckStateCell(_ Projector, f frames.Frame) Cell {
	switch state(f).DuckState {
	case taslog.InDuck:
		return Cell{Text: "ind", BG: Gray, FG: Black}
	case taslog.Ducked:
		return Cell{Text: "dkd", BG: Black, FG: White}
	default:
		return Cell{}
	}
}

func buttonCell(mask uint32, label string, bg Color) func(Projector, frames.Frame) Cell {
	return func(_ Projector, f frames.Frame) Cell {
		if !command(f).Pressed(mask) {
			return Cell{}
		}
		return Cell{Text: label, BG: bg, FG: Black}
	}
}

func moveCell(axis int, pos, neg string) func(Projector, frames.Frame) Cell {
	return func(p Projector, f frames.Frame) Cell {
		v := command(f).FSU[axis]
		if v == 0 {
			return Cell{}
		}
		c := Cell{FG: White, BG: Red, Text: neg}
		if v > 0 {
			c.BG, c.Text = Blue, pos
		}
		if p.Mode.FSUValues {
			c.Text = Float(v)
		}
		return c
	}
}

func angleCell(axis int) func(Projector, frames.Frame) Cell {
	return func(p Projector, f frames.Frame) Cell {
		cf := command(f)
		c := Cell{Text: Angle(cf.Viewangles[axis], p.Mode.Anglemod)}
		if cf.Punchangles[axis] != 0 {
			c.BG, c.FG = Yellow, Black
		}
		return c
	}
}

func healthCell(get func(*taslog.CommandFrame) int) func(Projector, frames.Frame) Cell {
	return func(_ Projector, f frames.Frame) Cell {
		c := Cell{Text: strconv.Itoa(get(command(f)))}
		if len(f.Physics.Damages) > 0 {
			c.FG, c.BG, c.Bold = White, Red, true
		}
		return c
	}
}

func onLadderCell(_ Projector, f frames.Frame) Cell {
	if !state(f).OnLadder {
		return Cell{}
	}
	return Cell{Text: "lad", BG: Brown, FG: White}
}

func waterLevelCell(_ Projector, f frames.Frame) Cell {
	wl := state(f).WaterLevel
	if wl == 0 {
		return Cell{}
	}
	c := Cell{Text: strconv.Itoa(wl), BG: DarkBlue, FG: White}
	if wl == 1 {
		c.BG = Blue
	}
	return c
}

func clientStateCell(_ Projector, f frames.Frame) Cell {
	return Cell{Text: strconv.Itoa(f.Physics.ClientState), FG: DarkGray}
}

func entityFactorCell(get func(*taslog.CommandFrame) float64) func(Projector, frames.Frame) Cell {
	return func(_ Projector, f frames.Frame) Cell {
		v := get(command(f))
		if v == 1 {
			return Cell{}
		}
		return Cell{Text: Float(v), BG: Gray, FG: Black}
	}
}

func sharedSeedCell(_ Projector, f frames.Frame) Cell {
	return Cell{Text: strconv.FormatUint(uint64(command(f).SharedSeed), 10), FG: DarkGray}
}

func remainderCell(_ Projector, f frames.Frame) Cell {
	return Cell{Text: strconv.FormatFloat(command(f).FrameTimeRemainder, 'e', 3, 64), FG: DarkGray}
}

func positionCell(axis int) func(Projector, frames.Frame) Cell {
	return func(_ Projector, f frames.Frame) Cell {
		return Cell{Text: Float(state(f).Position[axis])}
	}
}
