// Package taslog holds the in-memory form of a TAS movement log and the
// decoder that produces it.
//
// A log is an ordered list of physics frames. Each physics frame carries zero
// or more command frames, and each command frame carries the player state
// before and after movement processing. Nothing in this package mutates a Log
// after ParseFile or Parse returns it.
package taslog

// Vec3 is an x, y, z triple.
type Vec3 [3]float64

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// IsZero2D reports whether the horizontal (x, y) part is exactly zero.
func (v Vec3) IsZero2D() bool {
	return v[0] == 0 && v[1] == 0
}

// DuckState is the crouch state of the player.
type DuckState int

const (
	Unducked DuckState = iota
	InDuck
	Ducked
)

func (d DuckState) String() string {
	switch d {
	case Unducked:
		return "unducked"
	case InDuck:
		return "induck"
	case Ducked:
		return "ducked"
	default:
		return "unknown"
	}
}

// Button bits as sent in a usercmd.
const (
	InAttack     = 1 << 0
	InJump       = 1 << 1
	InDuckButton = 1 << 2
	InForward    = 1 << 3
	InBack       = 1 << 4
	InUse        = 1 << 5
	InCancel     = 1 << 6
	InLeft       = 1 << 7
	InRight      = 1 << 8
	InMoveLeft   = 1 << 9
	InMoveRight  = 1 << 10
	InAttack2    = 1 << 11
	InRun        = 1 << 12
	InReload     = 1 << 13
	InAlt1       = 1 << 14
	InScore      = 1 << 15
)

// Log is a parsed log file.
type Log struct {
	ToolVersion   string         `json:"tool_ver"`
	BuildNumber   int            `json:"build"`
	GameMod       string         `json:"mod"`
	PhysicsFrames []PhysicsFrame `json:"pf"`
}

// CommandFrameCount returns the number of command frames across all physics frames.
func (l *Log) CommandFrameCount() int {
	n := 0
	for i := range l.PhysicsFrames {
		n += len(l.PhysicsFrames[i].CommandFrames)
	}
	return n
}

// PhysicsFrame is one simulation tick.
type PhysicsFrame struct {
	FrameTime     float64        `json:"ft"`
	ClientState   int            `json:"cls"`
	Paused        bool           `json:"p"`
	ConsolePrints []string       `json:"con,omitempty"`
	CommandBuffer string         `json:"cbuf,omitempty"`
	ObjectMoves   []ObjectMove   `json:"objm,omitempty"`
	Damages       []Damage       `json:"dmg,omitempty"`
	CommandFrames []CommandFrame `json:"cf,omitempty"`
}

// CommandFrame is one input-processing step inside a physics frame.
// Viewangles and Punchangles are yaw, pitch, roll in degrees. FSU is the
// forward, side and up move.
type CommandFrame struct {
	Msec               int         `json:"ms"`
	FramebulkID        int         `json:"bid"`
	Viewangles         Vec3        `json:"view"`
	Punchangles        Vec3        `json:"puview"`
	FSU                Vec3        `json:"fsu"`
	Buttons            uint32      `json:"btns"`
	Health             int         `json:"hp"`
	Armor              int         `json:"ap"`
	FrameTimeRemainder float64     `json:"ftr"`
	EntFriction        float64     `json:"efric"`
	EntGravity         float64     `json:"egrav"`
	SharedSeed         uint32      `json:"ss"`
	Collisions         []Collision `json:"col,omitempty"`
	PrePM              PlayerState `json:"prepm"`
	PostPM             PlayerState `json:"postpm"`
}

// Pressed reports whether every bit of mask is set in Buttons.
func (c *CommandFrame) Pressed(mask uint32) bool {
	return c.Buttons&mask == mask
}

// PlayerState is a kinematic snapshot of the player.
type PlayerState struct {
	Position     Vec3      `json:"pos"`
	Velocity     Vec3      `json:"vel"`
	BaseVelocity Vec3      `json:"bvel"`
	OnGround     bool      `json:"og"`
	OnLadder     bool      `json:"ol"`
	DuckState    DuckState `json:"ds"`
	WaterLevel   int       `json:"wl"`
}

// Collision is one touch recorded during movement. Entity 0 is the world.
type Collision struct {
	Entity         int  `json:"ent"`
	Normal         Vec3 `json:"n"`
	ImpactVelocity Vec3 `json:"iv"`
}

// Damage is one damage event applied to the player during a physics frame.
type Damage struct {
	Amount     float64 `json:"dmg"`
	Direction  Vec3    `json:"dir"`
	DamageBits uint32  `json:"type"`
}

// ObjectMove is a pushable object being pulled toward or pushed away from the player.
type ObjectMove struct {
	Pull     bool `json:"pull"`
	Velocity Vec3 `json:"vel"`
	Position Vec3 `json:"pos"`
}
