package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/tasview/frames"
	"github.com/andareed/tasview/taslog"
)

func sampleLog() *taslog.Log {
	return &taslog.Log{PhysicsFrames: []taslog.PhysicsFrame{
		{
			FrameTime:     0.01,
			ConsolePrints: []string{"hi"},
			Damages:       []taslog.Damage{{Amount: 5}},
			CommandFrames: []taslog.CommandFrame{{
				Msec:        10,
				FramebulkID: 7,
				Viewangles:  taslog.Vec3{90, -45, 0},
				Punchangles: taslog.Vec3{1, 0, 0},
				FSU:         taslog.Vec3{400, -300, 0},
				Buttons:     taslog.InJump | taslog.InAttack,
				Health:      95,
				EntFriction: 1,
				EntGravity:  0.5,
				Collisions:  []taslog.Collision{{Normal: taslog.Vec3{0, 0, 1}}},
				PrePM: taslog.PlayerState{
					Velocity: taslog.Vec3{0, 0, 0},
					OnGround: true,
				},
				PostPM: taslog.PlayerState{
					Position:  taslog.Vec3{1.5, -2, 36},
					Velocity:  taslog.Vec3{3, 4, -10},
					DuckState: taslog.InDuck,
				},
			}},
		},
		{FrameTime: 0.004, ClientState: 5},
		{
			FrameTime:   0.01,
			ObjectMoves: []taslog.ObjectMove{{Pull: true}},
			CommandFrames: []taslog.CommandFrame{{
				Msec:        10,
				EntFriction: 1,
				EntGravity:  1,
				PostPM:      taslog.PlayerState{Velocity: taslog.Vec3{0, 100, 5}, BaseVelocity: taslog.Vec3{0, 0, 30}},
			}},
		},
	}}
}

func resolve(t *testing.T, s *frames.Store, row int) frames.Frame {
	t.Helper()
	f, err := s.Resolve(row)
	require.NoError(t, err)
	return f
}

func newStore(mode frames.DisplayMode) *frames.Store {
	s := frames.NewStore(mode)
	s.SetLog("mem", sampleLog(), 0)
	return s
}

func TestCatalogue(t *testing.T) {
	cols := Columns()
	require.Len(t, cols, len(Titles()))
	seen := map[ColumnID]bool{}
	for i, c := range cols {
		assert.Equal(t, ColumnID(i), c.ID, "catalogue follows ColumnID order")
		assert.NotEmpty(t, c.Title)
		assert.Positive(t, c.Width)
		assert.False(t, seen[c.ID])
		seen[c.ID] = true
	}
}

func TestCommandFrameCells(t *testing.T) {
	s := newStore(frames.DisplayMode{})
	p := NewProjector(s, "")
	f := resolve(t, s, 0)

	tests := []struct {
		col  ColumnID
		want Cell
	}{
		{FrameTimeCol, Cell{Text: "0.01", FG: White, BG: DarkGray}},
		{MsecCol, Cell{Text: "10", FG: DarkGray}},
		{FramebulkCol, Cell{Text: "7", FG: DarkGray}},
		{HorizontalSpeedCol, Cell{Text: "5", BG: Peach}},
		{VerticalSpeedCol, Cell{Text: "-10", FG: Red, BG: Peach}},
		{OnGroundCol, Cell{}},
		{DuckStateCol, Cell{Text: "ind", BG: Gray, FG: Black}},
		{JumpCol, Cell{Text: "j", BG: Cyan, FG: Black}},
		{DuckCol, Cell{}},
		{ForwardMoveCol, Cell{Text: "F", FG: White, BG: Blue}},
		{SideMoveCol, Cell{Text: "L", FG: White, BG: Red}},
		{UpMoveCol, Cell{}},
		{YawCol, Cell{Text: "90", BG: Yellow, FG: Black}},
		{PitchCol, Cell{Text: "-45"}},
		{HealthCol, Cell{Text: "95", FG: White, BG: Red, Bold: true}},
		{AttackCol, Cell{Text: "a1", BG: DarkYellow, FG: Black}},
		{EntityFrictionCol, Cell{}},
		{EntityGravityCol, Cell{Text: "0.5", BG: Gray, FG: Black}},
		{FrameTimeRemainderCol, Cell{Text: "0.000e+00", FG: DarkGray}},
		{PositionXCol, Cell{Text: "1.5"}},
		{PositionYCol, Cell{Text: "-2"}},
		{PositionZCol, Cell{Text: "36"}},
	}
	for _, tt := range tests {
		t.Run(columnByID[tt.col].Title, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Cell(tt.col, f))
		})
	}
}

func TestPrePMChangesOnlyStateColumns(t *testing.T) {
	s := newStore(frames.DisplayMode{PrePM: true})
	p := NewProjector(s, "")
	f := resolve(t, s, 0)

	assert.Equal(t, "", p.Cell(HorizontalSpeedCol, f).Text, "zero speed is blank")
	assert.Equal(t, Cell{Text: "og", BG: Green, FG: Black}, p.Cell(OnGroundCol, f))
	assert.Equal(t, "7", p.Cell(FramebulkCol, f).Text)
}

func TestNoCommandFrame(t *testing.T) {
	s := newStore(frames.DisplayMode{})
	f := resolve(t, s, 1)

	blank := NewProjector(s, "")
	marked := NewProjector(s, "-")

	assert.Equal(t, Cell{Text: "0.004", FG: DarkGray}, blank.Cell(FrameTimeCol, f))
	assert.Equal(t, Cell{Text: "5", FG: DarkGray}, blank.Cell(ClientStateCol, f))

	for _, col := range []ColumnID{MsecCol, HorizontalSpeedCol, YawCol, OnGroundCol, PositionZCol} {
		assert.Equal(t, Cell{NoData: true}, blank.Cell(col, f))
		assert.Equal(t, Cell{Text: "-", NoData: true}, marked.Cell(col, f))
	}
}

func TestBaseVelocityFlag(t *testing.T) {
	s := newStore(frames.DisplayMode{})
	p := NewProjector(s, "")
	f := resolve(t, s, 2)

	h := p.Cell(HorizontalSpeedCol, f)
	assert.Equal(t, "*100", h.Text)
	assert.True(t, h.Flag)
	assert.True(t, h.Bold)
	assert.Equal(t, Blue, h.FG)

	v := p.Cell(VerticalSpeedCol, f)
	assert.Equal(t, "*5", v.Text)
	assert.True(t, v.Flag)
	assert.Equal(t, Blue, v.FG)
}

func TestAnglemod(t *testing.T) {
	s := newStore(frames.DisplayMode{Anglemod: true})
	p := NewProjector(s, "")
	f := resolve(t, s, 0)

	assert.Equal(t, "16384u", p.Cell(YawCol, f).Text)
	assert.Equal(t, "-8192u", p.Cell(PitchCol, f).Text)

	assert.Equal(t, "90", Angle(90, false))
	assert.Equal(t, "1u", Angle(AnglemodUnit, true))
}

func TestHideCommon(t *testing.T) {
	s := newStore(frames.DisplayMode{HideCommon: true})
	p := NewProjector(s, "")
	assert.Equal(t, 0.01, p.CommonFrameTime)
	assert.Equal(t, 10, p.CommonMsec)

	f0 := resolve(t, s, 0)
	assert.Equal(t, "", p.Cell(FrameTimeCol, f0).Text)
	assert.Equal(t, White, p.Cell(FrameTimeCol, f0).FG, "console highlight survives blanking")
	assert.Equal(t, "", p.Cell(MsecCol, f0).Text)

	f1 := resolve(t, s, 1)
	assert.Equal(t, "0.004", p.Cell(FrameTimeCol, f1).Text)
}

func TestFSUValues(t *testing.T) {
	s := newStore(frames.DisplayMode{FSUValues: true})
	p := NewProjector(s, "")
	f := resolve(t, s, 0)

	assert.Equal(t, "400", p.Cell(ForwardMoveCol, f).Text)
	assert.Equal(t, "-300", p.Cell(SideMoveCol, f).Text)
	assert.Equal(t, "", p.Cell(UpMoveCol, f).Text)
}

func TestRowAndTexts(t *testing.T) {
	s := newStore(frames.DisplayMode{})
	p := NewProjector(s, "")
	f := resolve(t, s, 0)

	row := p.Row(f)
	texts := p.Texts(f)
	require.Len(t, row, len(Columns()))
	require.Len(t, texts, len(row))
	for i := range row {
		assert.Equal(t, row[i].Text, texts[i])
	}
	assert.Equal(t, Cell{}, p.Cell(ColumnID(999), f))
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "", NoColor.Hex())
	assert.Equal(t, "#ffe9ba", Peach.Hex())
}
