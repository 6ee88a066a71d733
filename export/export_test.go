package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/tasview/display"
	"github.com/andareed/tasview/frames"
	"github.com/andareed/tasview/taslog"
)

func sampleLog() *taslog.Log {
	return &taslog.Log{
		ToolVersion: "1.0",
		BuildNumber: 8684,
		GameMod:     "valve",
		PhysicsFrames: []taslog.PhysicsFrame{
			{
				FrameTime:     0.01,
				ConsolePrints: []string{"a", "b"},
				Damages:       []taslog.Damage{{Amount: 4, DamageBits: 1 << 5}},
				CommandFrames: []taslog.CommandFrame{
					{
						Msec:        10,
						Viewangles:  taslog.Vec3{45, 0, 0},
						EntFriction: 1,
						EntGravity:  1,
						Collisions:  []taslog.Collision{{Entity: 3, Normal: taslog.Vec3{0, 0, 1}}},
						PrePM:       taslog.PlayerState{OnGround: true},
						PostPM:      taslog.PlayerState{Velocity: taslog.Vec3{3, 4, 0}, DuckState: taslog.Ducked},
					},
					{Msec: 2, EntFriction: 1, EntGravity: 1},
				},
			},
			{
				FrameTime:   0.004,
				ObjectMoves: []taslog.ObjectMove{{Pull: true, Velocity: taslog.Vec3{1, 0, 0}}},
			},
		},
	}
}

func newStore() *frames.Store {
	s := frames.NewStore(frames.DisplayMode{})
	s.SetLog("mem", sampleLog(), 0)
	return s
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.csv", FormatCSV},
		{"out", FormatCSV},
		{"run.db", FormatSQLite},
		{"RUN.SQLITE", FormatSQLite},
		{"/tmp/x.sqlite3", FormatSQLite},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFor(tt.path))
		})
	}
}

func TestCSV(t *testing.T) {
	s := newStore()
	var buf bytes.Buffer
	mark := func(row int) string {
		if row == 1 {
			return "red"
		}
		return ""
	}
	require.NoError(t, CSV(&buf, s, display.NewProjector(s, ""), mark))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+s.RowCount())

	header := records[0]
	assert.Equal(t, "row", header[0])
	assert.Equal(t, "pf", header[1])
	assert.Equal(t, "mark", header[len(header)-1])
	assert.Len(t, header, len(display.Columns())+2)

	hspd := 1 + int(display.HorizontalSpeedCol)
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "5", records[1][hspd])
	assert.Equal(t, "red", records[2][len(header)-1])
	assert.Equal(t, "", records[3][hspd], "no command frame")
	assert.Equal(t, "0.004", records[3][1])
}

func TestCSVWithoutMarks(t *testing.T) {
	s := newStore()
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, s, display.NewProjector(s, "-"), nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records[0], len(display.Columns())+1)
	assert.Equal(t, "-", records[3][1+int(display.YawCol)])
}

func TestCSVFile(t *testing.T) {
	s := newStore()
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, CSVFile(path, s, display.NewProjector(s, ""), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "row,pf,ms")

	err = CSVFile(filepath.Join(t.TempDir(), "missing", "out.csv"), s, display.NewProjector(s, ""), nil)
	assert.Error(t, err)
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.db")
	require.NoError(t, SQLite(path, sampleLog()))
	// A second export replaces the first.
	require.NoError(t, SQLite(path, sampleLog()))

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	var info LogInfo
	require.NoError(t, db.First(&info).Error)
	assert.Equal(t, "1.0", info.ToolVersion)
	assert.Equal(t, 8684, info.BuildNumber)

	var pfs []PhysicsFrameRecord
	require.NoError(t, db.Order("physics_index").Find(&pfs).Error)
	require.Len(t, pfs, 2)
	assert.Equal(t, "a\nb", pfs[0].ConsolePrints)
	assert.Equal(t, 2, pfs[0].CommandFrames)
	assert.Equal(t, 0.004, pfs[1].FrameTime)

	var cfs []CommandFrameRecord
	require.NoError(t, db.Order("physics_index, command_index").Find(&cfs).Error)
	require.Len(t, cfs, 2)
	assert.Equal(t, 45.0, cfs[0].Yaw)
	assert.True(t, cfs[0].Pre.OnGround)
	assert.Equal(t, 4.0, cfs[0].Post.VelY)
	assert.Equal(t, int(taslog.Ducked), cfs[0].Post.DuckState)
	assert.Equal(t, 1, cfs[1].Row)

	var cols []CollisionRecord
	require.NoError(t, db.Find(&cols).Error)
	require.Len(t, cols, 1)
	assert.Equal(t, 3, cols[0].Entity)

	var dmgs []DamageRecord
	require.NoError(t, db.Find(&dmgs).Error)
	require.Len(t, dmgs, 1)
	assert.Equal(t, "fall", dmgs[0].DamageTypes)

	var objs []ObjectMoveRecord
	require.NoError(t, db.Find(&objs).Error)
	require.Len(t, objs, 1)
	assert.True(t, objs[0].Pull)
	assert.Equal(t, 1, objs[0].PhysicsIndex)
}

func TestSQLiteNoLog(t *testing.T) {
	assert.Error(t, SQLite(filepath.Join(t.TempDir(), "x.db"), nil))
}
