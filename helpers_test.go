package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/andareed/tasview/frames"
	"github.com/andareed/tasview/taslog"
)

// testLog has four rows: physics frame 0 with two command frames, frame 1
// with none and frame 2 with one. Frame 2 prints to the console.
func testLog() *taslog.Log {
	return &taslog.Log{
		ToolVersion: "1.0",
		BuildNumber: 8684,
		GameMod:     "valve",
		PhysicsFrames: []taslog.PhysicsFrame{
			{
				FrameTime: 0.01,
				CommandFrames: []taslog.CommandFrame{
					{Msec: 10, EntFriction: 1, EntGravity: 1, PostPM: taslog.PlayerState{Velocity: taslog.Vec3{3, 4, 0}}},
					{Msec: 10, EntFriction: 1, EntGravity: 1},
				},
			},
			{FrameTime: 0.01},
			{
				FrameTime:     0.004,
				ConsolePrints: []string{"Hello World\n"},
				CommandFrames: []taslog.CommandFrame{{Msec: 4, EntFriction: 1, EntGravity: 1}},
			},
		},
	}
}

const testLogJSON = `{
  "tool_ver": "1.2.3",
  "build": 8684,
  "mod": "valve",
  "pf": [
    {"ft": 0.01, "cls": 5, "con": ["hello\n"], "cf": [{"ms": 10, "efric": 1, "egrav": 1}]},
    {"ft": 0.004, "cls": 5}
  ]
}`

// newTestModel returns a model with testLog loaded as dir/run.json.
func newTestModel(t *testing.T) *model {
	t.Helper()
	store := frames.NewStore(frames.DisplayMode{})
	m := newModel(store, nil, viewOptions{})
	t.Cleanup(m.Close)

	path := filepath.Join(t.TempDir(), "run.json")
	m.loadMarksFor(path)
	store.SetLog(path, testLog(), 0)
	require.Equal(t, 4, len(m.data.filteredIndices))
	return m
}

func writeLogFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "run.json")
	require.NoError(t, os.WriteFile(path, []byte(testLogJSON), 0o644))
	return path
}

func press(m *model, keys string) {
	for _, r := range keys {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func pressType(m *model, t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}

// runLoad drives the current load job to completion.
func runLoad(m *model) {
	job := m.loadJob
	for {
		msg := waitForLoad(job)().(loadUpdateMsg)
		m.handleLoadUpdate(msg)
		if msg.closed {
			return
		}
	}
}
