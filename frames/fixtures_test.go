package frames

import "github.com/andareed/tasview/taslog"

// makeLog builds a log whose physics frame i has counts[i] command frames.
// Command frames are numbered by Msec so tests can tell them apart, and pre
// and post states carry distinct positions.
func makeLog(counts ...int) *taslog.Log {
	log := &taslog.Log{ToolVersion: "test", BuildNumber: 1, GameMod: "valve"}
	n := 0
	for phy, c := range counts {
		pf := taslog.PhysicsFrame{FrameTime: 0.01, ClientState: 5}
		for j := range c {
			pf.CommandFrames = append(pf.CommandFrames, taslog.CommandFrame{
				Msec:        n,
				FramebulkID: phy*100 + j,
				PrePM:       taslog.PlayerState{Position: taslog.Vec3{float64(n), 0, 0}},
				PostPM:      taslog.PlayerState{Position: taslog.Vec3{float64(n), 1, 0}},
			})
			n++
		}
		log.PhysicsFrames = append(log.PhysicsFrames, pf)
	}
	return log
}

var countShapes = [][]int{
	{},
	{0},
	{1},
	{3},
	{3, 0},
	{0, 0, 0},
	{1, 1, 1},
	{2, 0, 5, 1, 0, 0, 4},
	{0, 7, 0},
	{10, 1, 0, 2},
}

func expectedRows(counts []int) int {
	n := 0
	for _, c := range counts {
		n += max(1, c)
	}
	return n
}
