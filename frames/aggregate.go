package frames

import "github.com/andareed/tasview/taslog"

// MostCommon returns the value with the greatest number of occurrences in
// values, together with that count. When several values share the greatest
// count, the one that first appears in values wins. An empty input yields
// the zero value and a count of 0.
func MostCommon[T comparable](values []T) (T, int) {
	counts := make(map[T]int, 16)
	order := make([]T, 0, 16)
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	var best T
	bestCount := 0
	for _, v := range order {
		if c := counts[v]; c > bestCount {
			best, bestCount = v, c
		}
	}
	return best, bestCount
}

// FrameTimes lists every physics frame time in log order.
func FrameTimes(log *taslog.Log) []float64 {
	if log == nil {
		return nil
	}
	out := make([]float64, len(log.PhysicsFrames))
	for i := range log.PhysicsFrames {
		out[i] = log.PhysicsFrames[i].FrameTime
	}
	return out
}

// CommandDurations lists every command frame msec in log order.
func CommandDurations(log *taslog.Log) []int {
	if log == nil {
		return nil
	}
	out := make([]int, 0, len(log.PhysicsFrames))
	for i := range log.PhysicsFrames {
		for j := range log.PhysicsFrames[i].CommandFrames {
			out = append(out, log.PhysicsFrames[i].CommandFrames[j].Msec)
		}
	}
	return out
}

// CommonValues caches the most frequent frame time and command duration of
// a log. It starts out outdated and becomes outdated again on Invalidate.
type CommonValues struct {
	outdated  bool
	frameTime float64
	msec      int
}

// NewCommonValues returns an outdated cache.
func NewCommonValues() *CommonValues {
	return &CommonValues{outdated: true}
}

// Invalidate marks the cached values stale.
func (c *CommonValues) Invalidate() {
	c.outdated = true
}

// Outdated reports whether Recompute must run before the values are read.
func (c *CommonValues) Outdated() bool {
	return c.outdated
}

// Recompute refreshes both values from log.
func (c *CommonValues) Recompute(log *taslog.Log) {
	c.frameTime, _ = MostCommon(FrameTimes(log))
	c.msec, _ = MostCommon(CommandDurations(log))
	c.outdated = false
}

// Get returns the cached values, recomputing from log first if outdated.
func (c *CommonValues) Get(log *taslog.Log) (frameTime float64, msec int) {
	if c.outdated {
		c.Recompute(log)
	}
	return c.frameTime, c.msec
}
