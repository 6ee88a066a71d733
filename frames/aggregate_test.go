package frames

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andareed/tasview/taslog"
)

func TestMostCommon(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		want      float64
		wantCount int
	}{
		{"majority", []float64{0.1, 0.1, 0.2}, 0.1, 2},
		{"majority later", []float64{0.2, 0.1, 0.1}, 0.1, 2},
		{"all distinct picks first", []float64{0.3, 0.1, 0.2}, 0.3, 1},
		{"tie picks first seen", []float64{0.2, 0.1, 0.1, 0.2}, 0.2, 2},
		{"single", []float64{0.004}, 0.004, 1},
		{"empty", nil, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := MostCommon(tt.values)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestMostCommonCountIsMaximum(t *testing.T) {
	values := []int{4, 1, 4, 2, 2, 3, 1, 2, 4, 1}
	counts := map[int]int{}
	for _, v := range values {
		counts[v]++
	}
	maxCount := 0
	for _, c := range counts {
		maxCount = max(maxCount, c)
	}

	got, count := MostCommon(values)
	assert.Equal(t, maxCount, count)
	assert.Equal(t, maxCount, counts[got])
	assert.Equal(t, 4, got)
}

func TestCommonValuesLazy(t *testing.T) {
	log := &taslog.Log{PhysicsFrames: []taslog.PhysicsFrame{
		{FrameTime: 0.1, CommandFrames: []taslog.CommandFrame{{Msec: 10}}},
		{FrameTime: 0.1, CommandFrames: []taslog.CommandFrame{{Msec: 1}, {Msec: 1}}},
		{FrameTime: 0.2},
	}}

	c := NewCommonValues()
	assert.True(t, c.Outdated())

	ft, ms := c.Get(log)
	assert.Equal(t, 0.1, ft)
	assert.Equal(t, 1, ms)
	assert.False(t, c.Outdated())

	// A stale log is not consulted until invalidated.
	other := &taslog.Log{PhysicsFrames: []taslog.PhysicsFrame{{FrameTime: 0.5}}}
	ft, _ = c.Get(other)
	assert.Equal(t, 0.1, ft)

	c.Invalidate()
	ft, ms = c.Get(other)
	assert.Equal(t, 0.5, ft)
	assert.Equal(t, 0, ms)
}

func TestFrameTimesAndDurations(t *testing.T) {
	log := makeLog(2, 0, 1)
	assert.Equal(t, []float64{0.01, 0.01, 0.01}, FrameTimes(log))
	assert.Equal(t, []int{0, 1, 2}, CommandDurations(log))
	assert.Nil(t, FrameTimes(nil))
	assert.Nil(t, CommandDurations(nil))
}
