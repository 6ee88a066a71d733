package frames

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/tasview/taslog"
)

func TestResolvePhysicsFrameIdentity(t *testing.T) {
	for _, counts := range countShapes {
		t.Run(fmt.Sprint(counts), func(t *testing.T) {
			log := makeLog(counts...)
			idx := BuildIndex(log.PhysicsFrames)
			rows := idx.Rows()
			for row := range idx.Len() {
				f, err := Resolve(log, idx, row, false)
				require.NoError(t, err)
				assert.Same(t, &log.PhysicsFrames[rows[row]], f.Physics)
				assert.Equal(t, rows[row], f.PhysicsIndex)
				assert.Equal(t, row, f.Row)
			}
		})
	}
}

func TestResolveEnumeratesCommandFrames(t *testing.T) {
	for _, counts := range countShapes {
		t.Run(fmt.Sprint(counts), func(t *testing.T) {
			log := makeLog(counts...)
			idx := BuildIndex(log.PhysicsFrames)

			seen := make(map[int][]*taslog.CommandFrame)
			firstRow := make(map[int]int)
			for row := range idx.Len() {
				f, err := Resolve(log, idx, row, true)
				require.NoError(t, err)
				cf, ok := f.Command()
				if !ok {
					assert.Empty(t, f.Physics.CommandFrames)
					assert.Equal(t, -1, f.CommandIndex)
					continue
				}
				if _, ok := firstRow[f.PhysicsIndex]; !ok {
					firstRow[f.PhysicsIndex] = row
				}
				assert.Equal(t, row-firstRow[f.PhysicsIndex], f.CommandIndex)
				seen[f.PhysicsIndex] = append(seen[f.PhysicsIndex], cf)
			}

			for phy, pf := range log.PhysicsFrames {
				if len(pf.CommandFrames) == 0 {
					assert.NotContains(t, seen, phy)
					continue
				}
				require.Len(t, seen[phy], len(pf.CommandFrames))
				for j := range pf.CommandFrames {
					assert.Same(t, &log.PhysicsFrames[phy].CommandFrames[j], seen[phy][j])
				}
			}
		})
	}
}

func TestResolveScenario(t *testing.T) {
	log := makeLog(3, 0)
	idx := BuildIndex(log.PhysicsFrames)
	require.Equal(t, 4, idx.Len())

	f, err := Resolve(log, idx, 2, false)
	require.NoError(t, err)
	assert.Equal(t, 0, f.PhysicsIndex)
	cf, ok := f.Command()
	require.True(t, ok)
	assert.Same(t, &log.PhysicsFrames[0].CommandFrames[2], cf)

	f, err = Resolve(log, idx, 3, false)
	require.NoError(t, err)
	assert.Same(t, &log.PhysicsFrames[1], f.Physics)
	_, ok = f.Command()
	assert.False(t, ok)
	_, ok = f.PlayerState()
	assert.False(t, ok)
}

func TestResolveSingleEmptyFrame(t *testing.T) {
	log := makeLog(0)
	idx := BuildIndex(log.PhysicsFrames)
	require.Equal(t, 1, idx.Len())

	f, err := Resolve(log, idx, 0, false)
	require.NoError(t, err)
	assert.Same(t, &log.PhysicsFrames[0], f.Physics)
	assert.False(t, f.HasCommand())
}

func TestResolveOutOfRange(t *testing.T) {
	log := makeLog(2, 1)
	idx := BuildIndex(log.PhysicsFrames)

	for _, row := range []int{-1, 3, 100} {
		_, err := Resolve(log, idx, row, false)
		assert.ErrorIs(t, err, ErrRowOutOfRange, "row %d", row)
	}

	_, err := Resolve(nil, BuildIndex(nil), 0, false)
	assert.ErrorIs(t, err, ErrRowOutOfRange)
}

func TestResolveIdempotent(t *testing.T) {
	log := makeLog(2, 0, 3)
	idx := BuildIndex(log.PhysicsFrames)
	for row := range idx.Len() {
		a, err := Resolve(log, idx, row, true)
		require.NoError(t, err)
		b, err := Resolve(log, idx, row, true)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestResolvePrePostSelectsStateOnly(t *testing.T) {
	log := makeLog(2, 0, 3)
	idx := BuildIndex(log.PhysicsFrames)
	for row := range idx.Len() {
		pre, err := Resolve(log, idx, row, true)
		require.NoError(t, err)
		post, err := Resolve(log, idx, row, false)
		require.NoError(t, err)

		assert.Same(t, pre.Physics, post.Physics)
		assert.Equal(t, pre.CommandIndex, post.CommandIndex)
		preCF, preOK := pre.Command()
		postCF, postOK := post.Command()
		assert.Equal(t, preOK, postOK)
		assert.Same(t, preCF, postCF)
		if !preOK {
			continue
		}

		preSt, _ := pre.PlayerState()
		postSt, _ := post.PlayerState()
		assert.Same(t, &preCF.PrePM, preSt)
		assert.Same(t, &postCF.PostPM, postSt)
	}
}

func TestResolveDesyncPanics(t *testing.T) {
	log := makeLog(3, 0)
	idx := BuildIndex(log.PhysicsFrames)

	shrunk := makeLog(1, 0)
	assert.Panics(t, func() { _, _ = Resolve(shrunk, idx, 2, false) })

	assert.Panics(t, func() { _, _ = Resolve(makeLog(), idx, 0, false) })
}
