package frames

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndexRowCount(t *testing.T) {
	for _, counts := range countShapes {
		t.Run(fmt.Sprint(counts), func(t *testing.T) {
			idx := BuildIndex(makeLog(counts...).PhysicsFrames)
			assert.Equal(t, expectedRows(counts), idx.Len())
			assert.Equal(t, len(counts), idx.PhysicsCount())
		})
	}
}

func TestBuildIndexNonDecreasing(t *testing.T) {
	for _, counts := range countShapes {
		t.Run(fmt.Sprint(counts), func(t *testing.T) {
			rows := BuildIndex(makeLog(counts...).PhysicsFrames).Rows()
			for i := 1; i < len(rows); i++ {
				assert.LessOrEqual(t, rows[i-1], rows[i], "row %d", i)
				assert.LessOrEqual(t, rows[i]-rows[i-1], 1, "row %d skips a physics frame", i)
			}
		})
	}
}

func TestBuildIndexScenario(t *testing.T) {
	idx := BuildIndex(makeLog(3, 0).PhysicsFrames)
	assert.Equal(t, []int{0, 0, 0, 1}, idx.Rows())
}

func TestBuildIndexEmpty(t *testing.T) {
	idx := BuildIndex(nil)
	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, 0, idx.PhysicsCount())
	_, ok := idx.PhysicsIndex(0)
	assert.False(t, ok)

	var nilIdx *Index
	assert.Equal(t, 0, nilIdx.Len())
	assert.Nil(t, nilIdx.Rows())
}

func TestPhysicsIndexBounds(t *testing.T) {
	idx := BuildIndex(makeLog(2, 1).PhysicsFrames)

	tests := []struct {
		row    int
		want   int
		wantOK bool
	}{
		{-1, 0, false},
		{0, 0, true},
		{1, 0, true},
		{2, 1, true},
		{3, 0, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.row), func(t *testing.T) {
			phy, ok := idx.PhysicsIndex(tt.row)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, phy)
		})
	}
}

func TestFirstRow(t *testing.T) {
	counts := []int{2, 0, 5, 1, 0, 0, 4}
	idx := BuildIndex(makeLog(counts...).PhysicsFrames)
	rows := idx.Rows()

	for row, phy := range rows {
		first := row
		for first > 0 && rows[first-1] == phy {
			first--
		}
		assert.Equal(t, first, idx.FirstRow(phy, row), "row %d", row)
	}
}

func TestFirstRowFromLaterFrame(t *testing.T) {
	idx := BuildIndex(makeLog(3, 2, 4).PhysicsFrames)
	// Starting in frame 2 and asking for frame 1 walks back into frame 1's group.
	assert.Equal(t, 3, idx.FirstRow(1, 4))
	assert.Equal(t, 0, idx.FirstRow(0, 2))
}

func TestRowOfPhysicsFrame(t *testing.T) {
	idx := BuildIndex(makeLog(2, 0, 5, 1).PhysicsFrames)

	tests := []struct {
		phy    int
		want   int
		wantOK bool
	}{
		{0, 0, true},
		{1, 2, true},
		{2, 3, true},
		{3, 8, true},
		{4, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.phy), func(t *testing.T) {
			row, ok := idx.RowOfPhysicsFrame(tt.phy)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, row)
		})
	}
}

func TestRowsIsCopy(t *testing.T) {
	idx := BuildIndex(makeLog(1, 1).PhysicsFrames)
	rows := idx.Rows()
	require.Len(t, rows, 2)
	rows[0] = 99
	phy, _ := idx.PhysicsIndex(0)
	assert.Equal(t, 0, phy)
}
