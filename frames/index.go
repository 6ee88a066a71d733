// Package frames turns a parsed log into a flat, randomly addressable row
// sequence. A row is either a physics frame with no command frames or one
// command frame of a physics frame.
//
// The package has no UI dependency. Store owns the current log and notifies
// subscribers when rows change; Index, Resolve and the aggregate helpers are
// pure functions of the log they were built from.
package frames

import (
	"sort"

	"github.com/andareed/tasview/taslog"
)

// Index maps each row to the physics frame that owns it. The mapping is
// non-decreasing in row.
type Index struct {
	toPhysics []int
}

// BuildIndex computes the row mapping for pfs. Every physics frame
// contributes max(1, len(CommandFrames)) rows.
func BuildIndex(pfs []taslog.PhysicsFrame) *Index {
	n := 0
	for i := range pfs {
		n += max(1, len(pfs[i].CommandFrames))
	}
	idx := &Index{toPhysics: make([]int, 0, n)}
	for phy := range pfs {
		idx.toPhysics = append(idx.toPhysics, phy)
		for range max(0, len(pfs[phy].CommandFrames)-1) {
			idx.toPhysics = append(idx.toPhysics, phy)
		}
	}
	return idx
}

// Len returns the number of rows.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.toPhysics)
}

// PhysicsIndex returns the physics frame owning row. ok is false when row is
// outside [0, Len()).
func (x *Index) PhysicsIndex(row int) (phy int, ok bool) {
	if row < 0 || row >= x.Len() {
		return 0, false
	}
	return x.toPhysics[row], true
}

// FirstRow returns the first row of physics frame phy by scanning backward
// from startRow, which must belong to phy or a later frame. The scan stops
// at the start of phy's group, so its cost is the size of that group.
func (x *Index) FirstRow(phy, startRow int) int {
	for row := startRow; row >= 0; row-- {
		if x.toPhysics[row] < phy {
			return row + 1
		}
	}
	return 0
}

// RowOfPhysicsFrame returns the first row of physics frame phy using a
// binary search. ok is false when the log has no such frame.
func (x *Index) RowOfPhysicsFrame(phy int) (row int, ok bool) {
	n := x.Len()
	row = sort.Search(n, func(i int) bool { return x.toPhysics[i] >= phy })
	if row == n || x.toPhysics[row] != phy {
		return 0, false
	}
	return row, true
}

// PhysicsCount returns the number of physics frames covered by the index.
func (x *Index) PhysicsCount() int {
	n := x.Len()
	if n == 0 {
		return 0
	}
	return x.toPhysics[n-1] + 1
}

// Rows returns a copy of the row mapping.
func (x *Index) Rows() []int {
	if x == nil {
		return nil
	}
	out := make([]int, len(x.toPhysics))
	copy(out, x.toPhysics)
	return out
}
