package frames

import (
	"errors"
	"fmt"

	"github.com/andareed/tasview/taslog"
)

// ErrRowOutOfRange is returned when a row outside [0, RowCount) is resolved.
var ErrRowOutOfRange = errors.New("row out of range")

// Frame is the data behind one row.
type Frame struct {
	Row          int
	PhysicsIndex int
	// CommandIndex is the position of the command frame within its physics
	// frame, or -1 when the physics frame has no command frames.
	CommandIndex int
	Physics      *taslog.PhysicsFrame

	command *taslog.CommandFrame
	state   *taslog.PlayerState
}

// Command returns the row's command frame. ok is false for a physics frame
// without command frames.
func (f Frame) Command() (cf *taslog.CommandFrame, ok bool) {
	return f.command, f.command != nil
}

// PlayerState returns the pre- or post-movement state selected when the row
// was resolved. ok is false when there is no command frame.
func (f Frame) PlayerState() (st *taslog.PlayerState, ok bool) {
	return f.state, f.state != nil
}

// HasCommand reports whether the row carries a command frame.
func (f Frame) HasCommand() bool {
	return f.command != nil
}

// Resolve maps row to its frame data using idx built from log. The player
// state comes from PrePM when prePM is set, PostPM otherwise.
//
// A command slot missing from the physics frame means idx was not built from
// log; Resolve panics in that case.
func Resolve(log *taslog.Log, idx *Index, row int, prePM bool) (Frame, error) {
	phy, ok := idx.PhysicsIndex(row)
	if !ok {
		return Frame{}, fmt.Errorf("%w: row %d, row count %d", ErrRowOutOfRange, row, idx.Len())
	}
	if log == nil || phy >= len(log.PhysicsFrames) {
		panic(fmt.Sprintf("frames: row %d maps to physics frame %d but the log has %d", row, phy, physicsLen(log)))
	}

	base := idx.FirstRow(phy, row)
	pf := &log.PhysicsFrames[phy]
	f := Frame{Row: row, PhysicsIndex: phy, CommandIndex: -1, Physics: pf}
	if len(pf.CommandFrames) == 0 {
		return f, nil
	}

	ci := row - base
	if ci >= len(pf.CommandFrames) {
		panic(fmt.Sprintf("frames: row %d maps to command frame %d of physics frame %d which has %d",
			row, ci, phy, len(pf.CommandFrames)))
	}
	cf := &pf.CommandFrames[ci]
	f.CommandIndex = ci
	f.command = cf
	if prePM {
		f.state = &cf.PrePM
	} else {
		f.state = &cf.PostPM
	}
	return f, nil
}

func physicsLen(log *taslog.Log) int {
	if log == nil {
		return 0
	}
	return len(log.PhysicsFrames)
}
