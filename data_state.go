package main

// MarkColor is the colour a row has been marked with.
type MarkColor string

const (
	MarkNone  MarkColor = ""
	MarkRed   MarkColor = "red"
	MarkGreen MarkColor = "green"
	MarkAmber MarkColor = "amber"
)

// markKey identifies a row by frame rather than position so marks survive
// reloads. Command is -1 for rows without a command frame.
type markKey struct {
	Physics int
	Command int
}

type dataState struct {
	marks           map[markKey]MarkColor
	marksPath       string
	showOnlyMarked  bool
	filteredIndices []int // rows currently listed, in order
}
