package main

import (
	"github.com/andareed/tasview/inspect"
)

type mode int

const (
	modeView mode = iota
	modeCommand
)

type drawerKind int

const (
	drawerNone drawerKind = iota
	drawerInspector
	drawerPlot
)

type uiState struct {
	mode         mode
	command      CommandInput
	drawer       drawerKind
	drawerHeight int
	inspectTab   inspect.Tab
	firstColumn  int
	notice       notice
	searchQuery  string
	visibleStart int
	visibleEnd   int

	loading      bool
	loadPath     string
	loadFraction float64
}
