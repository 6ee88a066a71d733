package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/tasview/display"
	"github.com/andareed/tasview/plot"
)

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"
	gridColor              = "240"
)

var (
	appstyle    = lipgloss.NewStyle().Margin(1, 2)
	headerStyle = lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)
	rowStyle         = lipgloss.NewStyle()
	rowSelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color(rowSelectedBGColor))

	cellStyle     = lipgloss.NewStyle().PaddingRight(1)
	gridSep       = lipgloss.NewStyle().Foreground(lipgloss.Color(gridColor)).Render("│")
	tableStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	redMarker     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	greenMarker   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	amberMarker   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	defaultMarker = " " // replaces pillMarker when the row has no mark
	pillMarker    = "▐"

	drawerArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1).BorderLeft(true)

	drawerTitle = lipgloss.NewStyle().Bold(true)
	tabActive   = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	tabInactive = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))
)

// cellColor maps a display colour to a lipgloss colour. NoColor keeps the
// row's own foreground or background.
func cellColor(c display.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

var plotColors = map[plot.Kind]lipgloss.Color{
	plot.Axis:          cellColor(display.Gray),
	plot.VelocityLine:  cellColor(display.Blue),
	plot.YawLine:       cellColor(display.Magenta),
	plot.DamageLine:    cellColor(display.Red),
	plot.CollisionLine: cellColor(display.DarkYellow),
}
