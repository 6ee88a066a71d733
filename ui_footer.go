package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// footerState is everything the two footer lines show.
type footerState struct {
	Mode  Command
	Input string // command prompt and typed text

	FileName     string
	DisplayLabel string
	MarksOnly    bool

	Row          int
	TotalRows    int
	PhysicsIndex int // -1 when no row is selected

	Status string
	Legend string
}

// footerStyles share one background per line so nested renders do not
// punch holes in the bar.
type footerStyles struct {
	bar    lipgloss.Style
	pill   lipgloss.Style
	file   lipgloss.Style
	dim    lipgloss.Style
	status lipgloss.Style
	legend lipgloss.Style
}

func defaultFooterStyles() footerStyles {
	barBG := lipgloss.Color("#2b2b2b")
	statusBG := lipgloss.Color("#000000")
	return footerStyles{
		bar:    lipgloss.NewStyle().Background(barBG).Foreground(lipgloss.Color("#cfcfcf")),
		pill:   lipgloss.NewStyle().Background(lipgloss.Color("#ff9f1c")).Foreground(lipgloss.Color("#000000")).Padding(0, 1),
		file:   lipgloss.NewStyle().Background(barBG).Foreground(lipgloss.Color("#e0e0e0")),
		dim:    lipgloss.NewStyle().Background(barBG).Foreground(lipgloss.Color("#a0a0a0")),
		status: lipgloss.NewStyle().Background(statusBG).Foreground(lipgloss.Color("#9a9a9a")),
		legend: lipgloss.NewStyle().Background(statusBG).Foreground(lipgloss.Color("#b0b0b0")),
	}
}

func renderFooter(width int, st footerState, s footerStyles) string {
	if width <= 0 {
		return ""
	}
	return renderControlBar(width, st, s) + "\n" + renderStatusBar(width, st, s)
}

// renderControlBar: mode pill, file and command input, display mode and
// marks filter, then the cursor position on the right.
func renderControlBar(width int, st footerState, s footerStyles) string {
	pill := s.pill.Render(commandLabel(st.Mode))
	display := fmt.Sprintf(" [%s] [marks only: %s] ", st.DisplayLabel, onOff(st.MarksOnly))
	right := positionLabel(st)

	file := "▸ " + st.FileName
	if st.FileName == "" {
		file = "▸ (no file)"
	}
	if st.Input != "" {
		file += " ▸ " + st.Input
	}
	fileW := max(width-lipgloss.Width(pill)-1-lipgloss.Width(display)-lipgloss.Width(right), 0)
	file = fitWidth(file, fileW)

	line := pill + s.bar.Render(" ") +
		s.file.Render(file) +
		s.dim.Render(display) +
		s.bar.Render(right)
	return padTo(truncate.String(line, uint(width)), width, s.bar)
}

func renderStatusBar(width int, st footerState, s footerStyles) string {
	legend := truncate.String(st.Legend, uint(width))
	statusW := max(width-lipgloss.Width(legend), 0)
	return s.status.Render(fitWidth(st.Status, statusW)) + s.legend.Render(legend)
}

// fitWidth truncates or right-pads plain text to exactly w cells.
func fitWidth(text string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(text) > w {
		text = truncate.StringWithTail(text, uint(w), "…")
	}
	return text + strings.Repeat(" ", max(w-lipgloss.Width(text), 0))
}

func padTo(line string, width int, style lipgloss.Style) string {
	if gap := width - lipgloss.Width(line); gap > 0 {
		return line + style.Render(strings.Repeat(" ", gap))
	}
	return line
}

func positionLabel(st footerState) string {
	if st.PhysicsIndex >= 0 {
		return fmt.Sprintf("pf %d · Rows %d/%d", st.PhysicsIndex, max(st.Row, 0), max(st.TotalRows, 0))
	}
	return fmt.Sprintf("Rows %d/%d", max(st.Row, 0), max(st.TotalRows, 0))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdPhysics:
		return "JUMP PF"
	case CmdSearch:
		return "SEARCH"
	case CmdMark:
		return "MARK"
	case CmdLoading:
		return "LOADING"
	default:
		return "NORMAL"
	}
}
