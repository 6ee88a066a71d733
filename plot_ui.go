package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/tasview/plot"
)

// renderPlot draws the plan, front and side views of the current frame next
// to each other.
func (m *model) renderPlot(width, height int) string {
	f, ok := m.currentFrame()
	if !ok {
		return labelStyle.Render("No row selected")
	}

	views := []plot.View{plot.Plan, plot.Front, plot.Side}
	gap := 2
	w := max((width-gap*(len(views)-1))/len(views), 3)
	h := max(height-1, 3)
	lines := plot.Lines(f)

	blocks := make([]string, 0, 2*len(views)-1)
	for i, v := range views {
		if i > 0 {
			blocks = append(blocks, strings.Repeat(" ", gap))
		}
		c := plot.Render(v, lines, w, h)
		blocks = append(blocks, drawerTitle.Render(v.String())+"\n"+renderCanvas(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// renderCanvas colours runs of cells drawn by the same kind.
func renderCanvas(c *plot.Canvas) string {
	rows := make([]string, c.H)
	for row := range c.H {
		var b, run strings.Builder
		runKind, runSet := plot.Axis, false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runSet {
				b.WriteString(lipgloss.NewStyle().Foreground(plotColors[runKind]).Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for col := range c.W {
			r, k, ok := c.Rune(col, row)
			if ok != runSet || (ok && k != runKind) {
				flush()
				runKind, runSet = k, ok
			}
			run.WriteRune(r)
		}
		flush()
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}
