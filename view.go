package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/andareed/tasview/display"
	"github.com/andareed/tasview/logging"
)

const emptyViewText = "No log loaded. Press o to open a file."

// gutterWidth is the marker pill, the right-aligned row number and a space.
func (m *model) gutterWidth() int {
	return 1 + len(strconv.Itoa(m.store.RowCount())) + 1
}

func (m *model) headerView() string {
	var cells []string
	for _, col := range visibleColumns(m.columns) {
		cells = append(cells, cellStyle.Width(cellWidth(col)).Render(truncate.String(col.Name, uint(col.Width))))
	}

	sep := ""
	if m.proj.Mode.Grid {
		sep = gridSep
	}
	return headerStyle.Render(strings.Repeat(" ", m.gutterWidth()) + strings.Join(cells, sep))
}

// footerView renders the 2-line footer. width is the rendered table width.
func (m *model) footerView(width int) string {
	styles := defaultFooterStyles()

	st := footerState{
		Mode:         CmdNone,
		FileName:     filepath.Base(m.store.Path()),
		DisplayLabel: m.proj.Mode.String(),
		MarksOnly:    m.data.showOnlyMarked,
		Row:          m.cursor + 1,
		TotalRows:    len(m.data.filteredIndices),
		PhysicsIndex: -1,
		Legend:       "(? help · o open · : row · @ pf · / search · m mark · v inspect · p plot)",
	}
	if m.store.Path() == "" {
		st.FileName = ""
		st.Row = 0
	}
	if f, ok := m.currentFrame(); ok {
		st.PhysicsIndex = f.PhysicsIndex
	}

	if m.ui.mode == modeCommand {
		st.Mode = m.ui.command.cmd
		st.Input = m.activeCommandLine()
		st.Legend = m.commandHintsLine(m.ui.command.cmd)
	} else {
		if m.ui.loading {
			st.Mode = CmdLoading
		}
		st.Status = m.statusLine()
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d cur=%d vis=%d-%d page=%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.cursor, m.ui.visibleStart, m.ui.visibleEnd, m.pageRowSize,
		)
	}

	return renderFooter(width, st, styles)
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := tableStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	parts := []string{m.headerView(), bordered}
	if m.ui.drawer != drawerNone {
		parts = append(parts, drawerArea.Width(max(contentW-2, 0)).Render(m.drawerPort.View()))
	}
	parts = append(parts, m.footerView(contentW))
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) renderRowAt(filteredIdx int) (string, bool) {
	if filteredIdx < 0 || filteredIdx >= len(m.data.filteredIndices) {
		return "", false
	}
	row := m.data.filteredIndices[filteredIdx]
	f, err := m.store.Resolve(row)
	if err != nil {
		logging.Warnf("renderRowAt: resolve row %d: %v", row, err)
		return "", false
	}

	selected := filteredIdx == m.cursor
	rowBgStyle := rowStyle
	rowPrefix := bgSeq(lipgloss.Color("")) + fgSeq(lipgloss.Color(rowTextFGColor))
	if selected {
		rowBgStyle = rowSelectedStyle
		rowPrefix = bgSeq(lipgloss.Color(rowSelectedBGColor)) + fgSeq(lipgloss.Color(rowSelectedTextFGColor))
	}
	rowSuffix := termenv.CSI + "0m"

	// Standard mark seems to reset any bg colour attempts so it goes before the row style
	numberWidth := m.gutterWidth() - 2
	gutter := m.getRowMarker(keyOf(f)) + rowBgStyle.Render(fmt.Sprintf("%*d ", numberWidth, row+1))

	sep := ""
	if m.proj.Mode.Grid {
		sep = gridSep
	}
	cols := visibleColumns(m.columns)
	cells := make([]string, 0, len(cols))
	for _, col := range cols {
		cells = append(cells, m.renderCell(col, m.proj.Cell(col.ID, f)))
	}
	line := restoreRowStyleAfterReset(strings.Join(cells, sep), rowPrefix)

	return gutter + rowPrefix + line + rowSuffix, true
}

func (m *model) renderCell(col ColumnMeta, c display.Cell) string {
	text := c.Text
	style := cellStyle.Width(cellWidth(col))
	if c.FG != display.NoColor {
		style = style.Foreground(cellColor(c.FG))
	}
	if c.BG != display.NoColor {
		style = style.Background(cellColor(c.BG))
	}
	if c.Bold {
		style = style.Bold(true)
	}
	return style.Render(truncate.StringWithTail(text, uint(col.Width), "…"))
}

func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	reset := termenv.CSI + "0m"
	if !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}

func (m *model) getRowMarker(k markKey) string {
	switch m.data.marks[k] {
	case MarkRed:
		return redMarker.Render(pillMarker)
	case MarkGreen:
		return greenMarker.Render(pillMarker)
	case MarkAmber:
		return amberMarker.Render(pillMarker)
	default:
		return defaultMarker
	}
}

func (m *model) renderViewport() string {
	if m.store.RowCount() == 0 {
		return emptyViewText
	}
	if len(m.data.filteredIndices) == 0 {
		return "No marked rows. Press M to show all rows."
	}
	if m.cursor >= len(m.data.filteredIndices) || m.cursor < 0 {
		m.cursor = 0
	}

	renderedRows, startIdx, endIdx := m.computeVisibleRows(m.cursor, m.viewport.Height)
	m.ui.visibleStart = startIdx
	m.ui.visibleEnd = endIdx
	m.pageRowSize = len(renderedRows)
	m.lastVisibleRowCount = len(renderedRows)

	return strings.Join(renderedRows, "\n")
}

// computeVisibleRows renders the cursor row and fills the viewport around
// it, keeping the cursor near the middle where possible.
func (m *model) computeVisibleRows(cursor int, viewportHeight int) ([]string, int, int) {
	cursorRenderedRow, ok := m.renderRowAt(cursor)
	if !ok {
		return nil, 0, 0
	}

	heightFree := viewportHeight - 1
	desiredAbove := max(heightFree/2, 0)
	upIndex := cursor - 1
	downIndex := cursor + 1
	n := len(m.data.filteredIndices)

	var above, below []string
	for heightFree > 0 && (upIndex >= 0 || downIndex < n) {
		if upIndex >= 0 && (len(above) < desiredAbove || downIndex >= n) {
			if rendered, ok := m.renderRowAt(upIndex); ok {
				above = append(above, rendered)
			}
			heightFree--
			upIndex--
			continue
		}
		if downIndex < n {
			if rendered, ok := m.renderRowAt(downIndex); ok {
				below = append(below, rendered)
			}
			heightFree--
			downIndex++
			continue
		}
		break
	}

	renderedRows := make([]string, 0, len(above)+1+len(below))
	for i := len(above) - 1; i >= 0; i-- {
		renderedRows = append(renderedRows, above[i])
	}
	renderedRows = append(renderedRows, cursorRenderedRow)
	renderedRows = append(renderedRows, below...)

	return renderedRows, upIndex + 1, downIndex - 1
}

func (m *model) refreshDrawerContent() {
	switch m.ui.drawer {
	case drawerInspector:
		m.drawerPort.SetContent(m.renderInspector(m.drawerPort.Width))
	case drawerPlot:
		m.drawerPort.SetContent(m.renderPlot(m.drawerPort.Width, m.drawerPort.Height))
	}
}
