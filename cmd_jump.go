package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/tasview/logging"
)

func (m *model) jumpToStart() {
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = 0
}

func (m *model) jumpToEnd() {
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = len(m.data.filteredIndices) - 1
}

// jumpToLine moves to the 1-based row lineNo.
func (m *model) jumpToLine(lineNo int) tea.Cmd {
	logging.Debugf("jumpToLine %d", lineNo)
	if lineNo <= 0 || lineNo > m.store.RowCount() {
		return m.notify(noticeWarn, fmt.Sprintf("Row %d out of bounds", lineNo))
	}
	return m.jumpToRow(lineNo-1, fmt.Sprintf("Row %d", lineNo))
}

// jumpToPhysicsFrame moves to the first row of physics frame phy.
func (m *model) jumpToPhysicsFrame(phy int) tea.Cmd {
	logging.Debugf("jumpToPhysicsFrame %d", phy)
	row, ok := m.store.RowOfPhysicsFrame(phy)
	if !ok {
		return m.notify(noticeWarn, fmt.Sprintf("Physics frame %d out of bounds", phy))
	}
	return m.jumpToRow(row, fmt.Sprintf("Physics frame %d", phy))
}

func (m *model) jumpToRow(target int, what string) tea.Cmd {
	for i, idx := range m.data.filteredIndices {
		if idx == target {
			m.cursor = i
			return nil
		}
	}
	return m.notify(noticeWarn, what+" is hidden by the marks-only filter")
}
