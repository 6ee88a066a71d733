package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/tasview/export"
	"github.com/andareed/tasview/logging"
)

func (m *model) MarkCurrent(colour MarkColor) {
	f, ok := m.currentFrame()
	if !ok {
		return
	}
	k := keyOf(f)
	if colour == MarkNone {
		delete(m.data.marks, k)
		logging.Infof("row %d (%s) unmarked", f.Row, k)
	} else {
		m.data.marks[k] = colour
		logging.Infof("row %d (%s) marked %s", f.Row, k, colour)
	}
	m.saveMarks()
}

func (m *model) handleMarkCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var mark MarkColor
	switch msg.String() {
	case "r":
		mark = MarkRed
	case "g":
		mark = MarkGreen
	case "a":
		mark = MarkAmber
	case "c":
		mark = MarkNone
	default:
		// stay in mark mode
		return m, nil
	}

	m.MarkCurrent(mark)
	m.exitCommandMode()
	if m.data.showOnlyMarked {
		m.applyFilter()
	}
	m.refreshView()

	return m, m.notify(noticePlain, fmt.Sprintf("Row %d marked [%s]", m.cursor+1, msg.String()))
}

func (m *model) jumpToNextMark() {
	if !m.checkViewPortHasData() {
		return
	}
	for i := m.cursor + 1; i < len(m.data.filteredIndices); i++ {
		if m.rowMarked(m.data.filteredIndices[i]) {
			logging.Debugf("next mark found at %d", i)
			m.cursor = i
			return
		}
	}
	logging.Debugf("no next mark")
}

func (m *model) jumpToPreviousMark() {
	if !m.checkViewPortHasData() {
		return
	}
	for i := m.cursor - 1; i >= 0; i-- {
		if m.rowMarked(m.data.filteredIndices[i]) {
			logging.Debugf("previous mark found at %d", i)
			m.cursor = i
			return
		}
	}
	logging.Debugf("no previous mark")
}

func (m *model) rowMarked(row int) bool {
	k, ok := m.rowKey(row)
	if !ok {
		return false
	}
	_, marked := m.data.marks[k]
	return marked
}

func (m *model) loadMarksFor(logPath string) {
	m.data.marksPath = marksPathFor(logPath)
	marks, err := LoadMarks(m.data.marksPath)
	if err != nil {
		logging.Warnf("load marks %s: %v", m.data.marksPath, err)
	}
	m.data.marks = marks
}

func (m *model) saveMarks() {
	if m.data.marksPath == "" {
		return
	}
	if err := SaveMarks(m.data.marksPath, m.store.Path(), m.data.marks); err != nil {
		logging.Warnf("save marks %s: %v", m.data.marksPath, err)
	}
}

// markFunc labels exported rows with their mark colour. marks must not be
// modified while the export runs.
func markFunc(src export.Source, marks map[markKey]MarkColor) export.MarkFunc {
	if len(marks) == 0 {
		return nil
	}
	return func(row int) string {
		f, err := src.Resolve(row)
		if err != nil {
			return ""
		}
		return string(marks[keyOf(f)])
	}
}
