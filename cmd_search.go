package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// searchOnce moves to the next row after the cursor whose physics frame has
// a console print containing query, ignoring case. The cursor's own physics
// frame is skipped.
func (m *model) searchOnce(query string) tea.Cmd {
	if query == "" {
		return nil
	}
	m.ui.searchQuery = query
	q := strings.ToLower(query)

	cur, ok := m.currentFrame()
	if !ok {
		return nil
	}
	lastPhy := cur.PhysicsIndex
	for i := m.cursor + 1; i < len(m.data.filteredIndices); i++ {
		f, err := m.store.Resolve(m.data.filteredIndices[i])
		if err != nil || f.PhysicsIndex == lastPhy {
			continue
		}
		lastPhy = f.PhysicsIndex
		for _, p := range f.Physics.ConsolePrints {
			if strings.Contains(strings.ToLower(p), q) {
				m.cursor = i
				return nil
			}
		}
	}
	return m.notify(noticeWarn, "No console print matching \""+query+"\" below the cursor")
}
