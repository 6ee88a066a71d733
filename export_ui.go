package main

import (
	"errors"
	"maps"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/tasview/dialogs"
	"github.com/andareed/tasview/display"
	"github.com/andareed/tasview/export"
	"github.com/andareed/tasview/frames"
	"github.com/andareed/tasview/logging"
)

var errNoLog = errors.New("no log loaded")

// exportTo writes the loaded log to path in the background. The export
// works on a snapshot so reloads and mode changes do not affect it.
func (m *model) exportTo(path string) tea.Cmd {
	log := m.store.Log()
	if log == nil {
		return func() tea.Msg { return dialogs.ExportErrorMsg{Err: errNoLog} }
	}
	snap := frames.NewStore(m.store.Mode())
	snap.SetLog(m.store.Path(), log, 0)
	proj := display.NewProjector(snap, m.opts.noData)
	marks := maps.Clone(m.data.marks)

	return func() tea.Msg {
		if err := exportLog(path, snap, proj, marks); err != nil {
			return dialogs.ExportErrorMsg{Err: err}
		}
		return dialogs.ExportOKMsg{Path: path}
	}
}

// exportLog picks the format from the path extension.
func exportLog(path string, src *frames.Store, proj display.Projector, marks map[markKey]MarkColor) error {
	logging.Infof("exporting %s to %s", src.Path(), path)
	switch export.FormatFor(path) {
	case export.FormatSQLite:
		return export.SQLite(path, src.Log())
	default:
		return export.CSVFile(path, src, proj, markFunc(src, marks))
	}
}
