package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/tasview/clipboard"
	"github.com/andareed/tasview/dialogs"
	"github.com/andareed/tasview/display"
	"github.com/andareed/tasview/frames"
	"github.com/andareed/tasview/logging"
	"github.com/andareed/tasview/settings"
)

const defaultDrawerHeight = 14

type viewOptions struct {
	initialPath string
	follow      bool
	noData      string
}

type model struct {
	store    *frames.Store
	settings *settings.Settings // nil disables recent files
	proj     display.Projector
	columns  []ColumnMeta

	data dataState
	ui   uiState

	viewport            viewport.Model
	drawerPort          viewport.Model
	ready               bool
	cursor              int // index into data.filteredIndices
	terminalWidth       int
	terminalHeight      int
	pageRowSize         int
	lastVisibleRowCount int

	activeDialog dialogs.Dialog

	loadJob     *frames.LoadJob
	watcher     *fileWatcher
	opts        viewOptions
	unsubscribe func()
}

func newModel(store *frames.Store, st *settings.Settings, opts viewOptions) *model {
	m := &model{
		store:    store,
		settings: st,
		columns:  newColumns(),
		opts:     opts,
		data:     dataState{marks: make(map[markKey]MarkColor)},
		ui:       uiState{drawerHeight: defaultDrawerHeight},
	}
	m.proj = display.NewProjector(store, opts.noData)
	m.unsubscribe = store.Subscribe(m.onStoreEvent)
	m.applyFilter()
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("tasview: Initialised")
	if m.opts.initialPath == "" {
		return nil
	}
	return m.startLoad(m.opts.initialPath)
}

// Close releases the load job, watcher and store subscription.
func (m *model) Close() {
	m.cancelLoad()
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		m.resize()
		m.ready = true
		m.refreshView()
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil

	case loadUpdateMsg:
		cmd := m.handleLoadUpdate(msg)
		m.refreshView()
		return m, cmd

	case fileChangedMsg:
		return m, m.handleFileChanged(msg)

	case dialogs.OpenConfirmedMsg:
		m.closeDialog()
		return m, m.startLoad(msg.Path)

	case dialogs.OpenCanceledMsg, dialogs.ExportCanceledMsg:
		m.closeDialog()
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		return m, tea.Batch(
			m.notify(noticeInfo, "Exporting to "+msg.Path),
			m.exportTo(msg.Path),
		)

	case dialogs.ExportOKMsg:
		return m, m.notify(noticeSuccess, "Exported to "+msg.Path)

	case dialogs.ExportErrorMsg:
		logging.Errorf("export failed: %v", msg.Err)
		return m, m.notify(noticeError, "Export failed: "+msg.Err.Error())

	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			d, cmd := m.activeDialog.Update(msg)
			m.activeDialog = d
			if !d.IsVisible() {
				m.activeDialog = nil
			}
			return m, cmd
		}
		return m.updateKey(msg)
	}

	// cursor blink and similar
	if m.activeDialog != nil {
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		return m, cmd
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	mode := m.store.Mode()

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.MarkMode):
		if m.checkViewPortHasData() {
			m.enterCommandMode(CmdMark)
		}
	case key.Matches(msg, Keys.ShowMarksOnly):
		m.data.showOnlyMarked = !m.data.showOnlyMarked
		logging.Debugf("show only marked: %v", m.data.showOnlyMarked)
		m.applyFilter()
	case key.Matches(msg, Keys.NextMark):
		m.jumpToNextMark()
	case key.Matches(msg, Keys.PrevMark):
		m.jumpToPreviousMark()
	case key.Matches(msg, Keys.RowDown):
		if m.cursor < len(m.data.filteredIndices)-1 {
			m.cursor++
		}
	case key.Matches(msg, Keys.RowUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, Keys.PageUp):
		m.pageUp()
	case key.Matches(msg, Keys.PageDown):
		m.pageDown()
	case key.Matches(msg, Keys.JumpStart):
		m.jumpToStart()
	case key.Matches(msg, Keys.JumpEnd):
		m.jumpToEnd()
	case key.Matches(msg, Keys.ScrollLeft):
		if m.ui.firstColumn > 0 {
			m.ui.firstColumn--
		}
	case key.Matches(msg, Keys.ScrollRight):
		if m.ui.firstColumn < len(m.columns)-1 {
			m.ui.firstColumn++
		}
	case key.Matches(msg, Keys.JumpRow), key.Matches(msg, Keys.JumpPhysics), key.Matches(msg, Keys.Search):
		if len(msg.Runes) == 1 {
			m.enterCommandMode(CommandFromPrefix(msg.Runes[0]))
		}
	case key.Matches(msg, Keys.OpenHelp):
		cmd = m.openDialog(dialogs.NewHelpDialog(Keys.Legend()))
	case key.Matches(msg, Keys.OpenFile):
		cmd = m.openDialog(dialogs.NewOpenDialog(m.lastOpenDirectory(), m.recentFiles()))
	case key.Matches(msg, Keys.Reload):
		cmd = m.reload()
	case key.Matches(msg, Keys.FileInfo):
		cmd = m.openDialog(dialogs.NewInfoDialog(m.store.Info()))
	case key.Matches(msg, Keys.ExportToFile):
		if path := m.store.Path(); path != "" {
			cmd = m.openDialog(dialogs.NewExportDialog(defaultExportName(path), filepath.Dir(path)))
		} else {
			cmd = m.notify(noticeWarn, "No log loaded")
		}
	case key.Matches(msg, Keys.CopyRow):
		cmd = m.copyCurrentRow()
	case key.Matches(msg, Keys.PrePM):
		cmd = m.setDisplayMode(mode.WithPrePM(true))
	case key.Matches(msg, Keys.PostPM):
		cmd = m.setDisplayMode(mode.WithPrePM(false))
	case key.Matches(msg, Keys.Anglemod):
		cmd = m.setDisplayMode(mode.WithAnglemod(!mode.Anglemod))
	case key.Matches(msg, Keys.HideCommon):
		cmd = m.setDisplayMode(mode.WithHideCommon(!mode.HideCommon))
	case key.Matches(msg, Keys.FSUValues):
		cmd = m.setDisplayMode(mode.WithFSUValues(!mode.FSUValues))
	case key.Matches(msg, Keys.Grid):
		cmd = m.setDisplayMode(mode.WithGrid(!mode.Grid))
	case key.Matches(msg, Keys.Inspector):
		m.toggleDrawer(drawerInspector)
	case key.Matches(msg, Keys.Plot):
		m.toggleDrawer(drawerPlot)
	case key.Matches(msg, Keys.NextTab):
		m.ui.inspectTab = m.ui.inspectTab.Next()
		m.drawerPort.GotoTop()
	case key.Matches(msg, Keys.PrevTab):
		m.ui.inspectTab = m.ui.inspectTab.Prev()
		m.drawerPort.GotoTop()
	case key.Matches(msg, Keys.DrawerUp):
		m.drawerPort.ScrollUp(3)
	case key.Matches(msg, Keys.DrawerDown):
		m.drawerPort.ScrollDown(3)
	}

	m.refreshView()
	return m, cmd
}

func (m *model) enterCommandMode(c Command) {
	if c == CmdNone {
		return
	}
	m.ui.mode = modeCommand
	m.ui.command = CommandInput{cmd: c}
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	d.Show()
	return d.Init()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
}

func (m *model) toggleDrawer(k drawerKind) {
	if m.ui.drawer == k {
		m.ui.drawer = drawerNone
	} else {
		m.ui.drawer = k
	}
	m.resize()
}

// resize fits the viewport and drawer to the terminal. Chrome is the app
// margin, header, table border, optional drawer border and the footer.
func (m *model) resize() {
	w := max(m.terminalWidth-6, 10)
	chrome := 2 + 1 + 2 + 2
	if m.ui.drawer != drawerNone {
		chrome += m.ui.drawerHeight + 2
	}
	h := max(m.terminalHeight-chrome, 1)
	m.viewport = viewport.New(w, h)
	m.drawerPort = viewport.New(max(w-4, 10), m.ui.drawerHeight)
}

func (m *model) refreshView() {
	if !m.ready {
		return
	}
	sep := 0
	if m.proj.Mode.Grid {
		sep = 1
	}
	m.columns = layoutColumns(m.columns, m.ui.firstColumn, m.viewport.Width-m.gutterWidth(), sep)
	m.viewport.SetContent(m.renderViewport())
	m.refreshDrawerContent()
}

func (m *model) refreshProjector() {
	m.proj = display.NewProjector(m.store, m.opts.noData)
}

func (m *model) setDisplayMode(mode frames.DisplayMode) tea.Cmd {
	if mode == m.store.Mode() {
		return nil
	}
	m.store.SetDisplayMode(mode)
	// DataChanged is only sent when rows exist
	m.refreshProjector()
	if m.settings != nil {
		m.settings.SetDisplayMode(mode)
	}
	return m.notify(noticeInfo, "Showing "+mode.String())
}

// onStoreEvent keeps the row list in step with the store. Store changes are
// made from Update, so this runs on the Bubble Tea goroutine.
func (m *model) onStoreEvent(ev frames.Event) {
	logging.Debugf("store event %s [%d, %d]", ev.Kind, ev.First, ev.Last)
	switch ev.Kind {
	case frames.RowsRemoved:
		m.data.filteredIndices = m.data.filteredIndices[:0]
	case frames.LogLoaded:
		m.refreshProjector()
		m.applyFilter()
	case frames.DataChanged:
		m.refreshProjector()
	}
}

func (m *model) pageDown() {
	n := len(m.data.filteredIndices)
	step := max(m.lastVisibleRowCount, 1)
	if m.cursor+step < n {
		m.cursor += step
	} else {
		m.cursor = max(n-1, 0)
	}
}

func (m *model) pageUp() {
	m.cursor -= max(m.lastVisibleRowCount, 1)
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) checkViewPortHasData() bool {
	return len(m.data.filteredIndices) > 0 && m.cursor >= 0 && m.cursor < len(m.data.filteredIndices)
}

// currentRow is the store row under the cursor.
func (m *model) currentRow() (int, bool) {
	if !m.checkViewPortHasData() {
		return 0, false
	}
	return m.data.filteredIndices[m.cursor], true
}

func (m *model) currentFrame() (frames.Frame, bool) {
	row, ok := m.currentRow()
	if !ok {
		return frames.Frame{}, false
	}
	f, err := m.store.Resolve(row)
	if err != nil {
		logging.Warnf("resolve row %d: %v", row, err)
		return frames.Frame{}, false
	}
	return f, true
}

func keyOf(f frames.Frame) markKey {
	return markKey{Physics: f.PhysicsIndex, Command: f.CommandIndex}
}

func (m *model) rowKey(row int) (markKey, bool) {
	f, err := m.store.Resolve(row)
	if err != nil {
		return markKey{}, false
	}
	return keyOf(f), true
}

// region Filtering

func (m *model) includeRow(row int) bool {
	if !m.data.showOnlyMarked {
		return true
	}
	k, ok := m.rowKey(row)
	if !ok {
		return false
	}
	_, marked := m.data.marks[k]
	return marked
}

func (m *model) applyFilter() {
	m.data.filteredIndices = m.data.filteredIndices[:0]
	for row := range m.store.RowCount() {
		if m.includeRow(row) {
			m.data.filteredIndices = append(m.data.filteredIndices, row)
		}
	}
	m.cursor = clamp(m.cursor, 0, max(len(m.data.filteredIndices)-1, 0))
}

// endregion

// region Loading

type loadUpdateMsg struct {
	job    *frames.LoadJob
	update frames.LoadUpdate
	closed bool
}

func waitForLoad(job *frames.LoadJob) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-job.Updates()
		return loadUpdateMsg{job: job, update: u, closed: !ok}
	}
}

func (m *model) startLoad(path string) tea.Cmd {
	m.cancelLoad()
	job := frames.StartLoad(context.Background(), path)
	m.loadJob = job
	m.ui.loading = true
	m.ui.loadPath = path
	m.ui.loadFraction = 0
	logging.Infof("loading %s", path)
	return waitForLoad(job)
}

func (m *model) cancelLoad() {
	if m.loadJob != nil {
		job := m.loadJob
		job.Cancel()
		go job.Wait()
		m.loadJob = nil
	}
	m.ui.loading = false
}

func (m *model) reload() tea.Cmd {
	path := m.store.Path()
	if path == "" {
		return m.notify(noticeWarn, "No log loaded")
	}
	return m.startLoad(path)
}

func (m *model) handleLoadUpdate(msg loadUpdateMsg) tea.Cmd {
	if msg.job != m.loadJob {
		return nil
	}
	if msg.closed {
		m.loadJob = nil
		m.ui.loading = false
		return nil
	}

	u := msg.update
	switch u.Kind {
	case frames.UpdateSucceeded:
		m.ui.loading = false
		return tea.Batch(m.installLog(u), waitForLoad(msg.job))
	case frames.UpdateFailed:
		m.ui.loading = false
		res := m.store.Apply(u)
		logging.Warnf("load %s failed (%s): %v", u.Path, res, u.Err)
		if errors.Is(u.Err, context.Canceled) {
			return waitForLoad(msg.job)
		}
		if res == frames.LoadCannotOpen && m.settings != nil {
			m.settings.RemoveRecentFile(u.Path)
			m.saveSettings()
		}
		return tea.Batch(m.notifyLoadFailed(res), waitForLoad(msg.job))
	default:
		m.ui.loadFraction = u.Fraction()
		return waitForLoad(msg.job)
	}
}

// installLog hands a parsed log to the store. Reloading the same file keeps
// the cursor position, clamped to the new row count.
func (m *model) installLog(u frames.LoadUpdate) tea.Cmd {
	reload := u.Path == m.store.Path()
	if !reload {
		m.cursor = 0
		m.ui.firstColumn = 0
		m.loadMarksFor(u.Path)
	}
	m.store.Apply(u)

	if m.settings != nil {
		m.settings.AddRecentFile(u.Path)
		m.saveSettings()
	}

	cmds := []tea.Cmd{m.notifyLoaded(u.Path, reload)}
	if m.opts.follow {
		cmds = append(cmds, m.watch(u.Path))
	}
	return tea.Batch(cmds...)
}

func (m *model) saveSettings() {
	if err := m.settings.Save(); err != nil {
		logging.Warnf("save settings: %v", err)
	}
}

func (m *model) lastOpenDirectory() string {
	if m.settings == nil {
		return ""
	}
	return m.settings.LastOpenDirectory()
}

func (m *model) recentFiles() []string {
	if m.settings == nil {
		return nil
	}
	return m.settings.RecentFiles()
}

// endregion

func (m *model) copyCurrentRow() tea.Cmd {
	f, ok := m.currentFrame()
	if !ok {
		return nil
	}
	text := strings.Join(m.proj.Texts(f), "\t")
	if err := clipboard.Copy(text); err != nil {
		logging.Warnf("copy row: %v", err)
		return m.notify(noticeError, "Copy failed: "+err.Error())
	}
	return m.notify(noticeSuccess, fmt.Sprintf("Row %d copied", f.Row+1))
}

func defaultExportName(logPath string) string {
	base := filepath.Base(logPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." {
		name = "tasview"
	}
	return name + ".csv"
}
