package main

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/tasview/frames"
)

type noticeKind int

const (
	noticePlain noticeKind = iota
	noticeInfo
	noticeSuccess
	noticeWarn
	noticeError
)

const noticeDuration = 2 * time.Second

func (k noticeKind) icon() string {
	switch k {
	case noticeInfo:
		return "ℹ"
	case noticeSuccess:
		return "✓"
	case noticeWarn:
		return "!"
	case noticeError:
		return "×"
	default:
		return ""
	}
}

// errors stay up twice as long
func (k noticeKind) duration() time.Duration {
	if k == noticeError {
		return 2 * noticeDuration
	}
	return noticeDuration
}

// notice is the transient message in the footer status bar. seq identifies
// the latest notice so older clear timers are ignored.
type notice struct {
	text string
	kind noticeKind
	seq  int
}

func (n notice) String() string {
	if n.text == "" {
		return ""
	}
	if icon := n.kind.icon(); icon != "" {
		return icon + " " + n.text
	}
	return n.text
}

type clearNoticeMsg struct{ seq int }

func (m *model) notify(kind noticeKind, text string) tea.Cmd {
	m.ui.notice.seq++
	m.ui.notice.text = text
	m.ui.notice.kind = kind

	seq := m.ui.notice.seq
	return tea.Tick(kind.duration(), func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })
}

func (m *model) clearNotice(msg clearNoticeMsg) {
	if msg.seq == m.ui.notice.seq {
		m.ui.notice.text = ""
		m.ui.notice.kind = noticePlain
	}
}

func (m *model) notifyLoaded(path string, reload bool) tea.Cmd {
	verb := "Loaded"
	if reload {
		verb = "Reloaded"
	}
	return m.notify(noticeSuccess, fmt.Sprintf("%s %s (%d rows)", verb, filepath.Base(path), m.store.RowCount()))
}

func (m *model) notifyLoadFailed(res frames.LoadResult) tea.Cmd {
	return m.notify(noticeError, res.Message())
}

// statusLine is the footer status text: the current notice, else the
// progress of a running load.
func (m *model) statusLine() string {
	if s := m.ui.notice.String(); s != "" {
		return s
	}
	if m.ui.loading {
		return fmt.Sprintf("Loading %s… %d%%", filepath.Base(m.ui.loadPath), int(m.ui.loadFraction*100))
	}
	return ""
}
