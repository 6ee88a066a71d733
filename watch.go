package main

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/andareed/tasview/logging"
)

const watchSettle = 100 * time.Millisecond

// fileChangedMsg is sent when the followed log is written or replaced.
type fileChangedMsg struct {
	w    *fileWatcher
	path string
}

// fileWatcher follows one file. The parent directory is watched so that
// editors and tools that replace the file by rename are still seen.
type fileWatcher struct {
	w    *fsnotify.Watcher
	path string
}

func newFileWatcher(path string) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}
	return &fileWatcher{w: w, path: abs}, nil
}

// wait returns a command that blocks until the file changes.
func (fw *fileWatcher) wait() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-fw.w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != fw.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					// let writes settle, then fold the burst into one reload
					time.Sleep(watchSettle)
					fw.drain()
					return fileChangedMsg{w: fw, path: fw.path}
				}
			case err, ok := <-fw.w.Errors:
				if !ok {
					return nil
				}
				logging.Warnf("watch %s: %v", fw.path, err)
			}
		}
	}
}

func (fw *fileWatcher) drain() {
	for {
		select {
		case _, ok := <-fw.w.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (fw *fileWatcher) Close() error {
	return fw.w.Close()
}

// watch follows path, replacing any watcher on another file.
func (m *model) watch(path string) tea.Cmd {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if m.watcher != nil {
		if m.watcher.path == abs {
			return nil
		}
		m.watcher.Close()
		m.watcher = nil
	}
	fw, err := newFileWatcher(path)
	if err != nil {
		logging.Warnf("follow %s: %v", path, err)
		return m.notify(noticeWarn, "Cannot follow file: "+err.Error())
	}
	logging.Infof("following %s", fw.path)
	m.watcher = fw
	return fw.wait()
}

func (m *model) handleFileChanged(msg fileChangedMsg) tea.Cmd {
	if msg.w != m.watcher {
		return nil
	}
	logging.Debugf("file changed: %s", msg.path)
	if m.store.Path() == "" {
		return m.watcher.wait()
	}
	return tea.Batch(m.startLoad(m.store.Path()), m.watcher.wait())
}
