package frames

import (
	"context"
	"errors"
	"math"
	"os"
	"sync"
	"time"

	"github.com/andareed/tasview/logging"
	"github.com/andareed/tasview/taslog"
)

// LoadResult is the outcome of opening a log.
type LoadResult int

const (
	LoadSucceeded LoadResult = iota
	LoadCannotOpen
	LoadInvalidContent
)

func (r LoadResult) String() string {
	switch r {
	case LoadSucceeded:
		return "succeeded"
	case LoadCannotOpen:
		return "cannot open"
	case LoadInvalidContent:
		return "invalid content"
	default:
		return "unknown"
	}
}

// Message is the user-facing text for a failed load.
func (r LoadResult) Message() string {
	switch r {
	case LoadCannotOpen:
		return "Unable to open the requested file."
	case LoadInvalidContent:
		return "The format of the log file is invalid."
	default:
		return ""
	}
}

// ResultOf classifies a parse error. Errors other than invalid content,
// including cancellation, count as LoadCannotOpen.
func ResultOf(err error) LoadResult {
	switch {
	case err == nil:
		return LoadSucceeded
	case errors.Is(err, taslog.ErrInvalidContent):
		return LoadInvalidContent
	default:
		return LoadCannotOpen
	}
}

// EventKind identifies a Store notification.
type EventKind int

const (
	// RowsRemoved is sent before the rows of the previous log go away.
	RowsRemoved EventKind = iota
	// RowsInserted is sent after the rows of a new log become addressable.
	RowsInserted
	// DataChanged means every row must be re-rendered, e.g. after a display mode change.
	DataChanged
	// LogLoaded is sent once a new log is in place.
	LogLoaded
)

func (k EventKind) String() string {
	switch k {
	case RowsRemoved:
		return "rows-removed"
	case RowsInserted:
		return "rows-inserted"
	case DataChanged:
		return "data-changed"
	case LogLoaded:
		return "log-loaded"
	default:
		return "unknown"
	}
}

// Event describes a change to the Store. First and Last are inclusive row
// bounds for RowsRemoved and RowsInserted, and span the whole table for
// DataChanged.
type Event struct {
	Kind  EventKind
	First int
	Last  int
}

// Info summarises the loaded log.
type Info struct {
	Loaded        bool
	Path          string
	Size          int64
	ToolVersion   string
	BuildNumber   int
	GameMod       string
	PhysicsFrames int
	CommandFrames int
	Rows          int
	TotalTime     time.Duration
}

// Store owns the current log, its row index and the display mode. Reads are
// safe from several goroutines; Subscribe callbacks run on the goroutine
// that made the change.
type Store struct {
	mu     sync.RWMutex
	path   string
	size   int64
	log    *taslog.Log
	idx    *Index
	mode   DisplayMode
	common *CommonValues

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(Event)
}

// NewStore returns an empty store using mode.
func NewStore(mode DisplayMode) *Store {
	return &Store{
		idx:    BuildIndex(nil),
		mode:   mode,
		common: NewCommonValues(),
		subs:   make(map[int]func(Event)),
	}
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(ev Event) {
	s.subMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// Load parses path and replaces the current log with it. On failure the
// current log is kept and the error is returned alongside the result.
func (s *Store) Load(ctx context.Context, path string) (LoadResult, error) {
	log, err := taslog.ParseFile(ctx, path, nil)
	if err != nil {
		res := ResultOf(err)
		logging.Warnf("load %s: %s: %v", path, res, err)
		return res, err
	}
	var size int64
	if st, err := os.Stat(path); err == nil {
		size = st.Size()
	}
	s.SetLog(path, log, size)
	return LoadSucceeded, nil
}

// Reload parses the current path again. With no log loaded it reports
// LoadCannotOpen.
func (s *Store) Reload(ctx context.Context) (LoadResult, error) {
	path := s.Path()
	if path == "" {
		return LoadCannotOpen, taslog.ErrCannotOpen
	}
	return s.Load(ctx, path)
}

// Apply installs the log carried by a succeeded load update. A failed update
// leaves the current log in place and returns its classification.
func (s *Store) Apply(u LoadUpdate) LoadResult {
	switch u.Kind {
	case UpdateSucceeded:
		s.SetLog(u.Path, u.Log, u.Total)
		return LoadSucceeded
	case UpdateFailed:
		return ResultOf(u.Err)
	default:
		return LoadCannotOpen
	}
}

// SetLog replaces the log wholesale and rebuilds the row index.
func (s *Store) SetLog(path string, log *taslog.Log, size int64) {
	s.mu.RLock()
	old := s.idx.Len()
	s.mu.RUnlock()
	if old > 0 {
		s.notify(Event{Kind: RowsRemoved, First: 0, Last: old - 1})
	}

	var pfs []taslog.PhysicsFrame
	if log != nil {
		pfs = log.PhysicsFrames
	}
	idx := BuildIndex(pfs)

	s.mu.Lock()
	s.path = path
	s.size = size
	s.log = log
	s.idx = idx
	s.common.Invalidate()
	if s.mode.HideCommon {
		s.common.Recompute(s.log)
	}
	s.mu.Unlock()

	logging.Debugf("rebuilt row index for %s: %d physics frames, %d rows", path, len(pfs), idx.Len())
	if n := idx.Len(); n > 0 {
		s.notify(Event{Kind: RowsInserted, First: 0, Last: n - 1})
	}
	s.notify(Event{Kind: LogLoaded, First: 0, Last: idx.Len() - 1})
}

// Clear drops the current log.
func (s *Store) Clear() {
	s.SetLog("", nil, 0)
}

// Path returns the path of the loaded log, or "".
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Log returns the loaded log, or nil. Callers must not modify it.
func (s *Store) Log() *taslog.Log {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.log
}

// Index returns the current row index.
func (s *Store) Index() *Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx
}

// RowCount returns the number of rows.
func (s *Store) RowCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.Len()
}

// Resolve returns the data behind row under the current display mode.
func (s *Store) Resolve(row int) (Frame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Resolve(s.log, s.idx, row, s.mode.PrePM)
}

// RowOfPhysicsFrame returns the first row of physics frame phy.
func (s *Store) RowOfPhysicsFrame(phy int) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.RowOfPhysicsFrame(phy)
}

// Mode returns the current display mode.
func (s *Store) Mode() DisplayMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetDisplayMode installs mode and asks subscribers to re-render every row.
// Turning HideCommon on with stale common values recomputes them first.
func (s *Store) SetDisplayMode(mode DisplayMode) {
	s.mu.Lock()
	if mode == s.mode {
		s.mu.Unlock()
		return
	}
	if mode.HideCommon && s.common.Outdated() {
		s.common.Recompute(s.log)
	}
	s.mode = mode
	n := s.idx.Len()
	s.mu.Unlock()

	if n > 0 {
		s.notify(Event{Kind: DataChanged, First: 0, Last: n - 1})
	}
}

// MostCommonFrameTime returns the most frequent physics frame time.
func (s *Store) MostCommonFrameTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ft, _ := s.common.Get(s.log)
	return ft
}

// MostCommonCommandDuration returns the most frequent command frame msec.
func (s *Store) MostCommonCommandDuration() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ms := s.common.Get(s.log)
	return ms
}

// Info summarises the loaded log. The zero Info is returned when nothing is loaded.
func (s *Store) Info() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.log == nil {
		return Info{}
	}
	return Info{
		Loaded:        true,
		Path:          s.path,
		Size:          s.size,
		ToolVersion:   s.log.ToolVersion,
		BuildNumber:   s.log.BuildNumber,
		GameMod:       s.log.GameMod,
		PhysicsFrames: len(s.log.PhysicsFrames),
		CommandFrames: s.log.CommandFrameCount(),
		Rows:          s.idx.Len(),
		TotalTime:     TotalTime(s.log),
	}
}

// TotalTime sums every physics frame time.
func TotalTime(log *taslog.Log) time.Duration {
	if log == nil {
		return 0
	}
	var sec float64
	for i := range log.PhysicsFrames {
		sec += log.PhysicsFrames[i].FrameTime
	}
	return time.Duration(math.Round(sec * float64(time.Second)))
}
