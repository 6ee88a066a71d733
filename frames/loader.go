package frames

import (
	"context"
	"sync"
	"time"

	"github.com/andareed/tasview/taslog"
)

// UpdateKind is the stage a LoadJob reports.
type UpdateKind int

const (
	UpdateStarted UpdateKind = iota
	UpdateProgress
	UpdateSucceeded
	UpdateFailed
)

func (k UpdateKind) String() string {
	switch k {
	case UpdateStarted:
		return "started"
	case UpdateProgress:
		return "progress"
	case UpdateSucceeded:
		return "succeeded"
	case UpdateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoadUpdate is one report from a LoadJob. Read and Total are byte counts;
// Total is -1 when the size is unknown. Log is set on UpdateSucceeded and Err
// on UpdateFailed.
type LoadUpdate struct {
	Kind  UpdateKind
	Path  string
	Read  int64
	Total int64
	Log   *taslog.Log
	Err   error
}

// Fraction returns Read/Total in [0, 1], or 0 when the total is unknown.
func (u LoadUpdate) Fraction() float64 {
	if u.Total <= 0 {
		return 0
	}
	f := float64(u.Read) / float64(u.Total)
	return min(max(f, 0), 1)
}

// progressInterval limits how often progress updates are sent.
const progressInterval = 50 * time.Millisecond

// LoadJob parses a log in the background.
type LoadJob struct {
	path    string
	cancel  context.CancelFunc
	updates chan LoadUpdate
	once    sync.Once
}

// StartLoad begins parsing path. The job reports UpdateStarted, zero or more
// UpdateProgress, then exactly one of UpdateSucceeded or UpdateFailed, after
// which Updates is closed. Progress updates are dropped when the reader
// falls behind; the final update is always delivered.
func StartLoad(ctx context.Context, path string) *LoadJob {
	ctx, cancel := context.WithCancel(ctx)
	j := &LoadJob{
		path:    path,
		cancel:  cancel,
		updates: make(chan LoadUpdate, 8),
	}
	go j.run(ctx)
	return j
}

// Path returns the file being loaded.
func (j *LoadJob) Path() string { return j.path }

// Updates returns the report channel.
func (j *LoadJob) Updates() <-chan LoadUpdate { return j.updates }

// Cancel stops the job. The final update is UpdateFailed with the context error.
func (j *LoadJob) Cancel() {
	j.once.Do(j.cancel)
}

func (j *LoadJob) run(ctx context.Context) {
	defer close(j.updates)
	defer j.Cancel()

	j.updates <- LoadUpdate{Kind: UpdateStarted, Path: j.path, Total: -1}

	var last time.Time
	var total int64 = -1
	log, err := taslog.ParseFile(ctx, j.path, func(read, size int64) {
		total = size
		if now := time.Now(); now.Sub(last) >= progressInterval {
			last = now
			select {
			case j.updates <- LoadUpdate{Kind: UpdateProgress, Path: j.path, Read: read, Total: size}:
			default:
			}
		}
	})
	if err != nil {
		j.updates <- LoadUpdate{Kind: UpdateFailed, Path: j.path, Total: total, Err: err}
		return
	}
	j.updates <- LoadUpdate{Kind: UpdateSucceeded, Path: j.path, Read: total, Total: total, Log: log}
}

// Wait drains the job and returns its final update.
func (j *LoadJob) Wait() LoadUpdate {
	var final LoadUpdate
	for u := range j.updates {
		final = u
	}
	return final
}
