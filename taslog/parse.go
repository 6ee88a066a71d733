package taslog

import (
	"bufio"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

var (
	// ErrCannotOpen means the file could not be opened or read.
	ErrCannotOpen = errors.New("cannot open log file")
	// ErrInvalidContent means the bytes were readable but are not a valid log.
	ErrInvalidContent = errors.New("invalid log content")
)

// ProgressFunc receives the number of bytes consumed so far and the total
// size of the input, or -1 when the size is unknown.
type ProgressFunc func(read, total int64)

// ParseFile opens path and decodes it. Gzip-compressed files are detected by
// their magic bytes. Errors wrap ErrCannotOpen or ErrInvalidContent, or are
// the context error if ctx is cancelled mid-read.
func ParseFile(ctx context.Context, path string, progress ProgressFunc) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCannotOpen, err)
	}
	defer f.Close()

	total := int64(-1)
	if st, err := f.Stat(); err == nil {
		if st.IsDir() {
			return nil, fmt.Errorf("%w: %s is a directory", ErrCannotOpen, path)
		}
		total = st.Size()
	}

	cr := &countingReader{ctx: ctx, r: f, total: total, progress: progress}
	return parse(cr, cr.Err)
}

// Parse decodes a log from r.
func Parse(r io.Reader) (*Log, error) {
	return parse(r, nil)
}

// parse decodes a log. readErr, if set, reports the first error of the
// underlying reader; the decoder does not always pass it through.
func parse(r io.Reader, readErr func() error) (*Log, error) {
	br := bufio.NewReader(r)
	src := io.Reader(br)

	magic, err := br.Peek(2)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, readError(err)
	}
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			if readErr != nil && readErr() != nil {
				return nil, readError(readErr())
			}
			return nil, fmt.Errorf("%w: gzip header: %w", ErrInvalidContent, err)
		}
		defer zr.Close()
		src = zr
	}

	var raw struct {
		ToolVersion   string          `json:"tool_ver"`
		BuildNumber   int             `json:"build"`
		GameMod       string          `json:"mod"`
		PhysicsFrames *[]PhysicsFrame `json:"pf"`
	}
	dec := json.NewDecoder(src)
	if err := dec.Decode(&raw); err != nil {
		if re := unwrapRead(err); re != nil {
			return nil, readError(re)
		}
		if readErr != nil {
			if re := readErr(); re != nil {
				return nil, readError(re)
			}
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	if raw.PhysicsFrames == nil {
		return nil, fmt.Errorf("%w: missing physics frame list", ErrInvalidContent)
	}

	log := Log{
		ToolVersion:   raw.ToolVersion,
		BuildNumber:   raw.BuildNumber,
		GameMod:       raw.GameMod,
		PhysicsFrames: *raw.PhysicsFrames,
	}
	if err := validate(&log); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	return &log, nil
}

func validate(l *Log) error {
	for i := range l.PhysicsFrames {
		pf := &l.PhysicsFrames[i]
		for j := range pf.CommandFrames {
			cf := &pf.CommandFrames[j]
			if cf.Msec < 0 {
				return fmt.Errorf("physics frame %d command frame %d: negative msec %d", i, j, cf.Msec)
			}
			for _, st := range []*PlayerState{&cf.PrePM, &cf.PostPM} {
				if st.DuckState < Unducked || st.DuckState > Ducked {
					return fmt.Errorf("physics frame %d command frame %d: duck state %d out of range", i, j, st.DuckState)
				}
			}
		}
	}
	return nil
}

// readFailure marks errors that came from the underlying reader rather than
// from decoding, so they can be reported as ErrCannotOpen.
type readFailure struct{ err error }

func (e *readFailure) Error() string { return e.err.Error() }
func (e *readFailure) Unwrap() error { return e.err }

func readError(err error) error {
	if re := unwrapRead(err); re != nil {
		err = re
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCannotOpen, err)
}

func unwrapRead(err error) error {
	var rf *readFailure
	if errors.As(err, &rf) {
		return rf.err
	}
	return nil
}

type countingReader struct {
	ctx      context.Context
	r        io.Reader
	read     int64
	total    int64
	progress ProgressFunc
	err      error // first read failure
}

// Err returns the first error the reader failed with, other than io.EOF.
func (c *countingReader) Err() error {
	return c.err
}

func (c *countingReader) fail(err error) error {
	if c.err == nil {
		c.err = err
	}
	return &readFailure{err: err}
}

func (c *countingReader) Read(p []byte) (int, error) {
	if c.ctx != nil {
		if err := c.ctx.Err(); err != nil {
			return 0, c.fail(err)
		}
	}
	n, err := c.r.Read(p)
	c.read += int64(n)
	if c.progress != nil && n > 0 {
		c.progress(c.read, c.total)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return n, c.fail(err)
	}
	return n, err
}
