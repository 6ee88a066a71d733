// Package export writes a loaded log to disk, either as the projected table
// in CSV form or as the raw frames in a SQLite database.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andareed/tasview/display"
	"github.com/andareed/tasview/frames"
)

// Source is the row-level view of a loaded log.
type Source interface {
	RowCount() int
	Resolve(row int) (frames.Frame, error)
}

// MarkFunc returns the mark label for a row, or "".
type MarkFunc func(row int) string

// Format is an export file format.
type Format int

const (
	FormatCSV Format = iota
	FormatSQLite
)

// FormatFor picks the format from the file extension: .db and .sqlite are
// SQLite, everything else is CSV.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// CSV writes a header of column titles followed by one line per row with the
// projected cell texts. The first column is the 1-based row number and the
// last is the mark, if mark is non-nil.
func CSV(w io.Writer, src Source, p display.Projector, mark MarkFunc) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(display.Columns())+2)
	header = append(header, "row")
	header = append(header, display.Titles()...)
	if mark != nil {
		header = append(header, "mark")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for row := range src.RowCount() {
		f, err := src.Resolve(row)
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		rec := make([]string, 0, len(header))
		rec = append(rec, strconv.Itoa(row+1))
		rec = append(rec, p.Texts(f)...)
		if mark != nil {
			rec = append(rec, mark(row))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVFile is CSV into a newly created file at path.
func CSVFile(path string, src Source, p display.Projector, mark MarkFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	if err := CSV(f, src, p, mark); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
