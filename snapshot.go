package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// --- Wire format ---

const marksVersion = 1

// marksDTO is the sidecar file next to a log. Keys are "physics:command".
type marksDTO struct {
	Version int               `json:"version"`
	Log     string            `json:"log,omitempty"`
	Marked  map[string]string `json:"marked"`
}

// marksPathFor is the sidecar path for a log.
func marksPathFor(logPath string) string {
	return logPath + ".marks.json"
}

// --- Conversions ---

func (k markKey) String() string {
	return strconv.Itoa(k.Physics) + ":" + strconv.Itoa(k.Command)
}

func parseMarkKey(s string) (markKey, error) {
	ps, cs, ok := strings.Cut(s, ":")
	if !ok {
		return markKey{}, fmt.Errorf("invalid mark key %q", s)
	}
	phy, err := strconv.Atoi(ps)
	if err != nil || phy < 0 {
		return markKey{}, fmt.Errorf("invalid physics index in mark key %q", s)
	}
	cmd, err := strconv.Atoi(cs)
	if err != nil || cmd < -1 {
		return markKey{}, fmt.Errorf("invalid command index in mark key %q", s)
	}
	return markKey{Physics: phy, Command: cmd}, nil
}

// Accept only known values; anything else becomes MarkNone.
func sanitizeMarkColor(s string) MarkColor {
	switch MarkColor(s) {
	case MarkNone, MarkRed, MarkGreen, MarkAmber:
		return MarkColor(s)
	default:
		return MarkNone
	}
}

// --- Public API ---

// SaveMarks writes marks to path. An empty set removes the file.
func SaveMarks(path, logPath string, marks map[markKey]MarkColor) error {
	if len(marks) == 0 {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	dto := marksDTO{
		Version: marksVersion,
		Log:     logPath,
		Marked:  make(map[string]string, len(marks)),
	}
	for k, v := range marks {
		dto.Marked[k.String()] = string(v)
	}
	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadMarks reads marks from path. A missing file yields no marks.
func LoadMarks(path string) (map[markKey]MarkColor, error) {
	out := make(map[markKey]MarkColor)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return out, err
	}
	var dto marksDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return out, err
	}
	if dto.Version != marksVersion {
		return out, fmt.Errorf("marks version %d not supported (want %d)", dto.Version, marksVersion)
	}
	for ks, vs := range dto.Marked {
		k, err := parseMarkKey(ks)
		if err != nil {
			return make(map[markKey]MarkColor), err
		}
		if c := sanitizeMarkColor(vs); c != MarkNone {
			out[k] = c
		}
	}
	return out, nil
}
