// Package settings persists viewer preferences between runs: recently
// opened files, the last directory browsed and the default display mode.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"

	"github.com/andareed/tasview/frames"
)

// MaxRecentFiles is the length of the recent files list.
const MaxRecentFiles = 10

const (
	configName = "tasview"
	fileName   = configName + ".json"
)

const (
	keyLastOpenDirectory = "lastOpenDirectory"
	keyRecentFiles       = "recentFiles"
	keyPrePM             = "display.prePM"
	keyAnglemod          = "display.anglemod"
	keyHideCommon        = "display.hideCommon"
	keyFSUValues         = "display.fsuValues"
	keyGrid              = "display.grid"
	keyNoDataMarker      = "display.noDataMarker"
)

// Settings is a settings file backed by its own viper instance.
type Settings struct {
	v   *viper.Viper
	dir string
}

// DefaultDir is the per-user config directory for tasview.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "tasview"), nil
}

// Load reads tasview.json from dir. A missing file is not an error; every
// key then has its default.
func Load(dir string) (*Settings, error) {
	v := viper.New()
	v.SetDefault(keyLastOpenDirectory, "")
	v.SetDefault(keyRecentFiles, []string{})
	v.SetDefault(keyPrePM, false)
	v.SetDefault(keyAnglemod, false)
	v.SetDefault(keyHideCommon, false)
	v.SetDefault(keyFSUValues, false)
	v.SetDefault(keyGrid, false)
	v.SetDefault(keyNoDataMarker, "")

	v.SetConfigName(configName)
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}
	return &Settings{v: v, dir: dir}, nil
}

// Path is the settings file location.
func (s *Settings) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Save writes the settings file, creating its directory if needed.
func (s *Settings) Save() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := s.v.WriteConfigAs(s.Path()); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// RecentFiles returns the most recently opened files, newest first.
func (s *Settings) RecentFiles() []string {
	files := s.v.GetStringSlice(keyRecentFiles)
	if len(files) > MaxRecentFiles {
		files = files[:MaxRecentFiles]
	}
	return files
}

// AddRecentFile moves path to the front of the recent list, dropping the
// oldest entries beyond MaxRecentFiles. It also records the file's directory
// as the last open directory.
func (s *Settings) AddRecentFile(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	files := slices.DeleteFunc(s.RecentFiles(), func(f string) bool { return f == path })
	files = append([]string{path}, files...)
	if len(files) > MaxRecentFiles {
		files = files[:MaxRecentFiles]
	}
	s.v.Set(keyRecentFiles, files)
	s.v.Set(keyLastOpenDirectory, filepath.Dir(path))
}

// RemoveRecentFile drops path from the recent list, e.g. after it failed to open.
func (s *Settings) RemoveRecentFile(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	files := slices.DeleteFunc(s.RecentFiles(), func(f string) bool { return f == path })
	s.v.Set(keyRecentFiles, files)
}

// LastOpenDirectory is the directory of the last opened file, or "".
func (s *Settings) LastOpenDirectory() string {
	return s.v.GetString(keyLastOpenDirectory)
}

// DisplayMode is the persisted default display mode.
func (s *Settings) DisplayMode() frames.DisplayMode {
	return frames.DisplayMode{
		PrePM:      s.v.GetBool(keyPrePM),
		Anglemod:   s.v.GetBool(keyAnglemod),
		HideCommon: s.v.GetBool(keyHideCommon),
		FSUValues:  s.v.GetBool(keyFSUValues),
		Grid:       s.v.GetBool(keyGrid),
	}
}

// SetDisplayMode stores m as the default display mode.
func (s *Settings) SetDisplayMode(m frames.DisplayMode) {
	s.v.Set(keyPrePM, m.PrePM)
	s.v.Set(keyAnglemod, m.Anglemod)
	s.v.Set(keyHideCommon, m.HideCommon)
	s.v.Set(keyFSUValues, m.FSUValues)
	s.v.Set(keyGrid, m.Grid)
}

// NoDataMarker fills cells of rows that have no command frame.
func (s *Settings) NoDataMarker() string {
	return s.v.GetString(keyNoDataMarker)
}
