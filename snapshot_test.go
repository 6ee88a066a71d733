package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarksRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json.marks.json")
	marks := map[markKey]MarkColor{
		{Physics: 0, Command: 1}:  MarkRed,
		{Physics: 4, Command: -1}: MarkAmber,
	}
	require.NoError(t, SaveMarks(path, "run.json", marks))

	got, err := LoadMarks(path)
	require.NoError(t, err)
	assert.Equal(t, marks, got)

	require.NoError(t, SaveMarks(path, "run.json", nil))
	assert.NoFileExists(t, path)
	// removing twice is fine
	require.NoError(t, SaveMarks(path, "run.json", nil))
}

func TestLoadMarksMissingFile(t *testing.T) {
	got, err := LoadMarks(filepath.Join(t.TempDir(), "none.marks.json"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadMarksInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{"},
		{"wrong version", `{"version": 2, "marked": {}}`},
		{"bad key", `{"version": 1, "marked": {"x:1": "red"}}`},
		{"negative physics", `{"version": 1, "marked": {"-1:0": "red"}}`},
		{"command below -1", `{"version": 1, "marked": {"0:-2": "red"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "m.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))
			got, err := LoadMarks(path)
			assert.Error(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestLoadMarksDropsUnknownColours(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.json")
	data := `{"version": 1, "marked": {"0:0": "green", "1:0": "purple"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	got, err := LoadMarks(path)
	require.NoError(t, err)
	assert.Equal(t, map[markKey]MarkColor{{Physics: 0, Command: 0}: MarkGreen}, got)
}

func TestMarksPathFor(t *testing.T) {
	assert.Equal(t, "/logs/run.json.marks.json", marksPathFor("/logs/run.json"))
}
