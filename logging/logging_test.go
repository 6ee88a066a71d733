package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"chatty", zerolog.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Cleanup(func() { SetLogger(zerolog.Nop()) })

	var buf bytes.Buffer
	SetLogger(New(&buf, zerolog.InfoLevel))
	assert.False(t, IsDebugMode())

	Debugf("hidden %d", 1)
	Infof("shown %d", 2)
	Warnf("careful")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "careful")

	SetLogger(New(&buf, zerolog.DebugLevel))
	assert.True(t, IsDebugMode())
}

func TestSetupLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasview.log")

	cleanup, err := SetupLogging(path, "debug")
	require.NoError(t, err)
	assert.True(t, IsDebugMode())
	Errorf("load failed: %s", "boom")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "load failed: boom")
	assert.False(t, IsDebugMode())
}

func TestSetupLoggingDisabled(t *testing.T) {
	cleanup, err := SetupLogging("", "")
	require.NoError(t, err)
	defer cleanup()
	assert.False(t, IsDebugMode())
}

func TestSetupLoggingBadLevel(t *testing.T) {
	_, err := SetupLogging(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}
