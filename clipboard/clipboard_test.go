package clipboard

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyOSC52(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("TMUX", "")

	var buf bytes.Buffer
	require.NoError(t, copyOSC52(&buf, "pf 12"))

	out := buf.String()
	assert.Contains(t, out, "\x1b]52;c;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("pf 12")))
}

func TestOSC52SupportedDumbTerm(t *testing.T) {
	t.Setenv("TERM", "dumb")
	assert.False(t, osc52Supported())

	t.Setenv("TERM", "")
	assert.False(t, osc52Supported())
}
