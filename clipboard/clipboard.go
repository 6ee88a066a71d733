// Package clipboard copies text to the system clipboard, falling back to the
// terminal's OSC52 sequence when no clipboard utility is available (e.g. over
// SSH).
package clipboard

import (
	"os"

	"github.com/atotto/clipboard"

	"github.com/andareed/tasview/logging"
)

// Copy puts text on the clipboard.
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Debugf("Clipboard: copied %d bytes", len(text))
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed: %v", err)
	}
	if !osc52Supported() {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return errNoClipboard
	}
	return copyOSC52(os.Stdout, text)
}
