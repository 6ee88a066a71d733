package dialogs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/andareed/tasview/logging"
)

// --- Messages ---------------------------------------------------------------

type (
	OpenRequestedMsg struct{}
	OpenConfirmedMsg struct{ Path string }
	OpenCanceledMsg  struct{}
)

// Open asks for a log path. Recent files are listed below the input and can
// be picked with up/down.
type Open struct {
	input    textinput.Model
	visible  bool
	lastDir  string
	recent   []string
	selected int // index into recent, -1 while typing
}

func (d Open) Init() tea.Cmd { return d.input.Focus() }

func NewOpenDialog(lastDir string, recent []string) *Open {
	ti := textinput.New()
	ti.Placeholder = "path/to/log.json"
	ti.Prompt = "Open log: "
	ti.CharLimit = 512
	ti.Width = 50
	if lastDir != "" {
		ti.SetValue(lastDir + string(filepath.Separator))
		ti.CursorEnd()
	}
	return &Open{input: ti, visible: true, lastDir: lastDir, recent: recent, selected: -1}
}

func (d *Open) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			val := strings.TrimSpace(d.input.Value())
			if val == "" || strings.HasSuffix(val, string(filepath.Separator)) {
				return d, nil
			}
			path := resolvePath(val, d.lastDir)
			logging.Debugf("OpenDialog:Update:: open confirmed for %s", path)
			return d, func() tea.Msg { return OpenConfirmedMsg{Path: path} }
		case "esc":
			return d, func() tea.Msg { return OpenCanceledMsg{} }
		case "up":
			d.pick(d.selected - 1)
			return d, nil
		case "down":
			d.pick(d.selected + 1)
			return d, nil
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *Open) pick(i int) {
	if len(d.recent) == 0 {
		return
	}
	i = max(0, min(i, len(d.recent)-1))
	d.selected = i
	d.input.SetValue(d.recent[i])
	d.input.CursorEnd()
}

// Selected is the highlighted recent file, or "".
func (d Open) Selected() string {
	if d.selected < 0 || d.selected >= len(d.recent) {
		return ""
	}
	return d.recent[d.selected]
}

func (d Open) View() string {
	if !d.visible {
		return ""
	}
	var b strings.Builder
	b.WriteString(d.input.View())
	if len(d.recent) > 0 {
		b.WriteString("\n\nRecent files:\n")
		sel := lipgloss.NewStyle().Reverse(true)
		for i, f := range d.recent {
			line := fmt.Sprintf("%2d  %s", i+1, truncate.StringWithTail(f, 50, "…"))
			if i == d.selected {
				line = sel.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}
	help := hintStyle().Render("↑/↓ recent • enter to open • esc to cancel")
	return boxStyle().Render(b.String() + "\n" + help)
}

func (d *Open) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Open) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Open) Focus() tea.Cmd { return d.input.Focus() }
func (d *Open) Blur()          { d.input.Blur() }
func (d Open) IsVisible() bool { return d.visible }
