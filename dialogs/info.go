package dialogs

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"github.com/andareed/tasview/frames"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// InfoLine is one labelled row of the file info.
type InfoLine struct {
	Label string
	Value string
}

// InfoLines formats the log summary. Every value is empty when nothing is loaded.
func InfoLines(info frames.Info) []InfoLine {
	if !info.Loaded {
		return []InfoLine{
			{"File", ""},
			{"Size", ""},
			{"Tool version", ""},
			{"Build number", ""},
			{"Game mod", ""},
			{"Physics frames", ""},
			{"Command frames", ""},
			{"Rows", ""},
			{"Total time", ""},
		}
	}
	return []InfoLine{
		{"File", info.Path},
		{"Size", humanize.Bytes(uint64(max(info.Size, 0)))},
		{"Tool version", info.ToolVersion},
		{"Build number", strconv.Itoa(info.BuildNumber)},
		{"Game mod", info.GameMod},
		{"Physics frames", humanize.Comma(int64(info.PhysicsFrames))},
		{"Command frames", humanize.Comma(int64(info.CommandFrames))},
		{"Rows", humanize.Comma(int64(info.Rows))},
		{"Total time", FormatDuration(info)},
	}
}

// FormatDuration renders the total logged time, e.g. "1 m 4 s".
func FormatDuration(info frames.Info) string {
	if info.TotalTime <= 0 {
		return "0 s"
	}
	return durafmt.Parse(info.TotalTime).LimitFirstN(2).Format(shortUnits)
}

// FormatInfo renders the lines as aligned "label: value" text.
func FormatInfo(info frames.Info) string {
	var b strings.Builder
	for _, l := range InfoLines(info) {
		fmt.Fprintf(&b, "%-16s %s\n", l.Label+":", l.Value)
	}
	return b.String()
}

// Info shows the log summary until dismissed.
type Info struct {
	visible bool
	info    frames.Info
}

func NewInfoDialog(info frames.Info) *Info {
	return &Info{visible: true, info: info}
}

func (d Info) Init() tea.Cmd { return nil }

func (d *Info) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "i", "q":
			d.visible = false
		}
	}
	return d, nil
}

func (d Info) View() string {
	if !d.visible {
		return ""
	}
	hint := hintStyle().Render("enter/esc to return")
	return boxStyle().Render(strings.TrimRight(FormatInfo(d.info), "\n") + "\n\n" + hint)
}

func (d *Info) Show() { d.visible = true }
func (d *Info) Hide() { d.visible = false }

func (d *Info) Focus() tea.Cmd { return nil }
func (d *Info) Blur()          {}
func (d Info) IsVisible() bool { return d.visible }
