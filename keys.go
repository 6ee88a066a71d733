package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit          key.Binding
	MarkMode      key.Binding
	ShowMarksOnly key.Binding
	NextMark      key.Binding
	PrevMark      key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	RowDown       key.Binding
	RowUp         key.Binding
	JumpStart     key.Binding
	JumpEnd       key.Binding
	OpenHelp      key.Binding
	ScrollLeft    key.Binding
	ScrollRight   key.Binding
	OpenFile      key.Binding
	Reload        key.Binding
	FileInfo      key.Binding
	ExportToFile  key.Binding
	CopyRow       key.Binding
	PrePM         key.Binding
	PostPM        key.Binding
	Anglemod      key.Binding
	HideCommon    key.Binding
	FSUValues     key.Binding
	Grid          key.Binding
	Inspector     key.Binding
	Plot          key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	DrawerUp      key.Binding
	DrawerDown    key.Binding
	JumpRow       key.Binding
	JumpPhysics   key.Binding
	Search        key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	MarkMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mark mode"),
	),
	ShowMarksOnly: key.NewBinding(
		key.WithKeys("M"),
		key.WithHelp("M", "toggle show only marked"),
	),
	NextMark: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next mark"),
	),
	PrevMark: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "previous mark"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	JumpStart: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g/home", "jump to start"),
	),
	JumpEnd: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G/end", "jump to end"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "scroll columns left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "scroll columns right"),
	),
	OpenFile: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open log"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload log"),
	),
	FileInfo: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "log file info"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export to CSV / SQLite"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "copy row to clipboard"),
	),
	PrePM: key.NewBinding(
		key.WithKeys("{"),
		key.WithHelp("{", "show pre player-move state"),
	),
	PostPM: key.NewBinding(
		key.WithKeys("}"),
		key.WithHelp("}", "show post player-move state"),
	),
	Anglemod: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "toggle anglemod units"),
	),
	HideCommon: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "toggle hide most frequent frame times"),
	),
	FSUValues: key.NewBinding(
		key.WithKeys("V"),
		key.WithHelp("V", "toggle FSU values"),
	),
	Grid: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "toggle grid"),
	),
	Inspector: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "frame inspector"),
	),
	Plot: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "player plot"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next inspector tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous inspector tab"),
	),
	DrawerUp: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "scroll drawer up"),
	),
	DrawerDown: key.NewBinding(
		key.WithKeys("J"),
		key.WithHelp("J", "scroll drawer down"),
	),
	JumpRow: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":N", "jump to row N"),
	),
	JumpPhysics: key.NewBinding(
		key.WithKeys("@"),
		key.WithHelp("@N", "jump to physics frame N"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/text", "search console prints"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.OpenFile,
		k.Reload,
		k.FileInfo,
		k.ExportToFile,
		k.RowUp,
		k.RowDown,
		k.PageUp,
		k.PageDown,
		k.JumpStart,
		k.JumpEnd,
		k.JumpRow,
		k.JumpPhysics,
		k.Search,
		k.ScrollLeft,
		k.ScrollRight,
		k.MarkMode,
		k.ShowMarksOnly,
		k.NextMark,
		k.PrevMark,
		k.PrePM,
		k.PostPM,
		k.Anglemod,
		k.HideCommon,
		k.FSUValues,
		k.Grid,
		k.Inspector,
		k.Plot,
		k.NextTab,
		k.CopyRow,
	}
}
