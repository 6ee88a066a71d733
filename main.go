package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/tasview/dialogs"
	"github.com/andareed/tasview/display"
	"github.com/andareed/tasview/frames"
	"github.com/andareed/tasview/logging"
	"github.com/andareed/tasview/settings"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Debug     string `help:"Write debug logs to file" placeholder:"FILE"`
	LogLevel  string `default:"debug" enum:"debug,info,warn,error" help:"Log level for --debug"`
	ConfigDir string `help:"Settings directory (default: user config dir)" type:"path"`
}

// CLI defines the command-line interface.
type CLI struct {
	Globals `embed:""`

	View    ViewCmd    `cmd:"" default:"withargs" help:"Browse a TAS log (default)"`
	Info    InfoCmd    `cmd:"" help:"Print a summary of a TAS log"`
	Export  ExportCmd  `cmd:"" help:"Export a TAS log as CSV or SQLite"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// DisplayFlags turn display options on over the saved defaults.
type DisplayFlags struct {
	PrePM      bool `name:"pre-pm" help:"Show player state before movement physics"`
	Anglemod   bool `help:"Show angles in anglemod units"`
	HideCommon bool `help:"Blank frame times and durations equal to the most common value"`
	FSUValues  bool `name:"fsu-values" help:"Show movement values instead of key labels"`
}

func (d DisplayFlags) apply(m frames.DisplayMode) frames.DisplayMode {
	m.PrePM = m.PrePM || d.PrePM
	m.Anglemod = m.Anglemod || d.Anglemod
	m.HideCommon = m.HideCommon || d.HideCommon
	m.FSUValues = m.FSUValues || d.FSUValues
	return m
}

// ViewCmd opens the interactive viewer.
type ViewCmd struct {
	Log    string `arg:"" optional:"" help:"TAS log file" type:"path"`
	Follow bool   `short:"f" help:"Reload when the file changes"`
	DisplayFlags `embed:""`
}

// InfoCmd prints log metadata.
type InfoCmd struct {
	Log string `arg:"" help:"TAS log file" type:"path"`
}

// ExportCmd writes a log to CSV or SQLite without opening the viewer.
type ExportCmd struct {
	Log    string `arg:"" help:"TAS log file" type:"path"`
	Out    string `short:"o" required:"" help:"Output file (.csv, .db or .sqlite)" type:"path"`
	NoData string `help:"Text for cells of rows without a command frame"`
	DisplayFlags `embed:""`
}

// VersionCmd shows version information.
type VersionCmd struct{}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tasview"),
		kong.Description("Terminal viewer for TAS logs."),
		kong.UsageOnError(),
	)

	cleanup, err := logging.SetupLogging(cli.Debug, cli.LogLevel)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}

func (g *Globals) loadSettings() (*settings.Settings, error) {
	dir := g.ConfigDir
	if dir == "" {
		d, err := settings.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return settings.Load(dir)
}

func (c *ViewCmd) Run(g *Globals) error {
	logging.Infof("tasview: Started")
	st, err := g.loadSettings()
	if err != nil {
		// run without persistence rather than refusing to start
		logging.Warnf("settings: %v", err)
		st = nil
	}

	mode := frames.DisplayMode{}
	noData := ""
	if st != nil {
		mode = st.DisplayMode()
		noData = st.NoDataMarker()
	}
	store := frames.NewStore(c.apply(mode))

	m := newModel(store, st, viewOptions{initialPath: c.Log, follow: c.Follow, noData: noData})
	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("Tea program error: %v", err)
		return err
	}
	if st != nil {
		m.saveSettings()
	}
	return nil
}

func (c *InfoCmd) Run(_ *Globals) error {
	store := frames.NewStore(frames.DisplayMode{})
	if _, err := store.Load(context.Background(), c.Log); err != nil {
		return err
	}
	return writeInfo(os.Stdout, store.Info())
}

func writeInfo(w io.Writer, info frames.Info) error {
	_, err := io.WriteString(w, dialogs.FormatInfo(info))
	return err
}

func (c *ExportCmd) Run(_ *Globals) error {
	store := frames.NewStore(c.apply(frames.DisplayMode{}))
	if _, err := store.Load(context.Background(), c.Log); err != nil {
		return err
	}
	marks, err := LoadMarks(marksPathFor(c.Log))
	if err != nil {
		logging.Warnf("load marks: %v", err)
	}
	if err := exportLog(c.Out, store, display.NewProjector(store, c.NoData), marks); err != nil {
		return err
	}
	fmt.Printf("Exported %d rows to %s\n", store.RowCount(), c.Out)
	return nil
}

func (c *VersionCmd) Run(_ *Globals) error {
	fmt.Println("Version:", Version)
	return nil
}
