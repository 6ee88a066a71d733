package dialogs

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

func center(s string, width, height int) string {
	box := lipgloss.NewStyle().Width(width).Height(height).Align(lipgloss.Center, lipgloss.Center)
	return box.Render(s)
}

// Overlay centres a dialog view in a width x height area.
func Overlay(view string, width, height int) string {
	return center(view, width, height)
}

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(60)
}

func hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Faint(true)
}

// resolvePath joins a bare file name onto dir. Absolute paths and paths with
// a directory component are returned unchanged.
func resolvePath(val, dir string) string {
	if dir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		return filepath.Join(dir, filepath.Base(val))
	}
	return val
}
