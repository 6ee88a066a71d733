package main

import (
	"github.com/andareed/tasview/display"
)

type ColumnMeta struct {
	Name    string
	ID      display.ColumnID
	Tooltip string
	Visible bool
	Width   int
}

// newColumns lays the display catalogue out for the terminal. A column is
// at least as wide as its title.
func newColumns() []ColumnMeta {
	cols := display.Columns()
	out := make([]ColumnMeta, len(cols))
	for i, c := range cols {
		out[i] = ColumnMeta{
			Name:    c.Title,
			ID:      c.ID,
			Tooltip: c.Tooltip,
			Visible: true,
			Width:   max(c.Width, len(c.Title)),
		}
	}
	return out
}

// cellWidth is the rendered width of a column including its padding.
func cellWidth(c ColumnMeta) int {
	return c.Width + 1
}

// layoutColumns shows the columns from first onwards that fit in
// totalWidth, counting sep extra cells per column for grid separators. The
// first shown column is always visible, even if clipped.
func layoutColumns(cols []ColumnMeta, first, totalWidth, sep int) []ColumnMeta {
	if len(cols) == 0 {
		return cols
	}
	first = clamp(first, 0, len(cols)-1)

	used := 0
	full := false
	for i := range cols {
		if i < first || full {
			cols[i].Visible = false
			continue
		}
		w := cellWidth(cols[i]) + sep
		if i > first && totalWidth > 0 && used+w > totalWidth {
			full = true
			cols[i].Visible = false
			continue
		}
		cols[i].Visible = true
		used += w
	}
	return cols
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// visibleColumns returns the columns currently shown.
func visibleColumns(cols []ColumnMeta) []ColumnMeta {
	out := make([]ColumnMeta, 0, len(cols))
	for _, c := range cols {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}
