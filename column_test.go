package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andareed/tasview/display"
)

func testColumns(widths ...int) []ColumnMeta {
	cols := make([]ColumnMeta, len(widths))
	for i, w := range widths {
		cols[i] = ColumnMeta{ID: display.ColumnID(i), Width: w}
	}
	return cols
}

func visibleIDs(cols []ColumnMeta) []display.ColumnID {
	var out []display.ColumnID
	for _, c := range visibleColumns(cols) {
		out = append(out, c.ID)
	}
	return out
}

func TestLayoutColumns(t *testing.T) {
	tests := []struct {
		name  string
		first int
		total int
		sep   int
		want  []display.ColumnID
	}{
		{"all fit", 0, 100, 0, []display.ColumnID{0, 1, 2, 3}},
		{"clip tail", 0, 10, 0, []display.ColumnID{0, 1}},
		{"scrolled", 1, 16, 0, []display.ColumnID{1, 2}},
		{"separators", 0, 10, 1, []display.ColumnID{0}},
		{"first always shown", 3, 2, 0, []display.ColumnID{3}},
		{"first clamped", 9, 100, 0, []display.ColumnID{3}},
		{"no gaps after overflow", 0, 17, 0, []display.ColumnID{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// rendered widths 5, 4, 11, 3
			cols := layoutColumns(testColumns(4, 3, 10, 2), tt.first, tt.total, tt.sep)
			assert.Equal(t, tt.want, visibleIDs(cols))
		})
	}
}

func TestNewColumnsFitTitles(t *testing.T) {
	cols := newColumns()
	assert.Len(t, cols, len(display.Columns()))
	for _, c := range cols {
		assert.GreaterOrEqual(t, c.Width, len(c.Name), c.Name)
		assert.True(t, c.Visible)
	}
}
