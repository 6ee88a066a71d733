package main

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/andareed/tasview/inspect"
)

func (m *model) renderInspector(width int) string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	f, ok := m.currentFrame()
	if !ok {
		b.WriteString(labelStyle.Render("No row selected"))
		return b.String()
	}

	page := inspect.Build(m.ui.inspectTab, f, m.proj.Mode.Anglemod)
	b.WriteString(renderPage(page, width, m.ui.searchQuery))
	return b.String()
}

func (m *model) renderTabs() string {
	tabs := inspect.Tabs()
	out := make([]string, len(tabs))
	for i, t := range tabs {
		if t == m.ui.inspectTab {
			out[i] = tabActive.Render(t.String())
		} else {
			out[i] = tabInactive.Render(t.String())
		}
	}
	return strings.Join(out, " ")
}

func renderPage(p inspect.Page, width int, query string) string {
	var b strings.Builder
	if len(p.Sections) == 0 && len(p.Lines) == 0 {
		return labelStyle.Render("Nothing recorded for this frame")
	}

	for i, s := range p.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if s.Title != "" {
			b.WriteString(drawerTitle.Render(s.Title))
			b.WriteString("\n")
		}
		labelW := 0
		for _, fld := range s.Fields {
			labelW = max(labelW, len(fld.Label))
		}
		for _, fld := range s.Fields {
			label := fld.Label + strings.Repeat(" ", labelW-len(fld.Label))
			b.WriteString(labelStyle.Render(label) + "  " + fld.Value + "\n")
		}
	}

	for _, l := range p.Lines {
		wrapped := l
		if width > 0 {
			wrapped = wordwrap.String(l, width)
		}
		b.WriteString(highlightMatches(wrapped, query))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func highlightMatches(text string, query string) string {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(q)
	if len(lowerText) != len(text) {
		return text
	}
	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx == -1 {
			b.WriteString(text[start:])
			break
		}
		idx += start
		b.WriteString(text[start:idx])
		b.WriteString(searchHighlight.Render(text[idx : idx+len(lowerQuery)]))
		start = idx + len(lowerQuery)
	}
	return b.String()
}
