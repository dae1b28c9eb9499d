package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/andareed/siftly-roster/dialogs"
	"github.com/andareed/siftly-roster/grid"
	"github.com/andareed/siftly-roster/logging"
)

const (
	// appstyle margins, two header lines, table border, selection bar and
	// the two-line footer.
	chromeHeight = 2 + 2 + 2 + 1 + 2
	marginWidth  = 4
	borderWidth  = 2
	scrollWidth  = 1
	gutterWidth  = 1 + len(checkboxOff) + 1
)

// rowContentWidth is the width left for cells inside the table border.
func (m *model) rowContentWidth() int {
	return max(m.terminalWidth-marginWidth-borderWidth-scrollWidth-gutterWidth, 0)
}

func (m *model) tableInnerWidth() int {
	return max(m.terminalWidth-marginWidth-borderWidth, 0)
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	if m.grid.Loading() {
		msg := loadingStyle.Render("Loading characters…") + "\n" + countStyle.Render(m.sourceLabel)
		return dialogs.Center(msg, m.terminalWidth, m.terminalHeight)
	}

	snap := m.grid.Snapshot(m.vp)
	bordered := tableStyle.Render(strings.Join(m.renderBody(snap), "\n"))
	contentW := lipgloss.Width(bordered)

	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(snap, contentW),
		bordered,
		m.selectionBar(snap, contentW),
		m.footerView(snap, contentW),
	))
}

// headerView is the "Showing N of M" line followed by the column titles.
func (m *model) headerView(snap grid.Snapshot, width int) string {
	counter := fmt.Sprintf("Showing %d of %d characters", len(snap.View), snap.Total)
	extra := fmt.Sprintf("%d viewed", m.grid.ViewedCount())
	gap := max(width-lipgloss.Width(counter)-lipgloss.Width(extra), 1)
	line1 := countStyle.Render(counter + strings.Repeat(" ", gap) + extra)

	box := checkboxOff
	switch {
	case m.grid.AllSelected():
		box = checkboxOn
	case m.grid.PartiallySelected():
		box = checkboxPartial
	}
	line2 := headerStyle.Render(" " + box + " " + headerCells(m.columns, snap.Directive))
	return line1 + "\n" + line2
}

// renderBody renders exactly vp.Height lines. Rows inside the window are
// rendered in full; the lines above the scroll offset (overscan) are cut so
// the body shows content lines [Offset, Offset+Height).
func (m *model) renderBody(snap grid.Snapshot) []string {
	height := m.vp.Height
	inner := m.tableInnerWidth()
	rowW := inner - scrollWidth

	if len(snap.View) == 0 {
		body := dialogs.Center(emptyStyle.Render(emptyViewMessage), inner, height)
		return strings.Split(body, "\n")
	}

	w := snap.Window
	lines := make([]string, 0, w.Len()*m.vp.RowHeight)
	for i := w.Start; i <= w.End; i++ {
		lines = append(lines, m.renderRowAt(snap.View[i], i)...)
	}

	skip := min(max(m.vp.Offset-w.Leading, 0), len(lines))
	lines = lines[skip:min(skip+height, len(lines))]

	total := len(snap.View) * m.vp.RowHeight
	bar := scrollbar(height, w.Leading+skip, total)
	out := make([]string, height)
	for i := range out {
		line := strings.Repeat(" ", rowW)
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = line + bar[i]
	}

	if logging.IsDebugMode() {
		logging.Debugf("window start=%d end=%d leading=%d trailing=%d offset=%d", w.Start, w.End, w.Leading, w.Trailing, m.vp.Offset)
	}
	return out
}

// renderRowAt renders the record at view index i as RowHeight lines.
func (m *model) renderRowAt(r grid.Record, i int) []string {
	isCursor := i == m.cursor
	rowPrefix := bgSeq(lipgloss.Color("")) + fgSeq(lipgloss.Color(rowTextFGColor))
	rowBgStyle := rowStyle
	if isCursor {
		rowBgStyle = rowCursorStyle
		rowPrefix = bgSeq(lipgloss.Color(rowCursorBGColor)) + fgSeq(lipgloss.Color(rowCursorTextFGColor))
	}
	rowSuffix := termenv.CSI + "0m"

	marker := defaultMarker
	box := checkboxOff
	if m.grid.IsSelected(r.ID) {
		marker = selectedPill.Render(pillMarker)
		box = checkboxOn
	}

	query := m.grid.Criteria().Search
	content := renderCells(r, m.columns, query)
	content = restoreRowStyleAfterReset(content, rowPrefix)

	lines := make([]string, m.vp.RowHeight)
	lines[0] = marker + rowBgStyle.Render(box+" ") + rowPrefix + content + rowSuffix
	blank := rowBgStyle.Render(strings.Repeat(" ", gutterWidth-1+lipgloss.Width(content)))
	for j := 1; j < len(lines); j++ {
		lines[j] = defaultMarker + blank
	}
	return lines
}

// scrollbar draws a track of height cells with a thumb for content lines
// [top, top+height) of total.
func scrollbar(height, top, total int) []string {
	bar := make([]string, max(height, 0))
	if height <= 0 {
		return bar
	}
	if total <= height {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}
	thumb := max(height*height/total, 1)
	pos := 0
	if scrollable := total - height; scrollable > 0 {
		pos = min(top, scrollable) * (height - thumb) / scrollable
	}
	for i := range bar {
		if i >= pos && i < pos+thumb {
			bar[i] = scrollThumbStyle.Render("┃")
		} else {
			bar[i] = scrollTrackStyle.Render("│")
		}
	}
	return bar
}

// selectionBar appears while something is selected; otherwise the line is
// kept blank so the table does not jump.
func (m *model) selectionBar(snap grid.Snapshot, width int) string {
	if len(snap.Selected) == 0 {
		return strings.Repeat(" ", width)
	}
	text := fmt.Sprintf("%d selected · v viewed · V unviewed · enter submit · y copy", len(snap.Selected))
	return selectionBarStyle.Width(width).MaxHeight(1).Render(text)
}

func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	reset := termenv.CSI + "0m"
	if !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}
