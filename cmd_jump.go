package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-roster/logging"
)

func (m *model) moveCursor(delta int) {
	n := m.grid.Len()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.vp.EnsureVisible(m.cursor, n)
}

func (m *model) jumpToStart() {
	logging.Debug("jumpToStart called")
	m.moveCursor(-m.cursor)
}

func (m *model) jumpToEnd() {
	logging.Debug("jumpToEnd called")
	m.moveCursor(m.grid.Len() - 1 - m.cursor)
}

// jumpToLine moves to the 1-based row of the current view.
func (m *model) jumpToLine(lineNo int) tea.Cmd {
	logging.Debugf("jumpToLine %d", lineNo)
	n := m.grid.Len()
	if n == 0 {
		return m.startNotice("Nothing to jump to", "warn", noticeDuration)
	}
	if lineNo <= 0 || lineNo > n {
		return m.startNotice(fmt.Sprintf("Row %d out of bounds (1-%d)", lineNo, n), "warn", noticeDuration)
	}
	m.moveCursor(lineNo - 1 - m.cursor)
	return nil
}

// keepCursorOnScreen pulls the cursor into the viewport after a scroll
// that did not move it.
func (m *model) keepCursorOnScreen() {
	n := m.grid.Len()
	if n == 0 {
		return
	}
	first := m.vp.FirstVisible()
	if m.vp.Offset%m.vp.RowHeight != 0 {
		first++ // partly hidden row
	}
	last := first + max(m.vp.VisibleRows(), 1) - 1
	m.cursor = min(max(m.cursor, first), min(last, n-1))
}
