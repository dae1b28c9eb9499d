package main

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-roster/clipboard"
	"github.com/andareed/siftly-roster/logging"
)

func (m *model) toggleCurrent() {
	id := m.currentID()
	if id == "" {
		return
	}
	m.grid.ToggleSelect(id)
}

func (m *model) markSelected(viewed bool) tea.Cmd {
	if m.grid.SelectedCount() == 0 {
		return m.startNotice("Nothing selected", "warn", noticeDuration)
	}
	id := m.currentID()
	ids := m.grid.MarkViewed(viewed)
	m.follow(id)
	word := "viewed"
	if !viewed {
		word = "unviewed"
	}
	return m.startNotice(fmt.Sprintf("Marked %d as %s", len(ids), word), "success", noticeDuration)
}

// submitSelection hands the selected ids to the log. The TUI log handler
// echoes the record into the footer.
func (m *model) submitSelection() tea.Cmd {
	if m.grid.SelectedCount() == 0 {
		return m.startNotice("Nothing selected", "warn", noticeDuration)
	}
	ids := m.grid.Submit()
	return m.startNotice(fmt.Sprintf("Submitted %d ids", len(ids)), "success", noticeDuration)
}

// copySelection copies the selected ids, one per line, or the id under the
// cursor when nothing is selected.
func (m *model) copySelection() tea.Cmd {
	ids := m.grid.SelectedIDs()
	if len(ids) == 0 {
		if id := m.currentID(); id != "" {
			ids = []string{id}
		}
	}
	if len(ids) == 0 {
		return m.startNotice("Nothing to copy", "warn", noticeDuration)
	}
	if err := m.copy(strings.Join(ids, "\n")); err != nil {
		logging.Warnf("copy ids: %v", err)
		if errors.Is(err, clipboard.ErrUnavailable) {
			return m.startNotice("Clipboard unavailable", "error", noticeDuration)
		}
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Copied %d ids", len(ids)), "success", noticeDuration)
}
