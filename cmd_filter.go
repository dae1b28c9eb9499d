package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-roster/grid"
	"github.com/andareed/siftly-roster/logging"
)

// applyFilters replaces the filter criteria. The controller drops the
// selection on every filter change, so a notice says so when something
// was selected.
func (m *model) applyFilters(opts ...grid.FilterOption) tea.Cmd {
	id := m.currentID()
	dropped := m.grid.SelectedCount()
	if !m.grid.SetFilters(opts...) {
		return nil
	}
	c := m.grid.Criteria()
	logging.Debugf("filters now search=%q health=%v; %d of %d shown", c.Search, c.Health, m.grid.Len(), m.grid.Total())
	m.follow(id)
	if dropped > 0 && m.ui.mode != modeCommand {
		return m.startNotice("Selection cleared by filter change", "info", noticeDuration)
	}
	return nil
}

// toggleHealthFilter maps the 1/2/3 keys onto the health statuses.
func (m *model) toggleHealthFilter(k string) tea.Cmd {
	i := int(k[0] - '1')
	if i < 0 || i >= len(grid.HealthStatuses) {
		return nil
	}
	return m.applyFilters(grid.ToggleHealth(grid.HealthStatuses[i]))
}

func (m *model) filterLabel() string {
	c := m.grid.Criteria()
	var parts []string
	if c.Search != "" {
		parts = append(parts, "\""+c.Search+"\"")
	}
	for _, h := range c.Health {
		parts = append(parts, string(h))
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "+")
}
