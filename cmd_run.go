package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-roster/grid"
)

func (m *model) enterCommandMode(cmd Command) {
	m.ui.mode = modeCommand
	m.ui.command = CommandInput{cmd: cmd}
	if cmd == CmdSearch {
		prev := m.grid.Criteria().Search
		m.ui.command.buf = prev
		m.ui.command.prev = prev
	}
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) runCommand() tea.Cmd {
	switch m.ui.command.cmd {
	case CmdJump:
		n, err := strconv.Atoi(strings.TrimSpace(m.ui.command.buf))
		if err != nil {
			return m.startNotice("Invalid row number", "warn", noticeDuration)
		}
		return m.jumpToLine(n)
	case CmdSearch:
		// already applied while typing
		return nil
	}
	return nil
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		var cmd tea.Cmd
		if m.ui.command.cmd == CmdSearch && m.ui.command.buf != m.ui.command.prev {
			cmd = m.applyFilters(grid.WithSearch(m.ui.command.prev))
		}
		m.exitCommandMode()
		return m, cmd

	case tea.KeyEnter:
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd

	case tea.KeyBackspace:
		if r := []rune(m.ui.command.buf); len(r) > 0 {
			m.ui.command.buf = string(r[:len(r)-1])
			return m, m.commandEdited()
		}
		return m, nil

	case tea.KeyRunes, tea.KeySpace:
		m.ui.command.buf += string(msg.Runes)
		return m, m.commandEdited()
	}
	return m, nil
}

// commandEdited applies search input as it is typed.
func (m *model) commandEdited() tea.Cmd {
	if m.ui.command.cmd != CmdSearch {
		return nil
	}
	return m.applyFilters(grid.WithSearch(m.ui.command.buf))
}
