package dialogs

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(d Dialog, keys ...string) (Dialog, tea.Msg) {
	var msg tea.Msg
	for _, k := range keys {
		var km tea.KeyMsg
		switch k {
		case "enter":
			km = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			km = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			km = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			km = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var cmd tea.Cmd
		d, cmd = d.Update(km)
		msg = nil
		if cmd != nil {
			msg = cmd()
		}
	}
	return d, msg
}

func TestExportDefaultName(t *testing.T) {
	d := NewExportDialog("roster.csv", "/tmp/out", 12)
	_, msg := press(d, "enter")
	require.IsType(t, ExportConfirmedMsg{}, msg)
	assert.Equal(t, filepath.Join("/tmp/out", "roster.csv"), msg.(ExportConfirmedMsg).Path)
}

func TestExportAddsExtension(t *testing.T) {
	d := NewExportDialog("", "", 1)
	d.Focus()
	_, msg := press(d, "team")
	assert.IsNotType(t, ExportConfirmedMsg{}, msg, "typing only edits the name")
	_, msg = press(d, "enter")
	require.IsType(t, ExportConfirmedMsg{}, msg)
	assert.Equal(t, "team.csv", msg.(ExportConfirmedMsg).Path)
}

func TestExportRejectsOtherFormats(t *testing.T) {
	d := NewExportDialog("roster.json", "", 1)
	_, msg := press(d, "enter")
	assert.Nil(t, msg)
	assert.Contains(t, d.View(), "exports are CSV")

	_, msg = press(d, "esc")
	assert.IsType(t, ExportCanceledMsg{}, msg)
}

func TestHelpListsEnabledBindings(t *testing.T) {
	on := key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "sort by power"))
	off := key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "hidden"))
	off.SetEnabled(false)

	d := NewHelpDialog(HelpSection{Title: "Sort", Bindings: []key.Binding{on, off}})
	view := d.View()
	assert.Contains(t, view, "sort by power")
	assert.NotContains(t, view, "hidden")

	_, msg := press(d, "esc")
	assert.IsType(t, HelpClosedMsg{}, msg)
	assert.False(t, d.IsVisible())
}
