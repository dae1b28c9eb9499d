package dialogs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
)

var exportErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

// Export asks for the CSV file the current view is written to.
type Export struct {
	input   textinput.Model
	visible bool
	rows    int
	lastDir string
	err     string
}

func (d Export) Init() tea.Cmd { return d.input.Focus() }

// NewExportDialog opens with defaultName filled in. rows is shown so the
// user knows how much of the roster will be written. Relative names are
// placed in lastDir when it is set.
func NewExportDialog(defaultName, lastDir string, rows int) *Export {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Export as: "
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	return &Export{input: ti, visible: true, rows: rows, lastDir: lastDir}
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path, err := d.resolve()
			if err != nil {
				d.err = err.Error()
				return d, nil
			}
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: path} }
		case "esc":
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	d.err = ""
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// resolve turns the typed value into the export path.
func (d *Export) resolve() (string, error) {
	path := strings.TrimSpace(d.input.Value())
	if path == "" {
		// fall back to placeholder if user left it blank
		path = d.input.Placeholder
	}
	if path == "" {
		return "", fmt.Errorf("enter a file name")
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "":
		path += ".csv"
	case ".csv":
	default:
		return "", fmt.Errorf("exports are CSV, not %s", ext)
	}
	if d.lastDir != "" && !filepath.IsAbs(path) && filepath.Dir(path) == "." {
		path = filepath.Join(d.lastDir, filepath.Base(path))
	}
	return path, nil
}

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	lines := []string{
		d.input.View(),
		"",
		hintStyle.Render(fmt.Sprintf("%d rows in the current view", d.rows)),
	}
	if d.err != "" {
		lines = append(lines, exportErrStyle.Render(d.err))
	}
	lines = append(lines, "", hintStyle.Render("enter to export • esc to cancel"))
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
