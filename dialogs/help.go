package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type HelpClosedMsg struct{}

// HelpSection is a titled group of bindings.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// Help lists key bindings grouped by section.
type Help struct {
	visible  bool
	sections []HelpSection
}

var helpTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a visible help dialog. Disabled bindings are left out.
func NewHelpDialog(sections ...HelpSection) *Help {
	return &Help{
		visible:  true,
		sections: sections,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
			return d, func() tea.Msg { return HelpClosedMsg{} }
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	var blocks []string
	for _, s := range d.sections {
		var lines []string
		for _, b := range s.Bindings {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %-12s %s", h.Key, h.Desc))
		}
		if len(lines) == 0 {
			continue
		}
		blocks = append(blocks, helpTitleStyle.Render(s.Title)+"\n"+strings.Join(lines, "\n"))
	}

	content := fmt.Sprintf("%s\n\n%s", strings.Join(blocks, "\n\n"), hintStyle.Render("enter/esc to return"))
	return boxStyle.Render(content)
}

func (d *Help) Show() { d.visible = true }

func (d *Help) Hide() { d.visible = false }

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
