package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface implemented by the modal dialogs (Help,
// Export). The model holds at most one active dialog and forwards every
// message to it while it is visible.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
