package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-roster/grid"
)

const (
	rowTextFGColor         = "#c0c0c0"
	rowCursorTextFGColor   = "#e0e0e0"
	rowCursorBGColor       = "#3a3a3a"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"
)

const (
	pillMarker       = "▐"
	defaultMarker    = " " // replaces pillMarker on unselected rows
	checkboxOn       = "[x]"
	checkboxOff      = "[ ]"
	checkboxPartial  = "[-]"
	viewedLabel      = "Viewed"
	notViewedLabel   = "Not viewed"
	sortAscIndicator = " ▲"
	sortDscIndicator = " ▼"
	emptyViewMessage = "No characters found matching your criteria."
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	headerStyle = lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)

	countStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	rowStyle       = lipgloss.NewStyle()
	rowCursorStyle = lipgloss.NewStyle().Background(lipgloss.Color(rowCursorBGColor))
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	tableStyle     = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	loadingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	selectedPill   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))

	scrollTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))
	scrollThumbStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	selectionBarStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#1f3a5f")).
				Foreground(lipgloss.Color("#e0e0e0")).
				Padding(0, 1)

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))
)

var healthStyles = map[grid.Health]lipgloss.Style{
	grid.HealthHealthy:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	grid.HealthInjured:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	grid.HealthCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}
