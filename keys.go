package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/andareed/siftly-roster/dialogs"
)

type Keymap struct {
	Quit         key.Binding
	RowDown      key.Binding
	RowUp        key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Top          key.Binding
	Bottom       key.Binding
	Jump         key.Binding
	Search       key.Binding
	HealthFilter key.Binding
	ClearHealth  key.Binding
	ClearFilters key.Binding
	SortName     key.Binding
	SortLocation key.Binding
	SortHealth   key.Binding
	SortPower    key.Binding
	Toggle       key.Binding
	ToggleAll    key.Binding
	MarkViewed   key.Binding
	MarkUnviewed key.Binding
	Submit       key.Binding
	CopyIDs      key.Binding
	ExportToFile key.Binding
	OpenHelp     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g/home", "first row"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G/end", "last row"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to row"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search name or location"),
	),
	HealthFilter: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1/2/3", "toggle healthy/injured/critical"),
	),
	ClearHealth: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "clear health filter"),
	),
	ClearFilters: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "clear all filters"),
	),
	SortName: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "sort by name"),
	),
	SortLocation: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "sort by location"),
	),
	SortHealth: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "sort by health"),
	),
	SortPower: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "sort by power"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "select row"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all shown"),
	),
	MarkViewed: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "mark selected viewed"),
	),
	MarkUnviewed: key.NewBinding(
		key.WithKeys("V"),
		key.WithHelp("V", "mark selected unviewed"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit selection"),
	),
	CopyIDs: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy selected ids"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export view to CSV"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) HelpSections() []dialogs.HelpSection {
	return []dialogs.HelpSection{
		{Title: "Navigate", Bindings: []key.Binding{k.RowDown, k.RowUp, k.PageDown, k.PageUp, k.Top, k.Bottom, k.Jump}},
		{Title: "Filter", Bindings: []key.Binding{k.Search, k.HealthFilter, k.ClearHealth, k.ClearFilters}},
		{Title: "Sort", Bindings: []key.Binding{k.SortName, k.SortLocation, k.SortHealth, k.SortPower}},
		{Title: "Select", Bindings: []key.Binding{k.Toggle, k.ToggleAll, k.MarkViewed, k.MarkUnviewed, k.Submit, k.CopyIDs}},
		{Title: "Other", Bindings: []key.Binding{k.ExportToFile, k.OpenHelp, k.Quit}},
	}
}
