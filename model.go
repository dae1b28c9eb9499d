package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/andareed/siftly-roster/clipboard"
	"github.com/andareed/siftly-roster/dialogs"
	"github.com/andareed/siftly-roster/grid"
	"github.com/andareed/siftly-roster/logging"
)

// rosterLoadedMsg carries the result of the asynchronous load back onto the
// event loop, where it resolves the controller.
type rosterLoadedMsg struct {
	records []grid.Record
	err     error
}

type exportDoneMsg struct {
	path string
	rows int
	err  error
}

type modelOptions struct {
	ctx         context.Context
	source      grid.Source
	count       int
	sourceLabel string
	sourcePath  string
	rowHeight   int
	overscan    int
	collation   language.Tag
	logger      *slog.Logger
	exportDir   string
}

type model struct {
	grid    *grid.Controller
	keys    Keymap
	columns []ColumnMeta
	vp      grid.Viewport
	cursor  int // index into the derived view

	ready          bool
	terminalWidth  int
	terminalHeight int

	ui           uiState
	activeDialog dialogs.Dialog

	ctx         context.Context
	source      grid.Source
	count       int
	sourceLabel string
	sourcePath  string
	exportDir   string
	copy        func(string) error
}

func newModel(opts modelOptions) *model {
	if opts.ctx == nil {
		opts.ctx = context.Background()
	}
	if opts.logger == nil {
		opts.logger = slog.Default()
	}
	if opts.collation == language.Und {
		opts.collation = language.English
	}
	return &model{
		grid: grid.NewController(
			grid.WithLogger(opts.logger),
			grid.WithCollation(opts.collation),
		),
		keys:    Keys,
		columns: rosterColumns(),
		vp: grid.Viewport{
			RowHeight: max(opts.rowHeight, 1),
			Overscan:  max(opts.overscan, 0),
		},
		ctx:         opts.ctx,
		source:      opts.source,
		count:       opts.count,
		sourceLabel: opts.sourceLabel,
		sourcePath:  opts.sourcePath,
		exportDir:   opts.exportDir,
		copy:        clipboard.Copy,
	}
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-roster: loading %s", m.sourceLabel)
	return m.loadCmd()
}

// loadCmd runs the record source off the event loop. The controller is
// only touched once the result comes back as a message.
func (m *model) loadCmd() tea.Cmd {
	if m.source == nil {
		return func() tea.Msg { return rosterLoadedMsg{} }
	}
	ctx, src, count := m.ctx, m.source, m.count
	return func() tea.Msg {
		records, err := src.Load(ctx, count)
		return rosterLoadedMsg{records: records, err: err}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case rosterLoadedMsg:
		return m, m.handleLoaded(msg)

	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil

	case logging.RecordMsg:
		return m, m.startNotice(msg.Summary, noticeKindForLevel(msg.Level), logNoticeDuration)

	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		return m, m.exportCmd(msg.Path)

	case dialogs.ExportCanceledMsg, dialogs.HelpClosedMsg:
		m.activeDialog = nil
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			logging.Errorf("export to %s failed: %v", msg.path, msg.err)
			return m, m.startNotice("Export failed: "+msg.err.Error(), "error", noticeDuration)
		}
		return m, m.startNotice(fmt.Sprintf("Exported %d rows to %s", msg.rows, msg.path), "success", noticeDuration)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			return m.updateDialog(msg)
		}
		return m.updateKey(msg)
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return m.updateDialog(msg)
	}
	return m, nil
}

func (m *model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	d, cmd := m.activeDialog.Update(msg)
	m.activeDialog = d
	return m, cmd
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	d.Show()
	return d.Focus()
}

func (m *model) handleLoaded(msg rosterLoadedMsg) tea.Cmd {
	records := msg.records
	if msg.err != nil {
		logging.Errorf("loading roster from %s: %v", m.sourceLabel, msg.err)
		records = nil
	}
	if !m.grid.Resolve(records) {
		return nil
	}
	m.cursor = 0
	m.vp.Offset = 0
	if msg.err != nil {
		return m.startNotice("Load failed: "+msg.err.Error(), "error", logNoticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Loaded %d characters", m.grid.Total()), "success", noticeDuration)
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(k.HelpSections()...))
	}

	if m.grid.Loading() {
		return m, m.startNotice("Still loading the roster…", "warn", noticeDuration)
	}

	switch {
	case key.Matches(msg, k.RowDown):
		m.moveCursor(1)
	case key.Matches(msg, k.RowUp):
		m.moveCursor(-1)
	case key.Matches(msg, k.PageDown):
		m.moveCursor(m.pageRows())
	case key.Matches(msg, k.PageUp):
		m.moveCursor(-m.pageRows())
	case key.Matches(msg, k.Top):
		m.jumpToStart()
	case key.Matches(msg, k.Bottom):
		m.jumpToEnd()
	case key.Matches(msg, k.Jump), key.Matches(msg, k.Search):
		m.enterCommandMode(CommandFromPrefix(msg.Runes[0]))
	case key.Matches(msg, k.HealthFilter):
		return m, m.toggleHealthFilter(msg.String())
	case key.Matches(msg, k.ClearHealth):
		return m, m.applyFilters(grid.WithHealth())
	case key.Matches(msg, k.ClearFilters):
		return m, m.applyFilters(grid.ClearFilters())
	case key.Matches(msg, k.SortName):
		m.sortBy(grid.FieldName)
	case key.Matches(msg, k.SortLocation):
		m.sortBy(grid.FieldLocation)
	case key.Matches(msg, k.SortHealth):
		m.sortBy(grid.FieldHealth)
	case key.Matches(msg, k.SortPower):
		m.sortBy(grid.FieldPower)
	case key.Matches(msg, k.Toggle):
		m.toggleCurrent()
	case key.Matches(msg, k.ToggleAll):
		m.grid.ToggleSelectAll()
	case key.Matches(msg, k.MarkViewed):
		return m, m.markSelected(true)
	case key.Matches(msg, k.MarkUnviewed):
		return m, m.markSelected(false)
	case key.Matches(msg, k.Submit):
		return m, m.submitSelection()
	case key.Matches(msg, k.CopyIDs):
		return m, m.copySelection()
	case key.Matches(msg, k.ExportToFile):
		return m, m.openDialog(dialogs.NewExportDialog(defaultExportName(m), m.exportDir, m.grid.Len()))
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.grid.Loading() || msg.Action != tea.MouseActionPress {
		return nil
	}
	step := 3 * m.vp.RowHeight
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.vp.ScrollBy(-step, m.grid.Len())
	case tea.MouseButtonWheelDown:
		m.vp.ScrollBy(step, m.grid.Len())
	default:
		return nil
	}
	m.keepCursorOnScreen()
	return nil
}

// resize recomputes the viewport and column widths from the terminal size.
func (m *model) resize() {
	m.vp.Height = max(m.terminalHeight-chromeHeight, 1)
	m.columns = layoutColumns(m.columns, m.rowContentWidth())
	m.vp.EnsureVisible(m.cursor, m.grid.Len())
}

func (m *model) pageRows() int {
	return max(m.vp.VisibleRows(), 1)
}

// follow keeps the cursor on the record with id after the view changed, or
// clamps it when that record is gone.
func (m *model) follow(id string) {
	n := m.grid.Len()
	if i, ok := m.grid.IndexOf(id); ok && id != "" {
		m.cursor = i
	} else {
		m.cursor = min(max(m.cursor, 0), max(n-1, 0))
	}
	m.vp.ClampOffset(n)
	m.vp.EnsureVisible(m.cursor, n)
}

func (m *model) currentRecord() (grid.Record, bool) {
	return m.grid.At(m.cursor)
}

func (m *model) currentID() string {
	r, ok := m.currentRecord()
	if !ok {
		return ""
	}
	return r.ID
}
