package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-roster/dialogs"
	"github.com/andareed/siftly-roster/grid"
	"github.com/andareed/siftly-roster/logging"
	"github.com/andareed/siftly-roster/roster"
)

func rosterFixture() []grid.Record {
	return []grid.Record{
		{ID: "a", Name: "Sakura Haruno", Location: grid.LocationKonoha, Health: grid.HealthHealthy, Power: 5000},
		{ID: "b", Name: "Kankuro", Location: grid.LocationSuna, Health: grid.HealthInjured, Power: 4000},
		{ID: "c", Name: "Haku", Location: grid.LocationKiri, Health: grid.HealthCritical, Power: 5000},
		{ID: "d", Name: "Deidara", Location: grid.LocationIwa, Health: grid.HealthInjured, Power: 8000},
		{ID: "e", Name: "Kakashi Hatake", Location: grid.LocationKonoha, Health: grid.HealthHealthy, Power: 5000},
		{ID: "f", Name: "Killer Bee", Location: grid.LocationKumo, Health: grid.HealthCritical, Power: 9500},
	}
}

type testModel struct {
	*model
	copied string
	logs   *bytes.Buffer
}

func newTestModel(t *testing.T, src grid.Source) *testModel {
	t.Helper()
	var logs bytes.Buffer
	tm := &testModel{logs: &logs}
	tm.model = newModel(modelOptions{
		ctx:         context.Background(),
		source:      src,
		sourceLabel: "test roster",
		rowHeight:   1,
		overscan:    2,
		logger:      slog.New(slog.NewJSONHandler(&logs, nil)),
	})
	tm.copy = func(s string) error {
		tm.copied = s
		return nil
	}
	tm.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return tm
}

func fixtureSource(records []grid.Record) grid.Source {
	return grid.SourceFunc(func(context.Context, int) ([]grid.Record, error) {
		return records, nil
	})
}

func loadedModel(t *testing.T) *testModel {
	t.Helper()
	tm := newTestModel(t, fixtureSource(rosterFixture()))
	tm.load(t)
	return tm
}

func (tm *testModel) load(t *testing.T) {
	t.Helper()
	cmd := tm.Init()
	require.NotNil(t, cmd)
	tm.Update(cmd())
	require.False(t, tm.grid.Loading())
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press sends each key in turn. Returned commands are dropped.
func (tm *testModel) press(keys ...string) {
	for _, k := range keys {
		tm.Update(keyMsg(k))
	}
}

func (tm *testModel) typeText(s string) {
	for _, r := range s {
		tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func viewIDs(tm *testModel) []string {
	return grid.IDs(tm.grid.View())
}

func TestLoadingScreenUntilRosterArrives(t *testing.T) {
	tm := newTestModel(t, fixtureSource(rosterFixture()))

	assert.Contains(t, tm.View(), "Loading characters")
	tm.press("space", "a", "p")
	assert.True(t, tm.grid.Loading())
	assert.Contains(t, tm.ui.noticeMsg, "Still loading")

	tm.load(t)
	view := tm.View()
	assert.Contains(t, view, "Showing 6 of 6 characters")
	assert.Contains(t, view, "Sakura Haruno")
	assert.Zero(t, tm.grid.SelectedCount(), "keys pressed while loading left no trace")
}

func TestLoadErrorResolvesEmpty(t *testing.T) {
	tm := newTestModel(t, grid.SourceFunc(func(context.Context, int) ([]grid.Record, error) {
		return nil, errors.New("disk on fire")
	}))
	tm.load(t)

	assert.Zero(t, tm.grid.Total())
	assert.Contains(t, tm.ui.noticeMsg, "disk on fire")
	assert.Contains(t, tm.View(), emptyViewMessage)
}

func TestSelectRowAndAll(t *testing.T) {
	tm := loadedModel(t)

	tm.press("space")
	assert.Equal(t, []string{"a"}, tm.grid.SelectedIDs())
	assert.True(t, tm.grid.PartiallySelected())
	assert.Contains(t, tm.View(), checkboxPartial)

	tm.press("a")
	assert.Equal(t, 6, tm.grid.SelectedCount())
	view := tm.View()
	assert.Contains(t, view, "6 selected")
	assert.Contains(t, view, checkboxOn)

	tm.press("a")
	assert.Zero(t, tm.grid.SelectedCount())
}

func TestLiveSearchAndRevert(t *testing.T) {
	tm := loadedModel(t)

	tm.press("/")
	tm.typeText("konoha")
	assert.Equal(t, []string{"a", "e"}, viewIDs(tm))
	assert.Contains(t, tm.View(), "Showing 2 of 6 characters")

	tm.press("esc")
	assert.Len(t, viewIDs(tm), 6, "esc restores the previous search")

	tm.press("/")
	tm.typeText("kak")
	tm.press("enter")
	assert.Equal(t, []string{"e"}, viewIDs(tm))
	assert.Equal(t, "kak", tm.grid.Criteria().Search)
	assert.Equal(t, modeView, tm.ui.mode)

	tm.press("/", "backspace", "backspace", "backspace", "enter")
	assert.Len(t, viewIDs(tm), 6)
}

func TestSearchClearsSelection(t *testing.T) {
	tm := loadedModel(t)
	tm.press("a")
	require.Equal(t, 6, tm.grid.SelectedCount())

	tm.press("/")
	tm.typeText("k")
	assert.Zero(t, tm.grid.SelectedCount())
}

func TestHealthFilterKeys(t *testing.T) {
	tm := loadedModel(t)

	tm.press("3")
	assert.Equal(t, []string{"c", "f"}, viewIDs(tm))
	tm.press("1")
	assert.Equal(t, []string{"a", "c", "e", "f"}, viewIDs(tm))
	assert.Contains(t, tm.filterLabel(), "Critical")

	tm.press("3")
	assert.Equal(t, []string{"a", "e"}, viewIDs(tm))

	tm.press("0")
	assert.Len(t, viewIDs(tm), 6)
	assert.Equal(t, "None", tm.filterLabel())
}

func TestSortKeysFollowCursor(t *testing.T) {
	tm := loadedModel(t)

	tm.press("p")
	assert.Equal(t, []string{"b", "a", "c", "e", "d", "f"}, viewIDs(tm))
	assert.Equal(t, 1, tm.cursor, "cursor stays on Sakura")
	assert.Contains(t, tm.View(), "Power"+sortAscIndicator)

	tm.press("p")
	assert.Equal(t, []string{"f", "d", "a", "c", "e", "b"}, viewIDs(tm))
	assert.Equal(t, "power"+sortDscIndicator, tm.sortLabel())

	tm.press("n")
	assert.Equal(t, grid.Directive{Field: grid.FieldName, Direction: grid.Asc}, tm.grid.Directive())
}

func TestMarkViewedAndUnviewed(t *testing.T) {
	tm := loadedModel(t)

	tm.press("v")
	assert.Equal(t, "Nothing selected", tm.ui.noticeMsg)

	tm.press("space", "down", "space", "v")
	assert.Zero(t, tm.grid.SelectedCount())
	assert.Equal(t, 2, tm.grid.ViewedCount())
	assert.Contains(t, tm.logs.String(), `"msg":"marking viewed"`)
	assert.Contains(t, tm.logs.String(), `"ids":["a","b"]`)
	assert.Contains(t, tm.View(), viewedLabel)

	tm.press("space", "V")
	assert.Equal(t, 1, tm.grid.ViewedCount())
	assert.Contains(t, tm.logs.String(), `"msg":"marking unviewed"`)
}

func TestSubmitLogsSelectedIDs(t *testing.T) {
	tm := loadedModel(t)

	tm.press("G", "space", "g", "space", "enter")
	assert.Contains(t, tm.logs.String(), `"msg":"selected ids"`)
	assert.Contains(t, tm.logs.String(), `"ids":["f","a"]`)
	assert.Equal(t, 2, tm.grid.SelectedCount())
	assert.Equal(t, "Submitted 2 ids", tm.ui.noticeMsg)
}

func TestCopyIDs(t *testing.T) {
	tm := loadedModel(t)

	tm.press("y")
	assert.Equal(t, "a", tm.copied, "falls back to the cursor row")

	tm.press("down", "space", "down", "space", "y")
	assert.Equal(t, "b\nc", tm.copied)

	tm.copy = func(string) error { return errors.New("no clipboard") }
	tm.press("y")
	assert.Contains(t, tm.ui.noticeMsg, "Copy failed")
}

func TestJumpCommand(t *testing.T) {
	tm := loadedModel(t)

	tm.press(":")
	tm.typeText("4")
	tm.press("enter")
	assert.Equal(t, 3, tm.cursor)

	tm.press(":")
	tm.typeText("99")
	tm.press("enter")
	assert.Equal(t, 3, tm.cursor)
	assert.Contains(t, tm.ui.noticeMsg, "out of bounds")
}

func TestEmptyViewMessage(t *testing.T) {
	tm := loadedModel(t)
	tm.press("/")
	tm.typeText("nobody")
	tm.press("enter")

	assert.Zero(t, tm.grid.Len())
	assert.Contains(t, tm.View(), emptyViewMessage)
	assert.Contains(t, tm.View(), "Showing 0 of 6 characters")
}

func TestLogRecordBecomesNotice(t *testing.T) {
	tm := loadedModel(t)
	tm.Update(logging.RecordMsg{Summary: "selected ids (ids=[a])", Level: slog.LevelInfo})
	assert.Equal(t, "selected ids (ids=[a])", tm.ui.noticeMsg)
	assert.Equal(t, "info", tm.ui.noticeType)

	id := tm.ui.noticeSeq
	tm.Update(clearNoticeMsg{id: id - 1})
	assert.NotEmpty(t, tm.ui.noticeMsg, "stale timers do not clear newer notices")
	tm.Update(clearNoticeMsg{id: id})
	assert.Empty(t, tm.ui.noticeMsg)
}

func TestHelpDialog(t *testing.T) {
	tm := loadedModel(t)
	tm.press("?")
	require.NotNil(t, tm.activeDialog)
	assert.Contains(t, tm.View(), "sort by power")

	_, cmd := tm.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	tm.Update(cmd())
	assert.Nil(t, tm.activeDialog)
	assert.Contains(t, tm.View(), "Showing 6 of 6")
}

func TestExportRoundTrip(t *testing.T) {
	tm := loadedModel(t)
	tm.press("3")
	path := filepath.Join(t.TempDir(), "critical.csv")

	msg := tm.exportCmd(path)()
	done, ok := msg.(exportDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Equal(t, 2, done.rows)

	got, err := roster.FileSource{Path: path}.Load(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, tm.grid.View(), got)

	tm.Update(done)
	assert.Contains(t, tm.ui.noticeMsg, "Exported 2 rows")
}

func TestExportDialogFlow(t *testing.T) {
	tm := loadedModel(t)
	tm.exportDir = t.TempDir()

	tm.press("x")
	require.IsType(t, &dialogs.Export{}, tm.activeDialog)

	_, cmd := tm.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	confirmed := cmd()
	require.IsType(t, dialogs.ExportConfirmedMsg{}, confirmed)
	assert.Equal(t, filepath.Join(tm.exportDir, "roster-view.csv"), confirmed.(dialogs.ExportConfirmedMsg).Path)

	_, cmd = tm.Update(confirmed)
	assert.Nil(t, tm.activeDialog)
	require.NotNil(t, cmd)
	done := cmd().(exportDoneMsg)
	require.NoError(t, done.err)
	assert.Equal(t, 6, done.rows)
}

func TestLargeRosterRendersWindowOnly(t *testing.T) {
	tm := newTestModel(t, roster.Generator{Seed: 5})
	tm.count = 1000
	tm.load(t)
	require.Equal(t, 1000, tm.grid.Total())

	snap := tm.grid.Snapshot(tm.vp)
	assert.Equal(t, 0, snap.Window.Start)
	assert.Less(t, snap.Window.End, 50, "only the visible rows plus overscan are rendered")
	assert.Len(t, tm.renderBody(snap), tm.vp.Height)

	tm.press("G")
	assert.Equal(t, 999, tm.cursor)
	assert.Equal(t, tm.vp.MaxOffset(1000), tm.vp.Offset)

	snap = tm.grid.Snapshot(tm.vp)
	assert.Equal(t, 999, snap.Window.End)
	assert.Zero(t, snap.Window.Trailing)
	assert.Len(t, tm.renderBody(snap), tm.vp.Height)

	tm.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, tm.vp.MaxOffset(1000)-3, tm.vp.Offset)
	assert.Less(t, tm.cursor, 999, "cursor pulled back on screen")
}

func TestScrollbar(t *testing.T) {
	bar := scrollbar(10, 0, 5)
	assert.Equal(t, strings.Repeat(" ", 10), strings.Join(bar, ""))

	bar = scrollbar(10, 90, 100)
	require.Len(t, bar, 10)
	assert.Equal(t, scrollThumbStyle.Render("┃"), bar[9])
	assert.Equal(t, scrollTrackStyle.Render("│"), bar[0])
}

func TestLayoutColumnsDropsIDWhenNarrow(t *testing.T) {
	cols := layoutColumns(rosterColumns(), 70)
	total := 0
	for _, c := range cols {
		if c.Field == grid.FieldID {
			assert.False(t, c.Visible)
		}
		total += c.Width
	}
	assert.Equal(t, 70, total)

	cols = layoutColumns(rosterColumns(), 160)
	for _, c := range cols {
		assert.True(t, c.Visible)
	}
}

func TestFooterFitsWidth(t *testing.T) {
	st := FooterState{Source: "generated roster (seed 1)", FilterLabel: "\"konoha\"+Healthy", SortLabel: "power ▲", Row: 3, TotalRows: 10}
	out := RenderFooter(100, st, DefaultFooterStyles())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Rows 3/10")
	assert.Contains(t, lines[0], "[SORT: power ▲]")
}
