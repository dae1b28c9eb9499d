package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/andareed/siftly-roster/grid"
	"github.com/andareed/siftly-roster/logging"
)

type FooterState struct {
	Mode      Command
	ModeInput string

	Source string

	FilterLabel string
	SortLabel   string

	Row       int
	TotalRows int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	SourceFG   lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		SourceFG:   lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

const defaultLegend = "(? help · / search · 1-3 health · p/n/o/h sort · space select · a all)"

// footerView renders the 2-line footer.
func (m *model) footerView(snap grid.Snapshot, width int) string {
	st := FooterState{
		Mode:        CmdNone,
		Source:      m.sourceLabel,
		FilterLabel: m.filterLabel(),
		SortLabel:   m.sortLabel(),
		Row:         m.cursor + 1,
		TotalRows:   len(snap.View),
		Legend:      defaultLegend,
	}
	if len(snap.View) == 0 {
		st.Row = 0
	}
	if m.ui.mode == modeCommand {
		st.Mode = m.ui.command.cmd
		st.ModeInput = m.activeCommandLine()
		st.Legend = m.commandHintsLine(m.ui.command.cmd)
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		w := snap.Window
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%d off=%d win=%d-%d sp=%d/%d",
			m.terminalWidth, m.terminalHeight, m.vp.Height, m.vp.Offset,
			w.Start, w.End, w.Leading, w.Trailing)
	}

	return RenderFooter(width, st, DefaultFooterStyles())
}

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.FilterLabel == "" {
		st.FilterLabel = "None"
	}
	if st.SortLabel == "" {
		st.SortLabel = "None"
	}
	if st.Legend == "" {
		st.Legend = defaultLegend
	}
	st.Row = max(st.Row, 0)
	st.TotalRows = max(st.TotalRows, 0)

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1
	filterValW := 16
	sortValW := 10
	statusFixedW := runeWidth(fmt.Sprintf("[FILTER: %s] · [SORT: %s]", strings.Repeat("X", filterValW), strings.Repeat("X", sortValW)))

	rightPlain := fmt.Sprintf(" Rows %d/%d", st.Row, st.TotalRows)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)

	leftW := max(width-rightW, 0)

	modeColW := clamp(leftW/4, 10, 36)
	statusColW := statusFixedW
	sourceColW := leftW - modeColW - statusColW - 2*gapW
	if sourceColW < 0 {
		deficit := -sourceColW
		if statusColW > 10 {
			shrink := min(deficit, statusColW-10)
			statusColW -= shrink
			deficit -= shrink
		}
		if deficit > 0 && modeColW > 8 {
			shrink := min(deficit, modeColW-8)
			modeColW -= shrink
		}
		sourceColW = leftW - modeColW - statusColW - 2*gapW
		if sourceColW < 0 {
			modeColW = max(0, modeColW+sourceColW)
			sourceColW = 0
		}
	}

	modeText := commandLabel(st.Mode)
	if pillW := runeWidth(modeText) + 2; pillW <= modeColW {
		sourceColW += modeColW - pillW
		modeColW = pillW
	}

	modeSeg := renderModeSegment(modeColW, st, styles)
	sourceSeg := renderSourceSegment(sourceColW, st, styles)
	statusSeg := renderFilterSortSegment(statusColW, st, styles, filterValW, sortValW)

	left := modeSeg + strings.Repeat(" ", gapW) + sourceSeg + strings.Repeat(" ", gapW) + statusSeg
	if used := modeColW + sourceColW + statusColW + 2*gapW; used < leftW {
		left += strings.Repeat(" ", leftW-used)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runeWidth(legendPlain)

	leftW := max(width-legendW, 0)

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	content := truncatePlain(commandLabel(st.Mode), max(0, colW-2))
	pillPlain := truncatePlain(" "+content+" ", colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

// renderSourceSegment shows where the roster came from, or the command
// line being typed.
func renderSourceSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	if input := strings.TrimSpace(st.ModeInput); input != "" {
		plain := padRightPlain(truncatePlain("▸ "+input, colW), colW)
		return applyFG(plain, styles.SourceFG, styles.TextFG)
	}
	name := strings.TrimSpace(st.Source)
	if name == "" {
		name = "(no source)"
	}
	plain := padRightPlain(truncatePlain("▸ "+name, colW), colW)
	return applyFG(plain, styles.SourceFG, styles.TextFG)
}

func renderFilterSortSegment(colW int, st FooterState, styles FooterStyles, filterValW, sortValW int) string {
	if colW <= 0 {
		return ""
	}
	filterVal := truncatePlain(strings.TrimSpace(st.FilterLabel), filterValW)
	sortVal := truncatePlain(st.SortLabel, sortValW)

	plain := fmt.Sprintf("[FILTER: %s] · [SORT: %s]", filterVal, sortVal)
	plain = padRightPlain(truncatePlain(plain, colW), colW)
	return applyFG(plain, styles.DimFG, styles.TextFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + "\x1b[0m"
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdSearch:
		return "SEARCH"
	default:
		return "NORMAL"
	}
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return "\x1b[49m"
		}
		return "\x1b[39m"
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, _ := strconv.ParseInt(s[1:3], 16, 0)
		g, _ := strconv.ParseInt(s[3:5], 16, 0)
		b, _ := strconv.ParseInt(s[5:7], 16, 0)
		code := 38
		if isBg {
			code = 48
		}
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", code, r, g, b)
	}
	return ""
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(s, w)
}

// truncatePlain cuts s to at most w terminal cells.
func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
