package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/andareed/siftly-roster/grid"
)

const ellipsis = "…"

// cellText is the plain text shown for field.
func cellText(r grid.Record, field grid.Field) string {
	switch field {
	case grid.FieldName:
		return r.Name
	case grid.FieldLocation:
		return string(r.Location)
	case grid.FieldHealth:
		return string(r.Health)
	case grid.FieldPower:
		return strconv.Itoa(r.Power)
	case grid.FieldViewed:
		if r.Viewed {
			return viewedLabel
		}
		return notViewedLabel
	case grid.FieldID:
		return r.ID
	default:
		return ""
	}
}

// searchable reports whether field takes part in the text search.
func searchable(field grid.Field) bool {
	return field == grid.FieldName || field == grid.FieldLocation
}

// renderCells renders the record as one line of fixed-width cells. query
// is highlighted in the searchable columns.
func renderCells(r grid.Record, cols []ColumnMeta, query string) string {
	cells := make([]string, 0, len(cols))
	for _, col := range cols {
		if !col.Visible || col.Width <= 0 {
			continue
		}
		text := truncate.StringWithTail(cellText(r, col.Field), uint(max(col.Width-2, 0)), ellipsis)
		switch {
		case col.Field == grid.FieldHealth:
			text = healthStyles[r.Health].Render(text)
		case searchable(col.Field) && query != "":
			text = highlightMatches(text, query)
		}
		cells = append(cells, cellStyle.Width(col.Width).MaxHeight(1).Align(col.Align).Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// headerCells renders the column titles; the sorted column carries the
// direction indicator.
func headerCells(cols []ColumnMeta, d grid.Directive) string {
	cells := make([]string, 0, len(cols))
	for _, col := range cols {
		if !col.Visible || col.Width <= 0 {
			continue
		}
		title := col.Name
		if d.Field != grid.FieldNone && d.Field == col.Field {
			title += sortIndicator(d.Direction)
		}
		title = truncate.StringWithTail(title, uint(max(col.Width-2, 0)), ellipsis)
		cells = append(cells, cellStyle.Width(col.Width).MaxHeight(1).Align(col.Align).Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func highlightMatches(text string, query string) string {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(q)
	if len(lowerText) != len(text) {
		// case folding changed byte offsets; skip highlighting
		return text
	}
	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx == -1 {
			b.WriteString(text[start:])
			break
		}
		idx += start
		b.WriteString(text[start:idx])
		match := text[idx : idx+len(lowerQuery)]
		b.WriteString(searchHighlight.Render(match))
		start = idx + len(lowerQuery)
	}
	return b.String()
}
