package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-roster/grid"
	"github.com/andareed/siftly-roster/roster"
)

// ExportView writes records (the current filtered, sorted view) to a CSV
// file that FileSource can load back.
func ExportView(records []grid.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	if err := roster.WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}

// exportCmd snapshots the view on the event loop and writes it in the
// background.
func (m *model) exportCmd(path string) tea.Cmd {
	records := m.grid.View()
	return func() tea.Msg {
		err := ExportView(records, path)
		return exportDoneMsg{path: path, rows: len(records), err: err}
	}
}

// defaultExportName is derived from the roster file, or "roster" for a
// generated one.
func defaultExportName(m *model) string {
	base := "roster"
	if m.sourcePath != "" {
		base = strings.TrimSuffix(filepath.Base(m.sourcePath), filepath.Ext(m.sourcePath))
	}
	return base + "-view.csv"
}
