package main

import (
	"github.com/andareed/siftly-roster/grid"
	"github.com/andareed/siftly-roster/logging"
)

// sortBy applies the header-click rule for field and keeps the cursor on
// the same record.
func (m *model) sortBy(field grid.Field) {
	id := m.currentID()
	if !m.grid.SetSort(field) {
		return
	}
	d := m.grid.Directive()
	logging.Debugf("sort now %s %s", d.Field, d.Direction)
	m.follow(id)
}

func (m *model) sortLabel() string {
	d := m.grid.Directive()
	if d.Field == grid.FieldNone {
		return "None"
	}
	return string(d.Field) + sortIndicator(d.Direction)
}

func sortIndicator(dir grid.Direction) string {
	if dir == grid.Desc {
		return sortDscIndicator
	}
	return sortAscIndicator
}
