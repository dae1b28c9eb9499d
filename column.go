package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-roster/grid"
)

type ColumnRole int

const (
	RoleNormal  ColumnRole = iota
	RolePrimary            // Name
	RoleSecondary
)

type ColumnMeta struct {
	Name     string
	Field    grid.Field
	Role     ColumnRole
	Align    lipgloss.Position
	Visible  bool
	MinWidth int
	Weight   float64
	Width    int
}

// rosterColumns is the fixed column set of the grid, left to right.
func rosterColumns() []ColumnMeta {
	col := func(name string, field grid.Field, role ColumnRole, align lipgloss.Position) ColumnMeta {
		return ColumnMeta{
			Name:     name,
			Field:    field,
			Role:     role,
			Align:    align,
			Visible:  true,
			MinWidth: defaultMinWidthForRole(role),
			Weight:   defaultWeightForRole(role),
		}
	}
	return []ColumnMeta{
		col("Name", grid.FieldName, RolePrimary, lipgloss.Left),
		col("Location", grid.FieldLocation, RoleNormal, lipgloss.Left),
		col("Health", grid.FieldHealth, RoleNormal, lipgloss.Left),
		col("Power", grid.FieldPower, RoleNormal, lipgloss.Right),
		col("Viewed", grid.FieldViewed, RoleNormal, lipgloss.Left),
		col("ID", grid.FieldID, RoleSecondary, lipgloss.Left),
	}
}

func defaultMinWidthForRole(r ColumnRole) int {
	switch r {
	case RolePrimary:
		return 20
	case RoleSecondary:
		return 12
	default:
		return 12
	}
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RolePrimary:
		return 3.0
	case RoleSecondary:
		return 2.0
	default:
		return 1.0
	}
}

// layoutColumns assigns widths for totalWidth cells. Secondary columns are
// dropped first when the minimum widths do not fit.
func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	for i := range cols {
		cols[i].Visible = true
	}
	if sumMinWidths(cols) > totalWidth {
		for i := range cols {
			if cols[i].Role == RoleSecondary {
				cols[i].Visible = false
			}
		}
	}

	minSum := sumMinWidths(cols)
	weightSum := 0.0
	for i := range cols {
		if cols[i].Visible {
			weightSum += cols[i].Weight
		}
	}

	if minSum >= totalWidth {
		// Too tight: just give each visible column its MinWidth clamped
		for i := range cols {
			if !cols[i].Visible {
				cols[i].Width = 0
				continue
			}
			cols[i].Width = min(cols[i].MinWidth, totalWidth)
		}
		return cols
	}

	remaining := totalWidth - minSum
	used := 0
	last := -1
	for i := range cols {
		if !cols[i].Visible {
			cols[i].Width = 0
			continue
		}
		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
		used += cols[i].Width
		last = i
	}
	// rounding slack goes to the last visible column
	if last >= 0 {
		cols[last].Width += totalWidth - used
	}
	return cols
}

func sumMinWidths(cols []ColumnMeta) int {
	sum := 0
	for _, c := range cols {
		if c.Visible {
			sum += c.MinWidth
		}
	}
	return sum
}
