package grid

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Directive is the single-column sort applied after filtering. A zero
// Directive (FieldNone) keeps the filtered order.
type Directive struct {
	Field     Field
	Direction Direction
}

// Toggle returns the directive after the user picks field: the same field
// sorted ascending flips to descending, anything else starts ascending.
func (d Directive) Toggle(field Field) Directive {
	if d.Field == field && d.Direction == Asc {
		return Directive{Field: field, Direction: Desc}
	}
	return Directive{Field: field, Direction: Asc}
}

// Sorter orders records with a locale-aware collator. It is not safe for
// concurrent use.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter returns a Sorter collating strings for tag.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{collator: collate.New(tag)}
}

// Compare orders a and b on field ascending. Mismatched or unsupported
// value types compare equal.
func (s *Sorter) Compare(a, b Record, field Field) int {
	switch av := a.Value(field).(type) {
	case string:
		if bv, ok := b.Value(field).(string); ok {
			return s.collator.CompareString(av, bv)
		}
	case int:
		if bv, ok := b.Value(field).(int); ok {
			return cmp.Compare(av, bv)
		}
	}
	return 0
}

// Sort returns a new slice ordered by d. Equal elements keep their input
// order in both directions; the input is never modified.
func (s *Sorter) Sort(records []Record, d Directive) []Record {
	out := slices.Clone(records)
	if out == nil {
		out = []Record{}
	}
	if d.Field == FieldNone {
		return out
	}
	slices.SortStableFunc(out, func(a, b Record) int {
		c := s.Compare(a, b, d.Field)
		if d.Direction == Desc {
			return -c
		}
		return c
	})
	return out
}

// Sort orders records with an English collator. Callers sorting
// repeatedly should keep their own Sorter.
func Sort(records []Record, d Directive) []Record {
	return NewSorter(language.English).Sort(records, d)
}
