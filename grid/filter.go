package grid

import (
	"slices"
	"strings"
)

// Criteria is the filter applied to the full record set. An empty Search
// or an empty Health set does not filter on that axis.
type Criteria struct {
	Search string
	Health []Health
}

// FilterOption changes one axis of a Criteria copy.
type FilterOption func(*Criteria)

// WithSearch replaces the search text.
func WithSearch(text string) FilterOption {
	return func(c *Criteria) { c.Search = text }
}

// WithHealth replaces the health set. No arguments clears it.
func WithHealth(health ...Health) FilterOption {
	return func(c *Criteria) {
		c.Health = nil
		for _, h := range health {
			if !slices.Contains(c.Health, h) {
				c.Health = append(c.Health, h)
			}
		}
	}
}

// ToggleHealth adds h to the health set, or removes it if present.
func ToggleHealth(h Health) FilterOption {
	return func(c *Criteria) {
		if i := slices.Index(c.Health, h); i >= 0 {
			c.Health = slices.Delete(slices.Clone(c.Health), i, i+1)
			return
		}
		c.Health = append(slices.Clone(c.Health), h)
	}
}

// ClearFilters resets both axes.
func ClearFilters() FilterOption {
	return func(c *Criteria) { *c = Criteria{} }
}

// With returns a new Criteria with opts applied. The receiver is never
// modified.
func (c Criteria) With(opts ...FilterOption) Criteria {
	next := Criteria{Search: c.Search, Health: slices.Clone(c.Health)}
	for _, opt := range opts {
		opt(&next)
	}
	return next
}

// IsZero reports whether c filters nothing.
func (c Criteria) IsZero() bool {
	return c.Search == "" && len(c.Health) == 0
}

// HasHealth reports whether h is in the health set.
func (c Criteria) HasHealth(h Health) bool {
	return slices.Contains(c.Health, h)
}

// Equal compares search text and health sets, ignoring set order.
func (c Criteria) Equal(other Criteria) bool {
	if c.Search != other.Search || len(c.Health) != len(other.Health) {
		return false
	}
	for _, h := range c.Health {
		if !other.HasHealth(h) {
			return false
		}
	}
	return true
}

// Matches reports whether r passes both the search and health predicates.
func (c Criteria) Matches(r Record) bool {
	return c.matches(r, strings.ToLower(c.Search))
}

func (c Criteria) matches(r Record, needle string) bool {
	if needle != "" &&
		!strings.Contains(strings.ToLower(r.Name), needle) &&
		!strings.Contains(strings.ToLower(string(r.Location)), needle) {
		return false
	}
	if len(c.Health) > 0 && !c.HasHealth(r.Health) {
		return false
	}
	return true
}

// Filter returns the records that match c, in input order. The result is
// always a fresh slice.
func Filter(records []Record, c Criteria) []Record {
	out := make([]Record, 0, len(records))
	if c.IsZero() {
		return append(out, records...)
	}
	needle := strings.ToLower(c.Search)
	for _, r := range records {
		if c.matches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}
