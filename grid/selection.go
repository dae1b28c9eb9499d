package grid

import (
	"cmp"
	"slices"
)

// Selection is a set of record ids that remembers the order ids were added
// in, so diagnostics can report an ordered list.
type Selection struct {
	ids map[string]uint64
	seq uint64
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]uint64)}
}

// Toggle adds id if absent and removes it if present.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.add(id)
}

// ToggleAll clears the selection when every visible id is already selected.
// Otherwise the selection becomes exactly visible, dropping anything else.
func (s *Selection) ToggleAll(visible []string) {
	if s.allOf(visible) {
		s.Clear()
		return
	}
	s.Clear()
	for _, id := range visible {
		if _, ok := s.ids[id]; !ok {
			s.add(id)
		}
	}
}

func (s *Selection) Clear() {
	clear(s.ids)
	s.seq = 0
}

func (s *Selection) IsSelected(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int { return len(s.ids) }

// IDs returns the selected ids in the order they were selected.
func (s *Selection) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int { return cmp.Compare(s.ids[a], s.ids[b]) })
	return ids
}

// AllOf reports whether ids is non-empty and every id in it is selected.
func (s *Selection) AllOf(ids []string) bool {
	return len(ids) > 0 && s.allOf(ids)
}

// AnyOf reports whether at least one id in ids is selected.
func (s *Selection) AnyOf(ids []string) bool {
	return slices.ContainsFunc(ids, s.IsSelected)
}

func (s *Selection) allOf(ids []string) bool {
	for _, id := range ids {
		if !s.IsSelected(id) {
			return false
		}
	}
	return true
}

func (s *Selection) add(id string) {
	s.seq++
	s.ids[id] = s.seq
}
