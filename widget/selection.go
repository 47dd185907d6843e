package widget

import "github.com/poiesic/typeahead/core"

// recentCapacity bounds the most-recent-first list of picked candidates.
const recentCapacity = 5

// Selector tracks the current selection and a bounded recent list. In
// single mode the selection holds at most one candidate; in multi mode
// it is an ordered set keyed by candidate id, in toggle order.
//
// Selector is not safe for concurrent use; Session serializes access.
type Selector struct {
	multiple bool
	selected []core.Candidate
	recent   []core.Candidate
	onChange func(selected []core.Candidate)
}

// NewSelector creates a selector. The mode is fixed for its lifetime.
func NewSelector(multiple bool) *Selector {
	return &Selector{multiple: multiple}
}

// Multiple reports whether the selector is in multi-select mode.
func (s *Selector) Multiple() bool {
	return s.multiple
}

// OnChange registers a callback invoked with the new selection after
// every toggle and every effective remove. No-op removes do not fire it.
func (s *Selector) OnChange(fn func(selected []core.Candidate)) {
	s.onChange = fn
}

// Toggle flips candidate membership. In multi mode an already-selected
// id is removed, otherwise the candidate is appended. In single mode the
// candidate replaces the selection. Returns whether the candidate is
// selected afterwards.
func (s *Selector) Toggle(candidate core.Candidate) bool {
	if !s.multiple {
		s.selected = []core.Candidate{candidate}
		s.pushRecent(candidate)
		s.notify()
		return true
	}

	if i := s.indexOf(candidate.ID); i >= 0 {
		s.selected = append(s.selected[:i], s.selected[i+1:]...)
		s.notify()
		return false
	}

	s.selected = append(s.selected, candidate)
	s.pushRecent(candidate)
	s.notify()
	return true
}

// Remove drops the candidate with the given id from a multi selection.
// Returns whether anything changed; no-ops (unknown id, single mode) do
// not fire the change callback.
func (s *Selector) Remove(id string) bool {
	if !s.multiple {
		return false
	}
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.selected = append(s.selected[:i], s.selected[i+1:]...)
	s.notify()
	return true
}

// Selected returns a copy of the current selection in toggle order.
func (s *Selector) Selected() []core.Candidate {
	out := make([]core.Candidate, len(s.selected))
	copy(out, s.selected)
	return out
}

// Recent returns a copy of the recent list, most recent first.
func (s *Selector) Recent() []core.Candidate {
	out := make([]core.Candidate, len(s.recent))
	copy(out, s.recent)
	return out
}

func (s *Selector) indexOf(id string) int {
	for i, c := range s.selected {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// pushRecent prepends the candidate to the recent list, marking it
// recent, deduplicating by id, and truncating to capacity.
func (s *Selector) pushRecent(candidate core.Candidate) {
	candidate.Recent = true

	kept := make([]core.Candidate, 0, len(s.recent)+1)
	kept = append(kept, candidate)
	for _, c := range s.recent {
		if c.ID == candidate.ID {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) > recentCapacity {
		kept = kept[:recentCapacity]
	}
	s.recent = kept
}

func (s *Selector) notify() {
	if s.onChange != nil {
		s.onChange(s.Selected())
	}
}
