package selection

import "sync"

// Key identifies one piece of extracted evidence. Two documents can share a
// display name, so the key carries the raw text as well. Struct equality is
// used instead of concatenated strings to avoid delimiter collisions when the
// raw text itself contains the separator.
type Key struct {
	DocumentName string
	RawText      string
}

// Set tracks the evidence items marked for essay composition. Membership here
// is independent from the "detail view" selection, which callers keep
// separately. Insertion order is preserved so the composed context is stable.
type Set[V any] struct {
	mu    sync.RWMutex
	keyOf func(V) Key
	items map[Key]V
	order []Key
}

func NewSet[V any](keyOf func(V) Key) *Set[V] {
	return &Set[V]{
		keyOf: keyOf,
		items: make(map[Key]V),
	}
}

// Add inserts the item. Adding an already-present key is a no-op; the return
// value reports whether the set changed.
func (s *Set[V]) Add(v V) bool {
	k := s.keyOf(v)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[k]; ok {
		return false
	}
	s.items[k] = v
	s.order = append(s.order, k)
	return true
}

// Remove deletes the item if present. Removing an absent key is a no-op.
func (s *Set[V]) Remove(v V) bool {
	k := s.keyOf(v)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[k]; !ok {
		return false
	}
	delete(s.items, k)
	for i, existing := range s.order {
		if existing == k {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Toggle flips composition membership for the item and returns the resulting
// membership state.
func (s *Set[V]) Toggle(v V) bool {
	if s.IsSelected(s.keyOf(v)) {
		s.Remove(v)
		return false
	}
	s.Add(v)
	return true
}

func (s *Set[V]) IsSelected(k Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[k]
	return ok
}

func (s *Set[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[Key]V)
	s.order = nil
}

func (s *Set[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Items returns the selected items in insertion order.
func (s *Set[V]) Items() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]V, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.items[k])
	}
	return out
}
