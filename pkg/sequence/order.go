package sequence

import (
	"errors"
	"sync"
)

var ErrInvalidIndex = errors.New("sequence: index out of range")

// Store keeps a user-adjustable permutation over a fixed backing collection
// (essay body paragraphs). Reordering never mutates the backing data; the
// permutation is resolved against it on read.
type Store struct {
	mu    sync.RWMutex
	order []int
}

func New() *Store {
	return &Store{}
}

// Initialize resets the permutation to the identity [0, 1, ..., n-1]. Called
// whenever the backing collection is replaced wholesale.
func (s *Store) Initialize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = identity(n)
}

// Reorder removes the element at from and reinserts it at to. Out-of-range
// indices fail with ErrInvalidIndex and leave the order unchanged.
func (s *Store) Reorder(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.order)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrInvalidIndex
	}

	moved := s.order[from]
	rest := append(s.order[:from:from], s.order[from+1:]...)
	next := make([]int, 0, n)
	next = append(next, rest[:to]...)
	next = append(next, moved)
	next = append(next, rest[to:]...)
	s.order = next
	return nil
}

// Order returns a copy of the current permutation.
func (s *Store) Order() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// Load restores a persisted permutation for a backing collection of size n.
// A stale or corrupt permutation (wrong length, or not a bijection over
// [0, n)) falls back to the identity; the return value reports whether the
// stored order was usable.
func (s *Store) Load(order []int, n int) bool {
	if !isPermutation(order, n) {
		s.Initialize(n)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = make([]int, n)
	copy(s.order, order)
	return true
}

// Resolve maps the stored permutation over the backing collection. If the
// permutation length no longer matches the backing collection (structural
// change without a matching Initialize), the store reinitializes to the
// identity rather than indexing out of bounds.
func Resolve[T any](s *Store, backing []T) []T {
	s.mu.Lock()
	if len(s.order) != len(backing) {
		s.order = identity(len(backing))
	}
	order := make([]int, len(s.order))
	copy(order, s.order)
	s.mu.Unlock()

	out := make([]T, 0, len(backing))
	for _, idx := range order {
		out = append(out, backing[idx])
	}
	return out
}

func identity(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func isPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}
