package store

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a set of handles, backed by a 32-bit roaring bitmap. It is the
// selection-group type for bulk operations on a List: collect handles into
// a Set, then tag or remove them all in one pass.
type Set[H Handle] struct {
	rb *roaring.Bitmap
}

// NewSet creates an empty handle set.
func NewSet[H Handle]() *Set[H] {
	return &Set[H]{rb: roaring.New()}
}

// Add adds h to the set.
func (s *Set[H]) Add(h H) {
	s.rb.Add(uint32(h))
}

// Remove removes h from the set.
func (s *Set[H]) Remove(h H) {
	s.rb.Remove(uint32(h))
}

// Contains reports whether h is in the set.
func (s *Set[H]) Contains(h H) bool {
	return s.rb.Contains(uint32(h))
}

// IsEmpty reports whether the set has no members.
func (s *Set[H]) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Len returns the number of handles in the set.
func (s *Set[H]) Len() int {
	return int(s.rb.GetCardinality())
}

// Clone returns an independent copy of the set.
func (s *Set[H]) Clone() *Set[H] {
	return &Set[H]{rb: s.rb.Clone()}
}

// All iterates the handles in ascending order.
func (s *Set[H]) All() iter.Seq[H] {
	return func(yield func(H) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(H(it.Next())) {
				return
			}
		}
	}
}
