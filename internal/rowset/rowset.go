package rowset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a set of 32-bit row positions.
// It wraps the official roaring implementation.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty row set.
func New() *Set {
	return &Set{
		rb: roaring.New(),
	}
}

// Add adds a row position to the set.
func (s *Set) Add(row uint32) {
	s.rb.Add(row)
}

// Contains checks if a row position is in the set.
func (s *Set) Contains(row uint32) bool {
	return s.rb.Contains(row)
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Len returns the number of row positions in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// Min returns the smallest row position in the set.
// The second return value is false if the set is empty.
func (s *Set) Min() (uint32, bool) {
	if s.rb.IsEmpty() {
		return 0, false
	}
	return s.rb.Minimum(), true
}

// Iter returns an iterator over the set in ascending row order.
func (s *Set) Iter() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}
