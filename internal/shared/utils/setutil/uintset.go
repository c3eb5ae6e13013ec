// Package setutil provides generic set utilities for common ID collection patterns.
package setutil

// UintSet is a set of uint values backed by map[uint]struct{}.
type UintSet struct {
	items map[uint]struct{}
}

// NewUintSet creates a new empty UintSet.
func NewUintSet() *UintSet {
	return &UintSet{
		items: make(map[uint]struct{}),
	}
}

// NewUintSetWithCap creates a new UintSet with initial capacity.
func NewUintSetWithCap(cap int) *UintSet {
	return &UintSet{
		items: make(map[uint]struct{}, cap),
	}
}

// FromSlice creates a UintSet containing the given ids.
func FromSlice(ids []uint) *UintSet {
	s := NewUintSetWithCap(len(ids))
	s.AddAll(ids)
	return s
}

// Add adds an id to the set.
func (s *UintSet) Add(id uint) {
	s.items[id] = struct{}{}
}

// AddAll adds all ids to the set.
func (s *UintSet) AddAll(ids []uint) {
	for _, id := range ids {
		s.items[id] = struct{}{}
	}
}

// Has returns true if the id exists in the set.
func (s *UintSet) Has(id uint) bool {
	_, ok := s.items[id]
	return ok
}

// Union adds every element of other into s and returns s.
func (s *UintSet) Union(other *UintSet) *UintSet {
	if other == nil {
		return s
	}
	for id := range other.items {
		s.items[id] = struct{}{}
	}
	return s
}

// Intersect returns a new set containing ids present in both s and the slice.
func (s *UintSet) Intersect(ids []uint) *UintSet {
	result := NewUintSet()
	for _, id := range ids {
		if s.Has(id) {
			result.Add(id)
		}
	}
	return result
}

// ToSlice returns all ids as a slice. The order is not guaranteed.
func (s *UintSet) ToSlice() []uint {
	result := make([]uint, 0, len(s.items))
	for id := range s.items {
		result = append(result, id)
	}
	return result
}

// Len returns the number of elements in the set.
func (s *UintSet) Len() int {
	return len(s.items)
}
