package common

type Set[T comparable] struct {
	elements map[T]struct{}
}

// NewSet creates a new set
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{
		elements: make(map[T]struct{}),
	}
}

// Add inserts an element into the set
func (s *Set[T]) Add(value T) {
	s.elements[value] = struct{}{}
}

// AddAll inserts every element of values into the set
func (s *Set[T]) AddAll(values []T) {
	for _, value := range values {
		s.elements[value] = struct{}{}
	}
}

// Contains checks if an element is in the set
func (s *Set[T]) Contains(value T) bool {
	_, found := s.elements[value]
	return found
}

// Size returns the number of elements in the set
func (s *Set[T]) Size() int {
	return len(s.elements)
}
