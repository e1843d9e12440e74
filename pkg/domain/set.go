package domain

import (
	"cmp"
	"slices"
)

// Set is a small map-backed set used for states and alphabets.
type Set[T cmp.Ordered] map[T]struct{}

// NewSet builds a set from the given members.
func NewSet[T cmp.Ordered](members ...T) Set[T] {
	s := make(Set[T], len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Has reports whether v is a member of the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the members in ascending order.
func (s Set[T]) Sorted() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// SubsetOf reports whether every member of s belongs to other.
// It returns the first offending member otherwise.
func (s Set[T]) SubsetOf(other Set[T]) (T, bool) {
	for _, v := range s.Sorted() {
		if !other.Has(v) {
			return v, false
		}
	}
	var zero T
	return zero, true
}
