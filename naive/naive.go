package naive

import "fmt"

// Rope is a sequence of elements of type T, held in a single slice.
// The zero value is an empty rope.
type Rope[T any] struct {
	items []T
}

// New returns an empty rope.
func New[T any]() Rope[T] {
	return Rope[T]{}
}

// From creates a rope from a slice of elements. The slice is not copied.
func From[T any](items []T) Rope[T] {
	return Rope[T]{items: items}
}

// Len returns the number of elements. O(1).
func (r Rope[T]) Len() uint64 {
	return uint64(len(r.items))
}

// IsEmpty returns true if the rope has no elements.
func (r Rope[T]) IsEmpty() bool {
	return len(r.items) == 0
}

// Insert returns a copy of r with items inserted before position i.
func (r Rope[T]) Insert(i uint64, items []T) (Rope[T], error) {
	if i > r.Len() {
		return Rope[T]{}, indexOutOfBounds(r.Len(), i)
	}
	out := make([]T, 0, len(r.items)+len(items))
	out = append(out, r.items[:i]...)
	out = append(out, items...)
	out = append(out, r.items[i:]...)
	return Rope[T]{items: out}, nil
}

// Delete returns a copy of r without the elements [start,end).
func (r Rope[T]) Delete(start, end uint64) (Rope[T], error) {
	if start > end {
		return Rope[T]{}, fmt.Errorf("%w: slice index starts at %d but ends at %d", ErrInvalidRange, start, end)
	}
	if end > r.Len() {
		return Rope[T]{}, indexOutOfBounds(r.Len(), end)
	}
	out := make([]T, 0, len(r.items)-int(end-start))
	out = append(out, r.items[:start]...)
	out = append(out, r.items[end:]...)
	return Rope[T]{items: out}, nil
}

// Items returns a copy of the elements. The result is never nil.
func (r Rope[T]) Items() []T {
	return append(make([]T, 0, len(r.items)), r.items...)
}
