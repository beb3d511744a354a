package nawa

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"
	"slices"
)

// Rope is a persistent sequence of elements of type T.
//
// A rope created by
//
//	Rope[T]{}
//
// is a valid object and behaves like the empty sequence.
//
// Due to their internal structure ropes do have performance characteristics
// differing from Go slices. h is the height of the rope's tree, which is
// log n for ropes built by appending fragments, but may grow up to the number
// of edit operations, as ropes are never rebalanced.
//
//	Operation     |   Rope          |  Slice
//	--------------+-----------------+--------
//	Len           |   O(1)          |   O(1)
//	Index         |   O(h)          |   O(1)
//	Split         |   O(h)          |   O(1)
//	Iterate       |   O(n)          |   O(n)
//
//	Concatenate   |   O(1)          |   O(n)
//	Insert        |   O(h)          |   O(n)
//	Delete        |   O(h)          |   O(n)
//
// Ropes are never modified. Insert and Delete return a new rope, the
// receiver stays valid and shares all unchanged parts of its tree with the
// result.
type Rope[T any] struct {
	root *ropeNode[T]
}

// New returns an empty rope.
func New[T any]() Rope[T] {
	return Rope[T]{}
}

// From creates a rope from a slice of elements. The slice is not copied, so
// clients must not modify its elements afterwards.
func From[T any](items []T) Rope[T] {
	return Rope[T]{root: &makeLeafNode(items).ropeNode}
}

// FromString creates a rope of the bytes of a Go string.
func FromString(s string) Rope[byte] {
	return From([]byte(s))
}

// Len returns the number of elements of the rope.
func (r Rope[T]) Len() uint64 {
	return r.root.Len()
}

// IsEmpty returns true if the rope has no elements.
func (r Rope[T]) IsEmpty() bool {
	return r.Len() == 0
}

// Insert inserts items before position i, resulting in a new rope.
// If i is greater than the length of r, an out-of-bounds error is returned.
// items is not copied.
func (r Rope[T]) Insert(i uint64, items []T) (Rope[T], error) {
	a, c, err := split(r.root, i)
	if err != nil {
		return Rope[T]{}, err
	}
	b := &makeLeafNode(items).ropeNode
	return Rope[T]{root: join(a, join(b, c))}, nil
}

// Delete removes the elements [start,end) from r, resulting in a new rope.
// It is an error if start is greater than end or if end is greater than
// the length of r.
func (r Rope[T]) Delete(start, end uint64) (Rope[T], error) {
	if start > end {
		return Rope[T]{}, invalidRange(start, end)
	}
	// checked here, so the error reports end in absolute positions
	if end > r.Len() {
		return Rope[T]{}, indexOutOfBounds(r.Len(), end)
	}
	a, rest, err := split(r.root, start)
	if err != nil {
		return Rope[T]{}, err
	}
	_, d, err := split(rest, end-start)
	if err != nil {
		return Rope[T]{}, err
	}
	return Rope[T]{root: join(a, d)}, nil
}

// Items returns the elements of the rope as a slice. This may be an expensive
// operation, as it will allocate a slice for all the elements of the rope.
// The slice is a snapshot, owned by the caller.
func (r Rope[T]) Items() []T {
	return flatten(r.root)
}

// At returns the element at position i.
func (r Rope[T]) At(i uint64) (T, error) {
	if i >= r.Len() {
		var zero T
		return zero, indexOutOfBounds(r.Len(), i)
	}
	items, j := locate(r.root, i)
	return items[j], nil
}

// All returns an iterator over all elements of r together with their position.
func (r Rope[T]) All() iter.Seq2[uint64, T] {
	return func(yield func(uint64, T) bool) {
		eachLeaf(r.root, func(items []T, pos uint64) bool {
			for j, x := range items {
				if !yield(pos+uint64(j), x) {
					return false
				}
			}
			return true
		})
	}
}

// Fragments returns an iterator over the runs of elements a rope consists of.
// Clients must not modify the runs.
func (r Rope[T]) Fragments() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		eachLeaf(r.root, func(items []T, _ uint64) bool {
			return yield(items)
		})
	}
}

// EachFragment visits all runs of elements in logical order.
//
// The callback receives each run and its starting position. Iteration stops
// at the first callback error and returns that error to the caller.
func (r Rope[T]) EachFragment(f func([]T, uint64) error) error {
	var err error
	eachLeaf(r.root, func(items []T, pos uint64) bool {
		err = f(items, pos)
		return err == nil
	})
	return err
}

// FragmentCount returns the number of fragments this rope is internally split into.
func (r Rope[T]) FragmentCount() int {
	cnt := 0
	eachLeaf(r.root, func([]T, uint64) bool {
		cnt++
		return true
	})
	return cnt
}

// Height returns the height of the rope's tree, 0 for an empty rope.
func (r Rope[T]) Height() int {
	if r.IsEmpty() {
		return 0
	}
	return r.root.Height()
}

// --- Comparison ------------------------------------------------------------

// Equal reports whether two ropes hold the same elements in the same order.
// The shape of the ropes' trees does not matter.
func Equal[T comparable](a, b Rope[T]) bool {
	return a.Len() == b.Len() && slices.Equal(a.Items(), b.Items())
}

// EqualFunc is like Equal, but uses eq to compare elements.
func EqualFunc[T any](a, b Rope[T], eq func(T, T) bool) bool {
	return a.Len() == b.Len() && slices.EqualFunc(a.Items(), b.Items(), eq)
}

// Compare compares the elements of two ropes lexicographically.
// It returns -1 if a < b, 0 if a == b and +1 if a > b.
func Compare[T cmp.Ordered](a, b Rope[T]) int {
	return slices.Compare(a.Items(), b.Items())
}

// CompareFunc is like Compare, but uses cmp to compare elements.
func CompareFunc[T any](a, b Rope[T], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Items(), b.Items(), cmp)
}
