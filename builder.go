package nawa

// Builder incrementally stages fragments and finalizes them into a Rope.
//
// Builder collects runs of elements and materializes the rope only when
// Rope() is called. Fragments become the leafs of the rope, which is built
// as a balanced tree.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[T any] struct {
	// front keeps prepended fragments in reverse logical order.
	front [][]T
	// back keeps appended fragments in logical order.
	back [][]T

	done  bool
	dirty bool
	rope  Rope[T]
}

// NewBuilder creates a new and empty rope builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Rope returns the rope built from all staged fragments.
//
// It is illegal to continue adding fragments after Rope has been called, but
// Rope may be called multiple times.
func (b *Builder[T]) Rope() Rope[T] {
	if b == nil {
		return Rope[T]{}
	}
	if b.dirty {
		b.rope = b.buildRope()
		b.dirty = false
	}
	b.done = true
	if b.rope.IsEmpty() {
		tracer().Debugf("rope builder: rope is void")
	}
	return b.rope
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	if b == nil {
		return
	}
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.rope = Rope[T]{}
}

// Append appends a fragment to the staged build. The fragment is not copied.
func (b *Builder[T]) Append(items []T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if len(items) == 0 {
		return nil
	}
	b.back = append(b.back, items)
	b.dirty = true
	return nil
}

// Prepend prepends a fragment to the staged build. The fragment is not copied.
func (b *Builder[T]) Prepend(items []T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if len(items) == 0 {
		return nil
	}
	b.front = append(b.front, items)
	b.dirty = true
	return nil
}

// buildRope joins neighbouring fragments pairwise, level by level, which
// results in a tree of logarithmic height.
func (b *Builder[T]) buildRope() Rope[T] {
	parts := b.orderedFragments()
	if len(parts) == 0 {
		return Rope[T]{}
	}
	level := make([]*ropeNode[T], len(parts))
	for i, p := range parts {
		level[i] = &makeLeafNode(p).ropeNode
	}
	for len(level) > 1 {
		next := level[:0]
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				break
			}
			next = append(next, join(level[i], level[i+1]))
		}
		level = next
	}
	return Rope[T]{root: level[0]}
}

func (b *Builder[T]) orderedFragments() [][]T {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([][]T, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}
