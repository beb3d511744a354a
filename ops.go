package nawa

// Concat concatenates ropes and returns a new rope.
func Concat[T any](r Rope[T], others ...Rope[T]) Rope[T] {
	root := r.root
	for _, o := range others {
		root = join(root, o.root)
	}
	tracer().Debugf("concat of %d ropes has height %d", len(others)+1, root.Height())
	return Rope[T]{root: root}
}

// Split splits a rope into two new (smaller) ropes right before position i.
// Split(R,i) => split R into R1 and R2, with R1=x0,...,xi-1 and R2=xi,...,xn.
func Split[T any](r Rope[T], i uint64) (Rope[T], Rope[T], error) {
	left, right, err := split(r.root, i)
	if err != nil {
		return Rope[T]{}, Rope[T]{}, err
	}
	return Rope[T]{root: left}, Rope[T]{root: right}, nil
}

// Substr creates a new rope from the elements [start,end) of r.
func Substr[T any](r Rope[T], start, end uint64) (Rope[T], error) {
	if start > end {
		return Rope[T]{}, invalidRange(start, end)
	}
	// as in Delete, report end in absolute positions
	if end > r.Len() {
		return Rope[T]{}, indexOutOfBounds(r.Len(), end)
	}
	_, rest, err := split(r.root, start)
	if err != nil {
		return Rope[T]{}, err
	}
	sub, _, err := split(rest, end-start)
	if err != nil {
		return Rope[T]{}, err
	}
	return Rope[T]{root: sub}, nil
}

// Text returns a rope of bytes as a Go string. This may be an expensive
// operation, as it will collect all fragments to a single continuous string.
func Text(r Rope[byte]) string {
	return string(r.Items())
}
