package nawa

// eachLeaf visits the non-empty leafs below node from left to right,
// together with the position of their first element. Iteration stops as soon
// as f returns false.
//
// Right subtrees are deferred on an explicit stack while we walk down a left
// spine. The stack is bounded by the height of the tree, which is not balanced,
// so recursion is not an option.
func eachLeaf[T any](node *ropeNode[T], f func(items []T, pos uint64) bool) {
	if node == nil {
		return
	}
	var pending []*ropeNode[T]
	var pos uint64
	for {
		if !node.IsLeaf() {
			inner := node.AsInner()
			pending = append(pending, inner.right)
			node = inner.left
			continue
		}
		if items := node.AsLeaf().items; len(items) > 0 {
			if !f(items, pos) {
				return
			}
			pos += uint64(len(items))
		}
		if len(pending) == 0 {
			return
		}
		node = pending[len(pending)-1]
		pending = pending[:len(pending)-1]
	}
}

// flatten collects the elements below node in order.
func flatten[T any](node *ropeNode[T]) []T {
	items := make([]T, 0, node.Len())
	eachLeaf(node, func(run []T, _ uint64) bool {
		items = append(items, run...)
		return true
	})
	return items
}

type visit[T any] struct {
	node  *ropeNode[T]
	pos   uint64
	depth int
}

// traverse visits every node below node in pre-order, i.e. an inner node
// before its children. f receives the position of the node's first element
// and the node's depth, with the start node at depth 0. The first error
// returned by f stops the traversal.
func traverse[T any](node *ropeNode[T], f func(node *ropeNode[T], pos uint64, depth int) error) error {
	if node == nil {
		return nil
	}
	stack := []visit[T]{{node: node}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := f(v.node, v.pos, v.depth); err != nil {
			return err
		}
		if v.node.IsLeaf() {
			continue
		}
		inner := v.node.AsInner()
		stack = append(stack,
			visit[T]{node: inner.right, pos: v.pos + inner.left.Len(), depth: v.depth + 1},
			visit[T]{node: inner.left, pos: v.pos, depth: v.depth + 1},
		)
	}
	return nil
}

// locate finds the leaf containing position i, which must be a valid element
// index, and returns the leaf's run together with the offset of i within it.
func locate[T any](node *ropeNode[T], i uint64) ([]T, uint64) {
	for !node.IsLeaf() {
		inner := node.AsInner()
		if i < inner.left.Len() {
			node = inner.left
		} else {
			i -= inner.left.Len()
			node = inner.right
		}
	}
	return node.AsLeaf().items, i
}
