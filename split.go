package nawa

// side tags a subtree bypassed while descending to a split position.
type side int8

const (
	toLeft side = iota
	toRight
)

type bypassed[T any] struct {
	node *ropeNode[T]
	side side
}

// split partitions the tree starting at node into the runs [0,i) and [i,len).
//
// We descend from the root to the leaf containing position i and remember
// every sibling we pass by on a stack. A sibling to the left of the descent
// path belongs to the left result, a sibling to the right belongs to the right
// result. After splitting the leaf we unwind the stack, attaching each sibling
// to its side. Ropes are not balanced and may get very deep, so we do not
// recurse.
//
// node is not modified; unchanged subtrees are shared between node and the
// results.
func split[T any](node *ropeNode[T], i uint64) (*ropeNode[T], *ropeNode[T], error) {
	if n := node.Len(); i > n {
		return nil, nil, indexOutOfBounds(n, i)
	}
	if node == nil {
		return nil, nil, nil
	}
	var work []bypassed[T]
	var left, right *ropeNode[T]
	for node != nil {
		if node.IsLeaf() {
			left, right = node.AsLeaf().split(i)
			break
		}
		inner := node.AsInner()
		if i < inner.left.Len() {
			work = append(work, bypassed[T]{node: inner.right, side: toRight})
			node = inner.left
		} else {
			i -= inner.left.Len()
			work = append(work, bypassed[T]{node: inner.left, side: toLeft})
			node = inner.right
		}
	}
	for k := len(work) - 1; k >= 0; k-- {
		switch work[k].side {
		case toLeft:
			left = join(work[k].node, left)
		case toRight:
			right = join(right, work[k].node)
		}
	}
	return left, right, nil
}
