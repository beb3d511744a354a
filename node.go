package nawa

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// A rope builds a binary tree structure on top of runs of elements. Inner
// nodes carry exactly two children, the total length of their subtree and a
// height indicator. Some invariants hold:
//
//   * The length of an inner node is the sum of the lengths of its children.
//   * The height of an inner node is the maximum of its children's heights plus 1.
//   * The length of a leaf is equal to the length of the run it carries.
//   * No inner node has a child of length 0.
//
// The last invariant is established by join, which is the only place where
// inner nodes are created.
//
// Nodes are never modified after construction. Trees may therefore share
// subtrees with other trees, which makes ropes persistent.

// --- Node types ------------------------------------------------------------

// We use 2 types of distinct nodes: inner nodes and leaf nodes.
// Every node carries a reference to itself, so that node operations are able
// to distinguish the type of node they operate on. To ensure the 'self'
// reference to always be correctly initialized, we create nodes exclusively
// through the make…() functions below.
//
// A nil *ropeNode is a valid node and represents the empty run.

type ropeNode[T any] struct {
	self any
}

type innerNode[T any] struct {
	ropeNode[T]
	left, right *ropeNode[T]
	length      uint64
	height      int
}

type leafNode[T any] struct {
	ropeNode[T]
	items []T
}

func makeInnerNode[T any]() *innerNode[T] {
	inner := &innerNode[T]{}
	inner.self = inner
	return inner
}

// makeLeafNode wraps items without copying them. The capacity of the run is
// capped, so appending to a leaf's run will never write into memory shared
// with another leaf.
func makeLeafNode[T any](items []T) *leafNode[T] {
	leaf := &leafNode[T]{items: items[:len(items):len(items)]}
	leaf.self = leaf
	return leaf
}

func (node *ropeNode[T]) AsInner() *innerNode[T] {
	return node.self.(*innerNode[T])
}

func (node *ropeNode[T]) AsLeaf() *leafNode[T] {
	return node.self.(*leafNode[T])
}

func (node *ropeNode[T]) IsLeaf() bool {
	assert(node.self != nil, "internal error: node has no self")
	_, ok := node.self.(*leafNode[T])
	return ok
}

// Len returns the number of elements in the subtree of node.
func (node *ropeNode[T]) Len() uint64 {
	if node == nil {
		return 0
	}
	if node.IsLeaf() {
		return uint64(len(node.AsLeaf().items))
	}
	return node.AsInner().length
}

// Height returns 1 for leafs and 0 for the empty run.
func (node *ropeNode[T]) Height() int {
	if node == nil {
		return 0
	}
	if node.IsLeaf() {
		return 1
	}
	return node.AsInner().height
}

func (node *ropeNode[T]) String() string {
	if node == nil {
		return "<nil>"
	}
	if node.IsLeaf() {
		return fmt.Sprintf("<leaf %d>", node.Len())
	}
	return fmt.Sprintf("<inner %d|%d|>", node.Len(), node.Height())
}

// join combines two subtrees. Empty operands are elided, so every inner
// node created here has two non-empty children.
func join[T any](left, right *ropeNode[T]) *ropeNode[T] {
	if left.Len() == 0 {
		return right
	}
	if right.Len() == 0 {
		return left
	}
	inner := makeInnerNode[T]()
	inner.left = left
	inner.right = right
	inner.length = left.Len() + right.Len()
	inner.height = max(left.Height(), right.Height()) + 1
	return &inner.ropeNode
}

// split splits a leaf node at position i, resulting in 2 leaf nodes.
// Both share the backing array of leaf. Splitting at either end re-uses leaf
// and returns nil for the empty side.
func (leaf *leafNode[T]) split(i uint64) (*ropeNode[T], *ropeNode[T]) {
	assert(i <= uint64(len(leaf.items)), "leaf split position out of range")
	if i == 0 {
		return nil, &leaf.ropeNode
	}
	if i == uint64(len(leaf.items)) {
		return &leaf.ropeNode, nil
	}
	l := makeLeafNode(leaf.items[:i])
	r := makeLeafNode(leaf.items[i:])
	return &l.ropeNode, &r.ropeNode
}
