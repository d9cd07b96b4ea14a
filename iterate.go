package segtree

import "iter"

// First returns the leftmost materialized leaf. It returns false if no leaf
// has been located yet.
func (t *Tree[T]) First() (Leaf[T], bool) {
	if t == nil {
		return Leaf[T]{}, false
	}
	if t.nodes[0].isLeaf() {
		return t.leaf(0), t.located
	}
	if !t.nodes[0].hasChildren() {
		return Leaf[T]{}, false
	}
	return t.leaf(t.leftmostLeaf(0)), true
}

// Next returns the materialized leaf following l in index order, or false if
// l is the last one.
func (l Leaf[T]) Next() (Leaf[T], bool) {
	l.check()
	if next := l.tree.successor(l.node); next != noNode {
		return l.tree.leaf(next), true
	}
	return Leaf[T]{}, false
}

// All returns an iterator over (index, value) pairs of all materialized leaves
// in ascending index order. The iterator may be restarted; mutating the tree
// while iterating is allowed, as long as the tree is not moved.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for l, ok := t.First(); ok; l, ok = l.Next() {
			if !yield(l.Index(), l.Value()) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of all materialized leaves in
// ascending index order.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// successor computes the leaf after leaf i without any iteration state.
// Content to the right of a subtree exists exactly when the subtree is a left
// child with a materialized right sibling.
func (t *Tree[T]) successor(i int) int {
	for {
		p := t.nodes[i].parent
		if p == noNode {
			return noNode
		}
		if t.nodes[p].left == i && t.nodes[p].right != noNode {
			return t.leftmostLeaf(t.nodes[p].right)
		}
		i = p
	}
}

// leftmostLeaf descends from node i to its leftmost materialized leaf.
// Every materialized non-root node lies on a path to a leaf, so the descent
// cannot get stuck.
func (t *Tree[T]) leftmostLeaf(i int) int {
	for !t.nodes[i].isLeaf() {
		n := &t.nodes[i]
		assert(n.hasChildren(), "leftmostLeaf reached a childless inner node")
		if n.left != noNode {
			i = n.left
		} else {
			i = n.right
		}
	}
	return i
}
