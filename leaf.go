package segtree

import "fmt"

// Leaf is a handle to a materialized leaf of a tree. It is obtained by
// Tree.At or Tree.First and stays valid for the lifetime of the tree, as
// nodes are never removed individually. Moving the tree invalidates it.
type Leaf[T any] struct {
	tree  *Tree[T]
	node  int
	epoch uint64
}

// At locates the leaf for index, materializing the path from the root to it
// if necessary. An index outside the domain is rejected before any node is
// created.
func (t *Tree[T]) At(index int) (Leaf[T], error) {
	if t == nil {
		return Leaf[T]{}, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if !t.Contains(index) {
		return Leaf[T]{}, fmt.Errorf("%w: %d not in [%d..%d]", ErrOutOfDomain, index, t.lo, t.hi)
	}
	i, size := 0, len(t.nodes)
	for !t.nodes[i].isLeaf() {
		if index <= midpoint(t.nodes[i].lo, t.nodes[i].hi) {
			i = t.leftChild(i)
		} else {
			i = t.rightChild(i)
		}
	}
	assert(t.nodes[i].lo == index, "At descended to wrong leaf")
	if i == 0 {
		t.located = true
	}
	if created := len(t.nodes) - size; created > 0 {
		tracer().Debugf("located %d, materialized %d nodes", index, created)
	}
	return t.leaf(i), nil
}

// Set assigns value to index. It is a shortcut for At followed by Assign.
func (t *Tree[T]) Set(index int, value T) error {
	leaf, err := t.At(index)
	if err != nil {
		return err
	}
	leaf.Assign(value)
	return nil
}

func (t *Tree[T]) leaf(i int) Leaf[T] {
	return Leaf[T]{tree: t, node: i, epoch: t.epoch}
}

func (l Leaf[T]) check() *node[T] {
	assert(l.tree != nil, "use of zero leaf handle")
	assert(l.epoch == l.tree.epoch, "use of leaf handle after tree has been moved")
	return &l.tree.nodes[l.node]
}

// Index returns the domain index of the leaf.
func (l Leaf[T]) Index() int {
	return l.check().lo
}

// Value returns the value currently stored at the leaf.
func (l Leaf[T]) Value() T {
	return l.check().value
}

// Assign stores value at the leaf and recomputes the aggregate of every
// ancestor, bottom-up to the root. After Assign returns, all range queries
// reflect the new value.
func (l Leaf[T]) Assign(value T) {
	n := l.check()
	n.value = value
	t := l.tree
	for p := n.parent; p != noNode; p = t.nodes[p].parent {
		t.recompute(p)
	}
	if t.cast != nil {
		t.cast.Pub(Update[T]{Index: n.lo, Value: value})
	}
}
