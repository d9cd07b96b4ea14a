package segtree

import "fmt"

// Check validates structural tree invariants and the aggregate invariant:
// every internal node with children holds the Add of its children's values.
//
// This checker is intentionally strict and is meant to be used in tests.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if len(t.nodes) == 0 {
		return fmt.Errorf("%w: tree has no root", ErrInvalidConfig)
	}
	root := &t.nodes[0]
	if root.parent != noNode {
		return fmt.Errorf("%w: root has a parent", ErrInvalidConfig)
	}
	if root.lo != t.lo || root.hi != t.hi {
		return fmt.Errorf("%w: root spans [%d..%d], domain is [%d..%d]",
			ErrInvalidConfig, root.lo, root.hi, t.lo, t.hi)
	}
	visited, err := t.checkNode(0)
	if err != nil {
		return err
	}
	if visited != len(t.nodes) {
		return fmt.Errorf("%w: %d of %d nodes unreachable from root",
			ErrInvalidConfig, len(t.nodes)-visited, len(t.nodes))
	}
	return nil
}

func (t *Tree[T]) checkNode(i int) (visited int, err error) {
	n := &t.nodes[i]
	if n.lo > n.hi {
		return 0, fmt.Errorf("%w: node %d has empty span [%d..%d]", ErrInvalidConfig, i, n.lo, n.hi)
	}
	if n.isLeaf() {
		if n.hasChildren() {
			return 0, fmt.Errorf("%w: leaf %d has children", ErrInvalidConfig, n.lo)
		}
		return 1, nil
	}
	if !n.hasChildren() {
		if i != 0 {
			return 0, fmt.Errorf("%w: inner node [%d..%d] has no children", ErrInvalidConfig, n.lo, n.hi)
		}
		return 1, nil
	}
	mid := midpoint(n.lo, n.hi)
	visited = 1
	for _, c := range []struct {
		child  int
		lo, hi int
	}{
		{n.left, n.lo, mid},
		{n.right, mid + 1, n.hi},
	} {
		if c.child == noNode {
			continue
		}
		if c.child <= 0 || c.child >= len(t.nodes) {
			return 0, fmt.Errorf("%w: dangling child reference %d", ErrInvalidConfig, c.child)
		}
		child := &t.nodes[c.child]
		if child.parent != i {
			return 0, fmt.Errorf("%w: node [%d..%d] has wrong parent", ErrInvalidConfig, child.lo, child.hi)
		}
		if child.lo != c.lo || child.hi != c.hi {
			return 0, fmt.Errorf("%w: child spans [%d..%d], expected [%d..%d]",
				ErrInvalidConfig, child.lo, child.hi, c.lo, c.hi)
		}
		cnt, err := t.checkNode(c.child)
		if err != nil {
			return 0, err
		}
		visited += cnt
	}
	var want T
	switch {
	case n.left == noNode:
		want = t.nodes[n.right].value
	case n.right == noNode:
		want = t.nodes[n.left].value
	default:
		want = t.cfg.Monoid.Add(t.nodes[n.left].value, t.nodes[n.right].value)
	}
	if !t.cfg.Equal(n.value, want) {
		return 0, fmt.Errorf("%w: stale aggregate at [%d..%d]: %v != %v",
			ErrInvalidConfig, n.lo, n.hi, n.value, want)
	}
	return visited, nil
}
