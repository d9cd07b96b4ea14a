package segtree

import "fmt"

// Get returns the aggregate of all values in [from, to].
//
// Parts of the range outside the tree's domain contribute Zero(), as do
// indices never written. An empty range (from > to) yields Zero(). Get never
// materializes nodes.
func (t *Tree[T]) Get(from, to int) T {
	if from > to || to < t.lo || from > t.hi {
		return t.cfg.Monoid.Zero()
	}
	return t.get(0, from, to)
}

// Query is a strict variant of Get: it reports an inverted range with
// ErrInvalidRange and bounds outside of the domain with ErrOutOfDomain.
func (t *Tree[T]) Query(from, to int) (T, error) {
	if from > to {
		return t.cfg.Monoid.Zero(), fmt.Errorf("%w: [%d..%d]", ErrInvalidRange, from, to)
	}
	if !t.Contains(from) || !t.Contains(to) {
		return t.cfg.Monoid.Zero(), fmt.Errorf("%w: [%d..%d] not in [%d..%d]",
			ErrOutOfDomain, from, to, t.lo, t.hi)
	}
	return t.get(0, from, to), nil
}

// Value returns the value at index, or Zero() if it has never been written.
// Contrary to At it does not materialize a leaf.
func (t *Tree[T]) Value(index int) T {
	return t.Get(index, index)
}

// get aggregates the part of [from, to] covered by node i. The recursion
// stops at nodes fully inside the range, giving two boundary paths at most.
func (t *Tree[T]) get(i int, from, to int) T {
	if i == noNode {
		return t.cfg.Monoid.Zero()
	}
	n := &t.nodes[i]
	if n.hi < from || n.lo > to {
		return t.cfg.Monoid.Zero()
	}
	if from <= n.lo && n.hi <= to {
		return n.value
	}
	return t.cfg.Monoid.Add(t.get(n.left, from, to), t.get(n.right, from, to))
}
