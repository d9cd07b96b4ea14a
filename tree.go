package segtree

import (
	"fmt"

	"github.com/guiguan/caster"
)

// Tree is a dynamic segment tree over the closed index domain [L, R].
//
// T is the value type, aggregated by the configured Monoid. A tree created by
// New initially holds Zero() at every index; only indices located through At
// (or Set) occupy memory.
type Tree[T any] struct {
	cfg     Config[T]
	lo, hi  int
	nodes   []node[T] // arena, nodes[0] is the root
	located bool      // root has been located as a leaf (single-point domain)
	epoch   uint64    // advanced by Move, invalidates outstanding leaf handles
	cast    *caster.Caster
}

// New creates a tree over the domain [lo, hi] with validated configuration.
//
// The monoid's Zero must be the neutral element of its Add; otherwise
// aggregates over partially written ranges are undefined.
func New[T any](cfg Config[T], lo, hi int) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if lo > hi {
		return nil, fmt.Errorf("%w: [%d..%d]", ErrInvalidRange, lo, hi)
	}
	t := &Tree[T]{
		cfg: cfg.normalized(),
		lo:  lo,
		hi:  hi,
	}
	t.reset()
	return t, nil
}

// reset drops all nodes but a fresh root.
func (t *Tree[T]) reset() {
	t.nodes = make([]node[T], 0, 1)
	t.newNode(t.lo, t.hi, noNode)
	t.located = false
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Bounds returns the domain [lo, hi] of the tree.
func (t *Tree[T]) Bounds() (lo, hi int) {
	return t.lo, t.hi
}

// Contains reports whether index is part of the tree's domain.
func (t *Tree[T]) Contains(index int) bool {
	return index >= t.lo && index <= t.hi
}

// NodeCount returns the number of materialized nodes, including the root.
func (t *Tree[T]) NodeCount() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Len returns the number of materialized leaves.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	if t.lo == t.hi {
		if t.located {
			return 1
		}
		return 0
	}
	cnt := 0
	for i := range t.nodes {
		if t.nodes[i].isLeaf() {
			cnt++
		}
	}
	return cnt
}

// Total returns the aggregate over the whole domain.
func (t *Tree[T]) Total() T {
	return t.nodes[0].value
}

// Clone returns a deep copy of the tree. Mutating the clone never affects t,
// and vice versa. Subscriptions of Watch are not cloned.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	cloned := &Tree[T]{
		cfg:     t.cfg,
		lo:      t.lo,
		hi:      t.hi,
		nodes:   make([]node[T], len(t.nodes)),
		located: t.located,
	}
	copy(cloned.nodes, t.nodes)
	return cloned
}

// Move transfers all materialized nodes of t to a new tree and returns it.
// Afterwards t is an empty tree over the same domain. Leaf handles obtained
// from t before the move are invalid and panic when used.
func (t *Tree[T]) Move() *Tree[T] {
	if t == nil {
		return nil
	}
	moved := &Tree[T]{
		cfg:     t.cfg,
		lo:      t.lo,
		hi:      t.hi,
		nodes:   t.nodes,
		located: t.located,
	}
	tracer().Debugf("moving %d nodes of [%d..%d]", len(t.nodes), t.lo, t.hi)
	t.epoch++
	t.reset()
	return moved
}
