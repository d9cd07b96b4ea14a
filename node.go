package segtree

import "fmt"

// noNode marks an absent child or the root's parent.
const noNode = -1

// node is a slot in the tree's arena. Children and parent are arena indices;
// the parent link is a back-reference only and never owns anything.
type node[T any] struct {
	value  T
	lo, hi int
	left   int
	right  int
	parent int
}

func (n *node[T]) isLeaf() bool { return n.lo == n.hi }

func (n *node[T]) hasChildren() bool {
	return n.left != noNode || n.right != noNode
}

// midpoint splits [lo, hi] into [lo, mid] and [mid+1, hi]. It rounds towards
// negative infinity and does not overflow, even for a domain spanning all of int.
func midpoint(lo, hi int) int {
	return lo + int((uint(hi)-uint(lo))/2)
}

// newNode appends a node spanning [lo, hi] to the arena and returns its index.
func (t *Tree[T]) newNode(lo, hi int, parent int) int {
	t.nodes = append(t.nodes, node[T]{
		value:  t.cfg.Monoid.Zero(),
		lo:     lo,
		hi:     hi,
		left:   noNode,
		right:  noNode,
		parent: parent,
	})
	return len(t.nodes) - 1
}

// leftChild returns the left child of node i, creating it if absent.
func (t *Tree[T]) leftChild(i int) int {
	if c := t.nodes[i].left; c != noNode {
		return c
	}
	lo, hi := t.nodes[i].lo, t.nodes[i].hi
	assert(lo < hi, "leftChild called on a leaf")
	c := t.newNode(lo, midpoint(lo, hi), i)
	t.nodes[i].left = c
	return c
}

// rightChild returns the right child of node i, creating it if absent.
func (t *Tree[T]) rightChild(i int) int {
	if c := t.nodes[i].right; c != noNode {
		return c
	}
	lo, hi := t.nodes[i].lo, t.nodes[i].hi
	assert(lo < hi, "rightChild called on a leaf")
	c := t.newNode(midpoint(lo, hi)+1, hi, i)
	t.nodes[i].right = c
	return c
}

// recompute restores the aggregate of internal node i from its children.
func (t *Tree[T]) recompute(i int) {
	n := &t.nodes[i]
	switch {
	case n.left == noNode && n.right == noNode:
		panic(fmt.Errorf("%w: node [%d..%d]", ErrInvalidUpdate, n.lo, n.hi))
	case n.left == noNode:
		n.value = t.nodes[n.right].value
	case n.right == noNode:
		n.value = t.nodes[n.left].value
	default:
		n.value = t.cfg.Monoid.Add(t.nodes[n.left].value, t.nodes[n.right].value)
	}
}
