package segtree

// Segment describes a materialized node, as reported by Walk.
type Segment[T any] struct {
	Lo, Hi int // span of the node
	Value  T   // aggregate of the span
	Depth  int // 0 for the root
}

// IsLeaf reports whether the segment spans a single index.
func (seg Segment[T]) IsLeaf() bool {
	return seg.Lo == seg.Hi
}

// Walk calls fn for every materialized node in pre-order, left before right.
// If fn returns an error, the walk stops and Walk returns that error.
func (t *Tree[T]) Walk(fn func(seg Segment[T]) error) error {
	if t == nil || fn == nil {
		return nil
	}
	return t.walkNode(0, 0, fn)
}

func (t *Tree[T]) walkNode(i int, depth int, fn func(Segment[T]) error) error {
	n := &t.nodes[i]
	seg := Segment[T]{Lo: n.lo, Hi: n.hi, Value: n.value, Depth: depth}
	if err := fn(seg); err != nil {
		return err
	}
	for _, c := range [2]int{n.left, n.right} {
		if c == noNode {
			continue
		}
		if err := t.walkNode(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
