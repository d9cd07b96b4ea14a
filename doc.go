/*
Package segtree implements a dynamic segment tree for point updates and range
queries over an integer index domain.

A tree covers a closed index range [L, R], which may be huge and may include
negative indices. Nodes are not allocated up front: the tree materializes a
path from the root to a leaf the first time that leaf is located, and every
other part of the domain is represented implicitly by the neutral value of the
tree's monoid. Memory therefore grows with the number of indices actually
touched, not with the size of the domain.

Values are combined by a client-supplied monoid (see Monoid). For values
s, t, u the monoid's Add must be associative, and Zero must be neutral:

	Add(Zero(), s) == s == Add(s, Zero())

Neither property can be checked generically; they are a precondition of New.
A monoid without a neutral element yields wrong aggregates wherever a node has
only one child or a query touches unwritten parts of the domain.

	Operation     |  Cost
	--------------+---------------------
	At / Set      |  O(log(R-L))
	Get / Query   |  O(log(R-L))
	Iterate       |  O(m), m = materialized nodes
	Clone         |  O(m)

Trees are not safe for concurrent mutation. Clients sharing a tree between
goroutines have to serialize access themselves.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
