/*
Package monoid provides ready-made monoids for segment trees.

Every type in this package satisfies segtree.Monoid for its value type. Zero is
the neutral element of Add for every value of the value type, with two
exceptions: MaxOf and MinOf take their neutral element as an argument, which
has to bound all values stored in a tree, and Of trusts its caller.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package monoid

// Monoid mirrors segtree.Monoid, so that combinators of this package may be
// used without importing the tree package.
type Monoid[T any] interface {
	Zero() T
	Add(left, right T) T
}
