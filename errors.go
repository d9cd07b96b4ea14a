package segtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration or a tree which
	// failed structural validation.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrInvalidRange signals an index range with lower bound > upper bound.
	ErrInvalidRange = errors.New("segtree: invalid range")
	// ErrOutOfDomain signals an index outside of the tree's domain.
	ErrOutOfDomain = errors.New("segtree: index out of domain")
	// ErrInvalidUpdate signals an aggregate update on a node with no children.
	// It indicates a structural fault and is raised as a panic.
	ErrInvalidUpdate = errors.New("segtree: update on a node with no children")
)
