package segtree

import (
	"fmt"
	"reflect"
)

// Monoid defines how values are aggregated up the tree.
//
// For values s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Add need not be commutative; the tree always combines left before right.
type Monoid[T any] interface {
	Zero() T
	Add(left, right T) T
}

// Config configures a dynamic segment tree.
type Config[T any] struct {
	// Monoid aggregates values up the tree. Required.
	Monoid Monoid[T]
	// Equal is used by Check to compare aggregates. If nil, it defaults to
	// reflect.DeepEqual.
	Equal func(a, b T) bool
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Equal == nil {
		cfg.Equal = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	return nil
}
