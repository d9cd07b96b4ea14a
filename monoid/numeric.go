package monoid

import "cmp"

// Unsigned is the set of built-in unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | Unsigned
}

// Number is the set of built-in integer and floating point types.
type Number interface {
	Integer | ~float32 | ~float64
}

// Sum adds numbers, with 0 as neutral element.
type Sum[N Number] struct{}

// Zero returns 0.
func (Sum[N]) Zero() N { return 0 }

// Add returns left + right.
func (Sum[N]) Add(left, right N) N { return left + right }

// Max selects the maximum. Its neutral element is Floor, which has to be a
// lower bound of all values aggregated; use MaxOf to set it.
type Max[N cmp.Ordered] struct {
	Floor N
}

// MaxOf creates a maximum monoid with neutral element floor, e.g.
// MaxOf(math.MinInt).
func MaxOf[N cmp.Ordered](floor N) Max[N] {
	return Max[N]{Floor: floor}
}

// Zero returns the floor.
func (m Max[N]) Zero() N { return m.Floor }

// Add returns the larger of left and right.
func (m Max[N]) Add(left, right N) N { return max(left, right) }

// Min selects the minimum. Its neutral element is Ceiling, which has to be an
// upper bound of all values aggregated; use MinOf to set it.
type Min[N cmp.Ordered] struct {
	Ceiling N
}

// MinOf creates a minimum monoid with neutral element ceiling, e.g.
// MinOf(math.MaxInt).
func MinOf[N cmp.Ordered](ceiling N) Min[N] {
	return Min[N]{Ceiling: ceiling}
}

// Zero returns the ceiling.
func (m Min[N]) Zero() N { return m.Ceiling }

// Add returns the smaller of left and right.
func (m Min[N]) Add(left, right N) N { return min(left, right) }

// GCD computes greatest common divisors of unsigned integers. 0 is neutral,
// as gcd(0, n) = n.
type GCD[N Unsigned] struct{}

// Zero returns 0.
func (GCD[N]) Zero() N { return 0 }

// Add returns the greatest common divisor of left and right.
func (GCD[N]) Add(left, right N) N {
	a, b := left, right
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
