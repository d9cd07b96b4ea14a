package monoid

// Func builds a monoid from a plain union function and its neutral value.
type Func[T any] struct {
	union func(T, T) T
	zero  T
}

// Of creates a monoid from union and its neutral element zero. union has to
// be associative and zero has to be neutral for it; neither can be checked.
func Of[T any](union func(T, T) T, zero T) Func[T] {
	return Func[T]{union: union, zero: zero}
}

// Zero returns the neutral element.
func (f Func[T]) Zero() T { return f.zero }

// Add applies the union function.
func (f Func[T]) Add(left, right T) T { return f.union(left, right) }

// Tuple is the value type of a Pair monoid.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Pair aggregates two independent monoids side by side, e.g. a sum and a
// maximum over the same range.
type Pair[A, B any] struct {
	First  Monoid[A]
	Second Monoid[B]
}

// PairOf combines monoids a and b.
func PairOf[A, B any](a Monoid[A], b Monoid[B]) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Zero returns the tuple of both neutral elements.
func (p Pair[A, B]) Zero() Tuple[A, B] {
	return Tuple[A, B]{First: p.First.Zero(), Second: p.Second.Zero()}
}

// Add combines the tuples component-wise.
func (p Pair[A, B]) Add(left, right Tuple[A, B]) Tuple[A, B] {
	return Tuple[A, B]{
		First:  p.First.Add(left.First, right.First),
		Second: p.Second.Add(left.Second, right.Second),
	}
}
