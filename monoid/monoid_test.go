package monoid

import (
	"math"
	"testing"
)

func fold[T any](m Monoid[T], values ...T) T {
	acc := m.Zero()
	for _, v := range values {
		acc = m.Add(acc, v)
	}
	return acc
}

func TestNumericMonoids(t *testing.T) {
	values := []int{4, -7, 12, 0, 3}
	if got := fold[int](Sum[int]{}, values...); got != 12 {
		t.Errorf("sum = %d, want 12", got)
	}
	if got := fold[int](MaxOf(math.MinInt), values...); got != 12 {
		t.Errorf("max = %d, want 12", got)
	}
	if got := fold[int](MinOf(math.MaxInt), values...); got != -7 {
		t.Errorf("min = %d, want -7", got)
	}
	if got := fold[float64](Sum[float64]{}, 0.5, 0.25); got != 0.75 {
		t.Errorf("float sum = %v, want 0.75", got)
	}
	if got := fold[string](MaxOf(""), "pear", "apple", "zucchini"); got != "zucchini" {
		t.Errorf("string max = %q", got)
	}
}

func TestZeroIsNeutral(t *testing.T) {
	for _, v := range []int{math.MinInt + 1, -3, 0, 9, math.MaxInt} {
		for name, m := range map[string]Monoid[int]{
			"sum": Sum[int]{},
			"max": MaxOf(math.MinInt),
			"min": MinOf(math.MaxInt),
		} {
			if m.Add(m.Zero(), v) != v || m.Add(v, m.Zero()) != v {
				t.Errorf("%s: Zero() not neutral for %d", name, v)
			}
		}
	}
	var gcd GCD[uint64]
	for _, v := range []uint64{0, 1, 6, math.MaxUint64} {
		if gcd.Add(gcd.Zero(), v) != v || gcd.Add(v, gcd.Zero()) != v {
			t.Errorf("gcd: Zero() not neutral for %d", v)
		}
	}
}

func TestGCD(t *testing.T) {
	if got := fold[uint](GCD[uint]{}, 12, 18, 30); got != 6 {
		t.Errorf("gcd = %d, want 6", got)
	}
	if got := fold[uint](GCD[uint]{}, 7, 5); got != 1 {
		t.Errorf("gcd = %d, want 1", got)
	}
	if got := fold[uint8](GCD[uint8]{}); got != 0 {
		t.Errorf("empty gcd = %d, want 0", got)
	}
}

func TestFuncKeepsOrder(t *testing.T) {
	concat := Of(func(a, b string) string { return a + b }, "")
	if got := fold[string](concat, "a", "b", "c"); got != "abc" {
		t.Errorf("concat = %q, want abc", got)
	}
}

func TestPair(t *testing.T) {
	p := PairOf[int, int](Sum[int]{}, MaxOf(math.MinInt))
	got := fold[Tuple[int, int]](p,
		Tuple[int, int]{3, 3}, Tuple[int, int]{-1, -1}, Tuple[int, int]{5, 5})
	if got.First != 7 || got.Second != 5 {
		t.Errorf("pair = %+v, want {7 5}", got)
	}
}
