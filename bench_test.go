package segtree

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/segtree/monoid"
)

func BenchmarkSet(b *testing.B) {
	tree, err := New(Config[int]{Monoid: monoid.Sum[int]{}}, 0, 1<<40)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	r := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Set(r.Intn(1<<20)<<20, i)
	}
}

func BenchmarkGet(b *testing.B) {
	tree, err := New(Config[int]{Monoid: monoid.Sum[int]{}}, 0, 1<<40)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		_ = tree.Set(r.Intn(1<<40), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := r.Intn(1 << 39)
		_ = tree.Get(from, from+r.Intn(1<<39))
	}
}
