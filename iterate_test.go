package segtree

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func collect(tree *Tree[int]) (indices []int, values []int) {
	for i, v := range tree.All() {
		indices = append(indices, i)
		values = append(values, v)
	}
	return
}

func TestIterateEmptyTree(t *testing.T) {
	tree := makeSumTree(t, 0, 100)
	if _, ok := tree.First(); ok {
		t.Fatalf("expected no first leaf in empty tree")
	}
	for range tree.All() {
		t.Fatalf("expected no items in empty tree")
	}
}

func TestIterateAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	tree := makeSumTree(t, -50, 50)
	for _, i := range []int{17, -50, 3, 50, 0, -1, 4, 33} {
		mustSet(t, tree, i, i*10)
	}
	indices, values := collect(tree)
	want := []int{-50, -1, 0, 3, 4, 17, 33, 50}
	if !slices.Equal(indices, want) {
		t.Fatalf("indices = %v, want %v", indices, want)
	}
	for k, i := range indices {
		if values[k] != i*10 {
			t.Errorf("value at %d = %d, want %d", i, values[k], i*10)
		}
	}
	if tree.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", tree.Len(), len(want))
	}
}

func TestIterateRightOnlySubtrees(t *testing.T) {
	// Writes on the right halves only leave inner nodes without left child.
	tree := makeSumTree(t, 0, 15)
	mustSet(t, tree, 15, 1)
	mustSet(t, tree, 11, 2)
	mustSet(t, tree, 7, 3)
	indices, _ := collect(tree)
	if !slices.Equal(indices, []int{7, 11, 15}) {
		t.Fatalf("indices = %v, want [7 11 15]", indices)
	}
}

func TestIterateIsRestartableAndStoppable(t *testing.T) {
	tree := makeSumTree(t, 0, 9)
	for i := 0; i < 10; i++ {
		mustSet(t, tree, i, 1)
	}
	first := slices.Collect(tree.Values())
	second := slices.Collect(tree.Values())
	if len(first) != 10 || !slices.Equal(first, second) {
		t.Fatalf("iteration not restartable: %v / %v", first, second)
	}
	cnt := 0
	for range tree.All() {
		cnt++
		if cnt == 3 {
			break
		}
	}
	if cnt != 3 {
		t.Fatalf("early break not honored")
	}
}

func TestLeafCursorSeesUpdates(t *testing.T) {
	tree := makeSumTree(t, 0, 31)
	mustSet(t, tree, 1, 1)
	mustSet(t, tree, 30, 30)
	leaf, ok := tree.First()
	if !ok || leaf.Index() != 1 {
		t.Fatalf("expected first leaf at 1")
	}
	mustSet(t, tree, 20, 20) // materialize between cursor and end
	next, ok := leaf.Next()
	if !ok {
		t.Fatalf("expected cursor to find new leaf at 20")
	}
	if next.Index() != 20 {
		t.Fatalf("expected cursor to find new leaf at 20, got %d", next.Index())
	}
	next.Assign(21)
	if tree.Get(0, 31) != 52 {
		t.Fatalf("assign through cursor not aggregated, total = %d", tree.Get(0, 31))
	}
}

func TestIterateIncludesLocatedLeaves(t *testing.T) {
	tree := makeSumTree(t, 0, 7)
	if _, err := tree.At(5); err != nil {
		t.Fatal(err)
	}
	indices, values := collect(tree)
	if !slices.Equal(indices, []int{5}) || values[0] != 0 {
		t.Fatalf("located leaf missing from iteration: %v", indices)
	}
}
