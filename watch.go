package segtree

import (
	"context"

	"github.com/guiguan/caster"
)

// Update is broadcast to watchers after every leaf assignment.
type Update[T any] struct {
	Index int
	Value T
}

// Watch subscribes to assignments of t. Every Assign after Watch returns is
// delivered as an Update, in assignment order. The returned channel is closed
// when ctx is done or StopWatching is called.
//
// Publishing blocks while a subscriber's buffer of size capacity is full, so
// watchers have to keep up with writers. Cancelling ctx releases writers
// blocked on a watcher which stopped reading.
func (t *Tree[T]) Watch(ctx context.Context, capacity uint) <-chan Update[T] {
	if t.cast == nil {
		t.cast = caster.New(nil)
	}
	cast := t.cast
	out := make(chan Update[T], capacity)
	sub, ok := cast.Sub(ctx, capacity)
	if !ok {
		close(out)
		return out
	}
	go func() {
		forward(ctx, sub, out)
		close(out)
		// A cancelled subscription is dropped by the caster on its next
		// publish; until then it must not block the caster.
		for range sub {
		}
	}()
	return out
}

// StopWatching closes all subscriptions created by Watch.
func (t *Tree[T]) StopWatching() {
	if t.cast == nil {
		return
	}
	tracer().Debugf("closing watchers of [%d..%d]", t.lo, t.hi)
	t.cast.Close()
	t.cast = nil
}

// forward relays updates from a caster subscription to out until the
// subscription is closed or ctx is done.
func forward[T any](ctx context.Context, sub <-chan interface{}, out chan<- Update[T]) {
	for {
		select {
		case msg, ok := <-sub:
			if !ok {
				return
			}
			u, ok := msg.(Update[T])
			if !ok {
				continue
			}
			select {
			case out <- u:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
