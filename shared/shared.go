package shared

import (
	"cmp"
	"context"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ordmap"
)

// Map holds the current version of an ordered map for a group of goroutines.
//
// Readers call Load and work with the snapshot they received, unaffected by
// later updates. Writers install successor versions with Store, Set, Delete
// or Update; installations are serialized and broadcast to watchers in
// installation order.
type Map[K cmp.Ordered, V any] struct {
	mu      sync.Mutex
	current ordmap.Map[K, V]
	cast    *caster.Caster
}

// New creates a holder with initial as the current version.
func New[K cmp.Ordered, V any](initial ordmap.Map[K, V]) *Map[K, V] {
	return &Map[K, V]{
		current: initial,
		cast:    caster.New(nil),
	}
}

// Load returns the current map version.
func (sm *Map[K, V]) Load() ordmap.Map[K, V] {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.current
}

// Store installs m as the current version.
func (sm *Map[K, V]) Store(m ordmap.Map[K, V]) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.current = m
	sm.cast.Pub(m)
}

// Set binds key to val in the current version and installs the result, which
// is also returned.
func (sm *Map[K, V]) Set(key K, val V) ordmap.Map[K, V] {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.current = sm.current.Set(key, val)
	sm.cast.Pub(sm.current)
	return sm.current
}

// Delete removes key from the current version, if present, and installs the
// result, which is also returned.
func (sm *Map[K, V]) Delete(key K) ordmap.Map[K, V] {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.current = sm.current.DeleteIfPresent(key)
	sm.cast.Pub(sm.current)
	return sm.current
}

// Update applies fn to the current version and installs the map fn returns.
// No other installation can interleave between reading the current version
// and installing its successor.
//
// If fn fails, the current version stays in place and Update returns fn's
// error together with an empty map.
func (sm *Map[K, V]) Update(fn func(m ordmap.Map[K, V]) (ordmap.Map[K, V], error)) (ordmap.Map[K, V], error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	next, err := fn(sm.current)
	if err != nil {
		return ordmap.Map[K, V]{}, err
	}
	sm.current = next
	sm.cast.Pub(next)
	return next, nil
}

// Watch subscribes to the holder and returns a channel which delivers every
// version installed from now on, in installation order. The channel is closed
// when ctx is canceled or the holder is closed. ctx may be nil.
//
// capacity buffers versions for a watcher which is momentarily busy. A
// watcher must keep draining its channel: once the buffer is full, writers
// block until the watcher catches up or cancels.
//
// The second return value is false if the holder has already been closed.
func (sm *Map[K, V]) Watch(ctx context.Context, capacity uint) (<-chan ordmap.Map[K, V], bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	ch, ok := sm.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	out := make(chan ordmap.Map[K, V], capacity)
	go func() {
		defer close(out)
		for msg := range ch {
			version, ok := msg.(ordmap.Map[K, V])
			if !ok {
				tracer().Errorf("shared map watcher: unexpected message type %T", msg)
				continue
			}
			select {
			case out <- version:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, true
}

// Close ends all subscriptions; their channels are closed. The holder stays
// readable and writable, but later installations are no longer broadcast.
func (sm *Map[K, V]) Close() {
	sm.cast.Close()
}
