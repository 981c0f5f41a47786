package ordmap

import (
	"cmp"
)

// Builder incrementally stages map edits and finalizes them into a Map.
//
// Stage methods are chainable and defer error handling: the first failing
// edit latches its error, all later edits become no-ops, and Map returns the
// latched error. This keeps pipelines of edits readable without an error
// check after every step.
//
//	m, err := ordmap.NewBuilder[string, int]().
//	    Set("a", 1).
//	    Set("b", 2).
//	    Delete("a").
//	    Map()
//
// The empty instance is a valid builder for an empty map, but clients may use
// NewBuilder.
type Builder[K cmp.Ordered, V any] struct {
	current Map[K, V]
	err     error
	done    bool
}

// NewBuilder creates a new builder, staging edits on an empty map.
func NewBuilder[K cmp.Ordered, V any]() *Builder[K, V] {
	return &Builder[K, V]{}
}

// BuilderFrom creates a new builder, staging edits on top of map m.
func BuilderFrom[K cmp.Ordered, V any](m Map[K, V]) *Builder[K, V] {
	return &Builder[K, V]{current: m}
}

// Map returns the map built from all staged edits.
//
// It is illegal to stage further edits after Map has been called, but Map may
// be called multiple times. If an edit failed, Map returns an empty map
// together with the first error encountered.
func (b *Builder[K, V]) Map() (Map[K, V], error) {
	if b == nil {
		return Map[K, V]{}, ErrIllegalArguments
	}
	b.done = true
	if b.err != nil {
		return Map[K, V]{}, b.err
	}
	if b.current.IsEmpty() {
		tracer().Debugf("map builder: map is empty")
	}
	return b.current, nil
}

// Err returns the first error a staged edit produced, if any.
func (b *Builder[K, V]) Err() error {
	if b == nil {
		return ErrIllegalArguments
	}
	return b.err
}

// Reset drops the staged edits and prepares the builder for a fresh build on
// an empty map.
func (b *Builder[K, V]) Reset() {
	if b == nil {
		return
	}
	b.current = Map[K, V]{}
	b.err = nil
	b.done = false
}

// Set stages an edit which binds key to val, inserting or overwriting.
func (b *Builder[K, V]) Set(key K, val V) *Builder[K, V] {
	return b.stage(func() (Map[K, V], error) {
		return b.current.Set(key, val), nil
	})
}

// Insert stages an edit which binds key to val and fails if key is already
// present.
func (b *Builder[K, V]) Insert(key K, val V) *Builder[K, V] {
	return b.stage(func() (Map[K, V], error) {
		return b.current.Insert(key, val)
	})
}

// Update stages an edit which re-binds an existing key to val and fails if
// key is absent.
func (b *Builder[K, V]) Update(key K, val V) *Builder[K, V] {
	return b.stage(func() (Map[K, V], error) {
		return b.current.Update(key, val)
	})
}

// Delete stages an edit which removes key and fails if key is absent.
func (b *Builder[K, V]) Delete(key K) *Builder[K, V] {
	return b.stage(func() (Map[K, V], error) {
		return b.current.Delete(key)
	})
}

// DeleteIfPresent stages an edit which removes key if it is present.
func (b *Builder[K, V]) DeleteIfPresent(key K) *Builder[K, V] {
	return b.stage(func() (Map[K, V], error) {
		return b.current.DeleteIfPresent(key), nil
	})
}

// stage runs a single edit against the staged map, observing the done flag
// and latching the first error.
func (b *Builder[K, V]) stage(op func() (Map[K, V], error)) *Builder[K, V] {
	if b == nil {
		return nil
	}
	if b.err != nil {
		return b
	}
	if b.done {
		b.err = ErrMapCompleted
		return b
	}
	next, err := op()
	if err != nil {
		b.err = err
		return b
	}
	b.current = next
	return b
}
