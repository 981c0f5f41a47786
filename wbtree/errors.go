package wbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("wbtree: invalid configuration")
	// ErrKeyNotFound signals that a key required to be present is absent.
	ErrKeyNotFound = errors.New("wbtree: key not found")
	// ErrDuplicateKey signals that a key required to be absent is present.
	ErrDuplicateKey = errors.New("wbtree: duplicate key")
	// ErrEmptyTree signals an extremum operation on an empty tree.
	ErrEmptyTree = errors.New("wbtree: empty tree")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("wbtree: index out of bounds")
	// ErrUnordered signals bulk input that is not in strictly ascending key order.
	ErrUnordered = errors.New("wbtree: entries not in strictly ascending key order")
	// ErrInvariant signals a violated structural invariant, found by Check.
	ErrInvariant = errors.New("wbtree: structural invariant violated")
)
