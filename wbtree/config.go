package wbtree

import "fmt"

// Config configures a weight-balanced tree.
type Config[K any] struct {
	// Compare defines the total order on keys. It returns a negative number
	// when a sorts before b, a positive number when a sorts after b, and 0
	// when both are the same key. Keys comparing equal are duplicates.
	Compare func(a, b K) int
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparison is required", ErrInvalidConfig)
	}
	return nil
}
