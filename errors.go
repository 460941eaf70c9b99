package fenwick

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange signals an index or prefix length outside the tree.
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")
	// ErrInvalidRange signals a range whose lower bound exceeds its upper bound.
	ErrInvalidRange = fmt.Errorf("%w: lower bound above upper bound", ErrIndexOutOfRange)
	// ErrNoWeight signals sampling from a tree without positive total.
	ErrNoWeight = errors.New("fenwick: total weight is not positive")
)

func outOfRange(op string, i, n int) error {
	return fmt.Errorf("%w: %s(%d) with len %d", ErrIndexOutOfRange, op, i, n)
}
