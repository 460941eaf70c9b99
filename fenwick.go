// Package fenwick provides a Fenwick tree, or binary indexed tree: a
// fixed-size list of numbers supporting point updates and prefix sums.
//
// Compared to a plain slice, where one of the two operations costs
// O(n), a Fenwick tree runs both in O(log n) time while using a single
// extra slice of the same length.
//
// Prefix sums are half-open: Query(n) is the sum of the first n
// elements, so Query(0) is always zero and Query(Len()) is the sum of
// the whole list.
package fenwick

import (
	"fmt"

	"github.com/caio/go-fenwick/internal/bitree"
)

// Number is the set of element types a Tree can hold.
//
// Sums use the arithmetic of the element type: integer sums wrap on
// overflow and float sums accumulate rounding error. Unsigned types
// work as long as the results of interest fit, since the tree only
// ever adds and subtracts.
type Number = bitree.Number

// Tree is a list of n numbers with O(log n) point updates and prefix
// sums. Its length is fixed at construction.
type Tree[T Number] struct {
	values []T
	tree   *bitree.List[T]
	mu     rwLocker
	clamp  bool
	rng    RNG
}

// New creates a tree holding a copy of values.
//
// Elements are inserted one at a time, in index order, each with a full
// update. An empty (or nil) values slice yields a valid tree for which
// only Query(0) succeeds.
func New[T Number](values []T, options ...Option) (*Tree[T], error) {
	c := config{
		locker: zeroLocker{},
		rng:    globalRNG{},
	}
	for _, option := range options {
		if err := option(&c); err != nil {
			return nil, err
		}
	}

	t := &Tree[T]{
		values: make([]T, len(values)),
		tree:   bitree.New[T](len(values)),
		mu:     c.locker,
		clamp:  c.clamp,
		rng:    c.rng,
	}
	for i, v := range values {
		t.set(i, v)
	}
	return t, nil
}

// Of creates an unsynchronized, strict tree holding the given elements.
func Of[T Number](values ...T) *Tree[T] {
	// Default options never fail.
	t, _ := New(values)
	return t
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	return len(t.values)
}

// Update sets the element at index to value.
// The index must be in [0, Len()).
func (t *Tree[T]) Update(index int, value T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if index < 0 || index >= len(t.values) {
		return outOfRange("Update", index, len(t.values))
	}
	t.set(index, value)
	return nil
}

// Add adds delta to the element at index.
// The index must be in [0, Len()).
func (t *Tree[T]) Add(index int, delta T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if index < 0 || index >= len(t.values) {
		return outOfRange("Add", index, len(t.values))
	}
	t.values[index] += delta
	t.tree.Add(index, delta)
	return nil
}

func (t *Tree[T]) set(index int, value T) {
	delta := value - t.values[index]
	t.values[index] = value
	t.tree.Add(index, delta)
}

// Get returns the element at index.
func (t *Tree[T]) Get(index int) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if index < 0 || index >= len(t.values) {
		var zero T
		return zero, outOfRange("Get", index, len(t.values))
	}
	return t.values[index], nil
}

// Query returns the sum of the first n elements, i.e. of the elements
// from index 0 to index n-1. The prefix length n must be in [0, Len()]
// unless the tree was built with ClampQueries.
func (t *Tree[T]) Query(n int) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, err := t.bound("Query", n)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.tree.Sum(n), nil
}

// RangeSum returns the sum of the elements from index lo to index hi-1.
func (t *Tree[T]) RangeSum(lo, hi int) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var zero T
	lo, err := t.bound("RangeSum", lo)
	if err != nil {
		return zero, err
	}
	hi, err = t.bound("RangeSum", hi)
	if err != nil {
		return zero, err
	}
	if lo > hi {
		return zero, fmt.Errorf("%w: RangeSum(%d, %d)", ErrInvalidRange, lo, hi)
	}
	return t.tree.Sum(hi) - t.tree.Sum(lo), nil
}

// Total returns the sum of all elements.
func (t *Tree[T]) Total() T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.tree.Sum(len(t.values))
}

// Values returns a copy of the elements.
func (t *Tree[T]) Values() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]T{}, t.values...)
}

func (t *Tree[T]) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return fmt.Sprintf("Fenwick<len=%d, total=%v>", len(t.values), t.tree.Sum(len(t.values)))
}

// bound validates a prefix length, or clamps it for permissive trees.
func (t *Tree[T]) bound(op string, n int) (int, error) {
	switch {
	case n >= 0 && n <= len(t.values):
		return n, nil
	case !t.clamp:
		return 0, outOfRange(op, n, len(t.values))
	case n < 0:
		return 0, nil
	default:
		return len(t.values), nil
	}
}
