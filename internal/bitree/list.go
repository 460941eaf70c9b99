// Package bitree provides the implicit tree behind a Fenwick list.
//
// A binary indexed tree stores range sums of an underlying array in a
// slice of the same length plus one. Slot i (1-indexed) holds the sum
// of the lowbit(i) elements ending at position i, where lowbit(i) is
// i & -i, the value of the lowest set bit of i. Updating an element
// touches every slot whose range covers it; computing a prefix sum adds
// the slots that correspond to each 1 bit in the binary expansion of the
// prefix length. Both walks visit at most floor(log2(n)) + 1 slots.
//
// The package does no bounds checking. Callers validate indices first.
package bitree

import "math/bits"

// Number is the set of element types a List can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// List is the internal tree array of a Fenwick tree over n elements.
// The zero value is an empty list.
type List[T Number] struct {
	// The tree slice is 1-indexed; tree[0] is never read or written.
	//
	// For example, the sum of the first 13 elements is computed from
	// 13 = 1101₂: slots 1101₂, 1100₂ and 1000₂ are added; they hold
	// the element at position 13, the sum of positions 9 to 12 and
	// the sum of positions 1 to 8, respectively.
	//
	tree []T
}

// New creates a list of n zero elements.
func New[T Number](n int) *List[T] {
	return &List[T]{
		tree: make([]T, n+1),
	}
}

func lowbit(i int) int {
	return i & -i
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	if len(l.tree) == 0 {
		return 0
	}
	return len(l.tree) - 1
}

// Add adds delta to the element at index i.
func (l *List[T]) Add(i int, delta T) {
	n := l.Len()
	for pos := i + 1; pos <= n; pos += lowbit(pos) {
		l.tree[pos] += delta
	}
}

// Sum returns the sum of the elements from index 0 to index i-1.
func (l *List[T]) Sum(i int) T {
	var sum T
	for pos := i; pos > 0; pos -= lowbit(pos) {
		sum += l.tree[pos]
	}
	return sum
}

// Search returns the number of leading elements whose sum is less than
// target, which is the smallest index i with Sum(i+1) >= target, or Len()
// if the total is less than target. Elements must be non-negative.
func (l *List[T]) Search(target T) int {
	n := l.Len()
	if n == 0 {
		return 0
	}
	pos := 0
	for step := 1 << (bits.Len(uint(n)) - 1); step > 0; step >>= 1 {
		if next := pos + step; next <= n && l.tree[next] < target {
			pos = next
			target -= l.tree[next]
		}
	}
	return pos
}
