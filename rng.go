package fenwick

import (
	"math/rand"
)

// RNG is a source of uniform floats in [0, 1).
// *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
}

type globalRNG struct{}

func (globalRNG) Float64() float64 {
	return rand.Float64()
}

// Search returns the smallest index i such that the sum of the elements
// from index 0 to index i is at least target. It returns 0 if target is
// not positive and Len() if target exceeds the total.
//
// The result is only meaningful when no element is negative.
func (t *Tree[T]) Search(target T) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.tree.Search(target)
}

// Sample picks an index at random, each with probability proportional
// to its element. A nil rng falls back to the tree's default RNG.
//
// Elements must not be negative. Sample fails with ErrNoWeight when the
// total is not positive. The draw has float64 resolution, so integer
// totals above 2^53 are not sampled with unit granularity.
//
// Drawing advances the RNG state, so Sample takes the write lock of a
// synchronized tree and a shared *rand.Rand stays safe.
func (t *Tree[T]) Sample(rng RNG) (int, error) {
	if rng == nil {
		rng = t.rng
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.values)
	total := t.tree.Sum(n)
	if !(total > 0) {
		return 0, ErrNoWeight
	}

	// draw lies in [0, float64(total)), which converts back to T
	// without overflow even where float64(total) rounds up.
	scale := float64(total)
	draw := rng.Float64() * scale
	if !(draw >= 0 && draw < scale) {
		draw = 0
	}

	// target lies in (0, total]; for integer types the truncation makes
	// every unit of weight equally likely.
	target := total - T(draw)
	if target <= 0 || target > total {
		target = total
	}
	i := t.tree.Search(target)
	if i >= n {
		// float rounding can push target past the accumulated total
		i = n - 1
		for i > 0 && t.values[i] == 0 {
			i--
		}
	}
	return i, nil
}
