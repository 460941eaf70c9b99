package bitree

import (
	"math/rand"
	"testing"
)

func checkSlots(l *List[int64], values []int64, t *testing.T) {
	t.Helper()
	for i := 1; i <= l.Len(); i++ {
		var want int64
		for _, v := range values[i-lowbit(i) : i] {
			want += v
		}
		if l.tree[i] != want {
			t.Fatalf("Slot %d holds %d, expected %d (values=%v)", i, l.tree[i], want, values)
		}
	}
}

func TestLowbit(t *testing.T) {
	for i, want := range map[int]int{1: 1, 2: 2, 3: 1, 4: 4, 6: 2, 12: 4, 13: 1, 96: 32} {
		if got := lowbit(i); got != want {
			t.Errorf("lowbit(%d) = %d, expected %d", i, got, want)
		}
	}
}

func TestZeroValue(t *testing.T) {
	var l List[int]

	if l.Len() != 0 {
		t.Errorf("Expected an empty zero value, got Len() == %d", l.Len())
	}

	if l.Sum(0) != 0 {
		t.Errorf("Sum(0) on an empty list should be 0, got %d", l.Sum(0))
	}

	if l.Search(1) != 0 {
		t.Errorf("Search() on an empty list should be 0, got %d", l.Search(1))
	}

	l.Add(0, 10)
	if l.Len() != 0 {
		t.Errorf("Add() on an empty list must not grow it")
	}
}

func TestSlotsCoverLowbitRanges(t *testing.T) {
	const size = 37
	l := New[int64](size)
	values := make([]int64, size)

	for round := 0; round < 500; round++ {
		i := rand.Intn(size)
		delta := rand.Int63n(200) - 100
		values[i] += delta
		l.Add(i, delta)
		checkSlots(l, values, t)
	}
}

func TestSum(t *testing.T) {
	values := []int64{5, -3, 8, 0, 2, 7, -1, 4, 9, 6, 3}
	l := New[int64](len(values))
	for i, v := range values {
		l.Add(i, v)
	}

	var want int64
	for i := 0; i <= len(values); i++ {
		if got := l.Sum(i); got != want {
			t.Errorf("Sum(%d) = %d, expected %d", i, got, want)
		}
		if i < len(values) {
			want += values[i]
		}
	}
}

func TestSearch(t *testing.T) {
	values := []uint32{0, 3, 0, 0, 2, 5, 1, 0, 4}
	l := New[uint32](len(values))
	for i, v := range values {
		l.Add(i, v)
	}

	var total uint32
	for _, v := range values {
		total += v
	}

	for target := uint32(0); target <= total+2; target++ {
		want := len(values)
		var sum uint32
		for i, v := range values {
			sum += v
			if sum >= target {
				want = i
				break
			}
		}
		if got := l.Search(target); got != want {
			t.Errorf("Search(%d) = %d, expected %d", target, got, want)
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	l := New[int64](1 << 16)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		l.Add(n&(1<<16-1), 1)
	}
}

func BenchmarkSum(b *testing.B) {
	l := New[int64](1 << 16)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = l.Sum(n & (1<<16 - 1))
	}
}
