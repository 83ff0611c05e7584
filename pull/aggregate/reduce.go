// Package aggregate provides terminal folds that drain a pull
// iterator into a single value.
package aggregate

import "github.com/lguimbarda/min-pull/pull/core"

// Reduce folds the handle using the first produced value as the
// initial accumulator. The second return is false when the handle was
// already exhausted.
func Reduce[T any](it core.Iterator[T], reduce func(acc, item T) T) (T, bool) {
	acc, ok := it.Next()
	if !ok {
		var zero T
		return zero, false
	}
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		acc = reduce(acc, v)
	}
	return acc, true
}

// Sum drains the handle and adds every produced value.
func Sum[T core.Numeric](it core.Iterator[T]) T {
	var sum T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		sum += v
	}
	return sum
}

// Average drains the handle and returns the mean of the produced
// values, or 0 for an exhausted handle.
func Average[T core.Numeric](it core.Iterator[T]) float64 {
	var sum float64
	count := 0
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		sum += float64(v)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Min drains the handle and returns the smallest value under the
// provided less function. The second return is false for an exhausted
// handle.
func Min[T any](it core.Iterator[T], less func(a, b T) bool) (T, bool) {
	return Reduce(it, func(acc, item T) T {
		if less(item, acc) {
			return item
		}
		return acc
	})
}

// Max drains the handle and returns the largest value under the
// provided less function. The second return is false for an exhausted
// handle.
func Max[T any](it core.Iterator[T], less func(a, b T) bool) (T, bool) {
	return Reduce(it, func(acc, item T) T {
		if less(acc, item) {
			return item
		}
		return acc
	})
}
