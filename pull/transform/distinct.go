package transform

import "github.com/lguimbarda/min-pull/pull/core"

// distinctBy tracks seen keys and drops repeats.
type distinctBy[T any, K comparable] struct {
	in   core.Iterator[T]
	key  func(T) K
	seen map[K]struct{}
}

func (d *distinctBy[T, K]) Next() (T, bool) {
	for {
		v, ok := d.in.Next()
		if !ok {
			var zero T
			return zero, false
		}
		k := d.key(v)
		if _, dup := d.seen[k]; dup {
			continue
		}
		d.seen[k] = struct{}{}
		return v, true
	}
}

// DistinctBy creates an iterator producing only values whose key
// (derived by keyFn) has not been seen before.
func DistinctBy[T any, K comparable](in core.Iterator[T], keyFn func(T) K) core.Iterator[T] {
	return core.New[T](&distinctBy[T, K]{
		in:   in,
		key:  keyFn,
		seen: make(map[K]struct{}),
	})
}

// Distinct creates an iterator producing only values that have not
// been seen before.
func Distinct[T comparable](in core.Iterator[T]) core.Iterator[T] {
	return DistinctBy(in, func(v T) T { return v })
}
