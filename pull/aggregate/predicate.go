package aggregate

import "github.com/lguimbarda/min-pull/pull/core"

// All reports whether every produced value satisfies the predicate.
// Returns true for an exhausted handle. Stops pulling at the first
// non-matching value.
func All[T any](it core.Iterator[T], pred func(T) bool) bool {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether at least one produced value satisfies the
// predicate. Stops pulling at the first match.
func Any[T any](it core.Iterator[T], pred func(T) bool) bool {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if pred(v) {
			return true
		}
	}
	return false
}

// None reports whether no produced value satisfies the predicate.
// Stops pulling at the first match.
func None[T any](it core.Iterator[T], pred func(T) bool) bool {
	return !Any(it, pred)
}
