// Package filter provides selection combinators built on the core
// pull contract.
package filter

import "github.com/lguimbarda/min-pull/pull/core"

// where wraps an upstream handle and a predicate.
type where[T any] struct {
	in   core.Iterator[T]
	pred func(T) bool
}

// Next pulls until a value satisfies the predicate or the upstream is
// exhausted. This is the one combinator that may pull more than once
// per call: an always-false predicate drains the whole upstream here.
// No element is ever re-examined.
func (w *where[T]) Next() (T, bool) {
	for {
		v, ok := w.in.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if w.pred(v) {
			return v, true
		}
	}
}

// Where creates an iterator that only passes through values matching
// the predicate. Non-matching values are silently dropped.
func Where[T any](in core.Iterator[T], pred func(T) bool) core.Iterator[T] {
	return core.New[T](&where[T]{in: in, pred: pred})
}

// Exclude creates an iterator that drops values matching the
// predicate. This is the inverse of Where.
func Exclude[T any](in core.Iterator[T], pred func(T) bool) core.Iterator[T] {
	return Where(in, func(v T) bool { return !pred(v) })
}
