// Package transform provides mapping and indexing combinators built
// on the core pull contract. Every combinator wraps an upstream
// iterator handle as its own producer and is returned pre-wrapped, so
// combinators compose freely.
package transform

import "github.com/lguimbarda/min-pull/pull/core"

// mapper wraps an upstream handle and a mapping function.
type mapper[IN, OUT any] struct {
	in core.Iterator[IN]
	fn func(IN) OUT
}

func (m *mapper[IN, OUT]) Next() (OUT, bool) {
	v, ok := m.in.Next()
	if !ok {
		var zero OUT
		return zero, false
	}
	return m.fn(v), true
}

// Map creates an iterator that applies fn to each upstream value.
// Upstream exhaustion passes through unchanged: once the upstream
// ends, the mapped iterator ends on every later call as well.
func Map[IN, OUT any](in core.Iterator[IN], fn func(IN) OUT) core.Iterator[OUT] {
	return core.New[OUT](&mapper[IN, OUT]{in: in, fn: fn})
}

// mapWhere maps and filters in a single upstream pass.
type mapWhere[IN, OUT any] struct {
	in core.Iterator[IN]
	fn func(IN) (OUT, bool)
}

func (m *mapWhere[IN, OUT]) Next() (OUT, bool) {
	for {
		v, ok := m.in.Next()
		if !ok {
			var zero OUT
			return zero, false
		}
		if mapped, keep := m.fn(v); keep {
			return mapped, true
		}
	}
}

// MapWhere creates an iterator that both filters and maps in a single
// pass. fn returns (value, true) to produce the transformed value, or
// (_, false) to drop the upstream element.
func MapWhere[IN, OUT any](in core.Iterator[IN], fn func(IN) (OUT, bool)) core.Iterator[OUT] {
	return core.New[OUT](&mapWhere[IN, OUT]{in: in, fn: fn})
}

// scan emits each intermediate accumulated value.
type scan[T, A any] struct {
	in  core.Iterator[T]
	acc A
	fn  func(A, T) A
}

func (s *scan[T, A]) Next() (A, bool) {
	v, ok := s.in.Next()
	if !ok {
		var zero A
		return zero, false
	}
	s.acc = s.fn(s.acc, v)
	return s.acc, true
}

// Scan creates an iterator producing each intermediate accumulated
// value: like a fold, but one output per input. The initial value
// itself is not produced.
func Scan[T, A any](in core.Iterator[T], initial A, fn func(acc A, item T) A) core.Iterator[A] {
	return core.New[A](&scan[T, A]{in: in, acc: initial, fn: fn})
}
