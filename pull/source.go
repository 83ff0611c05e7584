package pull

import (
	"iter"

	"github.com/lguimbarda/min-pull/pull/core"
)

// counter produces an unbounded arithmetic sequence.
type counter[T core.Numeric] struct {
	current T
}

func (c *counter[T]) Next() (T, bool) {
	v := c.current
	c.current++
	return v, true
}

// Counter creates an iterator producing start, start+1, start+2, ...
// It never signals exhaustion; bound it with filter.Take or a
// consumer that stops on its own.
func Counter[T core.Numeric](start T) Iterator[T] {
	return core.New[T](&counter[T]{current: start})
}

// span is the bounded stepped range producer.
type span[T core.Numeric] struct {
	start, end, step T
}

func (s *span[T]) Next() (T, bool) {
	if s.start >= s.end {
		var zero T
		return zero, false
	}
	v := s.start
	s.start += s.step
	return v, true
}

// Range creates an iterator producing start, start+step, ... for as
// long as the value stays below end. A range with start >= end is an
// empty iterator, not an error.
//
// step must be positive. A zero or negative step can never reach end
// and pulls forever; this is a precondition, not a checked error.
func Range[T core.Numeric](start, end, step T) Iterator[T] {
	return core.New[T](&span[T]{start: start, end: end, step: step})
}

// sliceSource walks a fixed slice by index.
type sliceSource[T any] struct {
	items []T
	index int
}

func (s *sliceSource[T]) Next() (T, bool) {
	if s.index >= len(s.items) {
		var zero T
		return zero, false
	}
	v := s.items[s.index]
	s.index++
	return v, true
}

// FromSlice creates an iterator over the elements of items, in order.
// The slice is not copied; it must not be mutated while iterating.
func FromSlice[T any](items []T) Iterator[T] {
	return core.New[T](&sliceSource[T]{items: items})
}

// empty is always exhausted.
type empty[T any] struct{}

func (empty[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

// Empty creates an iterator that produces no values.
func Empty[T any]() Iterator[T] {
	return core.New[T](empty[T]{})
}

// once yields a single value.
type once[T any] struct {
	value T
	done  bool
}

func (o *once[T]) Next() (T, bool) {
	if o.done {
		var zero T
		return zero, false
	}
	o.done = true
	return o.value, true
}

// Once creates an iterator that produces a single value and then
// exhausts.
func Once[T any](value T) Iterator[T] {
	return core.New[T](&once[T]{value: value})
}

// repeat yields the same value a fixed or unbounded number of times.
type repeat[T any] struct {
	value     T
	remaining int
	forever   bool
}

func (r *repeat[T]) Next() (T, bool) {
	if r.forever {
		return r.value, true
	}
	if r.remaining <= 0 {
		var zero T
		return zero, false
	}
	r.remaining--
	return r.value, true
}

// Repeat creates an iterator that produces the same value n times.
// If n is negative, the iterator repeats indefinitely.
func Repeat[T any](value T, n int) Iterator[T] {
	return core.New[T](&repeat[T]{value: value, remaining: n, forever: n < 0})
}

// funcSource delegates every pull to a caller-supplied function.
type funcSource[T any] func() (T, bool)

func (f funcSource[T]) Next() (T, bool) {
	return f()
}

// FromFunc creates an iterator that calls fn for each pull. fn must
// keep returning false once it has returned false.
func FromFunc[T any](fn func() (T, bool)) Iterator[T] {
	return core.New[T](funcSource[T](fn))
}

// seqSource adapts a range-over-func sequence. The coroutine started
// by iter.Pull is stopped as soon as the sequence ends, so a fully
// drained iterator leaves nothing behind.
type seqSource[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (s *seqSource[T]) Next() (T, bool) {
	if s.done {
		var zero T
		return zero, false
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		var zero T
		return zero, false
	}
	return v, true
}

// FromSeq creates an iterator over a Go iter.Seq sequence.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return core.New[T](&seqSource[T]{next: next, stop: stop})
}

// KeyValue represents a key-value pair from a map.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// FromMap creates an iterator over the key-value pairs of m. The
// order of production is non-deterministic (as per Go map iteration).
func FromMap[K comparable, V any](m map[K]V) Iterator[KeyValue[K, V]] {
	return FromSeq(func(yield func(KeyValue[K, V]) bool) {
		for k, v := range m {
			if !yield(KeyValue[K, V]{Key: k, Value: v}) {
				return
			}
		}
	})
}

// unfold threads a state value through a generator function.
type unfold[T, S any] struct {
	state S
	fn    func(S) (T, S, bool)
	done  bool
}

func (u *unfold[T, S]) Next() (T, bool) {
	if u.done {
		var zero T
		return zero, false
	}
	v, next, ok := u.fn(u.state)
	if !ok {
		u.done = true
		var zero T
		return zero, false
	}
	u.state = next
	return v, true
}

// Unfold creates an iterator by unfolding a seed value. fn receives
// the current state and returns the value to produce, the next state,
// and whether to continue; false exhausts the iterator.
func Unfold[T, S any](seed S, fn func(S) (T, S, bool)) Iterator[T] {
	return core.New[T](&unfold[T, S]{state: seed, fn: fn})
}

// iterate repeatedly applies fn to its own previous output.
type iterate[T any] struct {
	current   T
	fn        func(T) T
	remaining int
	forever   bool
}

func (i *iterate[T]) Next() (T, bool) {
	if !i.forever {
		if i.remaining <= 0 {
			var zero T
			return zero, false
		}
		i.remaining--
	}
	v := i.current
	i.current = i.fn(i.current)
	return v, true
}

// Iterate creates an unbounded iterator producing seed, fn(seed),
// fn(fn(seed)), ...
func Iterate[T any](seed T, fn func(T) T) Iterator[T] {
	return core.New[T](&iterate[T]{current: seed, fn: fn, forever: true})
}

// IterateN creates an iterator producing seed, fn(seed), ... for n
// values.
func IterateN[T any](seed T, fn func(T) T, n int) Iterator[T] {
	return core.New[T](&iterate[T]{current: seed, fn: fn, remaining: n})
}

// concat drains each upstream handle in turn.
type concat[T any] struct {
	rest []Iterator[T]
}

func (c *concat[T]) Next() (T, bool) {
	for len(c.rest) > 0 {
		if v, ok := c.rest[0].Next(); ok {
			return v, true
		}
		c.rest = c.rest[1:]
	}
	var zero T
	return zero, false
}

// Concat creates an iterator producing all values from the first
// handle, then all values from the second, and so on.
func Concat[T any](its ...Iterator[T]) Iterator[T] {
	return core.New[T](&concat[T]{rest: its})
}
