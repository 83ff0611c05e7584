// Package core defines the core abstractions for synchronous pull
// iteration: the single-method producer contract, the type-erased
// iterator handle that lets heterogeneous producers be composed
// through one uniform value, and the terminal operations that drain
// a handle.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other pull packages.
package core

import "iter"

// Producer is the single-method contract every concrete source
// implements. Next returns the next value and true, or the zero value
// and false once the sequence is exhausted.
//
// Exhaustion is not an error; it is the normal second case of every
// call, and it must be idempotent: after the first false, every later
// call returns false as well.
//
// A producer mutates its cursor state only inside its own Next call.
// A producer and the handles wrapping it must not be driven from more
// than one goroutine concurrently; no internal synchronization exists
// or is needed.
type Producer[T any] interface {
	Next() (T, bool)
}

// Iterator is the uniform handle over any Producer[T]. It holds a
// single interface value, which in Go is a (data pointer, dispatch
// table) pair resolved once when the producer is bound: every Next is
// exactly one indirect call, and binding a pointer-shaped producer
// allocates nothing.
//
// The handle is a cheap copyable value and never owns the producer it
// wraps. A combinator owns its upstream handle value, not the
// upstream's producer; discarding a handle requires no cleanup beyond
// ceasing to call Next. A zero Iterator has no producer bound and
// must not be pulled.
//
// An Iterator is itself a Producer, so anything that wraps a producer
// can wrap an already-composed pipeline.
type Iterator[T any] struct {
	src Producer[T]
}

// New binds a handle to a producer. Binding is repeatable and does
// not consume or copy the producer; the same producer may be wrapped
// any number of times, though all handles then share its cursor.
func New[T any](p Producer[T]) Iterator[T] {
	return Iterator[T]{src: p}
}

// Next pulls the next value from the bound producer.
func (it Iterator[T]) Next() (T, bool) {
	return it.src.Next()
}

// Seq adapts the handle to a Go range-over-func sequence.
// The returned sequence is single-use: it advances the shared cursor.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
