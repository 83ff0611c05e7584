// Package pull provides a synchronous pull-iterator toolkit for
// composing in-memory sequences in Go.
//
// A sequence is produced one value at a time through a single-method
// contract, wrapped into a uniform iterator handle, optionally
// re-wrapped by combinators (see the transform and filter
// subpackages), and finally drained by exactly one terminal
// operation. Everything runs synchronously on the caller's goroutine.
//
// This package is the primary user-facing API. Most users should only
// need to import this package; the pull/core subpackage contains the
// low-level contract and is rarely needed directly.
package pull

import (
	"iter"

	"github.com/lguimbarda/min-pull/pull/core"
)

// Type aliases for the core abstractions. These allow users to work
// with the toolkit without importing core directly.
type (
	// Producer is the single-method contract concrete sources
	// implement: Next returns the next value and true, or the zero
	// value and false once exhausted.
	Producer[T any] = core.Producer[T]

	// Iterator is the type-erased handle over any Producer, the
	// uniform entry point for all consumers.
	Iterator[T any] = core.Iterator[T]

	// Op selects one of the fixed associative operators accepted by
	// FoldOp.
	Op = core.Op

	// Numeric constrains arithmetic element types.
	Numeric = core.Numeric

	// Integer constrains bitwise-capable element types.
	Integer = core.Integer
)

// Operators for FoldOp.
const (
	OpAnd = core.OpAnd
	OpOr  = core.OpOr
	OpXor = core.OpXor
	OpMin = core.OpMin
	OpMax = core.OpMax
	OpAdd = core.OpAdd
	OpMul = core.OpMul
)

// New binds a handle to a producer. Binding is cheap, repeatable and
// non-owning; the producer's lifetime must cover the handle's.
func New[T any](p Producer[T]) Iterator[T] {
	return core.New(p)
}

// Terminal operations - wrappers around core functions.

// Fold drains the handle, folding each value into the accumulator
// starting from initial.
func Fold[T, A any](it Iterator[T], initial A, fold func(acc A, item T) A) A {
	return core.Fold(it, initial, fold)
}

// FoldOp drains the handle, combining values with one of the fixed
// operators (OpAnd, OpOr, OpXor, OpMin, OpMax, OpAdd, OpMul).
func FoldOp[T Integer](it Iterator[T], initial T, op Op) T {
	return core.FoldOp(it, initial, op)
}

// ForEach drains the handle, calling visit once per value in order.
func ForEach[T any](it Iterator[T], visit func(T)) {
	core.ForEach(it, visit)
}

// TryForEach drains the handle, stopping at the first visit error and
// returning it verbatim.
func TryForEach[T any](it Iterator[T], visit func(T) error) error {
	return core.TryForEach(it, visit)
}

// Slice collects all produced values into a slice.
func Slice[T any](it Iterator[T]) []T {
	return core.Slice(it)
}

// First returns the first produced value, or false if exhausted.
func First[T any](it Iterator[T]) (T, bool) {
	return core.First(it)
}

// Count drains the handle and reports how many values it produced.
func Count[T any](it Iterator[T]) int {
	return core.Count(it)
}

// Seq adapts the handle to a range-over-func sequence.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return core.Seq(it)
}
