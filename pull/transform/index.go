package transform

import "github.com/lguimbarda/min-pull/pull/core"

// Indexed wraps a value with its 0-based position in the sequence.
type Indexed[T any] struct {
	Index int
	Value T
}

// withIndex pairs upstream values with a running counter.
type withIndex[T any] struct {
	in    core.Iterator[T]
	index int
}

func (w *withIndex[T]) Next() (Indexed[T], bool) {
	v, ok := w.in.Next()
	if !ok {
		return Indexed[T]{}, false
	}
	idx := w.index
	w.index++
	return Indexed[T]{Index: idx, Value: v}, true
}

// WithIndex creates an iterator pairing each upstream value with a
// counter starting at 0. The counter increments exactly once per
// produced pair and never on an exhausted pull.
func WithIndex[T any](in core.Iterator[T]) core.Iterator[Indexed[T]] {
	return core.New[Indexed[T]](&withIndex[T]{in: in})
}

// pairwise buffers the previous upstream value.
type pairwise[T any] struct {
	in      core.Iterator[T]
	prev    T
	hasPrev bool
}

func (p *pairwise[T]) Next() ([2]T, bool) {
	for {
		v, ok := p.in.Next()
		if !ok {
			return [2]T{}, false
		}
		if !p.hasPrev {
			p.prev = v
			p.hasPrev = true
			continue
		}
		pair := [2]T{p.prev, v}
		p.prev = v
		return pair, true
	}
}

// Pairwise creates an iterator producing consecutive
// (previous, current) pairs. An upstream with fewer than two values
// produces nothing.
func Pairwise[T any](in core.Iterator[T]) core.Iterator[[2]T] {
	return core.New[[2]T](&pairwise[T]{in: in})
}
