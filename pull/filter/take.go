package filter

import "github.com/lguimbarda/min-pull/pull/core"

// take counts down a value budget.
type take[T any] struct {
	in        core.Iterator[T]
	remaining int
}

func (t *take[T]) Next() (T, bool) {
	if t.remaining <= 0 {
		var zero T
		return zero, false
	}
	v, ok := t.in.Next()
	if !ok {
		t.remaining = 0
		var zero T
		return zero, false
	}
	t.remaining--
	return v, true
}

// Take creates an iterator producing only the first n upstream
// values. Once n values have been produced the upstream is never
// pulled again. If n <= 0 the iterator is empty.
func Take[T any](in core.Iterator[T], n int) core.Iterator[T] {
	return core.New[T](&take[T]{in: in, remaining: n})
}

// takeWhile latches closed at the first non-matching value.
type takeWhile[T any] struct {
	in   core.Iterator[T]
	pred func(T) bool
	done bool
}

func (t *takeWhile[T]) Next() (T, bool) {
	var zero T
	if t.done {
		return zero, false
	}
	v, ok := t.in.Next()
	if !ok || !t.pred(v) {
		t.done = true
		return zero, false
	}
	return v, true
}

// TakeWhile creates an iterator producing upstream values while the
// predicate holds. The first non-matching value is consumed and
// dropped; nothing further is pulled after it.
func TakeWhile[T any](in core.Iterator[T], pred func(T) bool) core.Iterator[T] {
	return core.New[T](&takeWhile[T]{in: in, pred: pred})
}

// skip discards a prefix on the first pull.
type skip[T any] struct {
	in        core.Iterator[T]
	remaining int
}

func (s *skip[T]) Next() (T, bool) {
	for s.remaining > 0 {
		if _, ok := s.in.Next(); !ok {
			s.remaining = 0
			var zero T
			return zero, false
		}
		s.remaining--
	}
	return s.in.Next()
}

// Skip creates an iterator that drops the first n upstream values and
// passes everything after through.
func Skip[T any](in core.Iterator[T], n int) core.Iterator[T] {
	return core.New[T](&skip[T]{in: in, remaining: n})
}

// skipWhile drops a matching prefix.
type skipWhile[T any] struct {
	in       core.Iterator[T]
	pred     func(T) bool
	skipping bool
}

func (s *skipWhile[T]) Next() (T, bool) {
	if s.skipping {
		for {
			v, ok := s.in.Next()
			if !ok {
				s.skipping = false
				var zero T
				return zero, false
			}
			if !s.pred(v) {
				s.skipping = false
				return v, true
			}
		}
	}
	return s.in.Next()
}

// SkipWhile creates an iterator that drops upstream values while the
// predicate holds and passes everything from the first non-matching
// value on through, without re-testing.
func SkipWhile[T any](in core.Iterator[T], pred func(T) bool) core.Iterator[T] {
	return core.New[T](&skipWhile[T]{in: in, pred: pred, skipping: true})
}
