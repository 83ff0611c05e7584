package pull

// Stage is a same-type pipeline step: a function that wraps an
// iterator and returns the wrapped iterator.
type Stage[T any] func(Iterator[T]) Iterator[T]

// Pipe applies stages to src in order, left to right, returning the
// final iterator. No values are pulled until the result is drained.
func Pipe[T any](src Iterator[T], stages ...Stage[T]) Iterator[T] {
	it := src
	for _, stage := range stages {
		it = stage(it)
	}
	return it
}

// Chain composes stages into a single stage, applied left to right.
// With no stages it returns the identity stage.
func Chain[T any](stages ...Stage[T]) Stage[T] {
	return func(it Iterator[T]) Iterator[T] {
		return Pipe(it, stages...)
	}
}
