package core

// Terminal operations are sinks: each drains a handle on the caller's
// goroutine, either to exhaustion or, for TryForEach, to the first
// failing visit.

// Fold drains the handle left to right, folding every produced value
// into the accumulator starting from initial. On an already-exhausted
// handle it returns initial unchanged.
func Fold[T, A any](it Iterator[T], initial A, fold func(acc A, item T) A) A {
	acc := initial
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		acc = fold(acc, v)
	}
	return acc
}

// ForEach drains the handle, calling visit once per produced value in
// production order. Side effects are the caller's responsibility.
func ForEach[T any](it Iterator[T], visit func(T)) {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		visit(v)
	}
}

// TryForEach drains the handle in order until visit returns a non-nil
// error. The first failure is returned verbatim and nothing further
// is pulled from the upstream. A nil return means the handle was
// drained to exhaustion.
func TryForEach[T any](it Iterator[T], visit func(T) error) error {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if err := visit(v); err != nil {
			return err
		}
	}
	return nil
}

// Slice collects every produced value into a slice.
// An exhausted handle yields a nil slice.
func Slice[T any](it Iterator[T]) []T {
	var result []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		result = append(result, v)
	}
	return result
}

// First returns the first produced value, or false if the handle is
// already exhausted.
func First[T any](it Iterator[T]) (T, bool) {
	return it.Next()
}

// Count drains the handle and reports how many values it produced.
func Count[T any](it Iterator[T]) int {
	count := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		count++
	}
	return count
}
