// Package observe provides pass-through combinators for watching a
// pull pipeline: in-memory counters, OpenTelemetry metric instruments,
// and zerolog tracing. Each combinator forwards values unchanged and
// adds exactly one layer of dispatch.
package observe

import "github.com/lguimbarda/min-pull/pull/core"

// Metrics holds counts about a single iterator's lifetime. It is not
// safe for concurrent use; the pull model is single-goroutine by
// contract.
type Metrics struct {
	// Pulls counts calls to Next, including exhausted ones.
	Pulls int64
	// Values counts successful pulls.
	Values int64
	// Exhausted counts pulls that returned end-of-sequence.
	Exhausted int64
}

// meter counts every pull into a caller-owned Metrics.
type meter[T any] struct {
	in core.Iterator[T]
	m  *Metrics
}

func (mt *meter[T]) Next() (T, bool) {
	v, ok := mt.in.Next()
	mt.m.Pulls++
	if ok {
		mt.m.Values++
	} else {
		mt.m.Exhausted++
	}
	return v, ok
}

// Meter creates an iterator that counts every pull into m while
// passing values through unchanged. The caller reads m after (or
// during) the drain.
func Meter[T any](in core.Iterator[T], m *Metrics) core.Iterator[T] {
	return core.New[T](&meter[T]{in: in, m: m})
}
