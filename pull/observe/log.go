package observe

import (
	"github.com/rs/zerolog"

	"github.com/lguimbarda/min-pull/pull/core"
)

// logged traces pulls on a zerolog logger.
type logged[T any] struct {
	in     core.Iterator[T]
	logger zerolog.Logger
	name   string
	count  int64
	done   bool
}

func (l *logged[T]) Next() (T, bool) {
	v, ok := l.in.Next()
	if !ok {
		if !l.done {
			l.done = true
			l.logger.Debug().
				Str("iterator", l.name).
				Int64("values", l.count).
				Msg("iterator exhausted")
		}
		return v, false
	}
	l.count++
	l.logger.Trace().
		Str("iterator", l.name).
		Interface("value", v).
		Msg("value produced")
	return v, true
}

// Log creates an iterator that traces each produced value at trace
// level and logs a single debug event with the final count when the
// upstream exhausts. name tags every event so chained Log stages stay
// distinguishable.
func Log[T any](in core.Iterator[T], logger zerolog.Logger, name string) core.Iterator[T] {
	return core.New[T](&logged[T]{in: in, logger: logger, name: name})
}
