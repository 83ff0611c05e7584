package observe

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-pull/pull/core"
)

// Instruments bundles the OpenTelemetry instruments updated by
// Instrument. One Instruments value can be shared by any number of
// pipelines.
type Instruments struct {
	values    metric.Int64Counter
	exhausted metric.Int64Counter
}

// NewInstruments creates the counters on the given meter:
// pull.values for values produced and pull.exhausted for iterators
// drained to their end.
func NewInstruments(meter metric.Meter) (Instruments, error) {
	values, err := meter.Int64Counter("pull.values",
		metric.WithDescription("count of values produced"))
	if err != nil {
		return Instruments{}, err
	}
	exhausted, err := meter.Int64Counter("pull.exhausted",
		metric.WithDescription("count of iterators drained to exhaustion"))
	if err != nil {
		return Instruments{}, err
	}
	return Instruments{values: values, exhausted: exhausted}, nil
}

// instrumented records pulls on otel counters. Exhaustion is recorded
// once even though pulls after the end keep returning false.
type instrumented[T any] struct {
	ctx  context.Context
	in   core.Iterator[T]
	ins  Instruments
	done bool
}

func (i *instrumented[T]) Next() (T, bool) {
	v, ok := i.in.Next()
	if ok {
		i.ins.values.Add(i.ctx, 1)
	} else if !i.done {
		i.done = true
		i.ins.exhausted.Add(i.ctx, 1)
	}
	return v, ok
}

// Instrument creates an iterator that records every produced value
// and the first exhaustion on the given instruments. ctx is used only
// for metric recording.
func Instrument[T any](ctx context.Context, in core.Iterator[T], ins Instruments) core.Iterator[T] {
	return core.New[T](&instrumented[T]{ctx: ctx, in: in, ins: ins})
}
