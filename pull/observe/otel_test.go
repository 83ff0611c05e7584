package observe_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lguimbarda/min-pull/pull"
	"github.com/lguimbarda/min-pull/pull/observe"
)

// Demonstrates wiring a pipeline to OpenTelemetry counters. The noop
// provider stands in for a real SDK meter; pass-through behavior is
// verified with an in-memory Meter alongside.
func TestInstrument(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("minpull/observability")

	ins, err := observe.NewInstruments(meter)
	if err != nil {
		t.Fatalf("create instruments: %v", err)
	}

	var m observe.Metrics
	ctx := context.Background()
	it := observe.Instrument(ctx, observe.Meter(pull.Range(0, 4, 1), &m), ins)

	got := pull.Slice(it)
	want := []int{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if m.Values != 4 {
		t.Errorf("Values = %d, want 4", m.Values)
	}
	if m.Exhausted != 1 {
		t.Errorf("Exhausted = %d, want 1", m.Exhausted)
	}
}
