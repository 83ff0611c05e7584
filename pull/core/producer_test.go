package core_test

import (
	"testing"

	"github.com/lguimbarda/min-pull/pull/core"
)

// countdown is a minimal producer used to exercise the handle without
// depending on the higher-level source constructors.
type countdown struct {
	remaining int
}

func (c *countdown) Next() (int, bool) {
	if c.remaining <= 0 {
		return 0, false
	}
	v := c.remaining
	c.remaining--
	return v, true
}

func TestIteratorDispatch(t *testing.T) {
	it := core.New[int](&countdown{remaining: 3})

	want := []int{3, 2, 1}
	for i, w := range want {
		v, ok := it.Next()
		if !ok {
			t.Fatalf("pull %d: unexpected exhaustion", i)
		}
		if v != w {
			t.Errorf("pull %d: got %d, want %d", i, v, w)
		}
	}

	// Exhaustion must be idempotent.
	for i := 0; i < 3; i++ {
		if v, ok := it.Next(); ok {
			t.Fatalf("pull after exhaustion returned (%d, true)", v)
		}
	}
}

func TestIteratorSharesProducerCursor(t *testing.T) {
	src := &countdown{remaining: 2}
	a := core.New[int](src)
	b := core.New[int](src)

	if v, ok := a.Next(); !ok || v != 2 {
		t.Fatalf("first handle: got (%d, %v), want (2, true)", v, ok)
	}
	if v, ok := b.Next(); !ok || v != 1 {
		t.Fatalf("second handle: got (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := a.Next(); ok {
		t.Fatal("shared producer should be exhausted")
	}
}

func TestIteratorIsProducer(t *testing.T) {
	// A handle is itself a producer, so it can be re-wrapped and the
	// chain still dispatches to the original source.
	inner := core.New[int](&countdown{remaining: 1})
	outer := core.New[int](inner)

	if v, ok := outer.Next(); !ok || v != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := outer.Next(); ok {
		t.Fatal("expected exhaustion through both layers")
	}
}

func TestSeq(t *testing.T) {
	it := core.New[int](&countdown{remaining: 4})

	var got []int
	for v := range core.Seq(it) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}

	want := []int{4, 3, 2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	// Breaking out of the range left the cursor where it was.
	if v, ok := it.Next(); !ok || v != 1 {
		t.Fatalf("after break: got (%d, %v), want (1, true)", v, ok)
	}
}
