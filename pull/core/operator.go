package core

import "fmt"

// Numeric is a constraint for element types that support arithmetic
// and ordering.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer is the subset of Numeric that additionally supports the
// bitwise operators required by OpAnd, OpOr and OpXor.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Op selects one of the fixed associative operators accepted by
// FoldOp. The set is closed by design; dispatch is a single switch,
// not open-ended polymorphism.
type Op int

const (
	OpAnd Op = iota
	OpOr
	OpXor
	OpMin
	OpMax
	OpAdd
	OpMul
)

func (op Op) String() string {
	switch op {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpMin:
		return "min"
	case OpMax:
		return "max"
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// FoldOp drains the handle left to right like Fold, combining every
// produced value into the accumulator with the chosen operator.
// Traversal order never depends on the operator. Seed semantics are
// plain fold semantics: OpMul with initial 0 yields 0 no matter what
// the handle produces. FoldOp panics on an Op outside the fixed set.
func FoldOp[T Integer](it Iterator[T], initial T, op Op) T {
	acc := initial
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		switch op {
		case OpAnd:
			acc &= v
		case OpOr:
			acc |= v
		case OpXor:
			acc ^= v
		case OpMin:
			if v < acc {
				acc = v
			}
		case OpMax:
			if acc < v {
				acc = v
			}
		case OpAdd:
			acc += v
		case OpMul:
			acc *= v
		default:
			panic(fmt.Sprintf("pull: unknown operator %s", op))
		}
	}
	return acc
}
