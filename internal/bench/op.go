// Package bench defines the 4x4 operation catalogue and the benchmark cases
// that libraries register for it.
//
// A Case erases a library's operand types behind a harness-facing interface:
// generic constructors (Unary, Fallible, Binary, ReturnSelf) take the
// library's own generator and operation and produce testing.B bodies.
package bench

import (
	"fmt"
	"strings"
)

// Op is an operation category measured across libraries.
type Op int

const (
	// OpReturnSelf passes a matrix through unchanged to measure call overhead.
	OpReturnSelf Op = iota
	OpTranspose
	OpDeterminant
	// OpInverse covers both plain and fallible (try) inverses.
	OpInverse
	OpMulMatrix4
	OpMulVector4
)

var opNames = [...]string{
	OpReturnSelf:  "return self",
	OpTranspose:   "transpose",
	OpDeterminant: "determinant",
	OpInverse:     "inverse",
	OpMulMatrix4:  "mul matrix4",
	OpMulVector4:  "mul vector4",
}

// BatchSizes are the operand counts processed per iteration by batched ops.
var BatchSizes = []int{1, 100}

// Ops returns every operation in catalogue order.
func Ops() []Op {
	return []Op{OpReturnSelf, OpTranspose, OpDeterminant, OpInverse, OpMulMatrix4, OpMulVector4}
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Group returns the benchmark group label, e.g. "matrix4 transpose".
func (o Op) Group() string {
	return "matrix4 " + o.String()
}

// Batched reports whether o runs over batches and declares throughput.
func (o Op) Batched() bool {
	return o == OpMulMatrix4 || o == OpMulVector4
}

// Sizes returns the batch sizes o is registered for.
// Unbatched operations run on a single operand.
func (o Op) Sizes() []int {
	if o.Batched() {
		return BatchSizes
	}
	return []int{1}
}

// ParseOp resolves a category name ("transpose" or "matrix4 transpose").
func ParseOp(name string) (Op, error) {
	name = strings.TrimPrefix(strings.TrimSpace(strings.ToLower(name)), "matrix4 ")
	for _, op := range Ops() {
		if op.String() == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("bench: unknown operation %q", name)
}
