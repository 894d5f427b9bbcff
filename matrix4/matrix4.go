package matrix4

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-mathbench/internal/bench"
	"github.com/cwbudde/algo-mathbench/internal/registry"
)

// ErrNoBenchmarks is returned when a filter leaves nothing to run.
var ErrNoBenchmarks = errors.New("matrix4: no benchmarks match")

// Benchmark is one runnable item of the plan.
type Benchmark struct {
	Group   string
	Library string
	Op      bench.Op

	// Size is the batch size, or 0 for unbatched operations.
	Size int

	Fn func(b *testing.B)
}

// Sub returns the sub-benchmark name below the group:
// "library" or "library/size".
func (bm Benchmark) Sub() string {
	if bm.Size == 0 {
		return bm.Library
	}
	return bm.Library + "/" + strconv.Itoa(bm.Size)
}

// Name returns the full name, e.g. "matrix4 mul matrix4/gonum/100".
func (bm Benchmark) Name() string {
	return bm.Group + "/" + bm.Sub()
}

// Plan lists every (group, library, size) combination for libs, grouped by
// operation in catalogue order and by library in the order given.
func Plan(libs []registry.LibEntry, opts bench.Options) []Benchmark {
	var plan []Benchmark
	for _, op := range bench.Ops() {
		plan = append(plan, PlanOp(op, libs, opts)...)
	}
	return plan
}

// PlanOp lists the plan items of a single group.
func PlanOp(op bench.Op, libs []registry.LibEntry, opts bench.Options) []Benchmark {
	var plan []Benchmark
	for i := range libs {
		c := libs[i].Case(op)
		if c == nil {
			continue
		}
		for _, size := range op.Sizes() {
			bm := Benchmark{
				Group:   op.Group(),
				Library: libs[i].Name,
				Op:      op,
				Fn:      c.Bench(opts, size),
			}
			if op.Batched() {
				bm.Size = size
			}
			plan = append(plan, bm)
		}
	}
	return plan
}

// Filter keeps the items whose Name matches pattern. An empty pattern
// keeps everything.
func Filter(plan []Benchmark, pattern string) ([]Benchmark, error) {
	if pattern == "" {
		return plan, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("matrix4: bad pattern %q: %w", pattern, err)
	}

	var out []Benchmark
	for _, bm := range plan {
		if re.MatchString(bm.Name()) {
			out = append(out, bm)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoBenchmarks, pattern)
	}
	return out, nil
}
