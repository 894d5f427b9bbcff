package highway

import (
	"math/rand"
	"testing"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/cwbudde/algo-mathbench/internal/bench"
	"github.com/cwbudde/algo-mathbench/internal/cpu"
	"github.com/cwbudde/algo-mathbench/internal/testutil"
)

func matrix(m [16]float64) Matrix {
	var out Matrix
	copy(out[:], testutil.ToFloat32(m[:]))
	return out
}

func TestEntryOps(t *testing.T) {
	e := Entry()
	want := []bench.Op{bench.OpTranspose, bench.OpMulMatrix4, bench.OpMulVector4}
	ops := e.Ops()
	if len(ops) != len(want) {
		t.Fatalf("highway ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("highway ops = %v, want %v", ops, want)
		}
	}

	rng := rand.New(rand.NewSource(1))
	for _, op := range ops {
		for _, size := range op.Sizes() {
			if err := e.Case(op).Exercise(rng, size); err != nil {
				t.Errorf("%v size %d: %v", op, size, err)
			}
		}
	}
}

func TestSIMDLevel(t *testing.T) {
	tests := []struct {
		in   hwy.DispatchLevel
		want cpu.SIMDLevel
	}{
		{hwy.DispatchScalar, cpu.SIMDNone},
		{hwy.DispatchSSE2, cpu.SIMDSSE2},
		{hwy.DispatchAVX2, cpu.SIMDAVX2},
		{hwy.DispatchAVX512, cpu.SIMDAVX512},
		{hwy.DispatchNEON, cpu.SIMDNEON},
		{hwy.DispatchSME, cpu.SIMDNEON},
	}

	for _, tc := range tests {
		if got := simdLevel(tc.in); got != tc.want {
			t.Errorf("simdLevel(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDispatchLevelNamed(t *testing.T) {
	if DispatchLevel() == "" {
		t.Fatal("empty dispatch level")
	}
}

func TestTransposeMatchesReference(t *testing.T) {
	m := matrix(testutil.DeterministicMatrix(3))
	var got Matrix
	transpose(&got, &m)

	want := testutil.TransposeRef(testutil.RoundToFloat32(testutil.DeterministicMatrix(3)))
	testutil.RequireSliceNearlyEqual(t, testutil.ToFloat64(got[:]), want[:], 0)
}

func TestMulMatchesReference(t *testing.T) {
	a, b := testutil.DeterministicMatrix(1), testutil.DeterministicMatrix(2)
	ma, mb := matrix(a), matrix(b)
	var got Matrix
	mul(&got, &ma, &mb)

	testutil.RequireFinite(t, got[:])
	want := testutil.MulRef(a, b)
	testutil.RequireSliceNearlyEqual(t, testutil.ToFloat64(got[:]), want[:], 1e-5)
}

func TestMulVecMatchesReference(t *testing.T) {
	m, v := testutil.DeterministicMatrix(4), testutil.DeterministicVector(5)
	mm := matrix(m)
	var x, got Vector
	copy(x[:], testutil.ToFloat32(v[:]))
	mulVec(&got, &mm, &x)

	want := testutil.MulVecRef(m, v)
	testutil.RequireSliceNearlyEqual(t, testutil.ToFloat64(got[:]), want[:], 1e-5)
}

func TestKernelsDoNotAllocate(t *testing.T) {
	a, b, c := new(Matrix), new(Matrix), new(Matrix)
	*a, *b = matrix(testutil.DeterministicMatrix(1)), matrix(testutil.DeterministicMatrix(2))
	v, r := new(Vector), new(Vector)

	tests := []struct {
		name string
		fn   func()
	}{
		{"transpose", func() { transpose(c, a) }},
		{"mul", func() { mul(c, a, b) }},
		{"mulVec", func() { mulVec(r, a, v) }},
	}

	for _, tc := range tests {
		if got := testing.AllocsPerRun(100, tc.fn); got != 0 {
			t.Errorf("%s: %v allocs/op, want 0", tc.name, got)
		}
	}
}

func TestBenchAllocationFree(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the benchmark harness")
	}

	e := Entry()
	opts := bench.Options{Seed: 1, PoolSize: 16}
	for _, op := range e.Ops() {
		for _, size := range op.Sizes() {
			res := testing.Benchmark(e.Case(op).Bench(opts, size))
			if got := res.AllocsPerOp(); got != 0 {
				t.Errorf("%v size %d: %d allocs/op, want 0", op, size, got)
			}
		}
	}
}
