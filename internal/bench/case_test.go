package bench

import (
	"errors"
	"math/rand"
	"testing"
)

func genInt(rng *rand.Rand) int { return rng.Int() }

func TestReturnSelfValue(t *testing.T) {
	c := ReturnSelfValue(func(rng *rand.Rand) [16]float32 {
		var m [16]float32
		Float32s(rng, m[:])
		return m
	})

	if err := c.Exercise(rand.New(rand.NewSource(1)), 8); err != nil {
		t.Fatalf("Exercise: %v", err)
	}
	if err := c.ExerciseSingular(); err != nil {
		t.Fatalf("ExerciseSingular: %v", err)
	}
}

func TestReturnSelfDetectsMismatch(t *testing.T) {
	c := ReturnSelf(
		func(rng *rand.Rand) *[4]float64 {
			var v [4]float64
			Float64s(rng, v[:])
			return &v
		},
		func(v *[4]float64) *[4]float64 {
			w := *v
			w[0] += 1
			return &w
		},
		func(a, b *[4]float64) bool { return *a == *b },
	)

	err := c.Exercise(rand.New(rand.NewSource(1)), 1)
	if !errors.Is(err, ErrResultMismatch) {
		t.Fatalf("Exercise error = %v, want ErrResultMismatch", err)
	}
}

func TestFallibleExerciseSingular(t *testing.T) {
	singular := func() int { return 0 }
	invert := func(v int) (int, bool) {
		if v == 0 {
			return 0, false
		}
		return 1 / v, true
	}

	ok := Fallible[int, int]{Gen: genInt, Op: invert, Singular: singular}
	if err := ok.ExerciseSingular(); err != nil {
		t.Fatalf("ExerciseSingular: %v", err)
	}

	lenient := Fallible[int, int]{
		Gen:      genInt,
		Op:       func(int) (int, bool) { return 0, true },
		Singular: singular,
	}
	if err := lenient.ExerciseSingular(); !errors.Is(err, ErrSingularAccepted) {
		t.Fatalf("ExerciseSingular error = %v, want ErrSingularAccepted", err)
	}

	noProbe := Fallible[int, int]{Gen: genInt, Op: invert}
	if err := noProbe.ExerciseSingular(); err != nil {
		t.Fatalf("ExerciseSingular without generator: %v", err)
	}
}

func TestUnaryExerciseSingularRunsOp(t *testing.T) {
	calls := 0
	u := Unary[int, int]{
		Gen:      genInt,
		Op:       func(v int) int { calls++; return v },
		Singular: func() int { return 0 },
	}
	if err := u.ExerciseSingular(); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("op called %d times, want 1", calls)
	}
}

func TestBinaryExercise(t *testing.T) {
	calls := 0
	c := Binary[int, int, int]{
		GenA: genInt,
		GenB: genInt,
		Op:   func(a, b int) int { calls++; return a ^ b },
	}
	if err := c.Exercise(rand.New(rand.NewSource(3)), 100); err != nil {
		t.Fatal(err)
	}
	if calls != 100 {
		t.Fatalf("op called %d times, want 100", calls)
	}
}

func TestBinaryBenchReportsThroughput(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the benchmark harness")
	}

	c := Binary[float64, float64, float64]{
		GenA: func(rng *rand.Rand) float64 { return rng.Float64() },
		GenB: func(rng *rand.Rand) float64 { return rng.Float64() },
		Op:   func(a, b float64) float64 { return a * b },
	}

	for _, size := range BatchSizes {
		res := testing.Benchmark(c.Bench(Options{Seed: 1}, size))
		if res.N == 0 {
			t.Fatalf("size %d: benchmark did not run", size)
		}
		if got := res.Extra["elems/op"]; got != float64(size) {
			t.Errorf("size %d: elems/op = %v", size, got)
		}
		if res.Extra["elems/s"] <= 0 {
			t.Errorf("size %d: elems/s = %v", size, res.Extra["elems/s"])
		}
	}
}

func TestBinaryIntoBenchAllocationFree(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the benchmark harness")
	}

	c := BinaryInto[[16]float32, [4]float32, [4]float32]{
		GenA: func(rng *rand.Rand) (m [16]float32) { Float32s(rng, m[:]); return m },
		GenB: func(rng *rand.Rand) (v [4]float32) { Float32s(rng, v[:]); return v },
		Op: func(dst *[4]float32, m *[16]float32, v *[4]float32) {
			for r := range 4 {
				dst[r] = m[4*r]*v[0] + m[4*r+1]*v[1] + m[4*r+2]*v[2] + m[4*r+3]*v[3]
			}
		},
	}

	for _, size := range BatchSizes {
		res := testing.Benchmark(c.Bench(Options{Seed: 1}, size))
		if got := res.AllocsPerOp(); got != 0 {
			t.Errorf("size %d: %d allocs/op, want 0", size, got)
		}
		if got := res.Extra["elems/op"]; got != float64(size) {
			t.Errorf("size %d: elems/op = %v", size, got)
		}
	}
}

func TestUnaryIntoBenchCyclesPool(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the benchmark harness")
	}

	seen := make(map[int]bool)
	u := UnaryInto[int, int]{
		Gen: func(rng *rand.Rand) int { return rng.Intn(1 << 30) },
		Op:  func(dst *int, v *int) { seen[*v] = true; *dst = *v },
	}

	res := testing.Benchmark(u.Bench(Options{Seed: 1, PoolSize: 4}, 1))
	if res.N < 4 {
		t.Skipf("only %d iterations ran", res.N)
	}
	if len(seen) != 4 {
		t.Fatalf("saw %d distinct operands, want 4", len(seen))
	}
}

func TestIntoExercise(t *testing.T) {
	var calls int
	u := UnaryInto[int, int]{
		Gen: func(rng *rand.Rand) int { return rng.Int() },
		Op:  func(dst *int, v *int) { calls++; *dst = *v },
	}
	c := BinaryInto[int, int, int]{
		GenA: func(rng *rand.Rand) int { return 2 },
		GenB: func(rng *rand.Rand) int { return 3 },
		Op:   func(dst *int, a, b *int) { calls++; *dst = *a * *b },
	}

	rng := rand.New(rand.NewSource(1))
	if err := u.Exercise(rng, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.Exercise(rng, 100); err != nil {
		t.Fatal(err)
	}
	if calls != 101 {
		t.Fatalf("op called %d times, want 101", calls)
	}
	if u.ExerciseSingular() != nil || c.ExerciseSingular() != nil {
		t.Fatal("in-place cases have no singular operand")
	}
}

func TestUnaryBenchCyclesPool(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the benchmark harness")
	}

	// Every invocation regenerates the same pool from the seed.
	seen := make(map[int]bool)
	u := Unary[int, int]{
		Gen: func(rng *rand.Rand) int { return rng.Intn(1 << 30) },
		Op:  func(v int) int { seen[v] = true; return v },
	}

	res := testing.Benchmark(u.Bench(Options{Seed: 1, PoolSize: 4}, 1))
	if res.N < 4 {
		t.Skipf("only %d iterations ran", res.N)
	}
	if len(seen) != 4 {
		t.Fatalf("saw %d distinct operands, want 4", len(seen))
	}
}

func TestSingular4(t *testing.T) {
	m := Singular4()
	for r := range 4 {
		if m[4*r+3] != 0 {
			t.Fatalf("row %d: last column is not zero", r)
		}
	}

	f := Singular4f32()
	for i := range m {
		if float64(f[i]) != m[i] {
			t.Fatalf("index %d: %v != %v", i, f[i], m[i])
		}
	}
}

func TestFloatsRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f32 := make([]float32, 256)
	f64 := make([]float64, 256)
	Float32s(rng, f32)
	Float64s(rng, f64)

	for i := range f32 {
		if f32[i] < -1 || f32[i] >= 1 || f64[i] < -1 || f64[i] >= 1 {
			t.Fatalf("index %d out of range: %v %v", i, f32[i], f64[i])
		}
	}
}
