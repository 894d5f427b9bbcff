package bench

import (
	"errors"
	"math/rand"
	"testing"
)

// DefaultPoolSize is the number of pre-generated operands unary cases cycle through.
const DefaultPoolSize = 1024

var (
	// ErrResultMismatch is returned when an identity operation changed its operand.
	ErrResultMismatch = errors.New("bench: result differs from input")

	// ErrSingularAccepted is returned when a fallible inverse reports success
	// for a non-invertible operand.
	ErrSingularAccepted = errors.New("bench: singular operand reported invertible")
)

// Options control operand generation for a benchmark body.
type Options struct {
	// Seed seeds the operand source. Equal seeds give equal operands.
	Seed int64

	// PoolSize is the unary operand pool length; zero selects DefaultPoolSize.
	PoolSize int
}

func (o Options) poolSize() int {
	if o.PoolSize <= 0 {
		return DefaultPoolSize
	}
	return o.PoolSize
}

// Case is one library's implementation of one operation.
type Case interface {
	// Bench returns a benchmark body applying the operation to size operands
	// per iteration.
	Bench(opts Options, size int) func(b *testing.B)

	// Exercise applies the operation once to each of size fresh operands and
	// validates the results where the case defines a check.
	Exercise(rng *rand.Rand, size int) error

	// ExerciseSingular applies the operation to a non-invertible operand.
	// Cases without a singular generator return nil.
	ExerciseSingular() error
}

// Unary measures Op on operands cycled from a pre-generated pool.
type Unary[M, R any] struct {
	Gen      func(*rand.Rand) M
	Op       func(M) R
	Singular func() M
}

func (u Unary[M, R]) Bench(opts Options, _ int) func(b *testing.B) {
	return func(b *testing.B) {
		pool := fillPool(rand.New(rand.NewSource(opts.Seed)), opts.poolSize(), u.Gen)

		b.ReportAllocs()
		i := 0
		for b.Loop() {
			u.Op(pool[i])
			if i++; i == len(pool) {
				i = 0
			}
		}
	}
}

func (u Unary[M, R]) Exercise(rng *rand.Rand, size int) error {
	for range size {
		u.Op(u.Gen(rng))
	}
	return nil
}

func (u Unary[M, R]) ExerciseSingular() error {
	if u.Singular == nil {
		return nil
	}
	u.Op(u.Singular())
	return nil
}

// Fallible measures an inverse that reports failure instead of panicking.
// Failures during timing are ignored; every operand is processed the same way.
type Fallible[M, R any] struct {
	Gen      func(*rand.Rand) M
	Op       func(M) (R, bool)
	Singular func() M
}

func (f Fallible[M, R]) Bench(opts Options, _ int) func(b *testing.B) {
	return func(b *testing.B) {
		pool := fillPool(rand.New(rand.NewSource(opts.Seed)), opts.poolSize(), f.Gen)

		b.ReportAllocs()
		i := 0
		for b.Loop() {
			f.Op(pool[i])
			if i++; i == len(pool) {
				i = 0
			}
		}
	}
}

func (f Fallible[M, R]) Exercise(rng *rand.Rand, size int) error {
	for range size {
		f.Op(f.Gen(rng))
	}
	return nil
}

func (f Fallible[M, R]) ExerciseSingular() error {
	if f.Singular == nil {
		return nil
	}
	if _, ok := f.Op(f.Singular()); ok {
		return ErrSingularAccepted
	}
	return nil
}

// Binary measures Op across batches of operand pairs generated once.
type Binary[A, B, R any] struct {
	GenA func(*rand.Rand) A
	GenB func(*rand.Rand) B
	Op   func(A, B) R
}

func (c Binary[A, B, R]) Bench(opts Options, size int) func(b *testing.B) {
	return func(b *testing.B) {
		rng := rand.New(rand.NewSource(opts.Seed))
		as := make([]A, size)
		bs := make([]B, size)
		for i := range size {
			as[i] = c.GenA(rng)
			bs[i] = c.GenB(rng)
		}
		out := make([]R, size)

		b.ReportAllocs()
		for b.Loop() {
			for i := range as {
				out[i] = c.Op(as[i], bs[i])
			}
		}
		ReportThroughput(b, size)
	}
}

func (c Binary[A, B, R]) Exercise(rng *rand.Rand, size int) error {
	for range size {
		c.Op(c.GenA(rng), c.GenB(rng))
	}
	return nil
}

func (c Binary[A, B, R]) ExerciseSingular() error { return nil }

// UnaryInto measures Op writing into a result owned by the case. Use it for
// kernels that take slices: operands and the result stay in storage
// allocated before timing starts.
type UnaryInto[M, R any] struct {
	Gen func(*rand.Rand) M
	Op  func(dst *R, m *M)
}

func (u UnaryInto[M, R]) Bench(opts Options, _ int) func(b *testing.B) {
	return func(b *testing.B) {
		pool := fillPool(rand.New(rand.NewSource(opts.Seed)), opts.poolSize(), u.Gen)
		dst := new(R)

		b.ReportAllocs()
		i := 0
		for b.Loop() {
			u.Op(dst, &pool[i])
			if i++; i == len(pool) {
				i = 0
			}
		}
	}
}

func (u UnaryInto[M, R]) Exercise(rng *rand.Rand, size int) error {
	var dst R
	for range size {
		m := u.Gen(rng)
		u.Op(&dst, &m)
	}
	return nil
}

func (u UnaryInto[M, R]) ExerciseSingular() error { return nil }

// BinaryInto is Binary for kernels that write into out[i] in place.
type BinaryInto[A, B, R any] struct {
	GenA func(*rand.Rand) A
	GenB func(*rand.Rand) B
	Op   func(dst *R, a *A, b *B)
}

func (c BinaryInto[A, B, R]) Bench(opts Options, size int) func(b *testing.B) {
	return func(b *testing.B) {
		rng := rand.New(rand.NewSource(opts.Seed))
		as := make([]A, size)
		bs := make([]B, size)
		for i := range size {
			as[i] = c.GenA(rng)
			bs[i] = c.GenB(rng)
		}
		out := make([]R, size)

		b.ReportAllocs()
		for b.Loop() {
			for i := range as {
				c.Op(&out[i], &as[i], &bs[i])
			}
		}
		ReportThroughput(b, size)
	}
}

func (c BinaryInto[A, B, R]) Exercise(rng *rand.Rand, size int) error {
	var dst R
	for range size {
		a, b := c.GenA(rng), c.GenB(rng)
		c.Op(&dst, &a, &b)
	}
	return nil
}

func (c BinaryInto[A, B, R]) ExerciseSingular() error { return nil }

// identity is the return-self case. Clone and Equal let reference types
// compare against a snapshot rather than against themselves.
type identity[M any] struct {
	Unary[M, M]
	clone func(M) M
	equal func(a, b M) bool
}

// ReturnSelf builds a return-self case for M.
func ReturnSelf[M any](gen func(*rand.Rand) M, clone func(M) M, equal func(a, b M) bool) Case {
	return identity[M]{
		Unary: Unary[M, M]{Gen: gen, Op: retSelf[M]},
		clone: clone,
		equal: equal,
	}
}

// ReturnSelfValue builds a return-self case for a comparable value type.
func ReturnSelfValue[M comparable](gen func(*rand.Rand) M) Case {
	return ReturnSelf(gen,
		func(m M) M { return m },
		func(a, b M) bool { return a == b })
}

func (c identity[M]) Exercise(rng *rand.Rand, size int) error {
	for range size {
		in := c.Gen(rng)
		snapshot := c.clone(in)
		out := c.Op(in)
		if !c.equal(out, snapshot) || !c.equal(in, snapshot) {
			return ErrResultMismatch
		}
	}
	return nil
}

func retSelf[M any](m M) M { return m }

// ReportThroughput declares elems operands per iteration to the harness.
// Call it after the timed loop so b.N and b.Elapsed are final.
func ReportThroughput(b *testing.B, elems int) {
	b.ReportMetric(float64(elems), "elems/op")
	if s := b.Elapsed().Seconds(); s > 0 {
		b.ReportMetric(float64(elems)*float64(b.N)/s, "elems/s")
	}
}

func fillPool[M any](rng *rand.Rand, n int, gen func(*rand.Rand) M) []M {
	pool := make([]M, n)
	for i := range pool {
		pool[i] = gen(rng)
	}
	return pool
}
