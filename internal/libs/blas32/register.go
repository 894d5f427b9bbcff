// Package blas32 registers gonum's single-precision BLAS (gonum.org/v1/gonum/blas/blas32).
//
// BLAS has no transpose, determinant or inverse routine for a General
// matrix, so only the two products are benchmarked: Gemm for matrix ×
// matrix and Gemv for matrix × vector. The implementation is whatever
// blas32.Use installed; by default that is gonum's pure Go BLAS.
package blas32

import (
	"math/rand"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/cwbudde/algo-mathbench/internal/bench"
	"github.com/cwbudde/algo-mathbench/internal/cpu"
	"github.com/cwbudde/algo-mathbench/internal/registry"
)

// Name is the library's benchmark name.
const Name = "blas32"

func init() {
	registry.Global.Register(Entry())
}

// Entry returns the registry entry for blas32.
func Entry() registry.LibEntry {
	return registry.LibEntry{
		Name:      Name,
		Module:    "gonum.org/v1/gonum/blas/blas32",
		SIMDLevel: cpu.SIMDNone,
		Priority:  35,

		MulMatrix4: bench.Binary[blas32.General, blas32.General, blas32.General]{
			GenA: randGeneral,
			GenB: randGeneral,
			Op:   gemm,
		},
		MulVector4: bench.Binary[blas32.General, blas32.Vector, blas32.Vector]{
			GenA: randGeneral,
			GenB: randVector,
			Op:   gemv,
		},
	}
}

func newGeneral() blas32.General {
	return blas32.General{Rows: 4, Cols: 4, Stride: 4, Data: make([]float32, 16)}
}

func newVector() blas32.Vector {
	return blas32.Vector{N: 4, Inc: 1, Data: make([]float32, 4)}
}

// gemm computes a*b into a fresh matrix.
func gemm(a, b blas32.General) blas32.General {
	c := newGeneral()
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1, a, b, 0, c)
	return c
}

// gemv computes a*x into a fresh vector.
func gemv(a blas32.General, x blas32.Vector) blas32.Vector {
	y := newVector()
	blas32.Gemv(blas.NoTrans, 1, a, x, 0, y)
	return y
}

func randGeneral(rng *rand.Rand) blas32.General {
	g := newGeneral()
	bench.Float32s(rng, g.Data)
	return g
}

func randVector(rng *rand.Rand) blas32.Vector {
	v := newVector()
	bench.Float32s(rng, v.Data)
	return v
}
