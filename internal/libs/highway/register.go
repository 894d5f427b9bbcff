// Package highway registers the go-highway SIMD kernels
// (github.com/ajroetker/go-highway/hwy/contrib).
//
// Highway works on flat row-major float32 slices, so operands are
// [16]float32 matrices and [4]float32 vectors. The kernels dispatch at
// init time to the widest instruction set the host offers; the entry's
// SIMD level mirrors that choice so force_generic drops the library.
//
// The kernels are reached through function values, so every slice handed
// to them escapes. Operands and results therefore live in case-owned
// storage and are passed by pointer.
package highway

import (
	"math/rand"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/matmul"
	"github.com/ajroetker/go-highway/hwy/contrib/matvec"

	"github.com/cwbudde/algo-mathbench/internal/bench"
	"github.com/cwbudde/algo-mathbench/internal/cpu"
	"github.com/cwbudde/algo-mathbench/internal/registry"
)

// Name is the library's benchmark name.
const Name = "highway"

// Matrix is a row-major 4x4 matrix.
type Matrix = [16]float32

// Vector is a 4-component column vector.
type Vector = [4]float32

func init() {
	registry.Global.Register(Entry())
}

// Entry returns the registry entry for go-highway.
func Entry() registry.LibEntry {
	return registry.LibEntry{
		Name:      Name,
		Module:    "github.com/ajroetker/go-highway",
		SIMDLevel: simdLevel(hwy.CurrentLevel()),
		Priority:  30,

		Transpose: bench.UnaryInto[Matrix, Matrix]{
			Gen: randMatrix,
			Op:  transpose,
		},
		MulMatrix4: bench.BinaryInto[Matrix, Matrix, Matrix]{
			GenA: randMatrix,
			GenB: randMatrix,
			Op:   mul,
		},
		MulVector4: bench.BinaryInto[Matrix, Vector, Vector]{
			GenA: randMatrix,
			GenB: randVector,
			Op:   mulVec,
		},
	}
}

// DispatchLevel names the instruction set highway selected, e.g. "avx2".
func DispatchLevel() string {
	return hwy.CurrentLevel().String()
}

func simdLevel(l hwy.DispatchLevel) cpu.SIMDLevel {
	switch l {
	case hwy.DispatchSSE2:
		return cpu.SIMDSSE2
	case hwy.DispatchAVX2:
		return cpu.SIMDAVX2
	case hwy.DispatchAVX512:
		return cpu.SIMDAVX512
	case hwy.DispatchNEON, hwy.DispatchSVE, hwy.DispatchSME:
		return cpu.SIMDNEON
	default:
		return cpu.SIMDNone
	}
}

func transpose(dst, m *Matrix) {
	matmul.Transpose2DFloat32(m[:], 4, 4, dst[:])
}

func mul(c, a, b *Matrix) {
	matmul.MatMul(a[:], b[:], c[:], 4, 4, 4)
}

func mulVec(r *Vector, m *Matrix, v *Vector) {
	matvec.MatVecFloat32(m[:], 4, 4, v[:], r[:])
}

func randMatrix(rng *rand.Rand) Matrix {
	var m Matrix
	bench.Float32s(rng, m[:])
	return m
}

func randVector(rng *rand.Rand) Vector {
	var v Vector
	bench.Float32s(rng, v[:])
	return v
}
