// Package vecmath registers products built from the algo-vecmath block
// kernels (github.com/cwbudde/algo-vecmath).
//
// algo-vecmath has no matrix type. Matrices are column-major [16]float64
// and a product is accumulated column by column: M*v is the sum of the
// columns of M scaled by the components of v. Results carry the scratch
// column the accumulation needs, so a timed call touches only storage the
// case allocated up front.
package vecmath

import (
	"math/rand"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-mathbench/internal/bench"
	"github.com/cwbudde/algo-mathbench/internal/cpu"
	"github.com/cwbudde/algo-mathbench/internal/registry"
)

// Name is the library's benchmark name.
const Name = "vecmath"

// Matrix is a column-major 4x4 matrix: m[4*c+r] is row r, column c.
type Matrix = [16]float64

// Vector is a 4-component column vector.
type Vector = [4]float64

// MatProduct is a matrix × matrix result.
type MatProduct struct {
	M       Matrix
	scratch Vector
}

// VecProduct is a matrix × vector result.
type VecProduct struct {
	V       Vector
	scratch Vector
}

func init() {
	registry.Global.Register(Entry())
}

// Entry returns the registry entry for algo-vecmath.
func Entry() registry.LibEntry {
	return registry.LibEntry{
		Name:      Name,
		Module:    "github.com/cwbudde/algo-vecmath",
		SIMDLevel: simdLevel(cpu.DetectFeatures()),
		Priority:  20,

		MulMatrix4: bench.BinaryInto[Matrix, Matrix, MatProduct]{
			GenA: randMatrix,
			GenB: randMatrix,
			Op:   mul,
		},
		MulVector4: bench.BinaryInto[Matrix, Vector, VecProduct]{
			GenA: randMatrix,
			GenB: randVector,
			Op:   mulVec,
		},
	}
}

// simdLevel is the kernel set algo-vecmath dispatches to on this host.
func simdLevel(f cpu.Features) cpu.SIMDLevel {
	switch {
	case f.HasAVX2:
		return cpu.SIMDAVX2
	case f.HasSSE2:
		return cpu.SIMDSSE2
	case f.HasNEON:
		return cpu.SIMDNEON
	default:
		return cpu.SIMDNone
	}
}

// mulVecInto writes m*v to dst using scratch as the scaled-column buffer.
func mulVecInto(dst, scratch []float64, m *Matrix, v []float64) {
	vecmath.ScaleBlock(dst, m[0:4], v[0])
	for c := 1; c < 4; c++ {
		vecmath.ScaleBlock(scratch, m[4*c:4*c+4], v[c])
		vecmath.AddBlockInPlace(dst, scratch)
	}
}

func mulVec(dst *VecProduct, m *Matrix, v *Vector) {
	mulVecInto(dst.V[:], dst.scratch[:], m, v[:])
}

// mul computes a*b one column of b at a time.
func mul(dst *MatProduct, a, b *Matrix) {
	for j := range 4 {
		mulVecInto(dst.M[4*j:4*j+4], dst.scratch[:], a, b[4*j:4*j+4])
	}
}

func randMatrix(rng *rand.Rand) Matrix {
	var m Matrix
	bench.Float64s(rng, m[:])
	return m
}

func randVector(rng *rand.Rand) Vector {
	var v Vector
	bench.Float64s(rng, v[:])
	return v
}
