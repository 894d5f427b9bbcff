// Package mathgl registers github.com/go-gl/mathgl/mgl32.
//
// mgl32.Mat4 is a column-major [16]float32 value type with value-receiver
// methods, so every operation maps directly onto a method expression.
// Inv is not fallible: a singular matrix yields the zero matrix.
package mathgl

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cwbudde/algo-mathbench/internal/bench"
	"github.com/cwbudde/algo-mathbench/internal/cpu"
	"github.com/cwbudde/algo-mathbench/internal/registry"
)

// Name is the library's benchmark name.
const Name = "mathgl"

func init() {
	registry.Global.Register(Entry())
}

// Entry returns the registry entry for mgl32.
func Entry() registry.LibEntry {
	return registry.LibEntry{
		Name:      Name,
		Module:    "github.com/go-gl/mathgl/mgl32",
		SIMDLevel: cpu.SIMDNone,
		Priority:  60,

		ReturnSelf: bench.ReturnSelfValue(randMat4),
		Transpose: bench.Unary[mgl32.Mat4, mgl32.Mat4]{
			Gen: randMat4,
			Op:  mgl32.Mat4.Transpose,
		},
		Determinant: bench.Unary[mgl32.Mat4, float32]{
			Gen:      randMat4,
			Op:       mgl32.Mat4.Det,
			Singular: singular,
		},
		Inverse: bench.Unary[mgl32.Mat4, mgl32.Mat4]{
			Gen:      randMat4,
			Op:       mgl32.Mat4.Inv,
			Singular: singular,
		},
		MulMatrix4: bench.Binary[mgl32.Mat4, mgl32.Mat4, mgl32.Mat4]{
			GenA: randMat4,
			GenB: randMat4,
			Op:   mgl32.Mat4.Mul4,
		},
		MulVector4: bench.Binary[mgl32.Mat4, mgl32.Vec4, mgl32.Vec4]{
			GenA: randMat4,
			GenB: randVec4,
			Op:   mgl32.Mat4.Mul4x1,
		},
	}
}

func randMat4(rng *rand.Rand) mgl32.Mat4 {
	var m mgl32.Mat4
	bench.Float32s(rng, m[:])
	return m
}

func randVec4(rng *rand.Rand) mgl32.Vec4 {
	var v mgl32.Vec4
	bench.Float32s(rng, v[:])
	return v
}

func singular() mgl32.Mat4 {
	return mgl32.Mat4(bench.Singular4f32())
}
