// Package g3n registers github.com/g3n/engine/math32.
//
// math32.Matrix4 is a column-major [16]float32 with pointer-receiver methods
// that mutate in place. Operands are held by value and copied into locals so
// each operation works on its own storage. GetInverse is fallible: it
// returns an error for a singular source.
package g3n

import (
	"math/rand"

	"github.com/g3n/engine/math32"

	"github.com/cwbudde/algo-mathbench/internal/bench"
	"github.com/cwbudde/algo-mathbench/internal/cpu"
	"github.com/cwbudde/algo-mathbench/internal/registry"
)

// Name is the library's benchmark name.
const Name = "g3n"

func init() {
	registry.Global.Register(Entry())
}

// Entry returns the registry entry for math32.
func Entry() registry.LibEntry {
	return registry.LibEntry{
		Name:      Name,
		Module:    "github.com/g3n/engine/math32",
		SIMDLevel: cpu.SIMDNone,
		Priority:  50,

		ReturnSelf: bench.ReturnSelfValue(randMatrix4),
		Transpose: bench.Unary[math32.Matrix4, math32.Matrix4]{
			Gen: randMatrix4,
			Op:  transpose,
		},
		Determinant: bench.Unary[math32.Matrix4, float32]{
			Gen:      randMatrix4,
			Op:       determinant,
			Singular: singular,
		},
		Inverse: bench.Fallible[math32.Matrix4, math32.Matrix4]{
			Gen:      randMatrix4,
			Op:       inverse,
			Singular: singular,
		},
		MulMatrix4: bench.Binary[math32.Matrix4, math32.Matrix4, math32.Matrix4]{
			GenA: randMatrix4,
			GenB: randMatrix4,
			Op:   mul,
		},
		MulVector4: bench.Binary[math32.Matrix4, math32.Vector4, math32.Vector4]{
			GenA: randMatrix4,
			GenB: randVector4,
			Op:   mulVec,
		},
	}
}

func transpose(m math32.Matrix4) math32.Matrix4 {
	m.Transpose()
	return m
}

func determinant(m math32.Matrix4) float32 {
	return m.Determinant()
}

func inverse(m math32.Matrix4) (math32.Matrix4, bool) {
	var inv math32.Matrix4
	err := inv.GetInverse(&m)
	return inv, err == nil
}

func mul(a, b math32.Matrix4) math32.Matrix4 {
	var out math32.Matrix4
	out.MultiplyMatrices(&a, &b)
	return out
}

func mulVec(m math32.Matrix4, v math32.Vector4) math32.Vector4 {
	v.ApplyMatrix4(&m)
	return v
}

func randMatrix4(rng *rand.Rand) math32.Matrix4 {
	var m math32.Matrix4
	bench.Float32s(rng, m[:])
	return m
}

func randVector4(rng *rand.Rand) math32.Vector4 {
	var xyzw [4]float32
	bench.Float32s(rng, xyzw[:])
	return math32.Vector4{X: xyzw[0], Y: xyzw[1], Z: xyzw[2], W: xyzw[3]}
}

func singular() math32.Matrix4 {
	return math32.Matrix4(bench.Singular4f32())
}
