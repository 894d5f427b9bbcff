// Package gonum registers gonum.org/v1/gonum/mat.
//
// Operands are 4x4 *mat.Dense and *mat.VecDense over float64. Results are
// allocated per call, matching how mat's receiver-as-destination API is used
// for fresh values. Dense.Inverse is fallible: singular and ill-conditioned
// inputs return an error.
package gonum

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-mathbench/internal/bench"
	"github.com/cwbudde/algo-mathbench/internal/cpu"
	"github.com/cwbudde/algo-mathbench/internal/registry"
)

// Name is the library's benchmark name.
const Name = "gonum"

func init() {
	registry.Global.Register(Entry())
}

// Entry returns the registry entry for mat.
func Entry() registry.LibEntry {
	return registry.LibEntry{
		Name:      Name,
		Module:    "gonum.org/v1/gonum/mat",
		SIMDLevel: cpu.SIMDNone,
		Priority:  40,

		ReturnSelf: bench.ReturnSelf(randDense, cloneDense, equalDense),
		Transpose: bench.Unary[*mat.Dense, *mat.Dense]{
			Gen: randDense,
			Op:  transpose,
		},
		Determinant: bench.Unary[*mat.Dense, float64]{
			Gen:      randDense,
			Op:       determinant,
			Singular: singular,
		},
		Inverse: bench.Fallible[*mat.Dense, *mat.Dense]{
			Gen:      randDense,
			Op:       inverse,
			Singular: singular,
		},
		MulMatrix4: bench.Binary[*mat.Dense, *mat.Dense, *mat.Dense]{
			GenA: randDense,
			GenB: randDense,
			Op:   mul,
		},
		MulVector4: bench.Binary[*mat.Dense, *mat.VecDense, *mat.VecDense]{
			GenA: randDense,
			GenB: randVecDense,
			Op:   mulVec,
		},
	}
}

// transpose materializes the lazy T() view so the copy is part of the cost.
func transpose(m *mat.Dense) *mat.Dense {
	return mat.DenseCopyOf(m.T())
}

func determinant(m *mat.Dense) float64 {
	return mat.Det(m)
}

func inverse(m *mat.Dense) (*mat.Dense, bool) {
	var inv mat.Dense
	err := inv.Inverse(m)
	return &inv, err == nil
}

func mul(a, b *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Mul(a, b)
	return &out
}

func mulVec(m *mat.Dense, v *mat.VecDense) *mat.VecDense {
	var out mat.VecDense
	out.MulVec(m, v)
	return &out
}

func randDense(rng *rand.Rand) *mat.Dense {
	data := make([]float64, 16)
	bench.Float64s(rng, data)
	return mat.NewDense(4, 4, data)
}

func randVecDense(rng *rand.Rand) *mat.VecDense {
	data := make([]float64, 4)
	bench.Float64s(rng, data)
	return mat.NewVecDense(4, data)
}

func cloneDense(m *mat.Dense) *mat.Dense {
	return mat.DenseCopyOf(m)
}

func equalDense(a, b *mat.Dense) bool {
	return mat.Equal(a, b)
}

func singular() *mat.Dense {
	data := bench.Singular4()
	return mat.NewDense(4, 4, data[:])
}
