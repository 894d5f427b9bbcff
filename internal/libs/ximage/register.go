// Package ximage registers golang.org/x/image/math/f32.
//
// f32 declares Mat4 and Vec4 but no operations on them, so the only
// benchmark is returning the value itself. It is the baseline cost of
// passing a 64-byte matrix by value.
package ximage

import (
	"math/rand"

	"golang.org/x/image/math/f32"

	"github.com/cwbudde/algo-mathbench/internal/bench"
	"github.com/cwbudde/algo-mathbench/internal/cpu"
	"github.com/cwbudde/algo-mathbench/internal/registry"
)

// Name is the library's benchmark name.
const Name = "ximage"

func init() {
	registry.Global.Register(Entry())
}

// Entry returns the registry entry for x/image/math/f32.
func Entry() registry.LibEntry {
	return registry.LibEntry{
		Name:       Name,
		Module:     "golang.org/x/image/math/f32",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   10,
		ReturnSelf: bench.ReturnSelfValue(randMat4),
	}
}

func randMat4(rng *rand.Rand) f32.Mat4 {
	var m f32.Mat4
	bench.Float32s(rng, m[:])
	return m
}
