// Package testutil provides deterministic 4x4 operands and scalar reference
// results for checking library adapters.
//
// All matrices are row-major: m[4*r+c] is row r, column c.
package testutil

import "math/rand"

// DeterministicMatrix returns a matrix with entries uniform in [-1, 1)
// drawn from a fixed seed.
func DeterministicMatrix(seed int64) [16]float64 {
	rng := rand.New(rand.NewSource(seed))
	var m [16]float64
	for i := range m {
		m[i] = rng.Float64()*2 - 1
	}
	return m
}

// DeterministicVector returns a vector with entries uniform in [-1, 1).
func DeterministicVector(seed int64) [4]float64 {
	rng := rand.New(rand.NewSource(seed))
	var v [4]float64
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}
	return v
}

// Diagonal returns diag(d0, d1, d2, d3).
func Diagonal(d0, d1, d2, d3 float64) [16]float64 {
	var m [16]float64
	m[0], m[5], m[10], m[15] = d0, d1, d2, d3
	return m
}

// Identity returns the 4x4 identity.
func Identity() [16]float64 {
	return Diagonal(1, 1, 1, 1)
}

// RoundToFloat32 rounds every entry of m to float32 precision, so references
// for float32 libraries can be compared exactly.
func RoundToFloat32(m [16]float64) [16]float64 {
	var out [16]float64
	for i, v := range m {
		out[i] = float64(float32(v))
	}
	return out
}

// TransposeRef returns the transpose of m.
func TransposeRef(m [16]float64) [16]float64 {
	var t [16]float64
	for r := range 4 {
		for c := range 4 {
			t[4*c+r] = m[4*r+c]
		}
	}
	return t
}

// MulRef returns a*b.
func MulRef(a, b [16]float64) [16]float64 {
	var out [16]float64
	for r := range 4 {
		for c := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[4*r+k] * b[4*k+c]
			}
			out[4*r+c] = sum
		}
	}
	return out
}

// MulVecRef returns m*v.
func MulVecRef(m [16]float64, v [4]float64) [4]float64 {
	var out [4]float64
	for r := range 4 {
		for k := range 4 {
			out[r] += m[4*r+k] * v[k]
		}
	}
	return out
}

// ToFloat32 converts src element-wise.
func ToFloat32(src []float64) []float32 {
	out := make([]float32, len(src))
	for i, v := range src {
		out[i] = float32(v)
	}
	return out
}

// ToFloat64 converts src element-wise.
func ToFloat64(src []float32) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}
