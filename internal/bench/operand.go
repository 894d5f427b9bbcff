package bench

import "math/rand"

// Float32s fills dst with values uniform in [-1, 1).
func Float32s(rng *rand.Rand, dst []float32) {
	for i := range dst {
		dst[i] = rng.Float32()*2 - 1
	}
}

// Float64s fills dst with values uniform in [-1, 1).
func Float64s(rng *rand.Rand, dst []float64) {
	for i := range dst {
		dst[i] = rng.Float64()*2 - 1
	}
}

// Singular4 returns a non-invertible 4x4 matrix in row-major order.
// The last column is zero, which keeps the determinant exactly zero under
// cofactor expansion and leaves an exact zero pivot in LU factorization,
// whichever storage order a library reads it in.
func Singular4() [16]float64 {
	return [16]float64{
		1, 2, 3, 0,
		2, -1, 4, 0,
		7, 3, -2, 0,
		3, 1, 5, 0,
	}
}

// Singular4f32 is Singular4 converted to float32.
func Singular4f32() [16]float32 {
	var out [16]float32
	for i, v := range Singular4() {
		out[i] = float32(v)
	}
	return out
}
