// Package matrix4 benchmarks 4x4 matrix operations across the registered
// linear-algebra libraries.
//
// Six groups are measured:
//
//	matrix4 return self
//	matrix4 transpose
//	matrix4 determinant
//	matrix4 inverse
//	matrix4 mul matrix4   (batches of 1 and 100)
//	matrix4 mul vector4   (batches of 1 and 100)
//
// Run them with go test:
//
//	go test -bench . -benchmem ./matrix4
//	go test -bench 'MulMatrix4/gonum' ./matrix4
//
// The same plan backs the mathbench command, which runs items through
// testing.Benchmark and prints a table. Both read MATHBENCH_* settings.
package matrix4
