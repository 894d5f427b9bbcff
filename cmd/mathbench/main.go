// Command mathbench runs the 4x4 matrix benchmarks outside of go test.
//
// Usage:
//
//	mathbench run [flags] [pattern]
//	mathbench list
//	mathbench env
//
// Examples:
//
//	mathbench run
//	mathbench run 'mul matrix4/.*/100'
//	mathbench run --libs mathgl,gonum --benchtime 200ms inverse
//	mathbench run --force-generic
//	MATHBENCH_SEED=7 mathbench run transpose
package main

import (
	"fmt"
	"os"

	_ "github.com/cwbudde/algo-mathbench/internal/libs/all"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
