// Package all links every library adapter into the binary. Import it for
// its side effect of filling registry.Global.
package all

import (
	_ "github.com/cwbudde/algo-mathbench/internal/libs/blas32"
	_ "github.com/cwbudde/algo-mathbench/internal/libs/g3n"
	_ "github.com/cwbudde/algo-mathbench/internal/libs/gonum"
	_ "github.com/cwbudde/algo-mathbench/internal/libs/highway"
	_ "github.com/cwbudde/algo-mathbench/internal/libs/mathgl"
	_ "github.com/cwbudde/algo-mathbench/internal/libs/vecmath"
	_ "github.com/cwbudde/algo-mathbench/internal/libs/ximage"
)
