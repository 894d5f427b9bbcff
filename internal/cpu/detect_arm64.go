//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// NEON is mandatory on ARMv8 and always carries fused multiply-add.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		HasFMA:       cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
