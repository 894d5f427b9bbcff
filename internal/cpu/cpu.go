// Package cpu reports the SIMD capabilities of the benchmark host.
//
// Several of the benchmarked libraries dispatch to SIMD kernels at runtime,
// so their numbers only make sense next to the instruction sets that were
// available. Detection runs once on the first call to DetectFeatures and is
// cached for the life of the process.
package cpu

import (
	"strings"
	"sync"
)

// SIMDLevel is a SIMD instruction set extension level.
// Levels are not comparable across architectures (AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone is scalar Go code.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline.
	SIMDSSE2

	// SIMDAVX is x86-64 AVX.
	SIMDAVX

	// SIMDAVX2 is x86-64 AVX2.
	SIMDAVX2

	// SIMDAVX512 is x86-64 AVX-512F.
	SIMDAVX512

	// SIMDNEON is ARM Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the host capabilities that matter for 4x4 float kernels.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasFMA    bool
	HasAVX512 bool
	HasNEON   bool

	// ForceGeneric restricts selection to scalar implementations.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// String lists the detected extensions, e.g. "amd64 [SSE2 AVX AVX2 FMA]".
func (f Features) String() string {
	var exts []string
	add := func(ok bool, name string) {
		if ok {
			exts = append(exts, name)
		}
	}
	add(f.HasSSE2, "SSE2")
	add(f.HasAVX, "AVX")
	add(f.HasAVX2, "AVX2")
	add(f.HasFMA, "FMA")
	add(f.HasAVX512, "AVX-512")
	add(f.HasNEON, "NEON")

	s := f.Architecture + " [" + strings.Join(exts, " ") + "]"
	if f.ForceGeneric {
		s += " (generic forced)"
	}
	return s
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features of the current host.
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// BestLevel returns the widest SIMD level supported by features.
func BestLevel(features Features) SIMDLevel {
	switch {
	case features.ForceGeneric:
		return SIMDNone
	case features.HasAVX512:
		return SIMDAVX512
	case features.HasAVX2:
		return SIMDAVX2
	case features.HasAVX:
		return SIMDAVX
	case features.HasSSE2:
		return SIMDSSE2
	case features.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features can run code requiring level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
