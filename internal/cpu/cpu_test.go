package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Error("SSE2 missing on amd64")
	}
}

func TestSetForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasAVX2: true, Architecture: "amd64"})
	if got := DetectFeatures(); !got.HasAVX2 || got.HasAVX512 {
		t.Fatalf("forced features not returned: %+v", got)
	}

	ResetDetection()
	if got := DetectFeatures(); got.Architecture != runtime.GOARCH {
		t.Fatalf("after reset Architecture = %q", got.Architecture)
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always", Features{}, SIMDNone, true},
		{"avx2 present", Features{HasAVX2: true}, SIMDAVX2, true},
		{"avx2 missing", Features{HasSSE2: true}, SIMDAVX2, false},
		{"neon present", Features{HasNEON: true}, SIMDNEON, true},
		{"forced generic", Features{HasAVX2: true, ForceGeneric: true}, SIMDAVX2, false},
		{"forced generic scalar", Features{ForceGeneric: true}, SIMDNone, true},
		{"unknown level", Features{HasAVX512: true}, SIMDLevel(99), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Supports(tc.features, tc.level); got != tc.want {
				t.Errorf("Supports(%+v, %v) = %v, want %v", tc.features, tc.level, got, tc.want)
			}
		})
	}
}

func TestBestLevel(t *testing.T) {
	tests := []struct {
		features Features
		want     SIMDLevel
	}{
		{Features{}, SIMDNone},
		{Features{HasSSE2: true}, SIMDSSE2},
		{Features{HasSSE2: true, HasAVX: true, HasAVX2: true}, SIMDAVX2},
		{Features{HasSSE2: true, HasAVX2: true, HasAVX512: true}, SIMDAVX512},
		{Features{HasNEON: true}, SIMDNEON},
		{Features{HasAVX2: true, ForceGeneric: true}, SIMDNone},
	}

	for _, tc := range tests {
		if got := BestLevel(tc.features); got != tc.want {
			t.Errorf("BestLevel(%+v) = %v, want %v", tc.features, got, tc.want)
		}
	}
}

func TestFeaturesString(t *testing.T) {
	f := Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"}
	if got, want := f.String(), "amd64 [SSE2 AVX2]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	f.ForceGeneric = true
	if got, want := f.String(), "amd64 [SSE2 AVX2] (generic forced)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
