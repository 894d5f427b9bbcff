// Package registry maps competing math libraries to the benchmark cases they
// implement.
//
// Each library adapter registers one LibEntry from an init() function. An
// entry carries a bench.Case per supported operation; operations a library
// has no equivalent for are left nil and the library is omitted from that
// benchmark group. Select narrows the registry to the libraries enabled by
// configuration and runnable on the host.
package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cwbudde/algo-mathbench/internal/bench"
	"github.com/cwbudde/algo-mathbench/internal/cpu"
)

// ErrUnknownLibrary is returned by Select for an enabled name with no entry.
var ErrUnknownLibrary = errors.New("registry: unknown library")

// LibEntry is one registered library.
type LibEntry struct {
	// Name identifies the library in benchmark names (e.g. "mathgl").
	Name string

	// Module is the import path of the benchmarked package.
	Module string

	// SIMDLevel is the instruction set the library dispatches to on this host.
	// Scalar libraries use cpu.SIMDNone.
	SIMDLevel cpu.SIMDLevel

	// Priority orders libraries within a group, highest first.
	Priority int

	ReturnSelf  bench.Case
	Transpose   bench.Case
	Determinant bench.Case
	Inverse     bench.Case
	MulMatrix4  bench.Case
	MulVector4  bench.Case
}

// Case returns the entry's case for op, or nil if the library lacks it.
func (e *LibEntry) Case(op bench.Op) bench.Case {
	switch op {
	case bench.OpReturnSelf:
		return e.ReturnSelf
	case bench.OpTranspose:
		return e.Transpose
	case bench.OpDeterminant:
		return e.Determinant
	case bench.OpInverse:
		return e.Inverse
	case bench.OpMulMatrix4:
		return e.MulMatrix4
	case bench.OpMulVector4:
		return e.MulVector4
	default:
		return nil
	}
}

// Ops lists the operations the entry implements, in catalogue order.
func (e *LibEntry) Ops() []bench.Op {
	var ops []bench.Op
	for _, op := range bench.Ops() {
		if e.Case(op) != nil {
			ops = append(ops, op)
		}
	}
	return ops
}

// OpRegistry stores the registered libraries.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []LibEntry
	sorted  bool
}

// Global is the registry adapters register into.
var Global = &OpRegistry{}

// Register adds a library. Registering a name twice replaces the earlier entry.
func (r *OpRegistry) Register(entry LibEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Name == entry.Name {
			r.entries[i] = entry
			r.sorted = false
			return
		}
	}
	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the entry named name, or nil.
func (r *OpRegistry) Lookup(name string) *LibEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			entry := r.entries[i]
			return &entry
		}
	}
	return nil
}

// Select returns, in priority order, the entries runnable with features.
// A non-empty enabled list restricts the result to those names; names are
// matched case-insensitively and an unknown name is an error.
func (r *OpRegistry) Select(features cpu.Features, enabled []string) ([]LibEntry, error) {
	entries := r.ListEntries()

	want := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		want[name] = true
	}
	for name := range want {
		found := false
		for i := range entries {
			if entries[i].Name == name {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLibrary, name)
		}
	}

	selected := make([]LibEntry, 0, len(entries))
	for _, e := range entries {
		if len(want) > 0 && !want[e.Name] {
			continue
		}
		if !cpu.Supports(features, e.SIMDLevel) {
			continue
		}
		selected = append(selected, e)
	}
	return selected, nil
}

// sortByPriority sorts entries by descending priority, keeping registration
// order among equal priorities. Must be called with r.mu held.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all entries sorted by priority.
func (r *OpRegistry) ListEntries() []LibEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	entries := make([]LibEntry, len(r.entries))
	copy(entries, r.entries)
	r.mu.Unlock()

	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
