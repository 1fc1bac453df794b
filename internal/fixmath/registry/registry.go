// Package registry provides the implementation registry for fixed-point
// kernel operations.
//
// The registry-based dispatch system allows multiple implementation variants
// (straightforward loops, unrolled loops, future SIMD kernels) to coexist.
// The best implementation for the current CPU is selected automatically at
// runtime.
//
// Implementation packages register themselves via init() functions, and the
// fixmath package uses the registry to select the best variant based on
// detected CPU features. All variants of an operation must produce
// byte-for-byte identical results on every input; they differ only in speed.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-fixdsp/internal/cpu"
)

// OpEntry represents a registered implementation variant for fixed-point
// kernel operations.
//
// Each entry contains typed function pointers for all supported operations at
// a specific tuning level. Not all fields need to be populated - only
// implement the operations available for that variant.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation
	// (e.g., "generic", "unroll2").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this
	// implementation. Pure Go variants (including unrolled ones) use
	// cpu.SIMDNone and run everywhere.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible
	// implementations exist. Higher priority implementations are preferred.
	// Suggested priorities:
	//   - Generic single-sample loops: 0
	//   - Unrolled loops: 10
	//   - SIMD kernels: 20+
	Priority int

	// MeanSqQ8 accumulates sum((s*s)>>fracBits) over all samples with a
	// 32-bit accumulator and divides by the element count (truncating).
	// An empty slice is a precondition violation (division by zero).
	MeanSqQ8 func(src []int8, fracBits uint) int8

	// MeanSqQ16 is the 16-bit sample counterpart of MeanSqQ8.
	MeanSqQ16 func(src []int16, fracBits uint) int16

	// ConjI8 conjugates an interleaved (re, im, re, im, ...) complex vector:
	// real parts are copied, imaginary parts are negated with saturation.
	// len(dst) and len(src) must both be 2*numSamples.
	ConjI8 func(dst, src []int8)

	// ScaleStrideI16 scales an M x N matrix held in a strided buffer:
	// dst[m*strideDst+n] = (src[m*strideSrc+n] * scale) >> shift.
	ScaleStrideI16 func(dst, src []int16, m, n, strideDst, strideSrc int, scale int16, shift uint)
}

// OpRegistry manages the registration and lookup of kernel implementation
// variants.
//
// Implementations register themselves via init() functions. At runtime,
// Lookup() selects the highest-priority implementation compatible with the
// current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by all fixmath operations.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// This function is typically called from init() functions in implementation
// packages. It is safe to call concurrently, but all registrations should
// complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU. If no
// compatible implementations are found, returns nil (which should never
// happen if a generic fallback is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, ~2-4 entries)
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

// ListEntries returns a copy of all registered entries, sorted by priority.
// Primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// Intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
