// Package fixmath dispatches fixed-point kernel operations to the best
// registered implementation variant for the current CPU.
//
// Variants register themselves through the registry package; the selection
// (generic loop vs unrolled loop) only affects speed, never numeric output.
package fixmath

import (
	"sync"

	"github.com/cwbudde/algo-fixdsp/internal/cpu"
	"github.com/cwbudde/algo-fixdsp/internal/fixmath/registry"
)

var (
	meanSqQ8Impl  func([]int8, uint) int8
	meanSqQ16Impl func([]int16, uint) int16
	meanSqOnce    sync.Once
)

func initMeanSqOperations() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)

	if entry == nil {
		panic("fixmath: no mean-square implementation registered (missing generic fallback?)")
	}

	if entry.MeanSqQ8 == nil || entry.MeanSqQ16 == nil {
		panic("fixmath: selected implementation missing mean-square operation")
	}

	meanSqQ8Impl = entry.MeanSqQ8
	meanSqQ16Impl = entry.MeanSqQ16
}

// MeanSqQ8 returns the mean of squared, fixed-point-scaled 8-bit samples:
// sum((s*s)>>fracBits) / len(src), accumulated in 32 bits with truncating
// division.
//
// src must not be empty; an empty sub-range is a caller error and panics
// with a division by zero. After the first call, subsequent calls have zero
// dispatch overhead (direct function pointer call).
func MeanSqQ8(src []int8, fracBits uint) int8 {
	meanSqOnce.Do(initMeanSqOperations)
	return meanSqQ8Impl(src, fracBits)
}

// MeanSqQ16 is the 16-bit sample counterpart of MeanSqQ8.
func MeanSqQ16(src []int16, fracBits uint) int16 {
	meanSqOnce.Do(initMeanSqOperations)
	return meanSqQ16Impl(src, fracBits)
}
