package power

import "github.com/cwbudde/algo-fixdsp/internal/fixmath"

// RMSQ8 returns the mean of squared 8-bit fixed-point samples:
// sum((s*s)>>fracBits) / len(src), accumulated in 32 bits with truncating
// division.
//
// src must hold at least one sample; an empty vector is a precondition
// violation. fracBits must be small enough that the shift stays within the
// 32-bit intermediate; this is the caller's responsibility and is not
// checked.
func RMSQ8(src []int8, fracBits uint) int8 {
	return fixmath.MeanSqQ8(src, fracBits)
}

// RMSQ16 is the 16-bit sample counterpart of RMSQ8.
func RMSQ16(src []int16, fracBits uint) int16 {
	return fixmath.MeanSqQ16(src, fracBits)
}
