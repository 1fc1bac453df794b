// Package core provides shared numeric primitives for fixed-point DSP kernels.
//
// Samples are plain signed integers carrying an implicit binary point: a value
// v with f fractional bits represents v / 2^f. Products of two such samples
// carry 2f fractional bits and are brought back to scale with an arithmetic
// right shift by f.
package core

import "math"

// SatNegI8 returns -v with saturation. The minimum representable value has no
// positive counterpart, so -(-128) clamps to 127 instead of overflowing.
func SatNegI8(v int8) int8 {
	if v == math.MinInt8 {
		return math.MaxInt8
	}

	return -v
}

// SatNegI16 returns -v with saturation, clamping -(-32768) to 32767.
func SatNegI16(v int16) int16 {
	if v == math.MinInt16 {
		return math.MaxInt16
	}

	return -v
}

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// QuantizeQ8 converts a float64 value to an 8-bit fixed-point sample with the
// given number of fractional bits. The value is scaled by 2^fracBits, rounded
// to nearest, and clamped to the int8 range.
func QuantizeQ8(x float64, fracBits uint) int8 {
	scaled := math.Round(x * float64(int64(1)<<fracBits))

	return int8(Clamp(scaled, math.MinInt8, math.MaxInt8))
}

// DequantizeQ8 converts an 8-bit fixed-point sample back to float64.
func DequantizeQ8(v int8, fracBits uint) float64 {
	return float64(v) / float64(int64(1)<<fracBits)
}

// QuantizeQ16 converts a float64 value to a 16-bit fixed-point sample with the
// given number of fractional bits, rounding to nearest and clamping.
func QuantizeQ16(x float64, fracBits uint) int16 {
	scaled := math.Round(x * float64(int64(1)<<fracBits))

	return int16(Clamp(scaled, math.MinInt16, math.MaxInt16))
}

// DequantizeQ16 converts a 16-bit fixed-point sample back to float64.
func DequantizeQ16(v int16, fracBits uint) float64 {
	return float64(v) / float64(int64(1)<<fracBits)
}
