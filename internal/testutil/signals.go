// Package testutil provides deterministic fixed-point test signals and
// float64 reference statistics shared by the package tests.
package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-fixdsp/dsp/core"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// QuantizeQ8 converts a float64 signal to 8-bit fixed point with the given
// number of fractional bits.
func QuantizeQ8(signal []float64, fracBits uint) []int8 {
	out := make([]int8, len(signal))
	for i, x := range signal {
		out[i] = core.QuantizeQ8(x, fracBits)
	}
	return out
}

// QuantizeQ16 converts a float64 signal to 16-bit fixed point.
func QuantizeQ16(signal []float64, fracBits uint) []int16 {
	out := make([]int16, len(signal))
	for i, x := range signal {
		out[i] = core.QuantizeQ16(x, fracBits)
	}
	return out
}

// DequantizeQ8 converts an 8-bit fixed-point signal back to float64.
func DequantizeQ8(signal []int8, fracBits uint) []float64 {
	out := make([]float64, len(signal))
	for i, v := range signal {
		out[i] = core.DequantizeQ8(v, fracBits)
	}
	return out
}
