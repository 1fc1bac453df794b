package generic

import "github.com/cwbudde/algo-fixdsp/dsp/core"

// ConjI8 conjugates an interleaved (re, im, re, im, ...) 8-bit complex
// vector: dst[2n] = src[2n], dst[2n+1] = -src[2n+1] with saturation.
//
// Both slices must hold 2*numSamples values. dst may alias src.
func ConjI8(dst, src []int8) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}

	for i := 0; i+1 < n; i += 2 {
		dst[i] = src[i]
		dst[i+1] = core.SatNegI8(src[i+1])
	}
}
