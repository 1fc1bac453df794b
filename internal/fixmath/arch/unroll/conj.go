package unroll

import "github.com/cwbudde/algo-fixdsp/dsp/core"

// ConjI8 conjugates an interleaved 8-bit complex vector, processing two
// complex samples (four values) per iteration with a single-sample tail.
// Output is identical to the generic variant.
func ConjI8(dst, src []int8) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}

	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = src[i]
		dst[i+1] = core.SatNegI8(src[i+1])
		dst[i+2] = src[i+2]
		dst[i+3] = core.SatNegI8(src[i+3])
	}

	if i+1 < n {
		dst[i] = src[i]
		dst[i+1] = core.SatNegI8(src[i+1])
	}
}
