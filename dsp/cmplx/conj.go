// Package cmplx provides elementwise complex math over interleaved
// fixed-point vectors (re, im, re, im, ...).
package cmplx

import "github.com/cwbudde/algo-fixdsp/internal/fixmath"

// ConjI8 writes the complex conjugate of src into dst: real parts are
// copied, imaginary parts are negated. Negation saturates: -(-128) clamps to
// 127, the one value without a positive counterpart.
//
// Both slices hold 2*numSamples values; dst may alias src for in-place
// conjugation. Only min(len(dst), len(src)) values are processed.
//
// The implementation variant (straight loop or unrolled) is selected at
// runtime; both produce identical output.
func ConjI8(dst, src []int8) {
	fixmath.ConjI8(dst, src)
}
