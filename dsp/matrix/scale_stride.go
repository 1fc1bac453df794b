// Package matrix provides fixed-point matrix kernels over strided buffers.
//
// A strided buffer stores an M x N matrix with a configurable number of
// elements between row starts, so kernels can operate on sub-matrices of a
// larger allocation without copying.
package matrix

import "github.com/cwbudde/algo-fixdsp/internal/fixmath"

// ScaleStrideI16 scales an M x N matrix of 16-bit samples:
//
//	dst[r*strideDst+c] = (src[r*strideSrc+c] * scale) >> shift
//
// The multiply widens to 32 bits before the arithmetic right shift, and the
// result narrows back to int16 without saturation. Source and destination
// strides are independent and must each be >= n.
//
// Preconditions (not checked): len(src) >= (m-1)*strideSrc+n and
// len(dst) >= (m-1)*strideDst+n.
func ScaleStrideI16(dst, src []int16, m, n, strideDst, strideSrc int, scale int16, shift uint) {
	fixmath.ScaleStrideI16(dst, src, m, n, strideDst, strideSrc, scale, shift)
}
