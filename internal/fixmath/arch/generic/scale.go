package generic

// ScaleStrideI16 scales an M x N matrix held in a strided buffer:
// dst[r*strideDst+c] = (src[r*strideSrc+c] * scale) >> shift.
//
// The multiply widens to 32 bits before the arithmetic shift; the result is
// narrowed back to int16 without saturation, matching the accumulation
// discipline of the other fixed-point kernels.
func ScaleStrideI16(dst, src []int16, m, n, strideDst, strideSrc int, scale int16, shift uint) {
	for r := 0; r < m; r++ {
		for c := 0; c < n; c++ {
			val := int32(src[r*strideSrc+c]) * int32(scale)
			dst[r*strideDst+c] = int16(val >> shift)
		}
	}
}
