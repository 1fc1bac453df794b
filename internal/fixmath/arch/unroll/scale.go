package unroll

// ScaleStrideI16 is the unrolled strided matrix scale: the inner loop handles
// two columns per iteration with a single-column tail. Output is identical to
// the generic variant.
func ScaleStrideI16(dst, src []int16, m, n, strideDst, strideSrc int, scale int16, shift uint) {
	for r := 0; r < m; r++ {
		rowSrc := r * strideSrc
		rowDst := r * strideDst

		c := 0
		for ; c+1 < n; c += 2 {
			v0 := int32(src[rowSrc+c]) * int32(scale)
			v1 := int32(src[rowSrc+c+1]) * int32(scale)
			dst[rowDst+c] = int16(v0 >> shift)
			dst[rowDst+c+1] = int16(v1 >> shift)
		}

		if c < n {
			v := int32(src[rowSrc+c]) * int32(scale)
			dst[rowDst+c] = int16(v >> shift)
		}
	}
}
