package unroll

// MeanSqQ8 is the two-samples-per-iteration variant of the 8-bit mean of
// squares kernel. Numeric output is byte-for-byte identical to the generic
// single-sample loop: integer accumulation is order-independent here, so
// unrolling only changes the instruction schedule.
func MeanSqQ8(src []int8, fracBits uint) int8 {
	var accu int32

	i := 0
	for ; i+1 < len(src); i += 2 {
		t1 := int32(src[i])
		t2 := int32(src[i+1])
		accu += (t1 * t1) >> fracBits
		accu += (t2 * t2) >> fracBits
	}

	if i < len(src) {
		t := int32(src[i])
		accu += (t * t) >> fracBits
	}

	return int8(accu / int32(len(src)))
}

// MeanSqQ16 is the unrolled 16-bit counterpart of MeanSqQ8.
func MeanSqQ16(src []int16, fracBits uint) int16 {
	var accu int32

	i := 0
	for ; i+1 < len(src); i += 2 {
		t1 := int32(src[i])
		t2 := int32(src[i+1])
		accu += (t1 * t1) >> fracBits
		accu += (t2 * t2) >> fracBits
	}

	if i < len(src) {
		t := int32(src[i])
		accu += (t * t) >> fracBits
	}

	return int16(accu / int32(len(src)))
}
