package generic

// MeanSqQ8 returns the mean of squared, fixed-point-scaled 8-bit samples.
//
// Each squared sample is shifted right by fracBits before accumulation into a
// 32-bit accumulator, then the total is divided by the element count
// (truncating toward zero).
//
// An empty src is a precondition violation and panics with a division by
// zero; callers must never pass an empty sub-range.
func MeanSqQ8(src []int8, fracBits uint) int8 {
	var accu int32

	for _, s := range src {
		t := int32(s)
		accu += (t * t) >> fracBits
	}

	return int8(accu / int32(len(src)))
}

// MeanSqQ16 is the 16-bit sample counterpart of MeanSqQ8. The 32-bit
// accumulator is assumed not to overflow for realistic block sizes.
func MeanSqQ16(src []int16, fracBits uint) int16 {
	var accu int32

	for _, s := range src {
		t := int32(s)
		accu += (t * t) >> fracBits
	}

	return int16(accu / int32(len(src)))
}
