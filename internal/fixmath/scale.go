package fixmath

import (
	"sync"

	"github.com/cwbudde/algo-fixdsp/internal/cpu"
	"github.com/cwbudde/algo-fixdsp/internal/fixmath/registry"
)

var (
	scaleStrideI16Impl func(dst, src []int16, m, n, strideDst, strideSrc int, scale int16, shift uint)
	scaleOnce          sync.Once
)

func initScaleOperation() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)

	if entry == nil {
		panic("fixmath: no scale implementation registered")
	}

	if entry.ScaleStrideI16 == nil {
		panic("fixmath: selected implementation missing scale operation")
	}

	scaleStrideI16Impl = entry.ScaleStrideI16
}

// ScaleStrideI16 scales an M x N matrix held in a strided buffer:
// dst[r*strideDst+c] = (src[r*strideSrc+c] * scale) >> shift.
func ScaleStrideI16(dst, src []int16, m, n, strideDst, strideSrc int, scale int16, shift uint) {
	scaleOnce.Do(initScaleOperation)
	scaleStrideI16Impl(dst, src, m, n, strideDst, strideSrc, scale, shift)
}
