package fixmath

import (
	"sync"

	"github.com/cwbudde/algo-fixdsp/internal/cpu"
	"github.com/cwbudde/algo-fixdsp/internal/fixmath/registry"
)

var (
	conjI8Impl func(dst, src []int8)
	conjOnce   sync.Once
)

func initConjOperation() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)

	if entry == nil {
		panic("fixmath: no conjugate implementation registered")
	}

	if entry.ConjI8 == nil {
		panic("fixmath: selected implementation missing conjugate operation")
	}

	conjI8Impl = entry.ConjI8
}

// ConjI8 conjugates an interleaved (re, im, re, im, ...) 8-bit complex
// vector into dst. Imaginary parts are negated with saturation: the one
// value without a positive counterpart (-128) clamps to 127.
func ConjI8(dst, src []int8) {
	conjOnce.Do(initConjOperation)
	conjI8Impl(dst, src)
}
