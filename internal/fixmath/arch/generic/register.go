package generic

import (
	"github.com/cwbudde/algo-fixdsp/internal/cpu"
	"github.com/cwbudde/algo-fixdsp/internal/fixmath/registry"
)

// init registers the generic (single-sample loop) implementations with the
// fixmath registry.
//
// Generic implementations serve as the baseline fallback when no tuned
// variants are available or when ForceGeneric is enabled for testing.
//
// Priority: 0 (lowest - used only when no tuned alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		MeanSqQ8:       MeanSqQ8,
		MeanSqQ16:      MeanSqQ16,
		ConjI8:         ConjI8,
		ScaleStrideI16: ScaleStrideI16,
	})
}
