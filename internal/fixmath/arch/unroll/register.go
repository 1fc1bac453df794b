package unroll

import (
	"github.com/cwbudde/algo-fixdsp/internal/cpu"
	"github.com/cwbudde/algo-fixdsp/internal/fixmath/registry"
)

// init registers the unrolled loop implementations with the fixmath registry.
//
// These variants run on any CPU (SIMDNone) but are preferred over the generic
// single-sample loops. ForceGeneric does not exclude them; tests that need
// the generic variant call the arch/generic package directly.
//
// Priority: 10
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "unroll2",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,

		MeanSqQ8:       MeanSqQ8,
		MeanSqQ16:      MeanSqQ16,
		ConjI8:         ConjI8,
		ScaleStrideI16: ScaleStrideI16,
	})
}
