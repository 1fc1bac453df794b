package fixmath

// This file imports the implementation packages so their init() registration
// runs whenever fixmath is linked in.

import (
	// Generic implementations (single-sample loop baseline)
	_ "github.com/cwbudde/algo-fixdsp/internal/fixmath/arch/generic"

	// Unrolled implementations (preferred)
	_ "github.com/cwbudde/algo-fixdsp/internal/fixmath/arch/unroll"
)
