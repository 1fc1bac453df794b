package testutil

import (
	"github.com/cwbudde/algo-vecmath"
)

// RefMeanSquares returns the float64 mean of squares of a signal, the
// reference value the fixed-point kernels approximate.
func RefMeanSquares(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	sq := make([]float64, len(signal))
	vecmath.MulBlock(sq, signal, signal)

	var sum float64
	for _, v := range sq {
		sum += v
	}

	return sum / float64(len(signal))
}
