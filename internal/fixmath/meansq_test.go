package fixmath

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-fixdsp/internal/fixmath/arch/generic"
	"github.com/cwbudde/algo-fixdsp/internal/fixmath/arch/unroll"
)

func randomI8(rng *rand.Rand, n int) []int8 {
	out := make([]int8, n)
	for i := range out {
		out[i] = int8(rng.Intn(256) - 128)
	}
	return out
}

func randomI16(rng *rand.Rand, n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(rng.Intn(65536) - 32768)
	}
	return out
}

func TestMeanSqQ8AlternatingVector(t *testing.T) {
	src := []int8{4, -4, 4, -4}

	// 16+16+16+16 = 64, 64/4 = 16
	if got := MeanSqQ8(src, 0); got != 16 {
		t.Errorf("MeanSqQ8 = %d, want 16", got)
	}
}

func TestMeanSqQ8FracBits(t *testing.T) {
	src := []int8{8, 8}

	tests := []struct {
		fracBits uint
		want     int8
	}{
		{0, 64}, // 64+64 = 128, /2
		{1, 32},
		{3, 8},
		{6, 1},
	}

	for _, tt := range tests {
		if got := MeanSqQ8(src, tt.fracBits); got != tt.want {
			t.Errorf("fracBits=%d: got %d, want %d", tt.fracBits, got, tt.want)
		}
	}
}

func TestMeanSqQ8TruncatingDivision(t *testing.T) {
	// 9+16+16 = 41, 41/3 = 13 (truncated, not rounded)
	src := []int8{3, 4, -4}
	if got := MeanSqQ8(src, 0); got != 13 {
		t.Errorf("MeanSqQ8 = %d, want 13", got)
	}
}

// TestMeanSqVariantsAgree verifies that the unrolled and generic loops
// produce identical output for every block size covering even, odd, and
// remainder boundary cases.
func TestMeanSqVariantsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 1; n <= 17; n++ {
		for _, fracBits := range []uint{0, 1, 4, 7} {
			src8 := randomI8(rng, n)
			// Force extremes into the mix.
			src8[0] = -128
			if n > 1 {
				src8[n-1] = 127
			}

			g := generic.MeanSqQ8(src8, fracBits)
			u := unroll.MeanSqQ8(src8, fracBits)
			if g != u {
				t.Errorf("MeanSqQ8 n=%d fracBits=%d: generic=%d unroll=%d", n, fracBits, g, u)
			}

			src16 := randomI16(rng, n)
			src16[0] = -32768
			if n > 1 {
				src16[n-1] = 32767
			}

			g16 := generic.MeanSqQ16(src16, fracBits)
			u16 := unroll.MeanSqQ16(src16, fracBits)
			if g16 != u16 {
				t.Errorf("MeanSqQ16 n=%d fracBits=%d: generic=%d unroll=%d", n, fracBits, g16, u16)
			}
		}
	}
}

// TestMeanSqDispatchMatchesVariants verifies the registry-selected kernel
// agrees with both direct variants.
func TestMeanSqDispatchMatchesVariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for n := 1; n <= 17; n++ {
		src := randomI8(rng, n)

		got := MeanSqQ8(src, 2)
		if g := generic.MeanSqQ8(src, 2); got != g {
			t.Errorf("n=%d: dispatch=%d generic=%d", n, got, g)
		}
	}
}

func TestMeanSqQ16(t *testing.T) {
	src := []int16{256, -256, 256, -256}

	// 65536>>4 = 4096 per sample, mean 4096
	if got := MeanSqQ16(src, 4); got != 4096 {
		t.Errorf("MeanSqQ16 = %d, want 4096", got)
	}
}
