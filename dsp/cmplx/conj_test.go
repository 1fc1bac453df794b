package cmplx

import "testing"

func TestConjI8(t *testing.T) {
	src := []int8{3, 4, -3, -4, 0, 127}
	dst := make([]int8, len(src))

	ConjI8(dst, src)

	want := []int8{3, -4, -3, 4, 0, -127}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestConjI8SaturatesMinimumImag(t *testing.T) {
	dst := make([]int8, 2)

	ConjI8(dst, []int8{-128, -128})

	// Real part passes through untouched; imaginary part saturates.
	if dst[0] != -128 {
		t.Errorf("re = %d, want -128", dst[0])
	}
	if dst[1] != 127 {
		t.Errorf("im = %d, want 127", dst[1])
	}
}

func TestConjI8Involution(t *testing.T) {
	// conj(conj(x)) == x for every value except the saturating one.
	src := []int8{5, 17, -9, -100, 64, 0}
	tmp := make([]int8, len(src))
	out := make([]int8, len(src))

	ConjI8(tmp, src)
	ConjI8(out, tmp)

	for i := range src {
		if out[i] != src[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], src[i])
		}
	}
}
